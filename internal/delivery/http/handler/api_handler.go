package handler

import (
	"errors"
	"net/http"
	"strconv"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/usecase"
	"practice-scheduler/pkg/response"

	"github.com/gorilla/mux"
)

// APIHandler serves the read-only JSON endpoints under /api/v1.
type APIHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAPIHandler(scheduleUsecase usecase.ScheduleUsecase, auditLogUsecase usecase.AuditLogUsecase) *APIHandler {
	return &APIHandler{
		scheduleUsecase: scheduleUsecase,
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "ok", nil)
}

func (h *APIHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	day, err := usecase.ParseScheduleDate(mux.Vars(r)["date"])
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", "date")
		return
	}

	s, err := h.scheduleUsecase.GetSchedule(r.Context(), day)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", converter.ScheduleToResponse(s))
}

func (h *APIHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID", "id")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *APIHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
