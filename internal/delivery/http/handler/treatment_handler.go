package handler

import (
	"errors"
	"fmt"
	"net/http"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/usecase"
)

const treatmentsRoot = "/admin/treatments"

type treatmentFormView struct {
	Action      string
	Form        dto.TreatmentForm
	Disciplines []entity.Discipline
	Lengths     []int
}

type TreatmentHandler struct {
	treatmentUsecase  usecase.TreatmentUsecase
	disciplineUsecase usecase.DisciplineUsecase
	pages             *Pages
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, disciplineUsecase usecase.DisciplineUsecase, pages *Pages) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase:  treatmentUsecase,
		disciplineUsecase: disciplineUsecase,
		pages:             pages,
	}
}

func (h *TreatmentHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form dto.TreatmentForm, messages []string) {
	disciplines, err := h.disciplineUsecase.GetAllDisciplines(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, status, "treatment_form", title, messages, treatmentFormView{
		Action:      action,
		Form:        form,
		Disciplines: disciplines,
		Lengths:     entity.TreatmentLengths(),
	})
}

func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.GetAllTreatments(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "treatment_index", "Treatments", nil, treatments)
}

func (h *TreatmentHandler) NewTreatment(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "New treatment", treatmentsRoot+"/new", dto.TreatmentForm{}, nil)
}

func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := treatmentFormFromRequest(r)

	if _, err := h.treatmentUsecase.CreateTreatment(r.Context(), form); err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "New treatment", treatmentsRoot+"/new", form, validationErr.Messages())
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, treatmentsRoot)
}

func (h *TreatmentHandler) EditTreatment(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableTreatments, raw, treatmentsRoot)
		return
	}

	treatment, err := h.treatmentUsecase.GetTreatment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTreatmentNotFound) {
			h.pages.NotFound(w, r, rule.TableTreatments, raw, treatmentsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Edit "+treatment.Name, fmt.Sprintf("%s/%d/edit", treatmentsRoot, id), converter.TreatmentToForm(treatment), nil)
}

func (h *TreatmentHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableTreatments, raw, treatmentsRoot)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := treatmentFormFromRequest(r)

	if _, err := h.treatmentUsecase.UpdateTreatment(r.Context(), id, form); err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit treatment", fmt.Sprintf("%s/%d/edit", treatmentsRoot, id), form, validationErr.Messages())
			return
		}
		if errors.Is(err, usecase.ErrTreatmentNotFound) {
			h.pages.NotFound(w, r, rule.TableTreatments, raw, treatmentsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, treatmentsRoot)
}
