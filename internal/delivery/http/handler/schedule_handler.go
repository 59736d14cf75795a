package handler

import (
	"errors"
	"net/http"
	"time"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/usecase"

	"github.com/gorilla/mux"
)

const scheduleRoot = "/admin/schedule"

type scheduleView struct {
	Day      time.Time
	Previous string
	Next     string
	Schedule *dto.ScheduleResponse
}

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	pages           *Pages
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, pages *Pages) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		pages:           pages,
	}
}

func scheduleURL(day time.Time) string {
	return scheduleRoot + "/" + day.Format(usecase.ScheduleDateLayout)
}

// ShowSchedule renders the schedule of the {date} route variable, or of today
// when the route has none.
func (h *ScheduleHandler) ShowSchedule(w http.ResponseWriter, r *http.Request) {
	day := h.scheduleUsecase.Today()
	if raw, ok := mux.Vars(r)["date"]; ok {
		parsed, err := usecase.ParseScheduleDate(raw)
		if err != nil {
			h.pages.Flash(r, "Please enter a valid date.")
			h.pages.Redirect(w, r, scheduleRoot)
			return
		}
		day = parsed
	}

	s, err := h.scheduleUsecase.GetSchedule(r.Context(), day)
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "schedule", "Schedule", nil, scheduleView{
		Day:      s.Date,
		Previous: s.Date.AddDate(0, 0, -1).Format(usecase.ScheduleDateLayout),
		Next:     s.Date.AddDate(0, 0, 1).Format(usecase.ScheduleDateLayout),
		Schedule: converter.ScheduleToResponse(s),
	})
}

// RedirectSchedule turns the date picker's ?date= query into the canonical
// schedule URL.
func (h *ScheduleHandler) RedirectSchedule(w http.ResponseWriter, r *http.Request) {
	day, err := usecase.ParseScheduleDate(r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidScheduleDate) && r.URL.Query().Get("date") != "" {
			h.pages.Flash(r, "Please enter a valid date.")
		}
		h.pages.Redirect(w, r, scheduleRoot)
		return
	}

	h.pages.Redirect(w, r, scheduleURL(day))
}
