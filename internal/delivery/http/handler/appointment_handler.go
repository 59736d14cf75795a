package handler

import (
	"errors"
	"fmt"
	"net/http"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/usecase"

	"github.com/gorilla/mux"
)

const appointmentsRoot = "/admin/appointments"

type appointmentFormView struct {
	Action  string
	Form    dto.AppointmentForm
	Options *usecase.AppointmentFormOptions
}

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	pages              *Pages
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, pages *Pages) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		pages:              pages,
	}
}

func appointmentURL(id int) string {
	return fmt.Sprintf("%s/%d", appointmentsRoot, id)
}

func (h *AppointmentHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form dto.AppointmentForm, messages []string) {
	options, err := h.appointmentUsecase.GetFormOptions(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, status, "appointment_form", title, messages, appointmentFormView{
		Action:  action,
		Form:    form,
		Options: options,
	})
}

// appointmentID reads the {id} route variable, answering the request itself
// when it is not an id.
func (h *AppointmentHandler) appointmentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableAppointments, raw, scheduleRoot)
		return 0, false
	}
	return id, true
}

func (h *AppointmentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrAppointmentNotFound) {
		h.pages.NotFound(w, r, rule.TableAppointments, mux.Vars(r)["id"], scheduleRoot)
		return
	}
	h.pages.ServerError(w, r, err)
}

// NewAppointment shows an empty form. ?date= and ?practitioner_id= prefill it,
// which is how the schedule links into it.
func (h *AppointmentHandler) NewAppointment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	form := dto.AppointmentForm{
		PractitionerID: query.Get("practitioner_id"),
		Date:           query.Get("date"),
	}
	h.renderForm(w, r, http.StatusOK, "New appointment", appointmentsRoot+"/new", form, nil)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := appointmentFormFromRequest(r)

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), form)
	if err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "New appointment", appointmentsRoot+"/new", form, validationErr.Messages())
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, appointmentURL(appointment.ID))
}

func (h *AppointmentHandler) ShowAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "appointment_show", "Appointment", nil, appointment)
}

func (h *AppointmentHandler) EditAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Edit appointment", appointmentURL(id)+"/edit", converter.AppointmentToForm(appointment), nil)
}

// CopyAppointment prefills the new appointment form from an existing one.
func (h *AppointmentHandler) CopyAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Copy appointment", appointmentsRoot+"/new", converter.AppointmentToForm(appointment), nil)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := appointmentFormFromRequest(r)

	if _, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, form); err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit appointment", appointmentURL(id)+"/edit", form, validationErr.Messages())
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, appointmentURL(id))
}

// DeleteAppointment removes the appointment and returns to its day.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.DeleteAppointment(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, scheduleURL(appointment.StartsAt))
}
