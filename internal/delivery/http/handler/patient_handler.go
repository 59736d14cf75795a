package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/usecase"
)

const patientsRoot = "/admin/patients"

type patientFormView struct {
	Action string
	Form   dto.PatientForm
}

type patientShowView struct {
	Profile *entity.PatientProfile
	Age     string
}

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	pages          *Pages
	now            func() time.Time
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, pages *Pages) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		pages:          pages,
		now:            time.Now,
	}
}

func patientURL(id int) string {
	return fmt.Sprintf("%s/%d", patientsRoot, id)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "patient_index", "Patients", nil, patients)
}

func (h *PatientHandler) ShowPatient(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
		return
	}

	profile, err := h.patientUsecase.GetPatientProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "patient_show", profile.Patient.FullName(), nil, patientShowView{
		Profile: profile,
		Age:     profile.Patient.Age(h.now()),
	})
}

func (h *PatientHandler) NewPatient(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, r, http.StatusOK, "patient_form", "New patient", nil, patientFormView{
		Action: patientsRoot + "/new",
	})
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := patientFormFromRequest(r)

	patient, err := h.patientUsecase.CreatePatient(r.Context(), form)
	if err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.pages.Render(w, r, http.StatusUnprocessableEntity, "patient_form", "New patient", validationErr.Messages(), patientFormView{
				Action: patientsRoot + "/new",
				Form:   form,
			})
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, patientURL(patient.UserID))
}

func (h *PatientHandler) EditPatient(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "patient_form", "Edit "+patient.FullName(), nil, patientFormView{
		Action: patientURL(id) + "/edit",
		Form:   converter.PatientToForm(patient),
	})
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := patientFormFromRequest(r)

	_, err := h.patientUsecase.UpdatePatient(r.Context(), id, form)
	if err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.pages.Render(w, r, http.StatusUnprocessableEntity, "patient_form", "Edit patient", validationErr.Messages(), patientFormView{
				Action: patientURL(id) + "/edit",
				Form:   form,
			})
			return
		}
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, patientURL(id))
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.pages.NotFound(w, r, rule.TablePatients, raw, patientsRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, patientsRoot)
}
