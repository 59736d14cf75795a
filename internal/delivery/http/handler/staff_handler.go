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

const staffRoot = "/admin/staff"

type staffFormView struct {
	Action      string
	Form        dto.StaffForm
	Disciplines []entity.Discipline
}

type StaffHandler struct {
	staffUsecase      usecase.StaffUsecase
	disciplineUsecase usecase.DisciplineUsecase
	pages             *Pages
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, disciplineUsecase usecase.DisciplineUsecase, pages *Pages) *StaffHandler {
	return &StaffHandler{
		staffUsecase:      staffUsecase,
		disciplineUsecase: disciplineUsecase,
		pages:             pages,
	}
}

func staffURL(id int) string {
	return fmt.Sprintf("%s/%d", staffRoot, id)
}

func (h *StaffHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form dto.StaffForm, messages []string) {
	disciplines, err := h.disciplineUsecase.GetAllDisciplines(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, status, "staff_form", title, messages, staffFormView{
		Action:      action,
		Form:        form,
		Disciplines: disciplines,
	})
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffUsecase.GetAllStaff(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "staff_index", "Staff", nil, staff)
}

func (h *StaffHandler) ShowStaff(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
		return
	}

	profile, err := h.staffUsecase.GetStaffProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "staff_show", profile.Staff.FullName(), nil, profile)
}

func (h *StaffHandler) NewStaff(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "New staff member", staffRoot+"/new", dto.StaffForm{}, nil)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := staffFormFromRequest(r)

	staff, err := h.staffUsecase.CreateStaff(r.Context(), form)
	if err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "New staff member", staffRoot+"/new", form, validationErr.Messages())
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, staffURL(staff.UserID))
}

func (h *StaffHandler) EditStaff(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
		return
	}

	staff, err := h.staffUsecase.GetStaff(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Edit "+staff.FullName(), staffURL(id)+"/edit", converter.StaffToForm(staff), nil)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := staffFormFromRequest(r)

	_, err := h.staffUsecase.UpdateStaff(r.Context(), id, form)
	if err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit staff member", staffURL(id)+"/edit", form, validationErr.Messages())
			return
		}
		if errors.Is(err, usecase.ErrStaffNotFound) {
			h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, staffURL(id))
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
		return
	}

	if err := h.staffUsecase.DeleteStaff(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrStaffNotFound) {
			h.pages.NotFound(w, r, rule.TableStaff, raw, staffRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, staffRoot)
}
