package handler

import (
	"errors"
	"fmt"
	"net/http"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/usecase"
)

const disciplinesRoot = "/admin/disciplines"

type disciplineFormView struct {
	Action string
	Form   dto.DisciplineForm
}

type DisciplineHandler struct {
	disciplineUsecase usecase.DisciplineUsecase
	pages             *Pages
}

func NewDisciplineHandler(disciplineUsecase usecase.DisciplineUsecase, pages *Pages) *DisciplineHandler {
	return &DisciplineHandler{
		disciplineUsecase: disciplineUsecase,
		pages:             pages,
	}
}

func (h *DisciplineHandler) ListDisciplines(w http.ResponseWriter, r *http.Request) {
	disciplines, err := h.disciplineUsecase.GetAllDisciplines(r.Context())
	if err != nil {
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "discipline_index", "Disciplines", nil, disciplines)
}

func (h *DisciplineHandler) NewDiscipline(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, r, http.StatusOK, "discipline_form", "New discipline", nil, disciplineFormView{
		Action: disciplinesRoot + "/new",
	})
}

func (h *DisciplineHandler) CreateDiscipline(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := disciplineFormFromRequest(r)

	if _, err := h.disciplineUsecase.CreateDiscipline(r.Context(), form); err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.pages.Render(w, r, http.StatusUnprocessableEntity, "discipline_form", "New discipline", validationErr.Messages(), disciplineFormView{
				Action: disciplinesRoot + "/new",
				Form:   form,
			})
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, disciplinesRoot)
}

func (h *DisciplineHandler) EditDiscipline(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableDisciplines, raw, disciplinesRoot)
		return
	}

	discipline, err := h.disciplineUsecase.GetDiscipline(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDisciplineNotFound) {
			h.pages.NotFound(w, r, rule.TableDisciplines, raw, disciplinesRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, "discipline_form", "Edit "+discipline.Name, nil, disciplineFormView{
		Action: fmt.Sprintf("%s/%d/edit", disciplinesRoot, id),
		Form:   converter.DisciplineToForm(discipline),
	})
}

func (h *DisciplineHandler) UpdateDiscipline(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := pathID(r)
	if !ok {
		h.pages.NotFound(w, r, rule.TableDisciplines, raw, disciplinesRoot)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.pages.BadRequest(w, r, err)
		return
	}
	form := disciplineFormFromRequest(r)

	if _, err := h.disciplineUsecase.UpdateDiscipline(r.Context(), id, form); err != nil {
		if validationErr, ok := usecase.AsValidationError(err); ok {
			h.pages.Render(w, r, http.StatusUnprocessableEntity, "discipline_form", "Edit discipline", validationErr.Messages(), disciplineFormView{
				Action: fmt.Sprintf("%s/%d/edit", disciplinesRoot, id),
				Form:   form,
			})
			return
		}
		if errors.Is(err, usecase.ErrDisciplineNotFound) {
			h.pages.NotFound(w, r, rule.TableDisciplines, raw, disciplinesRoot)
			return
		}
		h.pages.ServerError(w, r, err)
		return
	}

	h.pages.Redirect(w, r, disciplinesRoot)
}
