package dto

import "strconv"

// Request DTOs

// StaffForm carries the staff form exactly as submitted so it can be shown
// again when validation fails.
type StaffForm struct {
	FirstName     string   `form:"first_name" validate:"omitempty,max=100"`
	LastName      string   `form:"last_name" validate:"omitempty,max=100"`
	Email         string   `form:"email" validate:"omitempty,max=255,email"`
	Phone         string   `form:"phone" validate:"omitempty,max=30"`
	Biography     string   `form:"biography"`
	DisciplineIDs []string `form:"discipline_ids[]"`
}

// HasDiscipline reports whether the form selects the discipline, for
// prefilling checkboxes.
func (f StaffForm) HasDiscipline(id int) bool {
	want := strconv.Itoa(id)
	for _, selected := range f.DisciplineIDs {
		if selected == want {
			return true
		}
	}
	return false
}

// Response DTOs

type StaffResponse struct {
	ID          int                  `json:"id"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Email       string               `json:"email,omitempty"`
	Phone       string               `json:"phone,omitempty"`
	Biography   string               `json:"biography,omitempty"`
	Disciplines []DisciplineResponse `json:"disciplines"`
}
