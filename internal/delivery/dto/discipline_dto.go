package dto

// Request DTOs

type DisciplineForm struct {
	Name  string `form:"name" validate:"omitempty,max=100"`
	Title string `form:"title" validate:"omitempty,max=100"`
}

// Response DTOs

type DisciplineResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}
