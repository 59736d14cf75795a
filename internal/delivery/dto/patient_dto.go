package dto

// Request DTOs

type PatientForm struct {
	FirstName string `form:"first_name" validate:"omitempty,max=100"`
	LastName  string `form:"last_name" validate:"omitempty,max=100"`
	Email     string `form:"email" validate:"omitempty,max=255,email"`
	Phone     string `form:"phone" validate:"omitempty,max=30"`
	Birthday  string `form:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type PatientResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Birthday  string `json:"birthday,omitempty"`
}
