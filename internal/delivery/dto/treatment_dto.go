package dto

// Request DTOs

type TreatmentForm struct {
	Name         string `form:"name" validate:"omitempty,max=255"`
	DisciplineID string `form:"discipline_id"`
	Length       string `form:"length"`
	Price        string `form:"price"`
}

// Response DTOs

type TreatmentResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisciplineID int    `json:"discipline_id"`
	Length       int    `json:"length"`
	Price        string `json:"price"`
}
