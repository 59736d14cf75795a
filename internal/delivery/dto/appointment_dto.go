package dto

import "time"

// Request DTOs

// AppointmentForm takes the date and the time of day as separate inputs:
// YYYY-MM-DD and 24-hour HH:MM.
type AppointmentForm struct {
	PractitionerID string `form:"practitioner_id"`
	TreatmentID    string `form:"treatment_id"`
	PatientID      string `form:"patient_id"`
	Date           string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	Time           string `form:"time" validate:"omitempty,datetime=15:04"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int       `json:"id"`
	StaffID     int       `json:"staff_id"`
	PatientID   int       `json:"patient_id"`
	TreatmentID int       `json:"treatment_id"`
	StartsAt    time.Time `json:"starts_at"`
}
