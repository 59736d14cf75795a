package dto

import "time"

// Response DTOs

type ScheduleResponse struct {
	Date   string                    `json:"date"`
	Groups []DisciplineGroupResponse `json:"groups"`
}

type DisciplineGroupResponse struct {
	Key           string                 `json:"key"`
	Name          string                 `json:"name"`
	Practitioners []PractitionerResponse `json:"practitioners"`
}

type PractitionerResponse struct {
	StaffID      int                     `json:"staff_id"`
	Name         string                  `json:"name"`
	Appointments []ScheduleEntryResponse `json:"appointments"`
}

type ScheduleEntryResponse struct {
	ID            int       `json:"id"`
	Label         string    `json:"label"`
	PatientName   string    `json:"patient_name"`
	TreatmentName string    `json:"treatment_name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}
