package entity

import (
	"time"
)

// Appointment books one treatment for one patient with one staff member.
// StartsAt is the wall-clock time in the practice's time zone.
type Appointment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StartsAt    time.Time `gorm:"column:starts_at;type:timestamp;not null;index" json:"starts_at"`
	StaffID     int       `gorm:"not null;index" json:"staff_id"`
	PatientID   int       `gorm:"not null;index" json:"patient_id"`
	TreatmentID int       `gorm:"not null;index" json:"treatment_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff     Staff     `gorm:"foreignKey:StaffID;references:UserID" json:"staff,omitempty"`
	Patient   Patient   `gorm:"foreignKey:PatientID;references:UserID" json:"patient,omitempty"`
	Treatment Treatment `gorm:"foreignKey:TreatmentID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) StartTime() time.Time {
	return a.StartsAt
}

// EndTime adds the treatment length to the start. Without a loaded treatment
// the appointment has no known length and ends when it starts.
func (a *Appointment) EndTime() time.Time {
	return a.StartsAt.Add(time.Duration(a.Treatment.Length) * time.Minute)
}

// Date returns midnight of the appointment's day in its own location
func (a *Appointment) Date() time.Time {
	y, m, d := a.StartsAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.StartsAt.Location())
}
