package entity

import (
	"fmt"
	"time"
)

// Patient represents patient-specific profile data
type Patient struct {
	UserID   int        `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Birthday *time.Time `gorm:"type:date" json:"birthday,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.User.FullName()
}

// Age renders the largest whole unit of the patient's age at now, e.g.
// "34 years", "5 months" or "12 days". A patient without a birthday has no age.
func (p *Patient) Age(now time.Time) string {
	if p.Birthday == nil {
		return ""
	}

	birthday := *p.Birthday
	years := now.Year() - birthday.Year()
	months := int(now.Month()) - int(birthday.Month())
	if now.Day() < birthday.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	switch {
	case years > 0:
		return pluralize(years, "year")
	case months > 0:
		return pluralize(months, "month")
	default:
		days := int(now.Sub(birthday).Hours() / 24)
		if days < 0 {
			days = 0
		}
		return pluralize(days, "day")
	}
}

// PatientProfile is a patient together with their appointment count.
type PatientProfile struct {
	Patient    Patient
	TotalAppts int64
	Upcoming   []Appointment
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
