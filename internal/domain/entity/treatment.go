package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinTreatmentLength  = 5
	MaxTreatmentLength  = 180
	TreatmentLengthStep = 5
)

// MaxTreatmentPrice is the largest price a decimal(10,2) column holds.
var MaxTreatmentPrice = decimal.RequireFromString("99999999.99")

// Treatment is a billable service belonging to exactly one discipline.
type Treatment struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	DisciplineID int             `gorm:"not null;index" json:"discipline_id"`
	Length       int             `gorm:"not null" json:"length"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Discipline Discipline `gorm:"foreignKey:DisciplineID" json:"discipline,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// Duration renders the treatment length, e.g. "45 minutes" or "1 hour 30 minutes"
func (t *Treatment) Duration() string {
	return FormatDuration(t.Length)
}

// TreatmentLengths lists every bookable treatment length in minutes:
// 5 minutes to 3 hours in 5 minute steps.
func TreatmentLengths() []int {
	lengths := make([]int, 0, MaxTreatmentLength/TreatmentLengthStep)
	for l := MinTreatmentLength; l <= MaxTreatmentLength; l += TreatmentLengthStep {
		lengths = append(lengths, l)
	}
	return lengths
}

// IsValidTreatmentLength checks a length against TreatmentLengths
func IsValidTreatmentLength(minutes int) bool {
	return minutes >= MinTreatmentLength &&
		minutes <= MaxTreatmentLength &&
		minutes%TreatmentLengthStep == 0
}
