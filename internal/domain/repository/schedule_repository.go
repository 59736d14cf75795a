package repository

import (
	"time"

	"practice-scheduler/internal/domain/schedule"

	"gorm.io/gorm"
)

// ScheduleRepository reads the flat rows the schedule is built from. Both
// methods cover the calendar day starting at day, in wall-clock time.
type ScheduleRepository interface {
	// FindPractitioners returns the staff with at least one appointment on the
	// day, each with the group of their disciplines.
	FindPractitioners(db *gorm.DB, day time.Time) ([]schedule.PractitionerRow, error)
	// FindAppointments returns the day's appointments ordered by start time.
	FindAppointments(db *gorm.DB, day time.Time) ([]schedule.AppointmentRow, error)
}
