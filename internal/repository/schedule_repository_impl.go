package repository

import (
	"time"

	"practice-scheduler/internal/domain/entity"
	domainRepo "practice-scheduler/internal/domain/repository"
	"practice-scheduler/internal/domain/schedule"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

type practitionerRecord struct {
	StaffID   int
	FirstName string
	LastName  string
}

type disciplineLink struct {
	StaffID      int
	DisciplineID int
	Name         string
}

type appointmentRecord struct {
	ID               int
	StaffID          int
	PatientFirstName string
	PatientLastName  string
	TreatmentName    string
	TreatmentLength  int
	StartsAt         time.Time
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	return day, day.AddDate(0, 0, 1)
}

// FindPractitioners returns the rows in display order: by group name, then
// first and last name.
func (r *scheduleRepository) FindPractitioners(db *gorm.DB, day time.Time) ([]schedule.PractitionerRow, error) {
	from, to := dayBounds(day)

	var records []practitionerRecord
	err := db.Table("staff").
		Select("staff.user_id AS staff_id, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = staff.user_id").
		Where("EXISTS (?)", db.Table("appointments").
			Select("1").
			Where("appointments.staff_id = staff.user_id").
			Where("appointments.starts_at >= ? AND appointments.starts_at < ?", from, to)).
		Order("staff.user_id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []schedule.PractitionerRow{}, nil
	}

	staffIDs := make([]int, len(records))
	for i, rec := range records {
		staffIDs[i] = rec.StaffID
	}

	var links []disciplineLink
	err = db.Table("staff_disciplines").
		Select("staff_disciplines.staff_id, disciplines.id AS discipline_id, disciplines.name").
		Joins("JOIN disciplines ON disciplines.id = staff_disciplines.discipline_id").
		Where("staff_disciplines.staff_id IN ?", staffIDs).
		Order("disciplines.id ASC").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}

	refs := make(map[int][]schedule.DisciplineRef, len(records))
	for _, link := range links {
		refs[link.StaffID] = append(refs[link.StaffID], schedule.DisciplineRef{ID: link.DisciplineID, Name: link.Name})
	}

	rows := make([]schedule.PractitionerRow, len(records))
	for i, rec := range records {
		rows[i] = schedule.PractitionerRow{
			StaffID:   rec.StaffID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Group:     schedule.GroupFor(refs[rec.StaffID]...),
		}
	}
	schedule.SortPractitioners(rows)

	return rows, nil
}

func (r *scheduleRepository) FindAppointments(db *gorm.DB, day time.Time) ([]schedule.AppointmentRow, error) {
	from, to := dayBounds(day)

	var records []appointmentRecord
	err := db.Table("appointments").
		Select(`appointments.id, appointments.staff_id,
			users.first_name AS patient_first_name, users.last_name AS patient_last_name,
			treatments.name AS treatment_name, treatments.length AS treatment_length,
			appointments.starts_at`).
		Joins("JOIN users ON users.id = appointments.patient_id").
		Joins("JOIN treatments ON treatments.id = appointments.treatment_id").
		Where("appointments.starts_at >= ? AND appointments.starts_at < ?", from, to).
		Order("appointments.starts_at ASC, appointments.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	rows := make([]schedule.AppointmentRow, len(records))
	for i, rec := range records {
		patient := entity.Person{FirstName: rec.PatientFirstName, LastName: rec.PatientLastName}
		rows[i] = schedule.AppointmentRow{
			ID:              rec.ID,
			StaffID:         rec.StaffID,
			PatientName:     patient.FullName(),
			TreatmentName:   rec.TreatmentName,
			TreatmentLength: rec.TreatmentLength,
			StartsAt:        rec.StartsAt,
		}
	}
	return rows, nil
}
