package repository

import (
	"errors"
	"time"

	"practice-scheduler/internal/domain/entity"
	domainRepo "practice-scheduler/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("User").Where("user_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.
		Joins("JOIN users ON users.id = patients.user_id").
		Preload("User").
		Order("users.first_name ASC, users.last_name ASC, patients.user_id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	if err := db.Save(&patient.User).Error; err != nil {
		return err
	}
	return db.Omit(clause.Associations).Save(patient).Error
}

func (r *patientRepository) FindProfile(db *gorm.DB, id int, now time.Time) (*entity.PatientProfile, error) {
	patient, err := r.FindByID(db, id)
	if err != nil || patient == nil {
		return nil, err
	}

	profile := &entity.PatientProfile{Patient: *patient}
	err = db.Model(&entity.Appointment{}).
		Where("patient_id = ?", id).
		Count(&profile.TotalAppts).Error
	if err != nil {
		return nil, err
	}

	err = db.Preload("Staff.User").Preload("Treatment").
		Where("patient_id = ? AND starts_at >= ?", id, now).
		Order("starts_at ASC, id ASC").
		Find(&profile.Upcoming).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}
