package repository

import (
	"time"

	"practice-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	// FindProfile loads the patient with their appointment count and the
	// appointments starting at or after now.
	FindProfile(db *gorm.DB, id int, now time.Time) (*entity.PatientProfile, error)
}
