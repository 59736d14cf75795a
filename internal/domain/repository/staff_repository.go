package repository

import (
	"practice-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type StaffRepository interface {
	// Create inserts the user row and the staff row. Disciplines are linked
	// separately with ReplaceDisciplines.
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByID(db *gorm.DB, id int) (*entity.Staff, error)
	FindAll(db *gorm.DB) ([]entity.Staff, error)
	Update(db *gorm.DB, staff *entity.Staff) error
	ReplaceDisciplines(db *gorm.DB, staffID int, disciplineIDs []int) error
}
