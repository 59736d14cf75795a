package repository

import (
	"practice-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type DisciplineRepository interface {
	Create(db *gorm.DB, discipline *entity.Discipline) error
	FindByID(db *gorm.DB, id int) (*entity.Discipline, error)
	FindAll(db *gorm.DB) ([]entity.Discipline, error)
	Update(db *gorm.DB, discipline *entity.Discipline) error
}
