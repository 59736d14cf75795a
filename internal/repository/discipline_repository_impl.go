package repository

import (
	"errors"

	"practice-scheduler/internal/domain/entity"
	domainRepo "practice-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type disciplineRepository struct{}

func NewDisciplineRepository() domainRepo.DisciplineRepository {
	return &disciplineRepository{}
}

func (r *disciplineRepository) Create(db *gorm.DB, discipline *entity.Discipline) error {
	return db.Create(discipline).Error
}

func (r *disciplineRepository) FindByID(db *gorm.DB, id int) (*entity.Discipline, error) {
	var discipline entity.Discipline
	err := db.Where("id = ?", id).First(&discipline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discipline, nil
}

func (r *disciplineRepository) FindAll(db *gorm.DB) ([]entity.Discipline, error) {
	var disciplines []entity.Discipline
	err := db.Order("name ASC").Find(&disciplines).Error
	if err != nil {
		return nil, err
	}
	return disciplines, nil
}

func (r *disciplineRepository) Update(db *gorm.DB, discipline *entity.Discipline) error {
	return db.Save(discipline).Error
}
