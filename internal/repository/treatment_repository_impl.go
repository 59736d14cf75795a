package repository

import (
	"errors"

	"practice-scheduler/internal/domain/entity"
	domainRepo "practice-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentRepository struct{}

func NewTreatmentRepository() domainRepo.TreatmentRepository {
	return &treatmentRepository{}
}

func (r *treatmentRepository) Create(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Omit("Discipline").Create(treatment).Error
}

func (r *treatmentRepository) FindByID(db *gorm.DB, id int) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := db.Preload("Discipline").Where("id = ?", id).First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) FindAll(db *gorm.DB) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	err := db.Preload("Discipline").Order("name ASC").Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) FindByDisciplineIDs(db *gorm.DB, disciplineIDs []int) ([]entity.Treatment, error) {
	if len(disciplineIDs) == 0 {
		return []entity.Treatment{}, nil
	}

	var treatments []entity.Treatment
	err := db.Preload("Discipline").
		Where("discipline_id IN ?", disciplineIDs).
		Order("name ASC").
		Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) Update(db *gorm.DB, treatment *entity.Treatment) error {
	return db.Omit("Discipline").Save(treatment).Error
}
