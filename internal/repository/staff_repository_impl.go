package repository

import (
	"errors"

	"practice-scheduler/internal/domain/entity"
	domainRepo "practice-scheduler/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func orderDisciplines(db *gorm.DB) *gorm.DB {
	return db.Order("disciplines.id ASC")
}

func (r *staffRepository) Create(db *gorm.DB, staff *entity.Staff) error {
	// Saving the User association inserts the users row first and fills UserID.
	return db.Omit("Disciplines").Create(staff).Error
}

func (r *staffRepository) FindByID(db *gorm.DB, id int) (*entity.Staff, error) {
	var staff entity.Staff
	err := db.Preload("User").Preload("Disciplines", orderDisciplines).
		Where("user_id = ?", id).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindAll(db *gorm.DB) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := db.
		Joins("JOIN users ON users.id = staff.user_id").
		Preload("User").Preload("Disciplines", orderDisciplines).
		Order("users.first_name ASC, users.last_name ASC, staff.user_id ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) Update(db *gorm.DB, staff *entity.Staff) error {
	if err := db.Save(&staff.User).Error; err != nil {
		return err
	}
	return db.Omit(clause.Associations).Save(staff).Error
}

// ReplaceDisciplines deletes every link of the staff member and inserts one
// per id. Run it inside a transaction so the set never shows up empty.
func (r *staffRepository) ReplaceDisciplines(db *gorm.DB, staffID int, disciplineIDs []int) error {
	if err := db.Where("staff_id = ?", staffID).Delete(&entity.StaffDiscipline{}).Error; err != nil {
		return err
	}

	links := make([]entity.StaffDiscipline, 0, len(disciplineIDs))
	seen := make(map[int]bool, len(disciplineIDs))
	for _, id := range disciplineIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, entity.StaffDiscipline{StaffID: staffID, DisciplineID: id})
	}
	if len(links) == 0 {
		return nil
	}
	return db.Create(&links).Error
}
