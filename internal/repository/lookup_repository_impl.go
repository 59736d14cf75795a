package repository

import (
	"context"
	"fmt"

	"practice-scheduler/internal/domain/rule"

	"gorm.io/gorm"
)

// lookupRepository answers rule lookups against the shared connection pool.
type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) rule.Lookup {
	return &lookupRepository{db: db}
}

func primaryKey(table rule.Table) (string, error) {
	switch table {
	case rule.TableStaff, rule.TablePatients:
		return "user_id", nil
	case rule.TableUsers, rule.TableDisciplines, rule.TableTreatments, rule.TableAppointments:
		return "id", nil
	default:
		return "", fmt.Errorf("unknown table %q", table)
	}
}

func (r *lookupRepository) Exists(ctx context.Context, table rule.Table, id int) (bool, error) {
	pk, err := primaryKey(table)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Table(string(table)).Where(pk+" = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *lookupRepository) NameTaken(ctx context.Context, table rule.Table, name string, excludeID int) (bool, error) {
	if table != rule.TableDisciplines && table != rule.TableTreatments {
		return false, fmt.Errorf("table %q has no name column", table)
	}

	var count int64
	err := r.db.WithContext(ctx).Table(string(table)).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *lookupRepository) OffersTreatment(ctx context.Context, staffID, treatmentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("treatments").
		Joins("JOIN staff_disciplines ON staff_disciplines.discipline_id = treatments.discipline_id").
		Where("treatments.id = ? AND staff_disciplines.staff_id = ?", treatmentID, staffID).
		Count(&count).Error
	return count > 0, err
}
