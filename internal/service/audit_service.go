package service

import (
	"context"
	"strconv"

	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records mutations in audit_logs. Callers pass their
// transaction so the entry commits or rolls back with the change itself. Each
// entry is written under its own savepoint: a failed insert is rolled back to
// it and leaves the caller's transaction usable, so the change still commits.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error {
	return s.write(tx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return s.write(tx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue interface{}) error {
	return s.write(tx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(tx *gorm.DB, action, entityName string, entityID int, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": strconv.Itoa(entityID),
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	err := tx.Transaction(func(sp *gorm.DB) error {
		return s.auditRepo.Create(sp, auditLog)
	})
	if err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
