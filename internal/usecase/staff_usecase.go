package usecase

import (
	"context"
	"errors"
	"strings"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/repository"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/service"
	"practice-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("staff not found")
)

type StaffUsecase interface {
	CreateStaff(ctx context.Context, form dto.StaffForm) (*entity.Staff, error)
	GetStaff(ctx context.Context, id int) (*entity.Staff, error)
	GetStaffProfile(ctx context.Context, id int) (*entity.StaffProfile, error)
	GetAllStaff(ctx context.Context) ([]entity.Staff, error)
	UpdateStaff(ctx context.Context, id int, form dto.StaffForm) (*entity.Staff, error)
	DeleteStaff(ctx context.Context, id int) error
}

type staffUsecase struct {
	tx            repository.Transactor
	log           *logrus.Logger
	validator     *validator.CustomValidator
	lookup        rule.Lookup
	userRepo      repository.UserRepository
	staffRepo     repository.StaffRepository
	treatmentRepo repository.TreatmentRepository
	auditService  service.AuditService
}

func NewStaffUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	lookup rule.Lookup,
	userRepo repository.UserRepository,
	staffRepo repository.StaffRepository,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) StaffUsecase {
	return &staffUsecase{
		tx:            tx,
		log:           log,
		validator:     validator,
		lookup:        lookup,
		userRepo:      userRepo,
		staffRepo:     staffRepo,
		treatmentRepo: treatmentRepo,
		auditService:  auditService,
	}
}

// validate checks a staff form and returns the selected discipline ids.
func (u *staffUsecase) validate(ctx context.Context, form dto.StaffForm) ([]int, error) {
	failures, err := u.validator.Check(form)
	if err != nil {
		return nil, err
	}

	rules := []rule.Rule{
		rule.EmptyField("first_name", form.FirstName),
		tooLong(failures, "first_name"),
		rule.EmptyField("last_name", form.LastName),
		tooLong(failures, "last_name"),
		tooLong(failures, "email"),
		rule.InvalidFormat("email", !failures.Failed("email", "email")),
		tooLong(failures, "phone"),
	}

	disciplineIDs := make([]int, 0, len(form.DisciplineIDs))
	for _, raw := range form.DisciplineIDs {
		id, disciplineRules := selectID(u.lookup, "discipline", raw, rule.TableDisciplines)
		rules = append(rules, disciplineRules...)
		disciplineIDs = append(disciplineIDs, id)
	}

	if err := check(ctx, rules...); err != nil {
		return nil, err
	}
	return disciplineIDs, nil
}

func applyStaffForm(staff *entity.Staff, form dto.StaffForm) {
	staff.User.FirstName = strings.TrimSpace(form.FirstName)
	staff.User.LastName = strings.TrimSpace(form.LastName)
	staff.User.Email = strings.TrimSpace(form.Email)
	staff.User.Phone = strings.TrimSpace(form.Phone)
	staff.Biography = strings.TrimSpace(form.Biography)
}

func (u *staffUsecase) CreateStaff(ctx context.Context, form dto.StaffForm) (*entity.Staff, error) {
	disciplineIDs, err := u.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{}
	applyStaffForm(staff, form)

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.staffRepo.Create(tx, staff); err != nil {
			return err
		}
		if err := u.staffRepo.ReplaceDisciplines(tx, staff.UserID, disciplineIDs); err != nil {
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionStaffCreate, "staff", staff.UserID, converter.StaffToResponse(staff)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	u.log.Infof("Staff created: id=%d, disciplines=%v", staff.UserID, disciplineIDs)
	return staff, nil
}

func (u *staffUsecase) GetStaff(ctx context.Context, id int) (*entity.Staff, error) {
	staff, err := u.staffRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return staff, nil
}

func (u *staffUsecase) GetStaffProfile(ctx context.Context, id int) (*entity.StaffProfile, error) {
	staff, err := u.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	treatments, err := u.treatmentRepo.FindByDisciplineIDs(u.tx.DB(ctx), staff.DisciplineIDs())
	if err != nil {
		u.log.Warnf("Failed to find treatments of staff: %+v", err)
		return nil, err
	}

	return &entity.StaffProfile{Staff: *staff, Treatments: treatments}, nil
}

func (u *staffUsecase) GetAllStaff(ctx context.Context) ([]entity.Staff, error) {
	staff, err := u.staffRepo.FindAll(u.tx.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, err
	}
	return staff, nil
}

func (u *staffUsecase) UpdateStaff(ctx context.Context, id int, form dto.StaffForm) (*entity.Staff, error) {
	staff, err := u.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	disciplineIDs, err := u.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	oldValue := converter.StaffToResponse(staff)
	applyStaffForm(staff, form)

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.staffRepo.Update(tx, staff); err != nil {
			return err
		}
		// Replaced wholesale; the transaction hides the empty in-between state.
		if err := u.staffRepo.ReplaceDisciplines(tx, id, disciplineIDs); err != nil {
			return err
		}

		updated, err := u.staffRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if updated != nil {
			staff = updated
		}

		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionStaffUpdate, "staff", id, oldValue, converter.StaffToResponse(staff)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update staff: %+v", err)
		return nil, err
	}

	u.log.Infof("Staff updated: id=%d, disciplines=%v", id, disciplineIDs)
	return staff, nil
}

func (u *staffUsecase) DeleteStaff(ctx context.Context, id int) error {
	return u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		// Get staff for audit log before delete
		staff, err := u.staffRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find staff: %+v", err)
			return err
		}
		if staff == nil {
			return ErrStaffNotFound
		}

		affectedRows, err := u.userRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed delete staff: %+v", err)
			return err
		}
		if affectedRows == 0 {
			return ErrStaffNotFound
		}

		if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionStaffDelete, "staff", id, converter.StaffToResponse(staff)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		u.log.Infof("Staff deleted: id=%d", id)
		return nil
	})
}
