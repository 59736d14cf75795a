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
	ErrDisciplineNotFound = errors.New("discipline not found")
)

type DisciplineUsecase interface {
	CreateDiscipline(ctx context.Context, form dto.DisciplineForm) (*entity.Discipline, error)
	GetDiscipline(ctx context.Context, id int) (*entity.Discipline, error)
	GetAllDisciplines(ctx context.Context) ([]entity.Discipline, error)
	UpdateDiscipline(ctx context.Context, id int, form dto.DisciplineForm) (*entity.Discipline, error)
}

type disciplineUsecase struct {
	tx             repository.Transactor
	log            *logrus.Logger
	validator      *validator.CustomValidator
	lookup         rule.Lookup
	disciplineRepo repository.DisciplineRepository
	auditService   service.AuditService
}

func NewDisciplineUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	lookup rule.Lookup,
	disciplineRepo repository.DisciplineRepository,
	auditService service.AuditService,
) DisciplineUsecase {
	return &disciplineUsecase{
		tx:             tx,
		log:            log,
		validator:      validator,
		lookup:         lookup,
		disciplineRepo: disciplineRepo,
		auditService:   auditService,
	}
}

// validate checks a discipline form. excludeID is the discipline being edited,
// 0 on create.
func (u *disciplineUsecase) validate(ctx context.Context, form dto.DisciplineForm, excludeID int) error {
	failures, err := u.validator.Check(form)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(form.Name)
	return check(ctx,
		rule.EmptyField("name", form.Name),
		tooLong(failures, "name"),
		rule.EmptyField("title", form.Title),
		tooLong(failures, "title"),
		rule.When(name != "", rule.NameCollision(u.lookup, rule.TableDisciplines, name, excludeID)),
	)
}

func (u *disciplineUsecase) CreateDiscipline(ctx context.Context, form dto.DisciplineForm) (*entity.Discipline, error) {
	if err := u.validate(ctx, form, 0); err != nil {
		return nil, err
	}

	discipline := &entity.Discipline{
		Name:  strings.TrimSpace(form.Name),
		Title: strings.TrimSpace(form.Title),
	}

	err := u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.disciplineRepo.Create(tx, discipline); err != nil {
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDisciplineCreate, "discipline", discipline.ID, converter.DisciplineToResponse(discipline)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, violationError(rule.CollisionViolation(rule.TableDisciplines, discipline.Name))
		}
		u.log.Warnf("Failed to create discipline: %+v", err)
		return nil, err
	}

	u.log.Infof("Discipline created: id=%d", discipline.ID)
	return discipline, nil
}

func (u *disciplineUsecase) GetDiscipline(ctx context.Context, id int) (*entity.Discipline, error) {
	discipline, err := u.disciplineRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find discipline: %+v", err)
		return nil, err
	}
	if discipline == nil {
		return nil, ErrDisciplineNotFound
	}

	return discipline, nil
}

func (u *disciplineUsecase) GetAllDisciplines(ctx context.Context) ([]entity.Discipline, error) {
	disciplines, err := u.disciplineRepo.FindAll(u.tx.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all disciplines: %+v", err)
		return nil, err
	}
	return disciplines, nil
}

func (u *disciplineUsecase) UpdateDiscipline(ctx context.Context, id int, form dto.DisciplineForm) (*entity.Discipline, error) {
	discipline, err := u.GetDiscipline(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.validate(ctx, form, id); err != nil {
		return nil, err
	}

	oldValue := converter.DisciplineToResponse(discipline)
	discipline.Name = strings.TrimSpace(form.Name)
	discipline.Title = strings.TrimSpace(form.Title)

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.disciplineRepo.Update(tx, discipline); err != nil {
			return err
		}

		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDisciplineUpdate, "discipline", id, oldValue, converter.DisciplineToResponse(discipline)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, violationError(rule.CollisionViolation(rule.TableDisciplines, discipline.Name))
		}
		u.log.Warnf("Failed to update discipline: %+v", err)
		return nil, err
	}

	u.log.Infof("Discipline updated: id=%d", id)
	return discipline, nil
}
