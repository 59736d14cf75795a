package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"practice-scheduler/internal/converter"
	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/repository"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/service"
	"practice-scheduler/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTreatmentNotFound = errors.New("treatment not found")
)

type TreatmentUsecase interface {
	CreateTreatment(ctx context.Context, form dto.TreatmentForm) (*entity.Treatment, error)
	GetTreatment(ctx context.Context, id int) (*entity.Treatment, error)
	GetAllTreatments(ctx context.Context) ([]entity.Treatment, error)
	UpdateTreatment(ctx context.Context, id int, form dto.TreatmentForm) (*entity.Treatment, error)
}

type treatmentUsecase struct {
	tx            repository.Transactor
	log           *logrus.Logger
	validator     *validator.CustomValidator
	lookup        rule.Lookup
	treatmentRepo repository.TreatmentRepository
	auditService  service.AuditService
}

func NewTreatmentUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	lookup rule.Lookup,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		tx:            tx,
		log:           log,
		validator:     validator,
		lookup:        lookup,
		treatmentRepo: treatmentRepo,
		auditService:  auditService,
	}
}

// treatmentLengthOptions lists the valid lengths as submitted by the form.
func treatmentLengthOptions() []string {
	lengths := entity.TreatmentLengths()
	options := make([]string, len(lengths))
	for i, l := range lengths {
		options[i] = strconv.Itoa(l)
	}
	return options
}

// validate checks a treatment form and returns the parsed values.
func (u *treatmentUsecase) validate(ctx context.Context, form dto.TreatmentForm, excludeID int) (*entity.Treatment, error) {
	failures, err := u.validator.Check(form)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(form.Name)
	rawPrice := strings.TrimSpace(form.Price)
	price, priceErr := decimal.NewFromString(rawPrice)
	price = price.Round(2)

	disciplineID, disciplineRules := selectID(u.lookup, "discipline", form.DisciplineID, rule.TableDisciplines)

	rules := []rule.Rule{
		rule.EmptyField("name", form.Name),
		tooLong(failures, "name"),
		rule.When(name != "", rule.NameCollision(u.lookup, rule.TableTreatments, name, excludeID)),
	}
	rules = append(rules, disciplineRules...)
	rules = append(rules,
		rule.InvalidSelect("length", strings.TrimSpace(form.Length), treatmentLengthOptions()),
		rule.EmptyField("price", rawPrice),
		rule.When(rawPrice != "", rule.InvalidFormat("price", priceErr == nil)),
		rule.When(priceErr == nil, rule.NegativePrice(price)),
		rule.When(priceErr == nil, rule.PriceAbove(price, entity.MaxTreatmentPrice)),
	)

	if err := check(ctx, rules...); err != nil {
		return nil, err
	}

	length, _ := strconv.Atoi(strings.TrimSpace(form.Length))
	return &entity.Treatment{
		Name:         name,
		DisciplineID: disciplineID,
		Length:       length,
		Price:        price,
	}, nil
}

// writeError maps constraint failures the rules could not see coming.
func (u *treatmentUsecase) writeError(err error, treatment *entity.Treatment) error {
	if isDuplicateKeyError(err, "name") {
		return violationError(rule.CollisionViolation(rule.TableTreatments, treatment.Name))
	}
	if isForeignKeyError(err, "discipline") {
		return violationError(rule.MissingReferenceViolation(rule.TableDisciplines, treatment.DisciplineID))
	}
	return err
}

func (u *treatmentUsecase) CreateTreatment(ctx context.Context, form dto.TreatmentForm) (*entity.Treatment, error) {
	treatment, err := u.validate(ctx, form, 0)
	if err != nil {
		return nil, err
	}

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.treatmentRepo.Create(tx, treatment); err != nil {
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionTreatmentCreate, "treatment", treatment.ID, converter.TreatmentToResponse(treatment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, u.writeError(err, treatment)
	}

	u.log.Infof("Treatment created: id=%d, discipline=%d", treatment.ID, treatment.DisciplineID)
	return treatment, nil
}

func (u *treatmentUsecase) GetTreatment(ctx context.Context, id int) (*entity.Treatment, error) {
	treatment, err := u.treatmentRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return treatment, nil
}

func (u *treatmentUsecase) GetAllTreatments(ctx context.Context) ([]entity.Treatment, error) {
	treatments, err := u.treatmentRepo.FindAll(u.tx.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all treatments: %+v", err)
		return nil, err
	}
	return treatments, nil
}

func (u *treatmentUsecase) UpdateTreatment(ctx context.Context, id int, form dto.TreatmentForm) (*entity.Treatment, error) {
	treatment, err := u.GetTreatment(ctx, id)
	if err != nil {
		return nil, err
	}

	values, err := u.validate(ctx, form, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.TreatmentToResponse(treatment)
	treatment.Name = values.Name
	treatment.DisciplineID = values.DisciplineID
	treatment.Length = values.Length
	treatment.Price = values.Price
	treatment.Discipline = entity.Discipline{}

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.treatmentRepo.Update(tx, treatment); err != nil {
			return err
		}

		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionTreatmentUpdate, "treatment", id, oldValue, converter.TreatmentToResponse(treatment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update treatment: %+v", err)
		return nil, u.writeError(err, treatment)
	}

	u.log.Infof("Treatment updated: id=%d", id)
	return treatment, nil
}
