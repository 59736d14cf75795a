package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

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
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, form dto.PatientForm) (*entity.Patient, error)
	GetPatient(ctx context.Context, id int) (*entity.Patient, error)
	GetPatientProfile(ctx context.Context, id int) (*entity.PatientProfile, error)
	GetAllPatients(ctx context.Context) ([]entity.Patient, error)
	UpdatePatient(ctx context.Context, id int, form dto.PatientForm) (*entity.Patient, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	validator    *validator.CustomValidator
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	location     *time.Location
	now          func() time.Time
}

func NewPatientUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	location *time.Location,
) PatientUsecase {
	return &patientUsecase{
		tx:           tx,
		log:          log,
		validator:    validator,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		location:     location,
		now:          time.Now,
	}
}

func (u *patientUsecase) validate(ctx context.Context, form dto.PatientForm) error {
	failures, err := u.validator.Check(form)
	if err != nil {
		return err
	}

	return check(ctx,
		rule.EmptyField("first_name", form.FirstName),
		tooLong(failures, "first_name"),
		rule.EmptyField("last_name", form.LastName),
		tooLong(failures, "last_name"),
		tooLong(failures, "email"),
		rule.InvalidFormat("email", !failures.Failed("email", "email")),
		tooLong(failures, "phone"),
		rule.InvalidFormat("birthday", !failures.Failed("birthday", "datetime")),
	)
}

func applyPatientForm(patient *entity.Patient, form dto.PatientForm) {
	patient.User.FirstName = strings.TrimSpace(form.FirstName)
	patient.User.LastName = strings.TrimSpace(form.LastName)
	patient.User.Email = strings.TrimSpace(form.Email)
	patient.User.Phone = strings.TrimSpace(form.Phone)

	patient.Birthday = nil
	if birthday, err := time.Parse(ScheduleDateLayout, strings.TrimSpace(form.Birthday)); err == nil {
		patient.Birthday = &birthday
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, form dto.PatientForm) (*entity.Patient, error) {
	if err := u.validate(ctx, form); err != nil {
		return nil, err
	}

	patient := &entity.Patient{}
	applyPatientForm(patient, form)

	err := u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.patientRepo.Create(tx, patient); err != nil {
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", patient.UserID, converter.PatientToResponse(patient)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%d", patient.UserID)
	return patient, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return patient, nil
}

func (u *patientUsecase) GetPatientProfile(ctx context.Context, id int) (*entity.PatientProfile, error) {
	profile, err := u.patientRepo.FindProfile(u.tx.DB(ctx), id, wallClock(u.now(), u.location))
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return profile, nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]entity.Patient, error) {
	patients, err := u.patientRepo.FindAll(u.tx.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}
	return patients, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, form dto.PatientForm) (*entity.Patient, error) {
	patient, err := u.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.validate(ctx, form); err != nil {
		return nil, err
	}

	oldValue := converter.PatientToResponse(patient)
	applyPatientForm(patient, form)

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.patientRepo.Update(tx, patient); err != nil {
			return err
		}

		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "patient", id, oldValue, converter.PatientToResponse(patient)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient updated: id=%d", id)
	return patient, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	return u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		// Get patient for audit log before delete
		patient, err := u.patientRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		affectedRows, err := u.userRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed delete patient: %+v", err)
			return err
		}
		if affectedRows == 0 {
			return ErrPatientNotFound
		}

		if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}

		u.log.Infof("Patient deleted: id=%d", id)
		return nil
	})
}
