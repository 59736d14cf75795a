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

const appointmentStartLayout = "2006-01-02 15:04"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AppointmentFormOptions are the choices offered by the appointment form.
type AppointmentFormOptions struct {
	Staff      []entity.Staff
	Patients   []entity.Patient
	Treatments []entity.Treatment
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, form dto.AppointmentForm) (*entity.Appointment, error)
	GetAppointment(ctx context.Context, id int) (*entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id int, form dto.AppointmentForm) (*entity.Appointment, error)
	// DeleteAppointment removes the appointment and returns it as it was.
	DeleteAppointment(ctx context.Context, id int) (*entity.Appointment, error)
	GetFormOptions(ctx context.Context) (*AppointmentFormOptions, error)
}

type appointmentUsecase struct {
	tx              repository.Transactor
	log             *logrus.Logger
	validator       *validator.CustomValidator
	lookup          rule.Lookup
	appointmentRepo repository.AppointmentRepository
	staffRepo       repository.StaffRepository
	patientRepo     repository.PatientRepository
	treatmentRepo   repository.TreatmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	lookup rule.Lookup,
	appointmentRepo repository.AppointmentRepository,
	staffRepo repository.StaffRepository,
	patientRepo repository.PatientRepository,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		tx:              tx,
		log:             log,
		validator:       validator,
		lookup:          lookup,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		patientRepo:     patientRepo,
		treatmentRepo:   treatmentRepo,
		auditService:    auditService,
	}
}

// validate checks an appointment form and returns the appointment it
// describes.
func (u *appointmentUsecase) validate(ctx context.Context, form dto.AppointmentForm) (*entity.Appointment, error) {
	failures, err := u.validator.Check(form)
	if err != nil {
		return nil, err
	}

	staffID, staffRules := selectID(u.lookup, "practitioner", form.PractitionerID, rule.TableStaff)
	treatmentID, treatmentRules := selectID(u.lookup, "treatment", form.TreatmentID, rule.TableTreatments)
	patientID, patientRules := selectID(u.lookup, "patient", form.PatientID, rule.TablePatients)

	// The mismatch rule names the practitioner and only makes sense for a
	// treatment that exists.
	db := u.tx.DB(ctx)
	var staff *entity.Staff
	if staffID > 0 {
		if staff, err = u.staffRepo.FindByID(db, staffID); err != nil {
			return nil, err
		}
	}
	var treatment *entity.Treatment
	if treatmentID > 0 {
		if treatment, err = u.treatmentRepo.FindByID(db, treatmentID); err != nil {
			return nil, err
		}
	}

	date := strings.TrimSpace(form.Date)
	timeOfDay := strings.TrimSpace(form.Time)

	var rules []rule.Rule
	rules = append(rules, staffRules...)
	rules = append(rules, treatmentRules...)
	rules = append(rules, patientRules...)
	rules = append(rules,
		rule.EmptyField("date", date),
		rule.When(date != "", rule.InvalidFormat("date", !failures.Failed("date", "datetime"))),
		rule.EmptyField("time", timeOfDay),
		rule.When(timeOfDay != "", rule.InvalidFormat("time", !failures.Failed("time", "datetime"))),
		rule.When(staff != nil && treatment != nil, rule.TreatmentStaffMismatch(u.lookup, staff, treatmentID)),
	)

	if err := check(ctx, rules...); err != nil {
		return nil, err
	}

	startsAt, err := time.Parse(appointmentStartLayout, date+" "+timeOfDay)
	if err != nil {
		return nil, err
	}

	return &entity.Appointment{
		StartsAt:    startsAt,
		StaffID:     staffID,
		PatientID:   patientID,
		TreatmentID: treatmentID,
	}, nil
}

// writeError maps constraint failures the rules could not see coming.
func (u *appointmentUsecase) writeError(err error, appointment *entity.Appointment) error {
	switch {
	case isForeignKeyError(err, "staff"):
		return violationError(rule.MissingReferenceViolation(rule.TableStaff, appointment.StaffID))
	case isForeignKeyError(err, "patient"):
		return violationError(rule.MissingReferenceViolation(rule.TablePatients, appointment.PatientID))
	case isForeignKeyError(err, "treatment"):
		return violationError(rule.MissingReferenceViolation(rule.TableTreatments, appointment.TreatmentID))
	}
	return err
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, form dto.AppointmentForm) (*entity.Appointment, error) {
	appointment, err := u.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, converter.AppointmentToResponse(appointment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, u.writeError(err, appointment)
	}

	u.log.Infof("Appointment created: id=%d, staff=%d", appointment.ID, appointment.StaffID)
	return appointment, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return appointment, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, form dto.AppointmentForm) (*entity.Appointment, error) {
	appointment, err := u.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	values, err := u.validate(ctx, form)
	if err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)
	values.ID = appointment.ID
	values.CreatedAt = appointment.CreatedAt

	err = u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Update(tx, values); err != nil {
			return err
		}

		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, "appointment", id, oldValue, converter.AppointmentToResponse(values)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, u.writeError(err, values)
	}

	u.log.Infof("Appointment updated: id=%d, staff=%d", id, values.StaffID)
	return values, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment *entity.Appointment
	err := u.tx.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		affectedRows, err := u.appointmentRepo.Delete(tx, id)
		if err != nil {
			u.log.Warnf("Failed delete appointment: %+v", err)
			return err
		}
		if affectedRows == 0 {
			return ErrAppointmentNotFound
		}

		if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(appointment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment deleted: id=%d", id)
	return appointment, nil
}

func (u *appointmentUsecase) GetFormOptions(ctx context.Context) (*AppointmentFormOptions, error) {
	db := u.tx.DB(ctx)

	staff, err := u.staffRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, err
	}
	patients, err := u.patientRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}
	treatments, err := u.treatmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find all treatments: %+v", err)
		return nil, err
	}

	return &AppointmentFormOptions{
		Staff:      staff,
		Patients:   patients,
		Treatments: treatments,
	}, nil
}
