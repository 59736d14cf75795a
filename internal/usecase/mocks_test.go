package usecase

import (
	"context"
	"io"
	"time"

	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/internal/domain/schedule"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeTransactor runs fn right away. Repositories are mocked, so the
// handle they receive is nil.
type fakeTransactor struct{}

func (fakeTransactor) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (fakeTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) Exists(ctx context.Context, table rule.Table, id int) (bool, error) {
	args := m.Called(table, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockLookup) NameTaken(ctx context.Context, table rule.Table, name string, excludeID int) (bool, error) {
	args := m.Called(table, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLookup) OffersTreatment(ctx context.Context, staffID, treatmentID int) (bool, error) {
	args := m.Called(staffID, treatmentID)
	return args.Bool(0), args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error {
	return m.Called(action, entityName, entityID).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return m.Called(action, entityName, entityID).Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue interface{}) error {
	return m.Called(action, entityName, entityID).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) Create(db *gorm.DB, staff *entity.Staff) error {
	return m.Called(staff).Error(0)
}

func (m *mockStaffRepository) FindByID(db *gorm.DB, id int) (*entity.Staff, error) {
	args := m.Called(id)
	staff, _ := args.Get(0).(*entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffRepository) FindAll(db *gorm.DB) ([]entity.Staff, error) {
	args := m.Called()
	staff, _ := args.Get(0).([]entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffRepository) Update(db *gorm.DB, staff *entity.Staff) error {
	return m.Called(staff).Error(0)
}

func (m *mockStaffRepository) ReplaceDisciplines(db *gorm.DB, staffID int, disciplineIDs []int) error {
	return m.Called(staffID, disciplineIDs).Error(0)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return m.Called(patient).Error(0)
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	args := m.Called()
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return m.Called(patient).Error(0)
}

func (m *mockPatientRepository) FindProfile(db *gorm.DB, id int, now time.Time) (*entity.PatientProfile, error) {
	args := m.Called(id, now)
	profile, _ := args.Get(0).(*entity.PatientProfile)
	return profile, args.Error(1)
}

type mockDisciplineRepository struct {
	mock.Mock
}

func (m *mockDisciplineRepository) Create(db *gorm.DB, discipline *entity.Discipline) error {
	return m.Called(discipline).Error(0)
}

func (m *mockDisciplineRepository) FindByID(db *gorm.DB, id int) (*entity.Discipline, error) {
	args := m.Called(id)
	discipline, _ := args.Get(0).(*entity.Discipline)
	return discipline, args.Error(1)
}

func (m *mockDisciplineRepository) FindAll(db *gorm.DB) ([]entity.Discipline, error) {
	args := m.Called()
	disciplines, _ := args.Get(0).([]entity.Discipline)
	return disciplines, args.Error(1)
}

func (m *mockDisciplineRepository) Update(db *gorm.DB, discipline *entity.Discipline) error {
	return m.Called(discipline).Error(0)
}

type mockTreatmentRepository struct {
	mock.Mock
}

func (m *mockTreatmentRepository) Create(db *gorm.DB, treatment *entity.Treatment) error {
	return m.Called(treatment).Error(0)
}

func (m *mockTreatmentRepository) FindByID(db *gorm.DB, id int) (*entity.Treatment, error) {
	args := m.Called(id)
	treatment, _ := args.Get(0).(*entity.Treatment)
	return treatment, args.Error(1)
}

func (m *mockTreatmentRepository) FindAll(db *gorm.DB) ([]entity.Treatment, error) {
	args := m.Called()
	treatments, _ := args.Get(0).([]entity.Treatment)
	return treatments, args.Error(1)
}

func (m *mockTreatmentRepository) FindByDisciplineIDs(db *gorm.DB, disciplineIDs []int) ([]entity.Treatment, error) {
	args := m.Called(disciplineIDs)
	treatments, _ := args.Get(0).([]entity.Treatment)
	return treatments, args.Error(1)
}

func (m *mockTreatmentRepository) Update(db *gorm.DB, treatment *entity.Treatment) error {
	return m.Called(treatment).Error(0)
}

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(appointment).Error(0)
}

func (m *mockAppointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(appointment).Error(0)
}

func (m *mockAppointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type mockScheduleRepository struct {
	mock.Mock
}

func (m *mockScheduleRepository) FindPractitioners(db *gorm.DB, day time.Time) ([]schedule.PractitionerRow, error) {
	args := m.Called(day)
	rows, _ := args.Get(0).([]schedule.PractitionerRow)
	return rows, args.Error(1)
}

func (m *mockScheduleRepository) FindAppointments(db *gorm.DB, day time.Time) ([]schedule.AppointmentRow, error) {
	args := m.Called(day)
	rows, _ := args.Get(0).([]schedule.AppointmentRow)
	return rows, args.Error(1)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(log).Error(0)
}

func (m *mockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	args := m.Called()
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

func (m *mockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}
