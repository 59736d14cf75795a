package http

import (
	"context"
	"sync"
	"time"

	"practice-scheduler/internal/delivery/dto"
	"practice-scheduler/internal/domain/entity"
	"practice-scheduler/internal/domain/schedule"
	"practice-scheduler/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// memoryFlash keeps flash messages in a map instead of Redis.
type memoryFlash struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMemoryFlash() *memoryFlash {
	return &memoryFlash{messages: make(map[string][]string)}
}

func (f *memoryFlash) Add(ctx context.Context, sessionID string, messages ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[sessionID] = append(f.messages[sessionID], messages...)
	return nil
}

func (f *memoryFlash) Pop(ctx context.Context, sessionID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	messages := f.messages[sessionID]
	delete(f.messages, sessionID)
	return messages, nil
}

type mockScheduleUsecase struct {
	mock.Mock
}

func (m *mockScheduleUsecase) GetSchedule(ctx context.Context, day time.Time) (*schedule.Schedule, error) {
	args := m.Called(day)
	s, _ := args.Get(0).(*schedule.Schedule)
	return s, args.Error(1)
}

func (m *mockScheduleUsecase) Today() time.Time {
	return m.Called().Get(0).(time.Time)
}

type mockStaffUsecase struct {
	mock.Mock
}

func (m *mockStaffUsecase) CreateStaff(ctx context.Context, form dto.StaffForm) (*entity.Staff, error) {
	args := m.Called(form)
	staff, _ := args.Get(0).(*entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffUsecase) GetStaff(ctx context.Context, id int) (*entity.Staff, error) {
	args := m.Called(id)
	staff, _ := args.Get(0).(*entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffUsecase) GetStaffProfile(ctx context.Context, id int) (*entity.StaffProfile, error) {
	args := m.Called(id)
	profile, _ := args.Get(0).(*entity.StaffProfile)
	return profile, args.Error(1)
}

func (m *mockStaffUsecase) GetAllStaff(ctx context.Context) ([]entity.Staff, error) {
	args := m.Called()
	staff, _ := args.Get(0).([]entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffUsecase) UpdateStaff(ctx context.Context, id int, form dto.StaffForm) (*entity.Staff, error) {
	args := m.Called(id, form)
	staff, _ := args.Get(0).(*entity.Staff)
	return staff, args.Error(1)
}

func (m *mockStaffUsecase) DeleteStaff(ctx context.Context, id int) error {
	return m.Called(id).Error(0)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, form dto.PatientForm) (*entity.Patient, error) {
	args := m.Called(form)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id int) (*entity.Patient, error) {
	args := m.Called(id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientUsecase) GetPatientProfile(ctx context.Context, id int) (*entity.PatientProfile, error) {
	args := m.Called(id)
	profile, _ := args.Get(0).(*entity.PatientProfile)
	return profile, args.Error(1)
}

func (m *mockPatientUsecase) GetAllPatients(ctx context.Context) ([]entity.Patient, error) {
	args := m.Called()
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, id int, form dto.PatientForm) (*entity.Patient, error) {
	args := m.Called(id, form)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, id int) error {
	return m.Called(id).Error(0)
}

type mockDisciplineUsecase struct {
	mock.Mock
}

func (m *mockDisciplineUsecase) CreateDiscipline(ctx context.Context, form dto.DisciplineForm) (*entity.Discipline, error) {
	args := m.Called(form)
	discipline, _ := args.Get(0).(*entity.Discipline)
	return discipline, args.Error(1)
}

func (m *mockDisciplineUsecase) GetDiscipline(ctx context.Context, id int) (*entity.Discipline, error) {
	args := m.Called(id)
	discipline, _ := args.Get(0).(*entity.Discipline)
	return discipline, args.Error(1)
}

func (m *mockDisciplineUsecase) GetAllDisciplines(ctx context.Context) ([]entity.Discipline, error) {
	args := m.Called()
	disciplines, _ := args.Get(0).([]entity.Discipline)
	return disciplines, args.Error(1)
}

func (m *mockDisciplineUsecase) UpdateDiscipline(ctx context.Context, id int, form dto.DisciplineForm) (*entity.Discipline, error) {
	args := m.Called(id, form)
	discipline, _ := args.Get(0).(*entity.Discipline)
	return discipline, args.Error(1)
}

type mockTreatmentUsecase struct {
	mock.Mock
}

func (m *mockTreatmentUsecase) CreateTreatment(ctx context.Context, form dto.TreatmentForm) (*entity.Treatment, error) {
	args := m.Called(form)
	treatment, _ := args.Get(0).(*entity.Treatment)
	return treatment, args.Error(1)
}

func (m *mockTreatmentUsecase) GetTreatment(ctx context.Context, id int) (*entity.Treatment, error) {
	args := m.Called(id)
	treatment, _ := args.Get(0).(*entity.Treatment)
	return treatment, args.Error(1)
}

func (m *mockTreatmentUsecase) GetAllTreatments(ctx context.Context) ([]entity.Treatment, error) {
	args := m.Called()
	treatments, _ := args.Get(0).([]entity.Treatment)
	return treatments, args.Error(1)
}

func (m *mockTreatmentUsecase) UpdateTreatment(ctx context.Context, id int, form dto.TreatmentForm) (*entity.Treatment, error) {
	args := m.Called(id, form)
	treatment, _ := args.Get(0).(*entity.Treatment)
	return treatment, args.Error(1)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, form dto.AppointmentForm) (*entity.Appointment, error) {
	args := m.Called(form)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	args := m.Called(id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int, form dto.AppointmentForm) (*entity.Appointment, error) {
	args := m.Called(id, form)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	args := m.Called(id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentUsecase) GetFormOptions(ctx context.Context) (*usecase.AppointmentFormOptions, error) {
	args := m.Called()
	options, _ := args.Get(0).(*usecase.AppointmentFormOptions)
	return options, args.Error(1)
}

type mockAuditLogUsecase struct {
	mock.Mock
}

func (m *mockAuditLogUsecase) GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	args := m.Called()
	list, _ := args.Get(0).(*dto.AuditLogListResponse)
	return list, args.Error(1)
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(id)
	log, _ := args.Get(0).(*dto.AuditLogResponse)
	return log, args.Error(1)
}
