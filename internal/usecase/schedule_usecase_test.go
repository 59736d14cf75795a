package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"practice-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduleUsecase(repo *mockScheduleRepository) *scheduleUsecase {
	return NewScheduleUsecase(fakeTransactor{}, quietLogger(), repo, time.UTC).(*scheduleUsecase)
}

func TestScheduleUsecase_GetSchedule(t *testing.T) {
	repo := new(mockScheduleRepository)
	u := newScheduleUsecase(repo)
	day := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)
	physio := schedule.GroupFor(schedule.DisciplineRef{ID: 1, Name: "Physiotherapy"})

	repo.On("FindPractitioners", day).Return([]schedule.PractitionerRow{
		{StaffID: 10, FirstName: "Annie", LastName: "Hu", Group: physio},
	}, nil)
	repo.On("FindAppointments", day).Return([]schedule.AppointmentRow{
		{ID: 1, StaffID: 10, PatientName: "Hugo Ma", TreatmentName: "PT - Initial", TreatmentLength: 45, StartsAt: day.Add(10 * time.Hour)},
	}, nil)

	s, err := u.GetSchedule(context.Background(), day.Add(15*time.Hour))

	require.NoError(t, err)
	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Physiotherapy", s.Groups[0].Name)
	annie, ok := s.Groups[0].Practitioner(10)
	require.True(t, ok)
	assert.Equal(t, "Annie Hu", annie.Name)
	require.Len(t, annie.Appointments, 1)
	assert.Equal(t, "10:00AM - Hugo Ma - PT - Initial", annie.Appointments[0].Label())
	repo.AssertExpectations(t)
}

func TestScheduleUsecase_GetSchedule_EmptyDay(t *testing.T) {
	repo := new(mockScheduleRepository)
	u := newScheduleUsecase(repo)
	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	repo.On("FindPractitioners", day).Return([]schedule.PractitionerRow{}, nil)

	s, err := u.GetSchedule(context.Background(), day)

	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, day, s.Date)
	repo.AssertNotCalled(t, "FindAppointments", mock.Anything)
}

func TestScheduleUsecase_GetSchedule_RepositoryError(t *testing.T) {
	repo := new(mockScheduleRepository)
	u := newScheduleUsecase(repo)
	day := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)

	repo.On("FindPractitioners", day).Return(nil, errors.New("connection refused"))

	_, err := u.GetSchedule(context.Background(), day)

	assert.EqualError(t, err, "connection refused")
}

func TestScheduleUsecase_Today(t *testing.T) {
	auckland, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	u := NewScheduleUsecase(fakeTransactor{}, quietLogger(), new(mockScheduleRepository), auckland).(*scheduleUsecase)
	// 20:00 UTC on 7 October is already 8 October in Auckland.
	u.now = func() time.Time { return time.Date(2024, 10, 7, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC), u.Today())
}

func TestParseScheduleDate(t *testing.T) {
	day, err := ParseScheduleDate("2024-10-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "2024-13-01", "08/10/2024", "today"} {
		_, err := ParseScheduleDate(bad)
		assert.ErrorIs(t, err, ErrInvalidScheduleDate, bad)
	}
}
