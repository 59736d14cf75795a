package usecase

import (
	"context"
	"errors"
	"time"

	"practice-scheduler/internal/domain/repository"
	"practice-scheduler/internal/domain/schedule"

	"github.com/sirupsen/logrus"
)

// ScheduleDateLayout is the date format of schedule URLs.
const ScheduleDateLayout = "2006-01-02"

var (
	ErrInvalidScheduleDate = errors.New("invalid schedule date")
)

type ScheduleUsecase interface {
	// GetSchedule builds the schedule of the calendar day containing day.
	GetSchedule(ctx context.Context, day time.Time) (*schedule.Schedule, error)
	// Today is the current date in the practice's time zone.
	Today() time.Time
}

type scheduleUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	location     *time.Location
	now          func() time.Time
}

func NewScheduleUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	location *time.Location,
) ScheduleUsecase {
	return &scheduleUsecase{
		tx:           tx,
		log:          log,
		scheduleRepo: scheduleRepo,
		location:     location,
		now:          time.Now,
	}
}

// ParseScheduleDate reads a YYYY-MM-DD date.
func ParseScheduleDate(value string) (time.Time, error) {
	day, err := time.Parse(ScheduleDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidScheduleDate
	}
	return day, nil
}

func (u *scheduleUsecase) Today() time.Time {
	return midnight(wallClock(u.now(), u.location))
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, day time.Time) (*schedule.Schedule, error) {
	day = midnight(day)
	db := u.tx.DB(ctx)

	practitioners, err := u.scheduleRepo.FindPractitioners(db, day)
	if err != nil {
		u.log.Warnf("Failed to find practitioners: %+v", err)
		return nil, err
	}

	// Nobody works without an appointment, so there is nothing more to load.
	if len(practitioners) == 0 {
		return schedule.Build(day, nil, nil), nil
	}

	appointments, err := u.scheduleRepo.FindAppointments(db, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return schedule.Build(day, practitioners, appointments), nil
}
