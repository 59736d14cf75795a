package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"practice-scheduler/internal/domain/rule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestLookupRepository_Exists(t *testing.T) {
	db, mock := setupTestDB(t)
	lookup := NewLookupRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "staff" WHERE user_id = $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "treatments" WHERE id = $1`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := lookup.Exists(context.Background(), rule.TableStaff, 10)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = lookup.Exists(context.Background(), rule.TableTreatments, 99)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepository_Exists_UnknownTable(t *testing.T) {
	db, _ := setupTestDB(t)

	_, err := NewLookupRepository(db).Exists(context.Background(), rule.Table("rooms"), 1)
	assert.Error(t, err)
}

func TestLookupRepository_NameTaken_ExcludesOwnID(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "disciplines" WHERE name = $1 AND id <> $2`)).
		WithArgs("Physiotherapy", 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := NewLookupRepository(db).NameTaken(context.Background(), rule.TableDisciplines, "Physiotherapy", 1)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepository_NameTaken_RejectsTableWithoutName(t *testing.T) {
	db, _ := setupTestDB(t)

	_, err := NewLookupRepository(db).NameTaken(context.Background(), rule.TableStaff, "Annie", 0)
	assert.Error(t, err)
}

func TestLookupRepository_OffersTreatment(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectQuery(`JOIN staff_disciplines ON staff_disciplines.discipline_id = treatments.discipline_id`).
		WithArgs(100, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	offers, err := NewLookupRepository(db).OffersTreatment(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.True(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepository_ReplaceDisciplines_Clear(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "staff_disciplines" WHERE staff_id = $1`)).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewStaffRepository().ReplaceDisciplines(db, 10, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_FindAppointments(t *testing.T) {
	db, mock := setupTestDB(t)
	day := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 10, 8, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM "appointments"`).
		WithArgs(day, day.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "staff_id", "patient_first_name", "patient_last_name",
			"treatment_name", "treatment_length", "starts_at",
		}).AddRow(1, 10, "Hugo", "Ma", "PT - Initial", 45, start))

	rows, err := NewScheduleRepository().FindAppointments(db, day)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hugo Ma", rows[0].PatientName)
	assert.Equal(t, "10:00AM - Hugo Ma - PT - Initial", rows[0].Label())
	assert.Equal(t, 45, rows[0].TreatmentLength)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_FindPractitioners_EmptyDay(t *testing.T) {
	db, mock := setupTestDB(t)
	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM "staff"`).
		WillReturnRows(sqlmock.NewRows([]string{"staff_id", "first_name", "last_name"}))

	rows, err := NewScheduleRepository().FindPractitioners(db, day)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_FindPractitioners_GroupsAndOrders(t *testing.T) {
	db, mock := setupTestDB(t)
	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM "staff"`).
		WillReturnRows(sqlmock.NewRows([]string{"staff_id", "first_name", "last_name"}).
			AddRow(10, "Zed", "A").
			AddRow(11, "Bob", "B").
			AddRow(12, "Annie", "Hu"))
	mock.ExpectQuery(`FROM "staff_disciplines"`).
		WithArgs(10, 11, 12).
		WillReturnRows(sqlmock.NewRows([]string{"staff_id", "discipline_id", "name"}).
			AddRow(10, 1, "Physiotherapy").
			AddRow(11, 1, "Physiotherapy").
			AddRow(12, 1, "Physiotherapy").
			AddRow(10, 3, "Chiropractic"))

	rows, err := NewScheduleRepository().FindPractitioners(db, day)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	type got struct {
		name  string
		key   string
		group string
	}
	var gots []got
	for _, row := range rows {
		gots = append(gots, got{row.Name(), string(row.Group.Key), row.Group.Name})
	}
	assert.Equal(t, []got{
		{"Annie Hu", "1", "Physiotherapy"},
		{"Bob B", "1", "Physiotherapy"},
		{"Zed A", "1,3", "Physiotherapy/Chiropractic"},
	}, gots)
	assert.NoError(t, mock.ExpectationsWereMet())
}
