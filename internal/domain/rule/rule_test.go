package rule

import (
	"context"
	"errors"
	"testing"

	"practice-scheduler/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	rows   map[Table]map[int]string
	offers map[[2]int]bool
	err    error
}

func (f *fakeLookup) Exists(ctx context.Context, table Table, id int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.rows[table][id]
	return ok, nil
}

func (f *fakeLookup) NameTaken(ctx context.Context, table Table, name string, excludeID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for id, n := range f.rows[table] {
		if n == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLookup) OffersTreatment(ctx context.Context, staffID, treatmentID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.offers[[2]int{staffID, treatmentID}], nil
}

func newLookup() *fakeLookup {
	return &fakeLookup{
		rows: map[Table]map[int]string{
			TableDisciplines: {1: "Physiotherapy", 2: "Massage"},
			TableStaff:       {10: "Annie Hu"},
		},
		offers: map[[2]int]bool{{10, 100}: true},
	}
}

func run(t *testing.T, r Rule) *Violation {
	t.Helper()
	v, err := r(context.Background())
	require.NoError(t, err)
	return v
}

func TestEmptyField(t *testing.T) {
	assert.Nil(t, run(t, EmptyField("first_name", "Annie")))

	v := run(t, EmptyField("first_name", "   "))
	require.NotNil(t, v)
	assert.Equal(t, KindEmpty, v.Kind)
	assert.Equal(t, "first_name", v.Field)
	assert.Equal(t, "Please enter a first name.", v.Message)
}

func TestInvalidSelect(t *testing.T) {
	lengths := []int{5, 10, 15}

	assert.Nil(t, run(t, InvalidSelect("length", 10, lengths)))
	assert.Nil(t, run(t, InvalidSelect("discipline", "2", []string{"1", "2"})))

	v := run(t, InvalidSelect("length", 12, lengths))
	require.NotNil(t, v)
	assert.Equal(t, KindInvalidSelect, v.Kind)
	assert.Equal(t, "Please select a valid length.", v.Message)
}

func TestInvalidFormat(t *testing.T) {
	assert.Nil(t, run(t, InvalidFormat("email", true)))
	assert.Equal(t, "Please enter a valid email.", run(t, InvalidFormat("email", false)).Message)
}

func TestNegativePrice(t *testing.T) {
	assert.Nil(t, run(t, NegativePrice(decimal.Zero)))
	assert.Nil(t, run(t, NegativePrice(decimal.RequireFromString("100.00"))))

	v := run(t, NegativePrice(decimal.RequireFromString("-0.01")))
	require.NotNil(t, v)
	assert.Equal(t, KindNegative, v.Kind)
}

func TestMissingReference(t *testing.T) {
	lookup := newLookup()

	assert.Nil(t, run(t, MissingReference(lookup, TableStaff, 10)))

	v := run(t, MissingReference(lookup, TableStaff, 11))
	require.NotNil(t, v)
	assert.Equal(t, "No staff member with that ID (11) was found.", v.Message)

	v = run(t, MissingReference(lookup, TablePatients, 3))
	require.NotNil(t, v)
	assert.Equal(t, "No patient with that ID (3) was found.", v.Message)
}

func TestNameCollision(t *testing.T) {
	lookup := newLookup()

	v := run(t, NameCollision(lookup, TableDisciplines, "Massage", 0))
	require.NotNil(t, v)
	assert.Equal(t, KindCollision, v.Kind)
	assert.Equal(t, "Another discipline named Massage already exists.", v.Message)

	// Keeping its own name on edit is not a collision.
	assert.Nil(t, run(t, NameCollision(lookup, TableDisciplines, "Massage", 2)))
	// Case-sensitive match.
	assert.Nil(t, run(t, NameCollision(lookup, TableDisciplines, "massage", 0)))
}

func TestTreatmentStaffMismatch(t *testing.T) {
	lookup := newLookup()
	staff := &entity.Staff{UserID: 10, User: entity.User{ID: 10, Person: entity.Person{FirstName: "Annie", LastName: "Hu"}}}

	assert.Nil(t, run(t, TreatmentStaffMismatch(lookup, staff, 100)))

	v := run(t, TreatmentStaffMismatch(lookup, staff, 200))
	require.NotNil(t, v)
	assert.Equal(t, KindMismatch, v.Kind)
	assert.Equal(t, "Annie Hu does not offer the selected treatment.", v.Message)
}

func TestCheck_KeepsRuleOrder(t *testing.T) {
	violations, err := Check(context.Background(),
		EmptyField("first_name", ""),
		EmptyField("email_ok", "x"),
		EmptyField("last_name", ""),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Please enter a first name.", "Please enter a last name."}, violations.Messages())
	assert.True(t, violations.Has("last_name", KindEmpty))
	assert.False(t, violations.Has("email_ok", KindEmpty))
}

func TestCheck_NoViolations(t *testing.T) {
	violations, err := Check(context.Background(), EmptyField("name", "Physiotherapy"))

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheck_StopsOnLookupError(t *testing.T) {
	lookup := newLookup()
	lookup.err = errors.New("connection refused")

	_, err := Check(context.Background(),
		EmptyField("name", ""),
		MissingReference(lookup, TableStaff, 10),
	)

	assert.EqualError(t, err, "connection refused")
}

func TestWhen(t *testing.T) {
	assert.Nil(t, run(t, When(false, EmptyField("name", ""))))
	assert.NotNil(t, run(t, When(true, EmptyField("name", ""))))
}

func TestTable_Singular(t *testing.T) {
	assert.Equal(t, "staff member", TableStaff.Singular())
	assert.Equal(t, "patient", TablePatients.Singular())
	assert.Equal(t, "discipline", TableDisciplines.Singular())
	assert.Equal(t, "treatment", TableTreatments.Singular())
	assert.Equal(t, "appointment", TableAppointments.Singular())
}

func TestTooLong(t *testing.T) {
	assert.Nil(t, run(t, TooLong("first_name", 100, true)))

	v := run(t, TooLong("first_name", 100, false))
	require.NotNil(t, v)
	assert.Equal(t, KindTooLong, v.Kind)
	assert.Equal(t, "first_name", v.Field)
	assert.Equal(t, "Please keep the first name to at most 100 characters.", v.Message)
}

func TestPriceAbove(t *testing.T) {
	max := decimal.RequireFromString("99999999.99")

	assert.Nil(t, run(t, PriceAbove(max, max)))
	assert.Nil(t, run(t, PriceAbove(decimal.Zero, max)))

	v := run(t, PriceAbove(decimal.RequireFromString("100000000"), max))
	require.NotNil(t, v)
	assert.Equal(t, KindOutOfRange, v.Kind)
	assert.Equal(t, "Please enter a price of at most 99999999.99.", v.Message)
}
