// Package rule holds the checks run against create/edit submissions before
// anything is written. A rule yields at most one violation; a submission with
// any violation is rejected as a whole.
package rule

import (
	"context"
	"strings"
)

// Kind classifies a violation for dispatch. The user-facing text lives in
// Violation.Message.
type Kind string

const (
	KindEmpty            Kind = "empty"
	KindInvalidSelect    Kind = "invalid_select"
	KindInvalidFormat    Kind = "invalid_format"
	KindTooLong          Kind = "too_long"
	KindOutOfRange       Kind = "out_of_range"
	KindNegative         Kind = "negative"
	KindMissingReference Kind = "missing_reference"
	KindCollision        Kind = "collision"
	KindMismatch         Kind = "mismatch"
)

type Violation struct {
	Kind    Kind
	Field   string
	Message string
}

func (v Violation) Error() string {
	return v.Message
}

// Violations keeps the order in which rules were listed.
type Violations []Violation

// Messages returns the user-facing messages in rule order.
func (v Violations) Messages() []string {
	messages := make([]string, len(v))
	for i, violation := range v {
		messages[i] = violation.Message
	}
	return messages
}

// Has reports whether a violation of the given kind was recorded for field.
func (v Violations) Has(field string, kind Kind) bool {
	for _, violation := range v {
		if violation.Field == field && violation.Kind == kind {
			return true
		}
	}
	return false
}

// Rule inspects one aspect of a submission. It returns nil when the aspect is
// fine; the error return is reserved for lookups that could not be made.
type Rule func(ctx context.Context) (*Violation, error)

// Check runs rules in order and collects every violation. It stops at the
// first lookup failure.
func Check(ctx context.Context, rules ...Rule) (Violations, error) {
	var violations Violations
	for _, r := range rules {
		violation, err := r(ctx)
		if err != nil {
			return nil, err
		}
		if violation != nil {
			violations = append(violations, *violation)
		}
	}
	return violations, nil
}

// Lookup answers the questions rules need from the store.
type Lookup interface {
	Exists(ctx context.Context, table Table, id int) (bool, error)
	NameTaken(ctx context.Context, table Table, name string, excludeID int) (bool, error)
	OffersTreatment(ctx context.Context, staffID, treatmentID int) (bool, error)
}

// Table names a store table rules can refer to.
type Table string

const (
	TableUsers        Table = "users"
	TableStaff        Table = "staff"
	TablePatients     Table = "patients"
	TableDisciplines  Table = "disciplines"
	TableTreatments   Table = "treatments"
	TableAppointments Table = "appointments"
)

// Singular is how one record of the table is called in messages.
func (t Table) Singular() string {
	switch t {
	case TableStaff:
		return "staff member"
	case TableUsers, TablePatients, TableDisciplines, TableTreatments, TableAppointments:
		return strings.TrimSuffix(string(t), "s")
	default:
		return string(t)
	}
}

// humanize turns a form field name into message text: first_name -> first name.
func humanize(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
