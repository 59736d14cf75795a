package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"practice-scheduler/internal/domain/rule"
	"practice-scheduler/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError rejects a submission. It carries every violation found,
// in rule order, so the form can be shown again with all of them.
type ValidationError struct {
	Violations rule.Violations
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations.Messages(), " ")
}

// Messages returns the user-facing messages in rule order.
func (e *ValidationError) Messages() []string {
	return e.Violations.Messages()
}

// AsValidationError unwraps a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// check runs rules and turns any violation into a ValidationError.
func check(ctx context.Context, rules ...rule.Rule) error {
	violations, err := rule.Check(ctx, rules...)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func violationError(v *rule.Violation) error {
	return &ValidationError{Violations: rule.Violations{*v}}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// parseID reads a submitted id. Blank or non-numeric input is not an id.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// selectID checks a submitted select value: it must be an id, and a row with
// that id must exist in table.
func selectID(lookup rule.Lookup, label string, raw string, table rule.Table) (int, []rule.Rule) {
	id, ok := parseID(raw)
	return id, []rule.Rule{
		rule.When(!ok, rule.InvalidSelect(label, raw, nil)),
		rule.When(ok, rule.MissingReference(lookup, table, id)),
	}
}

// tooLong checks field against the max tag of its form struct. The columns
// behind the forms are sized to those tags.
func tooLong(failures validator.Failures, field string) rule.Rule {
	limit, exceeded := failures.Exceeded(field)
	return rule.TooLong(field, limit, !exceeded)
}

// wallClock returns the reading of t's clock in loc as a UTC time. Stored
// timestamps carry no zone; they are read and compared as UTC wall clock.
func wallClock(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), 0, time.UTC)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
