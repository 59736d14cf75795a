package rule

import (
	"context"
	"fmt"
	"strings"

	"practice-scheduler/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const negativePriceMessage = "Please enter a price of zero or more."

func violation(kind Kind, field, message string) *Violation {
	return &Violation{Kind: kind, Field: field, Message: message}
}

// EmptyField fails when value is blank after trimming.
func EmptyField(label, value string) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if strings.TrimSpace(value) != "" {
			return nil, nil
		}
		return violation(KindEmpty, label, fmt.Sprintf("Please enter a %s.", humanize(label))), nil
	}
}

// InvalidSelect fails unless value, compared as text, is one of allowed.
func InvalidSelect[T any](label string, value T, allowed []T) Rule {
	return func(ctx context.Context) (*Violation, error) {
		v := fmt.Sprint(value)
		for _, a := range allowed {
			if fmt.Sprint(a) == v {
				return nil, nil
			}
		}
		return violation(KindInvalidSelect, label, fmt.Sprintf("Please select a valid %s.", humanize(label))), nil
	}
}

// InvalidFormat fails when valid is false. The format itself is checked by
// the caller (struct tags, parsers).
func InvalidFormat(label string, valid bool) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if valid {
			return nil, nil
		}
		return violation(KindInvalidFormat, label, fmt.Sprintf("Please enter a valid %s.", humanize(label))), nil
	}
}

// TooLong fails unless the value fits in max characters. Like InvalidFormat
// the length is measured by the caller.
func TooLong(label string, max int, fits bool) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if fits {
			return nil, nil
		}
		return violation(KindTooLong, label,
			fmt.Sprintf("Please keep the %s to at most %d characters.", humanize(label), max)), nil
	}
}

// PriceAbove fails for prices greater than max.
func PriceAbove(price, max decimal.Decimal) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if !price.GreaterThan(max) {
			return nil, nil
		}
		return violation(KindOutOfRange, "price",
			fmt.Sprintf("Please enter a price of at most %s.", max.StringFixed(2))), nil
	}
}

// NegativePrice fails for prices below zero.
func NegativePrice(price decimal.Decimal) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if !price.IsNegative() {
			return nil, nil
		}
		return violation(KindNegative, "price", negativePriceMessage), nil
	}
}

// MissingReference fails when table has no row with id.
func MissingReference(lookup Lookup, table Table, id int) Rule {
	return func(ctx context.Context) (*Violation, error) {
		exists, err := lookup.Exists(ctx, table, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, nil
		}
		return MissingReferenceViolation(table, id), nil
	}
}

// MissingReferenceViolation is what MissingReference reports. Writers use it
// when a foreign key rejects a row the rule let through.
func MissingReferenceViolation(table Table, id int) *Violation {
	return violation(KindMissingReference, string(table),
		fmt.Sprintf("No %s with that ID (%d) was found.", table.Singular(), id))
}

// NameCollision fails when another row of table, other than excludeID, is
// already called name. Pass 0 as excludeID on create.
func NameCollision(lookup Lookup, table Table, name string, excludeID int) Rule {
	return func(ctx context.Context) (*Violation, error) {
		taken, err := lookup.NameTaken(ctx, table, name, excludeID)
		if err != nil {
			return nil, err
		}
		if !taken {
			return nil, nil
		}
		return CollisionViolation(table, name), nil
	}
}

// CollisionViolation is what NameCollision reports. Writers use it when a
// unique index rejects a name the rule let through.
func CollisionViolation(table Table, name string) *Violation {
	return violation(KindCollision, "name",
		fmt.Sprintf("Another %s named %s already exists.", table.Singular(), name))
}

// TreatmentStaffMismatch fails unless one of staff's disciplines owns the treatment.
func TreatmentStaffMismatch(lookup Lookup, staff *entity.Staff, treatmentID int) Rule {
	return func(ctx context.Context) (*Violation, error) {
		offers, err := lookup.OffersTreatment(ctx, staff.UserID, treatmentID)
		if err != nil {
			return nil, err
		}
		if offers {
			return nil, nil
		}
		return violation(KindMismatch, "treatment_id",
			fmt.Sprintf("%s does not offer the selected treatment.", staff.FullName())), nil
	}
}

// When runs r only if cond holds. Used to skip checks that depend on an
// earlier field being usable.
func When(cond bool, r Rule) Rule {
	return func(ctx context.Context) (*Violation, error) {
		if !cond {
			return nil, nil
		}
		return r(ctx)
	}
}
