package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their form name so results line up with form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

// FieldError is one failed struct tag, keyed by form name.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Failures lists the failed tags in field declaration order. A field reports
// at most one failure: the first of its tags that did not hold.
type Failures []FieldError

// Failed reports whether field failed the given tag.
func (f Failures) Failed(field, tag string) bool {
	for _, e := range f {
		if e.Field == field && e.Tag == tag {
			return true
		}
	}
	return false
}

// Exceeded returns the limit of a failed max tag on field.
func (f Failures) Exceeded(field string) (int, bool) {
	for _, e := range f {
		if e.Field == field && e.Tag == "max" {
			limit, err := strconv.Atoi(e.Param)
			return limit, err == nil
		}
	}
	return 0, false
}

// Check validates i and collects its tag failures. A non-validation error
// (e.g. i is not a struct) is returned as is.
func (cv *CustomValidator) Check(i interface{}) (Failures, error) {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	failures := make(Failures, len(validationErrors))
	for i, e := range validationErrors {
		failures[i] = FieldError{Field: e.Field(), Tag: e.Tag(), Param: e.Param()}
	}
	return failures, nil
}
