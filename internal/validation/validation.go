// Package validation checks project form input before it reaches the store.
//
// The store trusts its inputs; this package is the gate in front of it.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Default limits for project form fields.
const (
	DefaultDescriptionMin = 5
	DefaultDescriptionMax = 100
	DefaultPeopleMin      = 1
	DefaultPeopleMax      = 10
)

// Rule describes the constraints on one form field.
//
// Length bounds apply to string values and count runes. Min and Max apply
// to integer values. Nil bounds are not checked.
type Rule struct {
	Field     string
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

// FieldError is a single failed field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// FieldErrors collects every failed field of one submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidInput) true for any FieldErrors.
func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// CheckString validates a string value against r.
// It returns the failures in a stable order: required, min, max.
func (r Rule) CheckString(value string) []FieldError {
	var errs []FieldError
	if r.Required && strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: r.Field, Reason: "is required"})
	}
	n := utf8.RuneCountInString(value)
	if r.MinLength != nil && n < *r.MinLength {
		errs = append(errs, FieldError{Field: r.Field, Reason: fmt.Sprintf("must be at least %d characters, got %d", *r.MinLength, n)})
	}
	if r.MaxLength != nil && n > *r.MaxLength {
		errs = append(errs, FieldError{Field: r.Field, Reason: fmt.Sprintf("must be at most %d characters, got %d", *r.MaxLength, n)})
	}
	return errs
}

// CheckInt validates an integer value against r.
func (r Rule) CheckInt(value int) []FieldError {
	var errs []FieldError
	if r.Min != nil && value < *r.Min {
		errs = append(errs, FieldError{Field: r.Field, Reason: fmt.Sprintf("must be at least %d, got %d", *r.Min, value)})
	}
	if r.Max != nil && value > *r.Max {
		errs = append(errs, FieldError{Field: r.Field, Reason: fmt.Sprintf("must be at most %d, got %d", *r.Max, value)})
	}
	return errs
}

// Limits are the configurable bounds of the project form.
type Limits struct {
	DescriptionMin int
	DescriptionMax int
	PeopleMin      int
	PeopleMax      int
}

// DefaultLimits returns the standard form limits: a description of 5 to
// 100 characters and 1 to 10 people.
func DefaultLimits() Limits {
	return Limits{
		DescriptionMin: DefaultDescriptionMin,
		DescriptionMax: DefaultDescriptionMax,
		PeopleMin:      DefaultPeopleMin,
		PeopleMax:      DefaultPeopleMax,
	}
}

// Validate checks that the limits are usable.
func (l Limits) Validate() error {
	if l.DescriptionMin < 0 {
		return fmt.Errorf("description minimum cannot be negative, got %d", l.DescriptionMin)
	}
	if l.DescriptionMax < l.DescriptionMin {
		return fmt.Errorf("description maximum (%d) is below minimum (%d)", l.DescriptionMax, l.DescriptionMin)
	}
	if l.PeopleMin < 1 {
		return fmt.Errorf("people minimum must be at least 1, got %d", l.PeopleMin)
	}
	if l.PeopleMax < l.PeopleMin {
		return fmt.Errorf("people maximum (%d) is below minimum (%d)", l.PeopleMax, l.PeopleMin)
	}
	return nil
}

// Rules returns the title, description and people rules for these limits.
func (l Limits) Rules() (title, description, people Rule) {
	title = Rule{Field: "title", Required: true}
	description = Rule{
		Field:     "description",
		Required:  true,
		MinLength: &l.DescriptionMin,
		MaxLength: &l.DescriptionMax,
	}
	people = Rule{
		Field:    "people",
		Required: true,
		Min:      &l.PeopleMin,
		Max:      &l.PeopleMax,
	}
	return title, description, people
}

// ValidateProject checks a complete project submission.
//
// It returns nil or a [FieldErrors] listing every failing field.
func ValidateProject(title, description string, people int, limits Limits) error {
	titleRule, descRule, peopleRule := limits.Rules()

	var errs FieldErrors
	errs = append(errs, titleRule.CheckString(title)...)
	errs = append(errs, descRule.CheckString(description)...)
	errs = append(errs, peopleRule.CheckInt(people)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsePeople converts the raw people field into a number.
func ParsePeople(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, FieldErrors{{Field: "people", Reason: "is required"}}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, FieldErrors{{Field: "people", Reason: fmt.Sprintf("must be a whole number, got %q", raw)}}
	}
	return n, nil
}
