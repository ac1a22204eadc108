// Package validation provides the pure field validators and cross-field
// rules of the onboarding form engine. Everything here is free of UI and
// storage concerns: callers pass values in and receive results back.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// FieldKind is the semantic type of a form field. It drives a lookup
// table of validator functions instead of ad hoc string dispatch.
type FieldKind int

const (
	// KindText has no semantic rule beyond the required-field sweep.
	KindText FieldKind = iota
	KindEmail
	KindMobile
	KindName
	KindAadhar
	KindUAN
	KindPAN
	KindPincode
	KindDateOfBirth
	KindDateOfJoining
	KindYearOfPassing
	KindCGPA
	// KindDate is a plain date with no relation to today.
	KindDate
)

// DateLayout is the wire format for all form dates.
const DateLayout = "2006-01-02"

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsRe  = regexp.MustCompile(`\D`)
	nameRe    = regexp.MustCompile(`^[A-Za-z.\s'-]+$`)
	anyDigit  = regexp.MustCompile(`\d`)
	tenDigit  = regexp.MustCompile(`^[0-9]{10}$`)
	twelveDig = regexp.MustCompile(`^[0-9]{12}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	numericRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

type validatorFunc func(value string, now time.Time) types.ValidationResult

// validators maps each field kind to its predicate. Kinds absent from
// the table (plain text, plain dates) always pass.
var validators = map[FieldKind]validatorFunc{
	KindEmail:         validateEmail,
	KindMobile:        validateMobile,
	KindName:          validateName,
	KindAadhar:        validateAadhar,
	KindUAN:           validateUAN,
	KindPAN:           validatePAN,
	KindPincode:       validatePincode,
	KindDateOfBirth:   validateDateOfBirth,
	KindDateOfJoining: validateDateOfJoining,
	KindYearOfPassing: validateYearOfPassing,
	KindCGPA:          validateCGPA,
}

// Validate applies the rule for the given field kind to a value.
// Empty values pass: presence is the orchestrator's required-field
// sweep, not a per-kind concern. Validators never panic; dates that do
// not parse are treated as "skip this check".
func Validate(kind FieldKind, value string, now time.Time) types.ValidationResult {
	value = strings.TrimSpace(value)
	if value == "" {
		return types.OK()
	}
	fn, ok := validators[kind]
	if !ok {
		return types.OK()
	}
	return fn(value, now)
}

func validateEmail(value string, _ time.Time) types.ValidationResult {
	if !emailRe.MatchString(value) {
		return types.Invalid("Please enter a valid email address")
	}
	return types.OK()
}

func validateMobile(value string, _ time.Time) types.ValidationResult {
	digits := digitsRe.ReplaceAllString(value, "")
	if !tenDigit.MatchString(digits) {
		return types.Invalid("Please enter a valid 10-digit mobile number")
	}
	return types.OK()
}

func validateName(value string, _ time.Time) types.ValidationResult {
	if !nameRe.MatchString(value) || anyDigit.MatchString(value) {
		return types.Invalid("Only letters are allowed in name fields")
	}
	return types.OK()
}

func validateAadhar(value string, _ time.Time) types.ValidationResult {
	stripped := strings.Join(strings.Fields(value), "")
	if !twelveDig.MatchString(stripped) {
		return types.Invalid("Please enter a valid 12-digit Aadhar number")
	}
	return types.OK()
}

func validateUAN(value string, _ time.Time) types.ValidationResult {
	stripped := strings.Join(strings.Fields(value), "")
	if !twelveDig.MatchString(stripped) {
		return types.Invalid("Please enter a valid 12-digit UAN number")
	}
	return types.OK()
}

func validatePAN(value string, _ time.Time) types.ValidationResult {
	if !panRe.MatchString(strings.ToUpper(value)) {
		return types.Invalid("Please enter a valid PAN number")
	}
	return types.OK()
}

func validatePincode(value string, _ time.Time) types.ValidationResult {
	if !pincodeRe.MatchString(value) {
		return types.Invalid("Please enter a valid 6-digit pincode")
	}
	return types.OK()
}

func validateDateOfBirth(value string, now time.Time) types.ValidationResult {
	dob, err := time.Parse(DateLayout, value)
	if err != nil {
		return types.OK()
	}
	cutoff := truncateDay(now).AddDate(-18, 0, 0)
	if dob.After(cutoff) {
		return types.Invalid("You must be at least 18 years old")
	}
	return types.OK()
}

func validateDateOfJoining(value string, now time.Time) types.ValidationResult {
	doj, err := time.Parse(DateLayout, value)
	if err != nil {
		return types.OK()
	}
	if doj.After(truncateDay(now)) {
		return types.Invalid("Date of Joining cannot be in the future")
	}
	return types.OK()
}

func validateYearOfPassing(value string, now time.Time) types.ValidationResult {
	yop, err := time.Parse(DateLayout, value)
	if err != nil {
		return types.OK()
	}
	if yop.After(truncateDay(now)) {
		return types.Invalid("Year of Passing cannot be in the future")
	}
	return types.OK()
}

func validateCGPA(value string, _ time.Time) types.ValidationResult {
	if !numericRe.MatchString(value) {
		return types.Invalid("CGPA / % must be a valid number")
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 || n > 100 {
		return types.Invalid("CGPA / % cannot be greater than 100")
	}
	return types.OK()
}

// truncateDay zeroes the time-of-day component so comparisons are
// date-only.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
