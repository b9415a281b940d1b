// Package validation holds the input rules shared by registration, login and
// the task endpoints. Rules return values, never errors, so callers decide how
// to report them.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "taskhub/internal/domain/errors"
)

const (
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 8

	MsgInvalidEmail  = "Invalid email format"
	MsgShortPassword = "Password must be at least 8 characters long"
)

// Whitespace covers Unicode spaces, not just ASCII.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

var fieldLabels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"password":    "Password",
	"title":       "Title",
	"description": "Description",
}

// Result is the outcome of a single-value rule.
type Result struct {
	Valid   bool
	Message string
}

// FieldResult is the outcome of a multi-field rule. Errors holds only failing fields.
type FieldResult struct {
	Valid  bool
	Errors domainerrors.FieldErrors
}

// Email checks the local@domain.tld shape.
func Email(email string) Result {
	if !emailPattern.MatchString(email) {
		return Result{Message: MsgInvalidEmail}
	}

	return Result{Valid: true}
}

// Password enforces the minimum length.
func Password(password string) Result {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return Result{Message: MsgShortPassword}
	}

	return Result{Valid: true}
}

// Credentials runs Email and Password together.
func Credentials(email, password string) FieldResult {
	errs := domainerrors.FieldErrors{}

	if r := Email(email); !r.Valid {
		errs.Add("email", r.Message)
	}
	if r := Password(password); !r.Valid {
		errs.Add("password", r.Message)
	}

	return newFieldResult(errs)
}

// RequiredFields fails every field that is absent, null or a blank string.
func RequiredFields(body map[string]any, fields ...string) FieldResult {
	errs := domainerrors.FieldErrors{}

	for _, field := range fields {
		if isMissing(body, field) {
			errs.Add(field, fmt.Sprintf("%s is required", Label(field)))
		}
	}

	return newFieldResult(errs)
}

// Label returns the human-readable name for a request field.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}

	return field
}

// Err converts a failed result into a validation AppError. It returns nil when valid.
func (r FieldResult) Err() error {
	if r.Valid {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(r.Errors)
}

func isMissing(body map[string]any, field string) bool {
	value, ok := body[field]
	if !ok || value == nil {
		return true
	}

	if s, isString := value.(string); isString {
		return strings.TrimSpace(s) == ""
	}

	return false
}

func newFieldResult(errs domainerrors.FieldErrors) FieldResult {
	if len(errs) == 0 {
		return FieldResult{Valid: true, Errors: errs}
	}

	return FieldResult{Errors: errs}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
