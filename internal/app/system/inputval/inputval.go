// Package inputval provides form input validation using waffle/pantry/validate.
//
// This package wraps pantry/validate to provide a convenient interface for
// validating HTTP form inputs with struct tags. Define an input struct with
// validate tags, populate it from form values, and call Validate to get
// user-friendly error messages.
//
// Example:
//
//	type ContactInput struct {
//	    Name  string `validate:"required" label:"Name"`
//	    Email string `validate:"required,email" label:"Email"`
//	}
//
//	input := ContactInput{
//	    Name:  r.FormValue("name"),
//	    Email: r.FormValue("email"),
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//	    // result.First() gives the first error message for display
//	    renderWithError(w, r, result.First())
//	    return
//	}
package inputval

import (
	"net/mail"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/validate"
)

// Result holds validation results with user-friendly messages.
type Result struct {
	Errors []FieldError
}

// FieldError represents a validation error for a single field.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or empty string if no errors.
func (r *Result) First() string {
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return ""
}

// All returns all error messages joined with "; ".
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// sharedValidator is a singleton; pantry validators are safe for concurrent use.
var (
	sharedValidator *validate.Validator
	validatorOnce   sync.Once
)

func getValidator() *validate.Validator {
	validatorOnce.Do(func() {
		sharedValidator = validate.New(validate.WithStopOnFirstError())
	})
	return sharedValidator
}

// Validate validates a struct and returns a Result with user-friendly errors.
// The struct should have `validate` tags for rules and optional `label` tags
// for user-friendly field names.
//
// Supported validation rules (from pantry/validate):
//   - required: field must not be empty
//   - email: field must be a valid email address
//   - oneof=a b c: field must be one of the specified values
//   - min=N: string length or numeric value must be >= N
//   - max=N: string length or numeric value must be <= N
func Validate(s any) *Result {
	result := &Result{}

	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return result
	}

	// Get field labels from struct tags
	labels := getFieldLabels(s)

	if errs, ok := err.(validate.Errors); ok {
		for _, e := range errs {
			label := labels[e.Field]
			if label == "" {
				label = e.Field
			}

			msg := formatMessage(label, e.Rule, e.Param)
			result.Errors = append(result.Errors, FieldError{
				Field:   e.Field,
				Label:   label,
				Message: msg,
			})
		}
	}

	return result
}

// getFieldLabels extracts the "label" tag from struct fields.
func getFieldLabels(s any) map[string]string {
	labels := make(map[string]string)

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return labels
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		// Get the field name (use json tag if available)
		fieldName := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		// Get the label
		if label := field.Tag.Get("label"); label != "" {
			labels[fieldName] = label
		}
	}

	return labels
}

// formatMessage creates a user-friendly message for a validation rule.
func formatMessage(label, rule, param string) string {
	switch rule {
	case "required":
		return label + " is required."
	case "email":
		return "A valid email address is required."
	case "oneof", "enum":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	default:
		return label + " is invalid."
	}
}

// IsValidEmail checks if the given string has a valid email format.
//
// This function uses Go's net/mail.ParseAddress for RFC 5322 compliant validation.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// ParseAddress accepts "Name <email>" format, so verify the address
	// matches what we passed in (just the email part).
	return addr.Address == email
}

// IsValidHTTPURL checks if the given string is a valid http:// or https:// URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
