// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for seqconf.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Error represents a single field validation failure.
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NonNegative validates that an integer is >= 0.
func (v *Validator) NonNegative(field string, value int) {
	if value < 0 {
		v.AddError(field, fmt.Sprintf("must be >= 0, got %d", value), value)
	}
}

// Min validates that an integer is >= minVal.
func (v *Validator) Min(field string, value, minVal int) {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be >= %d, got %d", minVal, value), value)
	}
}

// Range validates that an integer is within a specified range (inclusive)
func (v *Validator) Range(field string, value, minVal, maxVal int) {
	if value < minVal || value > maxVal {
		v.AddError(field,
			fmt.Sprintf("value must be between %d and %d, got %d", minVal, maxVal, value),
			value)
	}
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "must not be empty", value)
	}
}

// Enum validates that a string is one of the allowed values. An empty value
// passes when allowEmpty is set.
func (v *Validator) Enum(field, value string, allowed []string, allowEmpty bool) {
	if value == "" && allowEmpty {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("must be one of %v, got %q", allowed, value),
		value)
}

var javaMemoryRe = regexp.MustCompile(`(?i)^\d+[mgk]$`)

// JavaMemory validates a JVM heap-size value of the form "<int>[mgk]"
// (case-insensitive), e.g. "6g" or "512m". An empty value passes when
// allowEmpty is set.
func (v *Validator) JavaMemory(field, value string, allowEmpty bool) {
	if value == "" && allowEmpty {
		return
	}
	if !javaMemoryRe.MatchString(value) {
		v.AddError(field, `must match <int>[mgk], e.g. "6g"`, value)
	}
}
