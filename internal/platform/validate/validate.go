// Copyright (c) 2026 ArtScope. All rights reserved.

// Package validate collects field errors from a request and reports them as
// one VALIDATION_ERROR.
//
//	err := (&validate.Validator{}).
//		Required("query", body.Query).
//		MaxLen("query", body.Query, 200).
//		Err()
//
// A Validator belongs to a single request and is not safe for concurrent use.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jenna9192/artscope/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates field errors through a chain of rules.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "Is required")
	}
	return v
}

// MaxLen fails if value is longer than max runes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Must be at most %d characters", max))
	}
	return v
}

// UUID fails unless value is a hyphenated UUID of any version.
func (v *Validator) UUID(field, value string) *Validator {
	if len(value) != 36 {
		v.add(field, "Must be a valid UUID")
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.add(field, "Must be a valid UUID")
	}
	return v
}

// OneOf fails if value is not one of allowed.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, candidate := range allowed {
		if value == candidate {
			return v
		}
	}
	v.add(field, "Must be one of: "+strings.Join(allowed, ", "))
	return v
}

// Custom records message against field when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err ends the chain: nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError builds a single-field validation error outside a chain.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{Field: field, Message: message})
}
