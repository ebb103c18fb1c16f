// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package apperr defines the errors that reach ArtScope's HTTP boundary.

Handlers translate domain failures (unknown session, unknown taxonomy node,
collection API outage) into an [AppError]; respond.Error turns it into the
JSON error envelope. Anything that is not an AppError is reported as
INTERNAL_ERROR.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Codes

// Machine-readable codes sent in the "code" field.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
	CodeInternal    = "INTERNAL_ERROR"
	CodeUpstream    = "UPSTREAM_ERROR"
)

// AppError carries an HTTP status, a code, a client-safe message and optional
// field errors. Cause is logged server-side and never serialised.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failed field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound reports a missing resource, e.g. NotFound("Session") → "Session not found".
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError reports a malformed request with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited reports a throttled client.
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal wraps an unexpected failure behind a generic message.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Upstream reports that the collection API could not answer.
func Upstream(cause error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    "The collection service is unavailable",
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// # Helpers

// As returns the [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}
