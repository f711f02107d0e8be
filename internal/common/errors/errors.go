// Package errors provides standardized error handling for the itinerary resolution API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeTemplateNotFound  ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeMalformedTemplate ErrorCode = "MALFORMED_TEMPLATE"
	ErrCodeRegistryInvalid   ErrorCode = "REGISTRY_INVALID"

	ErrCodeEnquiryLookupFailed  ErrorCode = "ENQUIRY_LOOKUP_FAILED"
	ErrCodeEnquiryLookupTimeout ErrorCode = "ENQUIRY_LOOKUP_TIMEOUT"
	ErrCodeEnquiryNotFound      ErrorCode = "ENQUIRY_NOT_FOUND"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable client input error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request carries no usable identifying input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template resolution error.
func NewTemplateNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "No itinerary template could be resolved",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedTemplateError creates a non-retryable catalog integrity error.
func NewMalformedTemplateError(templateID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedTemplate,
		Message:   "Catalog template failed to parse",
		Details:   fmt.Sprintf("templateId: %s, error: %v", templateID, err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryInvalidError creates a non-retryable registry file error.
func NewRegistryInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryInvalid,
		Message:   "Template registry file failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnquiryLookupFailedError creates a retryable collaborator error.
func NewEnquiryLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEnquiryLookupFailed,
		Message:   "Enquiry lookup collaborator error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnquiryLookupTimeoutError creates a retryable collaborator timeout error.
func NewEnquiryLookupTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEnquiryLookupTimeout,
		Message:   "Enquiry lookup exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnquiryNotFoundError creates a non-retryable enquiry error.
func NewEnquiryNotFoundError(enquiryID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEnquiryNotFound,
		Message:   "Enquiry reference has no location on record",
		Details:   fmt.Sprintf("enquiryId: %s", enquiryID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected fault.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected internal error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps internal error codes to the status returned to the caller.
// Collaborator failures never reach this mapping: the resolver absorbs them
// into its fallback chain.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeTemplateNotFound, ErrCodeEnquiryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AsStandardError extracts a *StandardError from err, wrapping unknown errors
// as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}
