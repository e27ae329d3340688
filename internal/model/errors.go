package model

import "errors"

// Sentinels for the error taxonomy; handlers map them to status codes
// with errors.Is at the boundary.
var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("customer not found")
	ErrConflict         = errors.New("conflict with current state")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrPersistence      = errors.New("persistence failure")
)

// AppError carries a taxonomy sentinel, a human-readable message, and an
// optional underlying cause (the driver error behind a persistence failure).
type AppError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Is(target error) bool { return errors.Is(e.Kind, target) }

func (e *AppError) Unwrap() error { return e.Cause }

// NewValidation creates a client-input error (HTTP 400).
func NewValidation(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewNotFound creates a missing-record error (HTTP 404).
func NewNotFound(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewConflict creates a state-conflict error (HTTP 409).
func NewConflict(message string) error {
	return &AppError{Kind: ErrConflict, Message: message}
}

// NewUnsupportedMedia creates a content-type error (HTTP 415).
func NewUnsupportedMedia(message string) error {
	return &AppError{Kind: ErrUnsupportedMedia, Message: message}
}

// NewPersistence wraps a store failure after the transaction rolled back.
func NewPersistence(message string, cause error) error {
	return &AppError{Kind: ErrPersistence, Message: message, Cause: cause}
}
