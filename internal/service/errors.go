package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrValidationFailed       = errors.New("validation failed")
	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrRoutineNotFound        = errors.New("routine not found")
	ErrExercisesAlreadySeeded = errors.New("exercises already exist in database")
	ErrMediaUploadDisabled    = errors.New("media uploads are not configured")
	ErrUploadURLError         = errors.New("failed to generate upload URL")
)

// ValidationError names the first field that failed validation. It matches
// ErrValidationFailed under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// BulkValidationError reports the first invalid element of a batch.
type BulkValidationError struct {
	Index int
	Name  string
	Cause *ValidationError
}

func (e *BulkValidationError) Error() string {
	return fmt.Sprintf("Validation error for exercise %q (index %d): %s", e.Name, e.Index, e.Cause.Message)
}

func (e *BulkValidationError) Unwrap() error {
	return ErrValidationFailed
}

// SeedConflictError is returned when seeding a catalog that already holds exercises.
type SeedConflictError struct {
	Count int64
}

func (e *SeedConflictError) Error() string {
	return "Exercises already exist in database"
}

func (e *SeedConflictError) Unwrap() error {
	return ErrExercisesAlreadySeeded
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
