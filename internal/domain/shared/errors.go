// Package shared contains the error types used across domain packages.
// This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base error kinds. Check them with errors.Is().
var (
	// ErrType is returned when an argument is missing or is not the kind of
	// entity an operation requires.
	ErrType = errors.New("type error")

	// ErrValue is returned when an argument has the right kind but fails an
	// ownership or semantic check.
	ErrValue = errors.New("value error")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "learner", "course", "enrollment"
	Op      string // Operation that failed, e.g., "Enroll", "SetGrade"
	Kind    error  // Base error kind for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Academic domain errors
var (
	ErrNilCourse         = NewDomainError("learner", "Enroll", ErrType, "course must be a Course")
	ErrNilLearner        = NewDomainError("course", "EnrollStudent", ErrType, "learner must be a Learner")
	ErrNilEnrollment     = NewDomainError("learner", "SetGrade", ErrType, "enrollment must be an Enrollment")
	ErrInvalidMembers    = NewDomainError("enrollment", "New", ErrType, "enrollment needs a learner and a course")
	ErrForeignEnrollment = NewDomainError("learner", "SetGrade", ErrValue, "enrollment does not belong to this learner")
	ErrForeignRegistry   = NewDomainError("enrollment", "New", ErrValue, "learner and course belong to different registries")
)

// IsTypeError checks if the error is a type error.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrType)
}

// IsValueError checks if the error is a value error.
func IsValueError(err error) bool {
	return errors.Is(err, ErrValue)
}
