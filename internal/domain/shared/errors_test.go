package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError("learner", "SetGrade", ErrValue, "not yours")
	assert.Equal(t, "learner.SetGrade: not yours", err.Error())

	wrapped := WrapError("roster", "Load", ErrType, "bad entry", errors.New("boom"))
	assert.Equal(t, "roster.Load: bad entry: boom", wrapped.Error())
}

func TestDomainError_Is(t *testing.T) {
	assert.True(t, errors.Is(ErrNilCourse, ErrType))
	assert.False(t, errors.Is(ErrNilCourse, ErrValue))
	assert.True(t, errors.Is(ErrForeignEnrollment, ErrValue))

	inner := errors.New("inner")
	wrapped := WrapError("course", "EnrollStudent", ErrValue, "failed", inner)
	assert.True(t, errors.Is(wrapped, inner))
	assert.True(t, errors.Is(wrapped, ErrValue))
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsTypeError(fmt.Errorf("ctx: %w", ErrNilLearner)))
	assert.True(t, IsTypeError(ErrInvalidMembers))
	assert.False(t, IsTypeError(ErrForeignRegistry))

	assert.True(t, IsValueError(ErrForeignRegistry))
	assert.False(t, IsValueError(ErrNilEnrollment))
	assert.False(t, IsValueError(nil))
}
