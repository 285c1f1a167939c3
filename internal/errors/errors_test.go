package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "name", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestConflictError_Creation(t *testing.T) {
	err := NewConflictError("email already registered")

	assert.Equal(t, "email already registered", err.Error())

	conflictErr, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.NotNil(t, conflictErr)
}

func TestConflictError_IsConflictError_WithOtherError(t *testing.T) {
	_, ok := IsConflictError(errors.New("boom"))
	assert.False(t, ok)
}

func TestAuthError_Creation(t *testing.T) {
	err := NewAuthError("invalid credentials")

	assert.Equal(t, "invalid credentials", err.Error())

	authErr, ok := IsAuthError(err)
	assert.True(t, ok)
	assert.NotNil(t, authErr)
}

func TestInvalidTransitionError_Creation(t *testing.T) {
	err := NewInvalidTransitionError("SHIPPED", "AWAITING_PAYMENT")

	assert.Equal(t, "SHIPPED", err.From)
	assert.Equal(t, "AWAITING_PAYMENT", err.To)
	assert.Contains(t, err.Error(), "SHIPPED")
	assert.Contains(t, err.Error(), "AWAITING_PAYMENT")

	iteErr, ok := IsInvalidTransitionError(err)
	assert.True(t, ok)
	assert.NotNil(t, iteErr)
}

func TestInvalidTransitionError_WithOtherError(t *testing.T) {
	_, ok := IsInvalidTransitionError(NewConflictError("nope"))
	assert.False(t, ok)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
