package errors

import (
	"net/http"
	"testing"

	"skillhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseExecuteError_ImplementsAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create user")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to create user", appErr.Details())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestErrConflict_MatchesThroughWrap(t *testing.T) {
	err := errors.Wrap(ErrConflict, "email already belongs to another account")

	assert.ErrorIs(t, err, ErrConflict)

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}
