package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/chessroyale/internal/errors"
)

func TestNewStorageError_HidesCauseFromMessage(t *testing.T) {
	cause := stderrors.New("pq: relation \"game_comments\" does not exist")
	err := errors.NewStorageError("failed to add comment", cause)

	assert.Equal(t, errors.ErrCodeStorage, err.Code)
	assert.Equal(t, "failed to add comment", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestNewStorageError_Unavailable(t *testing.T) {
	err := errors.NewStorageError("failed to load comments", fmt.Errorf("list: %w", errors.ErrStorageUnavailable))

	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
}

func TestAs(t *testing.T) {
	validation := errors.NewValidationError("comment", "cannot be empty")
	wrapped := fmt.Errorf("handler: %w", validation)

	assert.Same(t, validation, errors.As(wrapped))

	internal := errors.As(stderrors.New("boom"))
	assert.Equal(t, errors.ErrCodeInternal, internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST: bad json", errors.NewBadRequestError("bad json").Error())
	assert.Equal(t, "INTERNAL_ERROR: internal server error (boom)", errors.NewInternalError(stderrors.New("boom")).Error())
}
