package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        ErrNotFound("player", "Alice"),
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
			wantMsg:    "player Alice not found",
		},
		{
			name:       "conflict",
			err:        ErrConflict("game number 7 already exists"),
			wantCode:   "CONFLICT",
			wantStatus: http.StatusConflict,
			wantMsg:    "game number 7 already exists",
		},
		{
			name:       "validation",
			err:        ErrValidation("amount is required"),
			wantCode:   "VALIDATION_ERROR",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "amount is required",
		},
		{
			name:       "internal",
			err:        ErrInternal("scan failed", errors.New("boom")),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "scan failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrInternal("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "connection reset")

	wrapped := fmt.Errorf("outer: %w", err)
	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

func TestErrReferenceBlocked(t *testing.T) {
	blockedBy := uuid.New()
	warning := &ReferenceWarning{Key: WarnSeasonAccount, ReferencedBy: blockedBy}
	err := ErrReferenceBlocked(warning)

	assert.Equal(t, "REFERENCE_BLOCKED", err.Code)
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.Contains(t, err.Message, WarnSeasonAccount)
	assert.Contains(t, err.Message, blockedBy.String())
	assert.Same(t, warning, err.Details)
}
