package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Constructors(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantMsg    string
	}{
		{"email taken", NewErrEmailIsTaken("a@b.c"), http.StatusConflict, "user with email a@b.c already exists"},
		{"invalid credentials", NewErrInvalidCredentials(), http.StatusUnauthorized, "invalid email or password"},
		{"plant not found", NewErrPlantNotFound(id.String()), http.StatusNotFound, "plant " + id.String() + " not found"},
		{"quota", NewErrQuotaExceeded(5), http.StatusBadRequest, "plant limit reached: your subscription allows 5 active plants"},
		{"validation keeps percent signs", NewErrValidation("50% off"), http.StatusBadRequest, "50% off"},
		{"tier", NewErrInvalidSubscriptionTier("Gold"), http.StatusBadRequest, `unknown subscription tier "Gold"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestAPIError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create plant: %w", NewErrQuotaExceeded(5))

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}
