package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/mocks"
	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/dtroode/plantcare-server/internal/testutil"
)

func newAuthEngine(t *testing.T, userID uuid.UUID) (*mocks.AuthService, *gin.Engine) {
	svc := mocks.NewAuthService(t)
	engine, cm := newTestEngine(userID)
	h := NewAuth(svc, cm, testutil.MakeNoopLogger())

	engine.POST("/api/auth/register", h.Register)
	engine.POST("/api/auth/login", h.Login)
	engine.GET("/api/auth/profile", h.Profile)
	engine.POST("/api/auth/refresh", h.Refresh)
	engine.POST("/api/auth/logout", h.Logout)
	return svc, engine
}

func sampleAuthResult() model.AuthResult {
	return model.AuthResult{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		User: model.UserProfile{
			ID:               uuid.New(),
			Email:            "ada@example.com",
			FirstName:        "Ada",
			LastName:         "Lovelace",
			SubscriptionTier: model.SubscriptionFree,
			MaxPlants:        5,
		},
	}
}

func TestAuth_Register(t *testing.T) {
	svc, engine := newAuthEngine(t, uuid.Nil)

	svc.On("Register", mock.Anything, model.RegisterParams{
		Email: "ada@example.com", Password: "secret123", FirstName: "Ada", LastName: "Lovelace",
	}).Return(sampleAuthResult(), nil).Once()

	w := doRequest(engine, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "ada@example.com", "password": "secret123", "firstName": "Ada", "lastName": "Lovelace",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[authResponse](t, w)
	assert.Equal(t, "access", resp.Token)
	assert.Equal(t, "refresh", resp.RefreshToken)
	assert.Equal(t, "Free", resp.User.SubscriptionTier)
	assert.Equal(t, 5, resp.User.MaxPlants)
}

func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "empty body", body: ""},
		{name: "bad email", body: map[string]string{"email": "nope", "password": "secret123", "firstName": "A", "lastName": "B"}},
		{name: "short password", body: map[string]string{"email": "a@b.c", "password": "short", "firstName": "A", "lastName": "B"}},
		{name: "missing name", body: map[string]string{"email": "a@b.c", "password": "secret123"}},
		{name: "long password", body: map[string]string{"email": "a@b.c", "password": strings.Repeat("p", 100), "firstName": "A", "lastName": "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, engine := newAuthEngine(t, uuid.Nil)

			w := doRequest(engine, http.MethodPost, "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[messageResponse](t, w).Message)
		})
	}
}

func TestAuth_Register_Conflict(t *testing.T) {
	svc, engine := newAuthEngine(t, uuid.Nil)

	svc.On("Register", mock.Anything, mock.Anything).
		Return(model.AuthResult{}, apiErrors.NewErrEmailIsTaken("ada@example.com")).Once()

	w := doRequest(engine, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "ada@example.com", "password": "secret123", "firstName": "Ada", "lastName": "Lovelace",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuth_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, engine := newAuthEngine(t, uuid.Nil)
		svc.On("Login", mock.Anything, "ada@example.com", "pw").Return(sampleAuthResult(), nil).Once()

		w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "pw"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "access", decode[authResponse](t, w).Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, engine := newAuthEngine(t, uuid.Nil)
		svc.On("Login", mock.Anything, "ada@example.com", "pw").
			Return(model.AuthResult{}, apiErrors.NewErrInvalidCredentials()).Once()

		w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "pw"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid email or password", decode[messageResponse](t, w).Message)
	})

	t.Run("internal failure", func(t *testing.T) {
		svc, engine := newAuthEngine(t, uuid.Nil)
		svc.On("Login", mock.Anything, "ada@example.com", "pw").Return(model.AuthResult{}, assert.AnError).Once()

		w := doRequest(engine, http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "pw"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, internalErrorMessage, decode[messageResponse](t, w).Message)
	})
}

func TestAuth_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("authenticated", func(t *testing.T) {
		svc, engine := newAuthEngine(t, userID)
		svc.On("GetProfile", mock.Anything, userID).Return(model.UserProfile{ID: userID, Email: "a@b.c"}, nil).Once()

		w := doRequest(engine, http.MethodGet, "/api/auth/profile", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, decode[userResponse](t, w).ID)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, engine := newAuthEngine(t, uuid.Nil)

		w := doRequest(engine, http.MethodGet, "/api/auth/profile", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuth_Refresh(t *testing.T) {
	userID := uuid.New()
	svc, engine := newAuthEngine(t, userID)
	svc.On("Refresh", mock.Anything, userID, "old").Return(sampleAuthResult(), nil).Once()
	svc.On("Refresh", mock.Anything, userID, "stale").Return(model.AuthResult{}, apiErrors.NewErrInvalidRefreshToken()).Once()

	w := doRequest(engine, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": "old"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refresh", decode[authResponse](t, w).RefreshToken)

	w = doRequest(engine, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": "stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodPost, "/api/auth/refresh", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_Logout(t *testing.T) {
	userID := uuid.New()
	svc, engine := newAuthEngine(t, userID)
	svc.On("Logout", mock.Anything, userID, "refresh").Return(nil).Once()

	w := doRequest(engine, http.MethodPost, "/api/auth/logout", map[string]string{"refreshToken": "refresh"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
