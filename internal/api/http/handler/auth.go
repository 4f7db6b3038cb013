package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
)

// AuthService defines user registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (model.UserProfile, error)
	Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (model.AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and returns a signed-in session.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	result, err := h.authService.Register(c.Request.Context(), model.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (h *Auth) Profile(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(profile))
}

// Refresh exchanges the caller's refresh token for a new session.
func (h *Auth) Refresh(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(result))
}

func (h *Auth) Logout(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID, req.RefreshToken); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Auth) callerID(c *gin.Context) (uuid.UUID, bool) {
	return callerID(c, h.contextManager)
}

// callerID aborts with 401 when the request carries no authenticated user.
func callerID(c *gin.Context, cm model.ContextManager) (uuid.UUID, bool) {
	userID, ok := cm.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, apiErrors.NewErrMissingAuthorizationToken())
		return uuid.Nil, false
	}
	return userID, true
}
