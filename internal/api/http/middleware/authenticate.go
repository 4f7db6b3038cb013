package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
)

// TokenService resolves caller claims from bearer tokens.
type TokenService interface {
	GetClaims(ctx context.Context, token string) (model.AccessClaims, error)
}

// Authenticate validates bearer tokens and injects the caller's claims into
// the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid access token.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticateUser(c.Request.Context(), bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			var apiErr *apiErrors.APIError
			if !errors.As(err, &apiErr) {
				apiErr = apiErrors.NewErrInvalidAuthorizationToken()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apiErr.Message})
			return
		}

		ctx := m.contextManager.SetClaimsToContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (model.AccessClaims, error) {
	if tokenString == "" {
		return model.AccessClaims{}, apiErrors.NewErrMissingAuthorizationToken()
	}

	claims, err := m.tokenService.GetClaims(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		return model.AccessClaims{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	if claims.UserID == uuid.Nil {
		return model.AccessClaims{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return claims, nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
