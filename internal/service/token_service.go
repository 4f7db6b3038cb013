package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing,
// and revoking tokens. It composes the TokenManager and RefreshTokenStore.
type TokenService struct {
	manager    model.TokenManager
	store      model.RefreshTokenStore
	refreshTTL time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

// NewTokenService creates a TokenService. refreshTTL must match the lifetime
// the manager signs into refresh tokens; it only drives the persisted expiry.
func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager:    manager,
		store:      store,
		refreshTTL: refreshTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Issue signs a new access/refresh pair for the user and persists the refresh token.
func (s *TokenService) Issue(ctx context.Context, user model.User) (model.TokenPair, error) {
	return s.issue(ctx, user, nil)
}

func (s *TokenService) issue(ctx context.Context, user model.User, rotatedFrom *string) (model.TokenPair, error) {
	access, claims, err := s.manager.GenerateAccessToken(user)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, jti, err := s.manager.GenerateRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	now := s.now()
	rt := model.RefreshToken{
		ID:             uuid.New(),
		JTI:            jti,
		UserID:         user.ID,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.refreshTTL),
		RotatedFromJTI: rotatedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return model.TokenPair{}, fmt.Errorf("persist refresh: %w", err)
	}

	return model.TokenPair{
		AccessToken:     access,
		AccessExpiresAt: claims.ExpiresAt,
		RefreshToken:    refresh,
	}, nil
}

// Refresh validates the presented refresh token against its stored record,
// revokes it and issues a rotated pair. The token must belong to user.
func (s *TokenService) Refresh(ctx context.Context, user model.User, presentedRefresh string) (model.TokenPair, error) {
	rt, err := s.verify(ctx, user.ID, presentedRefresh)
	if errors.Is(err, model.ErrTokenRevoked) {
		s.revokeFamily(ctx, user.ID)
		return model.TokenPair{}, err
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := s.store.RevokeByJTI(ctx, rt.JTI); err != nil {
		return model.TokenPair{}, fmt.Errorf("revoke old refresh: %w", err)
	}

	rotatedFrom := rt.JTI
	pair, err := s.issue(ctx, user, &rotatedFrom)
	if err != nil {
		return model.TokenPair{}, err
	}

	s.logger.Debug("Token service: refresh token rotated",
		"user_id", user.ID,
		"old_jti", rt.JTI)

	return pair, nil
}

// RevokeByToken revokes a refresh token owned by userID.
func (s *TokenService) RevokeByToken(ctx context.Context, userID uuid.UUID, presentedRefresh string) error {
	rt, err := s.verify(ctx, userID, presentedRefresh)
	if err != nil {
		return err
	}
	return s.store.RevokeByJTI(ctx, rt.JTI)
}

// RevokeAllForUser revokes every outstanding refresh token of the user.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

// revokeFamily ends every session of a user whose already rotated refresh
// token was presented again. The replay is still rejected if this fails.
func (s *TokenService) revokeFamily(ctx context.Context, userID uuid.UUID) {
	s.logger.Warn("Token service: revoked refresh token reused, revoking all sessions",
		"user_id", userID)

	if err := s.RevokeAllForUser(ctx, userID); err != nil {
		s.logger.Error("Token service: failed to revoke sessions",
			"user_id", userID,
			"error", err.Error())
	}
}

// GetClaims validates an access token and returns its claims.
func (s *TokenService) GetClaims(ctx context.Context, token string) (model.AccessClaims, error) {
	return s.manager.ParseAccessToken(token)
}

func (s *TokenService) verify(ctx context.Context, userID uuid.UUID, presented string) (model.RefreshToken, error) {
	ownerID, jti, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}
	if ownerID != userID {
		return model.RefreshToken{}, model.ErrTokenMismatch
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return model.RefreshToken{}, model.ErrTokenInvalid
	}
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("get refresh by jti: %w", err)
	}
	if rt.UserID != userID {
		return model.RefreshToken{}, model.ErrTokenMismatch
	}

	if err := validateRecord(rt, hashRefresh(presented), s.now()); err != nil {
		return model.RefreshToken{}, err
	}
	return rt, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	if now.After(rt.ExpiresAt) {
		return model.ErrTokenExpired
	}
	if !equalBytes(rt.TokenHash, presentedHash) {
		return model.ErrTokenMismatch
	}
	return nil
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
