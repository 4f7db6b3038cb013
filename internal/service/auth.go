package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apiErrors "github.com/dtroode/plantcare-server/internal/api/errors"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/google/uuid"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a Free-tier user and signs them in.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	email := normalizeEmail(params.Email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if errors.Is(err, model.ErrPasswordTooLong) {
		return model.AuthResult{}, apiErrors.NewErrValidation("password is too long")
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:               uuid.New(),
		Email:            email,
		PasswordHash:     hash,
		FirstName:        strings.TrimSpace(params.FirstName),
		LastName:         strings.TrimSpace(params.LastName),
		CreatedAt:        a.now().UTC(),
		IsActive:         true,
		SubscriptionTier: model.SubscriptionFree,
		MaxPlants:        model.SubscriptionFree.DefaultMaxPlants(),
	}

	user, err = a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrEmailTaken) {
		return model.AuthResult{}, apiErrors.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"email", email)

	return a.IssueToken(ctx, user)
}

// ValidateCredentials reports whether the password matches an active user's
// stored hash. Unknown and inactive users yield false.
func (a *Auth) ValidateCredentials(ctx context.Context, email, password string) (bool, error) {
	_, ok, err := a.authenticate(ctx, email, password)
	return ok, err
}

// dummyPasswordHash is compared against when no usable account exists so
// that login takes as long as for a real one.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (a *Auth) authenticate(ctx context.Context, email, password string) (model.User, bool, error) {
	user, err := a.userStore.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(dummyPasswordHash, password)
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive {
		a.hasher.Verify(dummyPasswordHash, password)
		return model.User{}, false, nil
	}
	if !a.hasher.Verify(user.PasswordHash, password) {
		return model.User{}, false, nil
	}

	return user, true, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	user, ok, err := a.authenticate(ctx, email, password)
	if err != nil {
		a.logger.Error("Auth service: failed to validate credentials",
			"error", err.Error())
		return model.AuthResult{}, err
	}
	if !ok {
		a.logger.Info("Auth service: login rejected",
			"email", normalizeEmail(email))
		return model.AuthResult{}, apiErrors.NewErrInvalidCredentials()
	}

	now := a.UpdateLastLogin(ctx, user.ID)
	user.LastLoginAt = &now

	return a.IssueToken(ctx, user)
}

// IssueToken signs a token pair for the user.
func (a *Auth) IssueToken(ctx context.Context, user model.User) (model.AuthResult, error) {
	pair, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return model.AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExpiresAt,
		User:         user.Profile(),
	}, nil
}

func (a *Auth) GetProfile(ctx context.Context, userID uuid.UUID) (model.UserProfile, error) {
	user, err := a.activeUser(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	return user.Profile(), nil
}

// UpdateLastLogin records a login time. Failures are logged and swallowed.
func (a *Auth) UpdateLastLogin(ctx context.Context, userID uuid.UUID) time.Time {
	now := a.now().UTC()
	if err := a.userStore.UpdateLastLogin(ctx, userID, now); err != nil {
		a.logger.Warn("Auth service: failed to update last login",
			"user_id", userID,
			"error", err.Error())
	}
	return now
}

// Refresh rotates the caller's refresh token and returns a fresh pair. Claims
// are rebuilt from the stored user so tier changes are picked up.
func (a *Auth) Refresh(ctx context.Context, userID uuid.UUID, refreshToken string) (model.AuthResult, error) {
	user, err := a.activeUser(ctx, userID)
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		return model.AuthResult{}, apiErrors.NewErrInvalidRefreshToken()
	}
	if err != nil {
		return model.AuthResult{}, err
	}

	pair, err := a.tokenService.Refresh(ctx, user, refreshToken)
	if isTokenError(err) {
		a.logger.Info("Auth service: refresh rejected",
			"user_id", userID,
			"reason", err.Error())
		return model.AuthResult{}, apiErrors.NewErrInvalidRefreshToken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to refresh token",
			"user_id", userID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to refresh token: %w", err)
	}

	return model.AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.AccessExpiresAt,
		User:         user.Profile(),
	}, nil
}

// Logout revokes the presented refresh token.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	err := a.tokenService.RevokeByToken(ctx, userID, refreshToken)
	if isTokenError(err) {
		return apiErrors.NewErrInvalidRefreshToken()
	}
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)
	return nil
}

// UpdateSubscription moves the user to tier and resets their quota to the
// tier's default. Existing plants are kept even if they exceed the new quota.
func (a *Auth) UpdateSubscription(ctx context.Context, userID uuid.UUID, tier model.SubscriptionTier) (model.UserProfile, error) {
	if !tier.Valid() {
		return model.UserProfile{}, apiErrors.NewErrInvalidSubscriptionTier(string(tier))
	}

	maxPlants := tier.DefaultMaxPlants()
	err := a.userStore.UpdateSubscription(ctx, userID, tier, maxPlants)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserProfile{}, apiErrors.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to update subscription: %w", err)
	}

	a.logger.Info("Auth service: subscription updated",
		"user_id", userID,
		"tier", tier,
		"max_plants", maxPlants)

	return a.GetProfile(ctx, userID)
}

func (a *Auth) activeUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apiErrors.NewErrUserNotFound(userID.String())
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.IsActive {
		return model.User{}, apiErrors.NewErrUserNotFound(userID.String())
	}
	return user, nil
}

func isTokenError(err error) bool {
	return errors.Is(err, model.ErrTokenInvalid) ||
		errors.Is(err, model.ErrTokenRevoked) ||
		errors.Is(err, model.ErrTokenExpired) ||
		errors.Is(err, model.ErrTokenMismatch)
}
