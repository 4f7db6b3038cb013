package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateSubscription(ctx context.Context, id uuid.UUID, tier SubscriptionTier, maxPlants int) error
}

// User represents a stored user with authentication material.
type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	CreatedAt        time.Time
	LastLoginAt      *time.Time
	IsActive         bool
	SubscriptionTier SubscriptionTier
	MaxPlants        int
}

// DisplayName returns "First Last" as carried in access token claims.
func (u User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Profile projects the user onto its public representation.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		SubscriptionTier: u.SubscriptionTier,
		MaxPlants:        u.MaxPlants,
		CreatedAt:        u.CreatedAt,
	}
}

// UserProfile is the user view returned to clients.
type UserProfile struct {
	ID               uuid.UUID
	Email            string
	FirstName        string
	LastName         string
	SubscriptionTier SubscriptionTier
	MaxPlants        int
	CreatedAt        time.Time
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by every successful authentication flow.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         UserProfile
}
