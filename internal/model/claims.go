package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is the identity asserted by an access token.
type AccessClaims struct {
	UserID           uuid.UUID
	Email            string
	Name             string
	SubscriptionTier SubscriptionTier
	MaxPlants        int
	ExpiresAt        time.Time
}
