package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated caller through request contexts.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims AccessClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (AccessClaims, bool)
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
