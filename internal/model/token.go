package model

import "github.com/google/uuid"

// TokenManager signs and validates access and refresh tokens.
type TokenManager interface {
	GenerateAccessToken(user User) (token string, claims AccessClaims, err error)
	GenerateRefreshToken(userID uuid.UUID) (token string, jti string, err error)
	ParseAccessToken(token string) (AccessClaims, error)
	ParseRefreshToken(token string) (userID uuid.UUID, jti string, err error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
