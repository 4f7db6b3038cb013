package model

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email is already taken")
	ErrQuotaExceeded = errors.New("plant quota exceeded")

	ErrPasswordTooLong = errors.New("password is too long")

	ErrTokenInvalid  = errors.New("refresh token invalid")
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")
)
