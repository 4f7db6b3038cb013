package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT claims with token type and user identity.
type Claims struct {
	jwt.RegisteredClaims
	Email            string `json:"email,omitempty"`
	Name             string `json:"name,omitempty"`
	SubscriptionTier string `json:"subscriptionTier,omitempty"`
	MaxPlants        int    `json:"maxPlants,omitempty"`
	TokenType        string `json:"typ"`
}

// Options configures token signing and validation.
type Options struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

const (
	defaultAccessTTL  = 60 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
	typeAccess        = "access"
	typeRefresh       = "refresh"
)

var errTokenType = errors.New("token type mismatch")

// NewJWT creates a new JWT token manager. Zero TTLs are replaced with defaults.
func NewJWT(opts Options) *JWT {
	if opts.AccessTTL <= 0 {
		opts.AccessTTL = defaultAccessTTL
	}
	if opts.RefreshTTL <= 0 {
		opts.RefreshTTL = defaultRefreshTTL
	}
	return &JWT{
		secretKey:  []byte(opts.Secret),
		issuer:     opts.Issuer,
		audience:   opts.Audience,
		accessTTL:  opts.AccessTTL,
		refreshTTL: opts.RefreshTTL,
		now:        time.Now,
	}
}

func (j *JWT) registered(subject uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := j.now()
	rc := jwt.RegisteredClaims{
		Subject:   subject.String(),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if j.audience != "" {
		rc.Audience = jwt.ClaimStrings{j.audience}
	}
	return rc
}

// GenerateAccessToken creates a short-lived access token carrying the user's
// identity and subscription.
func (j *JWT) GenerateAccessToken(user model.User) (string, model.AccessClaims, error) {
	claims := Claims{
		RegisteredClaims: j.registered(user.ID, j.accessTTL),
		Email:            user.Email,
		Name:             user.DisplayName(),
		SubscriptionTier: string(user.SubscriptionTier),
		MaxPlants:        user.MaxPlants,
		TokenType:        typeAccess,
	}
	claims.ID = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", model.AccessClaims{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, toAccessClaims(user.ID, claims), nil
}

// GenerateRefreshToken creates a long-lived refresh token and returns its JTI.
func (j *JWT) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	jti := uuid.NewString()
	claims := Claims{
		RegisteredClaims: j.registered(userID, j.refreshTTL),
		TokenType:        typeRefresh,
	}
	claims.ID = jti

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, jti, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (j *JWT) ParseAccessToken(tokenString string) (model.AccessClaims, error) {
	claims, userID, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	return toAccessClaims(userID, *claims), nil
}

// ParseRefreshToken validates a refresh token and returns the user ID and JTI.
func (j *JWT) ParseRefreshToken(tokenString string) (uuid.UUID, string, error) {
	claims, userID, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse refresh token: %w", err)
	}
	if claims.ID == "" {
		return uuid.Nil, "", fmt.Errorf("refresh token has no jti")
	}
	return userID, claims.ID, nil
}

func (j *JWT) parse(tokenString, wantType string) (*Claims, uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}
	if j.audience != "" {
		opts = append(opts, jwt.WithAudience(j.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !token.Valid {
		return nil, uuid.Nil, fmt.Errorf("token is invalid")
	}
	if claims.TokenType != wantType {
		return nil, uuid.Nil, fmt.Errorf("%w: %s", errTokenType, claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return claims, userID, nil
}

func toAccessClaims(userID uuid.UUID, c Claims) model.AccessClaims {
	ac := model.AccessClaims{
		UserID:           userID,
		Email:            c.Email,
		Name:             c.Name,
		SubscriptionTier: model.SubscriptionTier(c.SubscriptionTier),
		MaxPlants:        c.MaxPlants,
	}
	if c.ExpiresAt != nil {
		ac.ExpiresAt = c.ExpiresAt.Time
	}
	return ac
}
