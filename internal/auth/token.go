// Package auth provides signed session-token authentication for Tempus
// Tracker. Tokens are HS256 JWTs carried in a named cookie; they embed the
// user's identifier and username and are time-limited.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// Config contains token signing and verification parameters.
type Config struct {
	// Secret is the HMAC signing key.
	Secret string

	// CookieName is the cookie the token travels in.
	CookieName string

	// TokenExpiry is the standard token lifetime.
	TokenExpiry time.Duration

	// CookieSecure marks the cookie Secure (production mode).
	CookieSecure bool
}

// Claims is the payload extracted from a verified token.
type Claims struct {
	// UserID is the authenticated user's identifier.
	UserID string

	// Username is the authenticated user's username.
	Username string

	// TokenID uniquely identifies this token (used for revocation).
	TokenID string

	// ExpiresAt is the token's expiry instant.
	ExpiresAt time.Time
}

var (
	// ErrMissingToken is returned when no token cookie is present.
	ErrMissingToken = errors.New("missing session token")

	// ErrTokenExpired is returned for a well-formed but expired token.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid wraps any other parsing or validation failure,
	// including revoked tokens.
	ErrTokenInvalid = errors.New("invalid token")
)

// Sign issues a token for the user with the given lifetime.
func Sign(user *domain.User, cfg Config, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":      user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(expiry).Unix(),
	})

	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns normalized claims.
func Parse(tokenString string, cfg Config) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	userID, _ := claims["uid"].(string)
	username, _ := claims["username"].(string)
	tokenID, _ := claims["jti"].(string)
	if userID == "" || username == "" {
		return nil, ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		UserID:    userID,
		Username:  username,
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}
