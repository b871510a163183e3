package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/auth"
	"github.com/prn-tf/tempus-tracker/internal/cache"
	"github.com/prn-tf/tempus-tracker/internal/domain"
	"github.com/prn-tf/tempus-tracker/internal/store"
)

// AuthService issues and revokes session tokens.
type AuthService struct {
	users   *store.UserStore
	revoked cache.Cache
	cfg     auth.Config

	// allowExpiryOverride permits a caller-supplied token lifetime.
	// Only enabled in test/administrative mode; production callers
	// cannot override the standard expiry.
	allowExpiryOverride bool

	logger zerolog.Logger
}

// NewAuthService creates a new AuthService. The revocation cache may be nil,
// which disables logout-based revocation.
func NewAuthService(users *store.UserStore, revoked cache.Cache, cfg auth.Config, allowExpiryOverride bool, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:               users,
		revoked:             revoked,
		cfg:                 cfg,
		allowExpiryOverride: allowExpiryOverride,
		logger:              logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies credentials and returns a signed session token. A
// requestedExpiry of zero uses the standard lifetime; a non-zero value is
// only honored when expiry override is enabled. Unknown username and wrong
// password fail identically with ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string, requestedExpiry time.Duration) (string, error) {
	if requestedExpiry != 0 && !s.allowExpiryOverride {
		return "", ErrExpiryOverrideNotAllowed
	}

	user, err := s.users.FindByCredentials(username, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug().Str("username", username).Msg("login rejected")
			return "", ErrBadCredentials
		}
		return "", err
	}

	expiry := s.cfg.TokenExpiry
	if requestedExpiry != 0 {
		expiry = requestedExpiry
	}

	token, err := auth.Sign(user, s.cfg, expiry)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign token")
		return "", fmt.Errorf("%w: failed to sign token", domain.ErrInternal)
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user logged in")

	return token, nil
}

// Logout denylists the presented token until its natural expiry. With no
// revocation cache configured this is a no-op; the token stays time-limited
// either way.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.revoked == nil || claims.TokenID == "" {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.revoked.Set(ctx, cache.RevokedTokenKey(claims.TokenID), []byte("1"), ttl); err != nil {
		s.logger.Error().Err(err).Msg("failed to revoke token")
		return fmt.Errorf("%w: failed to revoke token", domain.ErrInternal)
	}

	s.logger.Info().Str("user_id", claims.UserID).Msg("user logged out")
	return nil
}
