package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/cache"
	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// UserResolver looks up the token's user. Implemented by store.UserStore.
type UserResolver interface {
	// GetIfExists returns the user with the given identifier, or false
	// when no such user exists.
	GetIfExists(id string) (*domain.User, bool)
}

// Middleware authenticates requests via the session-token cookie. A missing
// token yields 401; an expired, invalid or revoked token, or a token whose
// user no longer exists, yields 403 with a distinct message.
func Middleware(cfg Config, users UserResolver, revoked cache.Cache, logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("component", "auth").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := Parse(cookie.Value, cfg)
			if err != nil {
				log.Debug().Err(err).Msg("token verification failed")
				switch {
				case errors.Is(err, ErrTokenExpired):
					writeAuthError(w, http.StatusForbidden, "Token expired")
				default:
					writeAuthError(w, http.StatusForbidden, "Invalid token")
				}
				return
			}

			if isRevoked(r.Context(), revoked, claims.TokenID) {
				log.Debug().Str("user_id", claims.UserID).Msg("revoked token presented")
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			user, ok := users.GetIfExists(claims.UserID)
			if !ok {
				log.Debug().Str("user_id", claims.UserID).Msg("token references unknown user")
				writeAuthError(w, http.StatusForbidden, "User not found")
				return
			}

			ctx := WithSession(r.Context(), &Session{User: user, Claims: claims})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isRevoked checks the revocation denylist. A nil cache disables revocation;
// a cache error fails open, the token is still time-limited.
func isRevoked(ctx context.Context, revoked cache.Cache, tokenID string) bool {
	if revoked == nil || tokenID == "" {
		return false
	}
	exists, err := revoked.Exists(ctx, cache.RevokedTokenKey(tokenID))
	if err != nil {
		return false
	}
	return exists
}

// writeAuthError writes a JSON error response.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
