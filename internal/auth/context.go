package auth

import (
	"context"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

type contextKey string

const sessionKey contextKey = "tempus-auth-session"

// Session is the authenticated state attached to a request: the resolved
// user plus the token claims the middleware verified.
type Session struct {
	User   *domain.User
	Claims *Claims
}

// WithSession stores the session on the context.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext retrieves the session stored by WithSession.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok
}
