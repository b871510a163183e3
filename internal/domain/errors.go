// Package domain contains the core business entities for Tempus Tracker.
package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Error taxonomy. Every domain or store failure wraps exactly one of these
// sentinels; the HTTP boundary translates the class to its declared status
// and collapses anything unclassified into a generic internal error.

var (
	// ErrBadRequest indicates malformed input.
	ErrBadRequest = errors.New("invalid request payload")

	// ErrUnauthorized indicates missing or invalid credentials or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an action not permitted for the current
	// state or role, e.g. starting a second concurrently running activity.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates no matching entity exists.
	ErrNotFound = errors.New("not found")

	// ErrUniqueConstraint indicates a create violates a uniqueness
	// invariant. Surfaced as a 400-class error.
	ErrUniqueConstraint = errors.New("unique constraint violation")

	// ErrInternal indicates an unexpected internal fault.
	ErrInternal = errors.New("internal server error")
)

// sentinels enumerates the taxonomy for classification and message
// stripping.
var sentinels = []error{
	ErrBadRequest, ErrUnauthorized, ErrForbidden,
	ErrNotFound, ErrUniqueConstraint, ErrInternal,
}

// StatusCode returns the HTTP status declared for the error's taxonomy
// class. Unclassified errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrUniqueConstraint):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsClassified reports whether err belongs to the declared taxonomy.
// Unclassified errors must not leak detail to clients.
func IsClassified(err error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Message returns the client-facing text of a classified error. Wrapped
// errors carry their sentinel as a prefix ("forbidden: ..."); the prefix
// exists for status mapping and is stripped from the wire message.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range sentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
