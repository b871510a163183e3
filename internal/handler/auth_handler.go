package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/auth"
	"github.com/prn-tf/tempus-tracker/internal/service"
)

// credentialPattern validates both username and password: alphanumeric,
// 3 to 30 characters.
var credentialPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService *service.AuthService
	cfg         auth.Config
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg auth.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		logger:      logger.With().Str("handler", "auth").Logger(),
	}
}

// loginRequest is the login payload.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. On success the session token is set as a
// cookie and the body carries only a message. The optional expireTime query
// parameter overrides the token lifetime; the service rejects it outside
// test mode.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		!credentialPattern.MatchString(req.Username) ||
		!credentialPattern.MatchString(req.Password) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request payload"})
		return
	}

	var requestedExpiry time.Duration
	if raw := r.URL.Query().Get("expireTime"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request payload"})
			return
		}
		requestedExpiry = parsed
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password, requestedExpiry)
	if err != nil {
		h.logger.Debug().Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	// The cookie expires together with the token it carries.
	expiry := h.cfg.TokenExpiry
	if requestedExpiry != 0 {
		expiry = requestedExpiry
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(expiry),
	})
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged in successfully"})
}

// Logout handles POST /auth/logout. The presented token is denylisted until
// its natural expiry and the cookie is cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.logger.Error().Msg("no session on context after auth middleware")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		return
	}

	if err := h.authService.Logout(r.Context(), session.Claims); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
