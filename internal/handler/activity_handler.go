package handler

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/auth"
	"github.com/prn-tf/tempus-tracker/internal/domain"
	"github.com/prn-tf/tempus-tracker/internal/service"
)

// ActivityHandler handles the activity endpoints. All of them sit behind
// the auth middleware.
type ActivityHandler struct {
	activityService *service.ActivityService
	logger          zerolog.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger.With().Str("handler", "activity").Logger(),
	}
}

// activityRequest is the start/stop payload. Username optionally names
// another user to act for.
type activityRequest struct {
	Activity string `json:"activity"`
	Username string `json:"username"`
}

// requestUser pulls the authenticated user off the context. The middleware
// guarantees it is there; a miss is an internal fault.
func (h *ActivityHandler) requestUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.logger.Error().Msg("no session on context after auth middleware")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		return nil, false
	}
	return session.User, true
}

// Start handles POST /activity/start.
func (h *ActivityHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Activity == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request payload"})
		return
	}

	activity, err := h.activityService.Start(service.Request{
		Activity: req.Activity,
		Username: req.Username,
		User:     user,
	})
	if err != nil {
		h.logger.Debug().Err(err).Str("activity", req.Activity).Msg("start failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Activity started",
		Data:    activity,
	})
}

// Stop handles POST /activity/stop.
func (h *ActivityHandler) Stop(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Activity == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request payload"})
		return
	}

	activity, err := h.activityService.Stop(service.Request{
		Activity: req.Activity,
		Username: req.Username,
		User:     user,
	})
	if err != nil {
		h.logger.Debug().Err(err).Str("activity", req.Activity).Msg("stop failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Activity stopped",
		Data:    activity,
	})
}

// Elapsed handles GET /activity/elapsed/{activityName}.
func (h *ActivityHandler) Elapsed(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	result, err := h.activityService.Elapsed(service.Request{
		Activity: chi.URLParam(r, "activityName"),
		Username: r.URL.Query().Get("username"),
		User:     user,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Elapsed time fetched",
		Data:    result,
	})
}

// Results handles GET /activity/results. The sort query parameter defaults
// to "username".
func (h *ActivityHandler) Results(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requestUser(w, r); !ok {
		return
	}

	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = "username"
	}
	if !slices.Contains(service.SortKeys, sortKey) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid sort parameter"})
		return
	}

	activities, err := h.activityService.Results(sortKey)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Activities fetched",
		Data:    activities,
	})
}
