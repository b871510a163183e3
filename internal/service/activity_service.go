package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/domain"
	"github.com/prn-tf/tempus-tracker/internal/store"
)

// SortKeys lists the accepted sort keys for Results.
var SortKeys = []string{"username", "activity", "time"}

// ActivityService coordinates start/stop/elapsed/results against the user
// and activity stores. The activity store is the single source of truth for
// running state; the user's running-activity reference is a non-authoritative
// convenience that is kept in step but never consulted for decisions.
//
// Operations return representation snapshots, never the shared records:
// record fields are only written through the stores' Mutate, and the service
// mutex serializes each operation end to end so a check (no running
// activity) and the act it guards cannot interleave across requests.
type ActivityService struct {
	mu         sync.Mutex
	users      *store.UserStore
	activities *store.ActivityStore
	logger     zerolog.Logger
}

// NewActivityService creates a new ActivityService.
func NewActivityService(users *store.UserStore, activities *store.ActivityStore, logger zerolog.Logger) *ActivityService {
	return &ActivityService{
		users:      users,
		activities: activities,
		logger:     logger.With().Str("service", "activity").Logger(),
	}
}

// Request is the payload for an activity operation: the authenticated
// caller, the activity name, and optionally the username of another user to
// act for (admin/proxy pattern).
type Request struct {
	// Activity is the activity name.
	Activity string

	// Username, when set, names the user to act for instead of User.
	Username string

	// User is the authenticated caller.
	User *domain.User
}

// ElapsedResult is the elapsed-time view of one activity.
type ElapsedResult struct {
	ElapsedTimeRaw int64                 `json:"elapsedTimeRaw"`
	ElapsedTime    string                `json:"elapsedTime"`
	Status         domain.ActivityStatus `json:"status"`
}

// resolveActor returns the user the operation applies to: the named target
// when a username is given (NotFound when no such user — this path reveals
// the user's existence, unlike login, intentionally kept as-is), otherwise
// the authenticated caller.
func (s *ActivityService) resolveActor(req Request) (*domain.User, error) {
	if req.Username != "" {
		user, ok := s.users.FindIfExists(store.Fields{"username": req.Username})
		if !ok {
			return nil, fmt.Errorf("%w: User not found", domain.ErrNotFound)
		}
		return user, nil
	}
	return req.User, nil
}

// Start begins tracking the named activity for the actor. Only one activity
// may be running per user at a time, regardless of name. Starting a name
// that was tracked before re-arms the existing record instead of creating a
// duplicate.
func (s *ActivityService) Start(req Request) (domain.ActivityRepresentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolveActor(req)
	if err != nil {
		return domain.ActivityRepresentation{}, err
	}

	if _, running := s.activities.RunningByOwner(actor.ID); running {
		return domain.ActivityRepresentation{}, ErrActivityAlreadyRunning
	}

	activity, exists := s.activities.FindIfExists(store.Fields{
		"userId":   actor.ID,
		"activity": req.Activity,
	})
	if !exists {
		activity, err = s.activities.Create(domain.NewActivity(req.Activity, actor.ID, actor.Username))
		if err != nil {
			return domain.ActivityRepresentation{}, err
		}
	} else {
		if _, err := s.activities.Mutate(activity.ID, (*domain.Activity).Restart); err != nil {
			return domain.ActivityRepresentation{}, err
		}
	}

	if _, err := s.users.Mutate(actor.ID, func(u *domain.User) {
		u.RunningActivityID = activity.ID
	}); err != nil {
		return domain.ActivityRepresentation{}, err
	}

	s.logger.Info().
		Str("user_id", actor.ID).
		Str("activity", activity.Name).
		Msg("activity started")

	return activity.Representation(), nil
}

// Stop ends the named activity for the actor. Stopping a never-started name
// fails with NotFound; stopping an already-stopped activity succeeds and
// returns it unchanged.
func (s *ActivityService) Stop(req Request) (domain.ActivityRepresentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolveActor(req)
	if err != nil {
		return domain.ActivityRepresentation{}, err
	}

	activity, err := s.activities.FindByOwnerAndName(actor.ID, req.Activity)
	if err != nil {
		return domain.ActivityRepresentation{}, err
	}

	if activity.Status == domain.StatusStopped {
		return activity.Representation(), nil
	}

	if _, err := s.activities.Mutate(activity.ID, (*domain.Activity).Finish); err != nil {
		return domain.ActivityRepresentation{}, err
	}

	if _, err := s.users.Mutate(actor.ID, func(u *domain.User) {
		u.RunningActivityID = ""
	}); err != nil {
		return domain.ActivityRepresentation{}, err
	}

	s.logger.Info().
		Str("user_id", actor.ID).
		Str("activity", activity.Name).
		Msg("activity stopped")

	return activity.Representation(), nil
}

// Elapsed returns the elapsed time of the named activity for the actor.
// For a running activity the value is live and grows between calls; after
// a stop it freezes.
func (s *ActivityService) Elapsed(req Request) (*ElapsedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolveActor(req)
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.FindByOwnerAndName(actor.ID, req.Activity)
	if err != nil {
		return nil, err
	}

	return &ElapsedResult{
		ElapsedTimeRaw: activity.ElapsedMillis(),
		ElapsedTime:    activity.FormattedElapsed(),
		Status:         activity.Status,
	}, nil
}

// Results returns all activities across all users sorted ascending by the
// given key ("username", "activity" or "time"). Sorting by "time" uses the
// live elapsed value at the instant of the call. An empty collection is
// NotFound.
func (s *ActivityService) Results(sortKey string) ([]domain.ActivityRepresentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := s.activities.GetAll(sortKey)
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}

	out := make([]domain.ActivityRepresentation, 0, len(activities))
	for _, activity := range activities {
		out = append(out, activity.Representation())
	}
	return out, nil
}
