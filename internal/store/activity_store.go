package store

import (
	"fmt"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// ActivityStore is the activity collection. On top of the generic store it
// enforces that a user has at most one activity record per name.
type ActivityStore struct {
	*Store[*domain.Activity]
}

// NewActivityStore creates an empty activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{Store: New[*domain.Activity]("activity")}
}

// Create persists an activity, rejecting a duplicate (owner, name) pair.
// The uniqueness check and the append happen atomically.
func (s *ActivityStore) Create(activity *domain.Activity) (*domain.Activity, error) {
	return s.CreateUnique(
		Fields{"userId": activity.OwnerID, "activity": activity.Name},
		fmt.Sprintf("activity %q already exists for this user", activity.Name),
		activity,
	)
}

// FindByOwnerAndName returns the activity with the given name owned by the
// given user, or a NotFound error.
func (s *ActivityStore) FindByOwnerAndName(ownerID, name string) (*domain.Activity, error) {
	if activity, ok := s.FindIfExists(Fields{"userId": ownerID, "activity": name}); ok {
		return activity, nil
	}
	return nil, fmt.Errorf("%w: Activity not found", domain.ErrNotFound)
}

// RunningByOwner returns the user's currently running activity, if any.
// At most one can be running at a time; the first match wins.
func (s *ActivityStore) RunningByOwner(ownerID string) (*domain.Activity, bool) {
	return s.FindIfExists(Fields{"userId": ownerID, "status": string(domain.StatusRunning)})
}

// ByOwner returns every activity owned by the given user, queried fresh on
// each call. This is the derived "user's activities" view; it is never
// cached on the user.
func (s *ActivityStore) ByOwner(ownerID string) []*domain.Activity {
	return s.Filter(Fields{"userId": ownerID})
}
