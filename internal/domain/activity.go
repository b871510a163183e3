package domain

import (
	"fmt"
	"time"
)

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	// StatusRunning means the activity has started and has no end timestamp.
	StatusRunning ActivityStatus = "running"

	// StatusStopped means the activity has an end timestamp.
	StatusStopped ActivityStatus = "stopped"
)

// Activity represents a single named time-tracking record owned by a user.
// The pair (OwnerID, Name) is unique: re-starting a same-named activity
// re-arms the existing record instead of creating a second one. The status
// is derivable from EndedAt but stored explicitly to avoid recomputation
// races when filtering by it.
type Activity struct {
	Entity

	// Name is the free-form activity name ("coding", "running", ...).
	Name string

	// OwnerID is the identifier of the owning user (foreign key).
	OwnerID string

	// Username is the owner's username, denormalized at creation for
	// reporting convenience.
	Username string

	// StartedAt is when the current run began.
	StartedAt time.Time

	// EndedAt is when the activity was stopped. Nil means still running.
	EndedAt *time.Time

	// Status is the explicit lifecycle state.
	Status ActivityStatus
}

// NewActivity creates a running activity starting now.
func NewActivity(name, ownerID, username string) *Activity {
	return &Activity{
		Entity:    NewEntity(),
		Name:      name,
		OwnerID:   ownerID,
		Username:  username,
		StartedAt: time.Now().UTC(),
		Status:    StatusRunning,
	}
}

// Restart re-arms a previously stopped activity: the start timestamp resets
// to now, the end timestamp clears, and the status flips back to running.
func (a *Activity) Restart() {
	a.StartedAt = time.Now().UTC()
	a.EndedAt = nil
	a.Status = StatusRunning
}

// Finish stops the activity now. Calling Finish on an already stopped
// activity is a no-op.
func (a *Activity) Finish() {
	if a.Status == StatusStopped {
		return
	}
	now := time.Now().UTC()
	a.EndedAt = &now
	a.Status = StatusStopped
}

// ElapsedMillis returns the elapsed time in milliseconds. For a running
// activity the value is computed against the current wall clock, so two
// calls made at different instants return different values.
func (a *Activity) ElapsedMillis() int64 {
	end := time.Now().UTC()
	if a.EndedAt != nil {
		end = *a.EndedAt
	}
	return end.Sub(a.StartedAt).Milliseconds()
}

// FormattedElapsed returns the elapsed time as seconds with three decimal
// places and a trailing "s" suffix, e.g. "12.345s".
func (a *Activity) FormattedElapsed() string {
	return fmt.Sprintf("%.3fs", float64(a.ElapsedMillis())/1000)
}

// Field resolves the filterable and sortable attributes of an activity.
// "time" resolves to the live elapsed value at the instant of the call.
func (a *Activity) Field(name string) (any, bool) {
	switch name {
	case "activity":
		return a.Name, true
	case "userId":
		return a.OwnerID, true
	case "username":
		return a.Username, true
	case "status":
		return string(a.Status), true
	case "startedAt":
		return a.StartedAt, true
	case "time":
		return a.ElapsedMillis(), true
	}
	return a.Entity.Field(name)
}

// ActivityRepresentation is the JSON shape returned to clients.
type ActivityRepresentation struct {
	ID            string         `json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	StartedAt     time.Time      `json:"startedAt"`
	EndedAt       *time.Time     `json:"endedAt"`
	Status        ActivityStatus `json:"status"`
	UserID        string         `json:"userId"`
	Username      string         `json:"username"`
	Time          int64          `json:"time"`
	FormattedTime string         `json:"formattedTime"`
	Activity      string         `json:"activity"`
}

// Representation builds the client-facing view of the activity. Time and
// FormattedTime are snapshotted at the moment of the call.
func (a *Activity) Representation() ActivityRepresentation {
	return ActivityRepresentation{
		ID:            a.ID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		StartedAt:     a.StartedAt,
		EndedAt:       a.EndedAt,
		Status:        a.Status,
		UserID:        a.OwnerID,
		Username:      a.Username,
		Time:          a.ElapsedMillis(),
		FormattedTime: a.FormattedElapsed(),
		Activity:      a.Name,
	}
}
