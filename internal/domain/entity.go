// Package domain contains the core business entities for Tempus Tracker.
// These are pure Go structs with no transport or storage dependencies,
// representing the fundamental concepts of the time-tracking system.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the common part of every stored record: a generated opaque
// identifier plus creation and last-update timestamps. The identifier is
// immutable after creation; UpdatedAt is bumped through Touch and never
// moves backwards.
type Entity struct {
	// ID is the unique identifier for the record (a generated UUID string).
	ID string `json:"id"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the record was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEntity creates an Entity with a fresh identifier and both timestamps
// set to the current time.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Meta returns the embedded Entity. It exists so that concrete record types
// satisfy the Record interface through embedding.
func (e *Entity) Meta() *Entity {
	return e
}

// Touch bumps UpdatedAt. The timestamp is monotonically non-decreasing.
func (e *Entity) Touch() {
	now := time.Now().UTC()
	if now.After(e.UpdatedAt) {
		e.UpdatedAt = now
	}
}

// Record is implemented by every entity type kept in a store. Field exposes
// named attributes for filtering and sorting, using the same names the JSON
// representation uses ("username", "activity", "status", "time", ...).
type Record interface {
	// Meta returns the record's identity and bookkeeping timestamps.
	Meta() *Entity

	// Field returns the value of the named attribute and whether the
	// record has an attribute of that name.
	Field(name string) (any, bool)
}

// Field resolves the attributes common to every entity.
func (e *Entity) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "createdAt":
		return e.CreatedAt, true
	case "updatedAt":
		return e.UpdatedAt, true
	}
	return nil, false
}
