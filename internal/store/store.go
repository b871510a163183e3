// Package store provides the in-memory collection abstraction backing the
// domain entities. A store simulates a database table without persistence:
// records live in an ordered slice, lookups are linear scans, and every
// record mutation funnels through Mutate so field writes happen under the
// store lock and the updated-timestamp bump stays centralized. One store
// instance exists per entity type, constructed at process start and passed
// by reference into the services.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// Fields is a set of attribute name/value pairs matched with logical AND
// and exact equality against a record's Field accessor.
type Fields map[string]any

// Store is a generic in-memory collection keyed by record identifier.
// All methods are safe for concurrent use; the mutex guards the slice,
// not the records themselves.
type Store[T domain.Record] struct {
	mu   sync.RWMutex
	name string
	data []T
}

// New creates an empty store. The name appears in error messages
// ("user", "activity").
func New[T domain.Record](name string) *Store[T] {
	return &Store[T]{name: name}
}

// Get returns the record with the given identifier or a NotFound error.
func (s *Store[T]) Get(id string) (T, error) {
	if rec, ok := s.GetIfExists(id); ok {
		return rec, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s with id %s", domain.ErrNotFound, s.name, id)
}

// GetIfExists returns the record with the given identifier, or false when
// no such record exists.
func (s *Store[T]) GetIfExists(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.data {
		if rec.Meta().ID == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// GetAll returns every record. With an empty sortKey the result is ordered
// by creation timestamp ascending; otherwise it is stably sorted ascending
// on the named field, ties keeping their original relative order.
func (s *Store[T]) GetAll(sortKey string) []T {
	s.mu.RLock()
	out := make([]T, len(s.data))
	copy(out, s.data)
	s.mu.RUnlock()

	if sortKey == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Meta().CreatedAt.Before(out[j].Meta().CreatedAt)
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Field(sortKey)
		b, _ := out[j].Field(sortKey)
		return lessValue(a, b)
	})
	return out
}

// Find returns the first record matching all given fields or a NotFound
// error when nothing matches.
func (s *Store[T]) Find(fields Fields) (T, error) {
	if rec, ok := s.FindIfExists(fields); ok {
		return rec, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s matching %v", domain.ErrNotFound, s.name, fields)
}

// FindIfExists returns the first record matching all given fields, or
// false when nothing matches.
func (s *Store[T]) FindIfExists(fields Fields) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.data {
		if matches(rec, fields) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching all given fields, insertion order
// preserved. An empty result is not an error.
func (s *Store[T]) Filter(fields Fields) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, rec := range s.data {
		if matches(rec, fields) {
			out = append(out, rec)
		}
	}
	return out
}

// Create appends the record. A record with the same identifier must not
// already exist.
func (s *Store[T]) Create(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(rec)
}

// CreateUnique appends the record after verifying, inside the same critical
// section, that no existing record matches uniq. The check and the append
// must not be split across two lock acquisitions: two in-flight creates of
// the same username would otherwise both pass the check. A conflict fails
// with UniqueConstraint carrying the given message.
func (s *Store[T]) CreateUnique(uniq Fields, conflict string, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data {
		if matches(existing, uniq) {
			var zero T
			return zero, fmt.Errorf("%w: %s", domain.ErrUniqueConstraint, conflict)
		}
	}
	return s.createLocked(rec)
}

// createLocked appends the record, rejecting a duplicate identifier.
// Callers must hold the write lock.
func (s *Store[T]) createLocked(rec T) (T, error) {
	id := rec.Meta().ID
	for _, existing := range s.data {
		if existing.Meta().ID == id {
			var zero T
			return zero, fmt.Errorf("%w: %s with id %s already exists", domain.ErrUniqueConstraint, s.name, id)
		}
	}
	s.data = append(s.data, rec)
	return rec, nil
}

// Mutate applies fn to the record under the store's write lock and bumps
// its updated-timestamp. Record fields must only be written through Mutate;
// readers hold the read lock while resolving fields, so an unguarded write
// would race with GetAll and Filter.
func (s *Store[T]) Mutate(id string, fn func(T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.data {
		if rec.Meta().ID == id {
			if fn != nil {
				fn(rec)
			}
			rec.Meta().Touch()
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s with id %s", domain.ErrNotFound, s.name, id)
}

// Update bumps the record's updated-timestamp and returns it. Update does
// not merge field values; it only refreshes bookkeeping and signals a save.
func (s *Store[T]) Update(id string) (T, error) {
	return s.Mutate(id, nil)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// matches reports whether the record equals every field/value pair.
func matches(rec domain.Record, fields Fields) bool {
	for name, want := range fields {
		got, ok := rec.Field(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// lessValue orders two field values of the same dynamic type. Supported
// types cover everything reachable through Field: strings, integers and
// timestamps.
func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case int64:
		bv, ok := b.(int64)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	}
	return false
}
