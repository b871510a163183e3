package store

import (
	"fmt"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

// UserStore is the user collection. On top of the generic store it enforces
// username uniqueness and offers credential lookup.
type UserStore struct {
	*Store[*domain.User]
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{Store: New[*domain.User]("user")}
}

// Create persists a user, rejecting duplicate usernames. The uniqueness
// check and the append happen atomically.
func (s *UserStore) Create(user *domain.User) (*domain.User, error) {
	return s.CreateUnique(
		Fields{"username": user.Username},
		fmt.Sprintf("username %q is already taken", user.Username),
		user,
	)
}

// FindByCredentials returns the user whose username matches and whose
// password hash verifies against the supplied plaintext. An unknown
// username and a wrong password both fail with the same NotFound error,
// deliberately not revealing which one it was. The password check cannot go
// through Filter because the hash is not reachable as a filterable field.
func (s *UserStore) FindByCredentials(username, password string) (*domain.User, error) {
	for _, user := range s.GetAll("") {
		if user.Username == username && user.CheckPassword(password) {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
}
