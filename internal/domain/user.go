package domain

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered user in the system.
// Users own activities; ownership is tracked on the Activity side through
// the owner identifier, never as a list held here.
type User struct {
	Entity

	// Username is the unique, case-sensitive username for login.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This is never exposed in API responses.
	PasswordHash string `json:"-"`

	// RunningActivityID points at the activity the user currently has
	// running, if any. Informational cache only: the authoritative state
	// lives on the Activity records in the activity store.
	RunningActivityID string `json:"-"`
}

// NewUser creates a User from an already hashed password. Hashing is the
// caller's job (see service.UserService.Create) so a plaintext password is
// never stored by mistake.
func NewUser(username, passwordHash string) *User {
	return &User{
		Entity:       NewEntity(),
		Username:     username,
		PasswordHash: passwordHash,
	}
}

// CheckPassword verifies a plaintext password against the stored hash.
// It returns false on any mismatch or malformed hash, never an error.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// Field resolves the filterable attributes of a user. The password hash is
// deliberately not reachable through Field.
func (u *User) Field(name string) (any, bool) {
	if name == "username" {
		return u.Username, true
	}
	return u.Entity.Field(name)
}
