package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/tempus-tracker/internal/domain"
	"github.com/prn-tf/tempus-tracker/internal/store"
)

// UserService handles user creation. Users are only ever created, never
// deleted, within this system's scope.
type UserService struct {
	users      *store.UserStore
	bcryptCost int
	logger     zerolog.Logger
}

// NewUserService creates a new UserService. A non-positive bcryptCost falls
// back to the bcrypt default.
func NewUserService(users *store.UserStore, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("service", "user").Logger(),
	}
}

// Create hashes the password and persists a new user. The ordering is
// strict: hash first, store second, so a plaintext password can never be
// observed through the store. A taken username fails with UniqueConstraint.
func (s *UserService) Create(username, password string) (*domain.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("%w: failed to hash password", domain.ErrInternal)
	}

	user, err := s.users.Create(domain.NewUser(username, string(passwordHash)))
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user created")

	return user, nil
}

// List returns all users in creation order.
func (s *UserService) List() []*domain.User {
	return s.users.GetAll("")
}
