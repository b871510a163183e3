package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/tempus-tracker/internal/domain"
	"github.com/prn-tf/tempus-tracker/internal/store"
)

func newUserService() (*UserService, *store.UserStore) {
	users := store.NewUserStore()
	return NewUserService(users, bcrypt.MinCost, zerolog.Nop()), users
}

func TestUserService_Create(t *testing.T) {
	svc, users := newUserService()

	user, err := svc.Create("TestUser123", "StrongPWD1")
	require.NoError(t, err)
	require.Equal(t, "TestUser123", user.Username)
	require.NotEmpty(t, user.ID)

	// The store holds a bcrypt hash, never the plaintext.
	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	require.NotEqual(t, "StrongPWD1", stored.PasswordHash)
	require.True(t, stored.CheckPassword("StrongPWD1"))
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Create("TestUser123", "StrongPWD1")
	require.NoError(t, err)

	_, err = svc.Create("TestUser123", "OtherPWD1")
	require.ErrorIs(t, err, domain.ErrUniqueConstraint)
}

func TestUserService_List(t *testing.T) {
	svc, _ := newUserService()
	require.Empty(t, svc.List())

	first, err := svc.Create("user1", "StrongPWD1")
	require.NoError(t, err)
	second, err := svc.Create("user2", "StrongPWD2")
	require.NoError(t, err)

	require.Equal(t, []*domain.User{first, second}, svc.List())
}
