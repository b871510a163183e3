package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUser_CheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("StrongPWD1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := NewUser("TestUser123", string(hash))

	require.True(t, user.CheckPassword("StrongPWD1"))
	require.False(t, user.CheckPassword("WrongPWD1"))
	require.False(t, user.CheckPassword(""))

	// A malformed hash fails verification rather than erroring.
	broken := NewUser("TestUser123", "not-a-bcrypt-hash")
	require.False(t, broken.CheckPassword("StrongPWD1"))
}

func TestUser_Field(t *testing.T) {
	user := NewUser("TestUser123", "hash")

	got, ok := user.Field("username")
	require.True(t, ok)
	require.Equal(t, "TestUser123", got)

	// The password hash must not be reachable as a filterable field.
	_, ok = user.Field("passwordHash")
	require.False(t, ok)
	_, ok = user.Field("password")
	require.False(t, ok)
}

func TestUser_JSONHidesSecrets(t *testing.T) {
	user := NewUser("TestUser123", "some-hash")
	user.RunningActivityID = "activity-1"

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "username")
	require.NotContains(t, decoded, "passwordHash")
	require.NotContains(t, decoded, "PasswordHash")
	require.NotContains(t, decoded, "RunningActivityID")
}
