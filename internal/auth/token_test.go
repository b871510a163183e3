package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prn-tf/tempus-tracker/internal/domain"
)

func testConfig() Config {
	return Config{
		Secret:      "test-secret",
		CookieName:  "jwt_access_token",
		TokenExpiry: time.Hour,
	}
}

func testUser() *domain.User {
	user := domain.NewUser("TestUser123", "hash")
	return user
}

func TestSignAndParse(t *testing.T) {
	cfg := testConfig()
	user := testUser()

	token, err := Sign(user, cfg, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, cfg)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "TestUser123", claims.Username)
	require.NotEmpty(t, claims.TokenID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestSign_UniqueTokenIDs(t *testing.T) {
	cfg := testConfig()
	user := testUser()

	first, err := Sign(user, cfg, time.Hour)
	require.NoError(t, err)
	second, err := Sign(user, cfg, time.Hour)
	require.NoError(t, err)

	a, err := Parse(first, cfg)
	require.NoError(t, err)
	b, err := Parse(second, cfg)
	require.NoError(t, err)
	require.NotEqual(t, a.TokenID, b.TokenID)
}

func TestParse_Expired(t *testing.T) {
	cfg := testConfig()

	token, err := Sign(testUser(), cfg, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, cfg)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_Invalid(t *testing.T) {
	cfg := testConfig()

	valid, err := Sign(testUser(), cfg, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: ErrMissingToken},
		{name: "garbage", token: "not.a.token", want: ErrTokenInvalid},
		{name: "tampered", token: valid + "x", want: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.token, cfg)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Sign(testUser(), testConfig(), time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, Config{Secret: "other-secret"})
	require.ErrorIs(t, err, ErrTokenInvalid)
}
