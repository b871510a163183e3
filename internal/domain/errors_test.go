package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: ErrBadRequest, want: http.StatusBadRequest},
		{name: "unique constraint", err: ErrUniqueConstraint, want: http.StatusBadRequest},
		{name: "unauthorized", err: ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "internal", err: ErrInternal, want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("%w: detail", ErrForbidden), want: http.StatusForbidden},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestIsClassified(t *testing.T) {
	require.True(t, IsClassified(ErrNotFound))
	require.True(t, IsClassified(fmt.Errorf("%w: user", ErrNotFound)))
	require.False(t, IsClassified(errors.New("boom")))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sentinel prefix stripped",
			err:  fmt.Errorf("%w: Combination of username and password is incorrect", ErrUnauthorized),
			want: "Combination of username and password is incorrect",
		},
		{
			name: "forbidden prefix stripped",
			err:  fmt.Errorf("%w: User already has an activity running", ErrForbidden),
			want: "User already has an activity running",
		},
		{
			name: "bare sentinel unchanged",
			err:  ErrNotFound,
			want: "not found",
		},
		{
			name: "unclassified unchanged",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Message(tt.err))
		})
	}
}
