package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewActivity(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")

	require.NotEmpty(t, a.ID)
	require.Equal(t, "coding", a.Name)
	require.Equal(t, "owner-1", a.OwnerID)
	require.Equal(t, "user1", a.Username)
	require.Equal(t, StatusRunning, a.Status)
	require.Nil(t, a.EndedAt)
	require.False(t, a.StartedAt.IsZero())
}

func TestActivity_Finish(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")

	a.Finish()
	require.Equal(t, StatusStopped, a.Status)
	require.NotNil(t, a.EndedAt)

	// Finishing again keeps the original end timestamp.
	end := *a.EndedAt
	time.Sleep(5 * time.Millisecond)
	a.Finish()
	require.Equal(t, end, *a.EndedAt)
}

func TestActivity_Restart(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")
	a.Finish()

	started := a.StartedAt
	time.Sleep(5 * time.Millisecond)
	a.Restart()

	require.Equal(t, StatusRunning, a.Status)
	require.Nil(t, a.EndedAt)
	require.True(t, a.StartedAt.After(started))
}

func TestActivity_ElapsedMillis(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")

	// A running activity measures against the wall clock, so elapsed time
	// keeps growing between calls.
	time.Sleep(30 * time.Millisecond)
	first := a.ElapsedMillis()
	require.GreaterOrEqual(t, first, int64(25))

	time.Sleep(30 * time.Millisecond)
	second := a.ElapsedMillis()
	require.Greater(t, second, first)

	// Once stopped the value freezes.
	a.Finish()
	frozen := a.ElapsedMillis()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, frozen, a.ElapsedMillis())
}

func TestActivity_FormattedElapsed(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{name: "sub-second", elapsed: 42 * time.Millisecond, want: "0.042s"},
		{name: "seconds", elapsed: 1500 * time.Millisecond, want: "1.500s"},
		{name: "minutes", elapsed: 83*time.Second + 6*time.Millisecond, want: "83.006s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActivity("coding", "owner-1", "user1")
			a.StartedAt = time.Now().UTC().Add(-tt.elapsed)
			end := a.StartedAt.Add(tt.elapsed)
			a.EndedAt = &end
			a.Status = StatusStopped

			require.Equal(t, tt.want, a.FormattedElapsed())
		})
	}
}

func TestActivity_Field(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")

	tests := []struct {
		field string
		want  any
	}{
		{field: "activity", want: "coding"},
		{field: "userId", want: "owner-1"},
		{field: "username", want: "user1"},
		{field: "status", want: string(StatusRunning)},
		{field: "id", want: a.ID},
	}

	for _, tt := range tests {
		got, ok := a.Field(tt.field)
		require.True(t, ok, tt.field)
		require.Equal(t, tt.want, got, tt.field)
	}

	_, ok := a.Field("password")
	require.False(t, ok)
}

func TestActivity_Representation(t *testing.T) {
	a := NewActivity("coding", "owner-1", "user1")
	a.Finish()

	rep := a.Representation()
	require.Equal(t, a.ID, rep.ID)
	require.Equal(t, "coding", rep.Activity)
	require.Equal(t, "owner-1", rep.UserID)
	require.Equal(t, "user1", rep.Username)
	require.Equal(t, StatusStopped, rep.Status)
	require.NotNil(t, rep.EndedAt)
	require.Equal(t, a.ElapsedMillis(), rep.Time)
	require.Regexp(t, `^\d+\.\d{3}s$`, rep.FormattedTime)
}
