package collision

import (
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("korea.dat", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("Ball.iff", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"korea.dat", "Ball.iff"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	require.ErrorIs(t, tracker.Track("", 1), errs.ErrInvalidEntryName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("korea.dat", 1))
	require.ErrorIs(t, tracker.Track("korea.dat", 1), errs.ErrDuplicateEntry)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a.dat", 42))
	require.NoError(t, tracker.Track("b.dat", 42))
	require.True(t, tracker.HasCollision())
	require.Equal(t, []string{"a.dat", "b.dat"}, tracker.Names())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a.dat", 42))
	require.NoError(t, tracker.Track("b.dat", 42))

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())

	require.NoError(t, tracker.Track("a.dat", 42))
	require.False(t, tracker.HasCollision())
}
