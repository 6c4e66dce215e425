package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deaddrop/internal/domain"
)

// fakeClock returns a controllable time source starting at a fixed instant.
func fakeClock() (func() time.Time, *time.Time) {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }, &t
}

func TestAdmit_UnderLimit_Allows(t *testing.T) {
	s := New(100, time.Minute)
	now, _ := fakeClock()
	s.now = now

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Admit("1.2.3.4"))
	}
}

func TestAdmit_OverLimit_Rejects(t *testing.T) {
	s := New(100, time.Minute)
	now, _ := fakeClock()
	s.now = now

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Admit("1.2.3.4"))
	}
	err := s.Admit("1.2.3.4")
	require.ErrorIs(t, err, domain.ErrTooManyRequests)

	// Rejection holds for the rest of the window.
	require.ErrorIs(t, s.Admit("1.2.3.4"), domain.ErrTooManyRequests)
}

func TestAdmit_WindowExpiry_Resets(t *testing.T) {
	s := New(2, time.Minute)
	clock, tick := fakeClock()
	s.now = clock

	require.NoError(t, s.Admit("c"))
	require.NoError(t, s.Admit("c"))
	require.ErrorIs(t, s.Admit("c"), domain.ErrTooManyRequests)

	*tick = tick.Add(time.Minute + time.Second)
	require.NoError(t, s.Admit("c"))
}

func TestAdmit_KeysAreIndependent(t *testing.T) {
	s := New(1, time.Minute)
	now, _ := fakeClock()
	s.now = now

	require.NoError(t, s.Admit("a"))
	require.ErrorIs(t, s.Admit("a"), domain.ErrTooManyRequests)
	require.NoError(t, s.Admit("b"))
}

func TestSweepExpired_DropsOnlyDeadWindows(t *testing.T) {
	s := New(10, time.Minute)
	clock, tick := fakeClock()
	s.now = clock

	require.NoError(t, s.Admit("old"))
	*tick = tick.Add(30 * time.Second)
	require.NoError(t, s.Admit("fresh"))

	removed := s.SweepExpired(tick.Add(45 * time.Second))
	require.Equal(t, 1, removed)

	s.mu.Lock()
	_, oldThere := s.records["old"]
	_, freshThere := s.records["fresh"]
	s.mu.Unlock()
	require.False(t, oldThere)
	require.True(t, freshThere)
}
