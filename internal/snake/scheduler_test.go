package snake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerFixedSteps(t *testing.T) {
	s := NewScheduler(600*time.Millisecond, 5)

	require.Equal(t, 0, s.Advance(599*time.Millisecond))
	require.Equal(t, 1, s.Advance(time.Millisecond))
	require.Equal(t, 0, s.Advance(300*time.Millisecond))
	require.Equal(t, 1, s.Advance(300*time.Millisecond))
	require.Equal(t, 2, s.Advance(1300*time.Millisecond))
	// 100ms carried over from the previous call.
	require.Equal(t, 1, s.Advance(500*time.Millisecond))
}

func TestSchedulerFrameRateIndependent(t *testing.T) {
	fast := NewScheduler(300*time.Millisecond, 5)
	slow := NewScheduler(300*time.Millisecond, 5)

	fastSteps := 0
	for range 150 { // 3s at 50 fps
		fastSteps += fast.Advance(20 * time.Millisecond)
	}
	slowSteps := 0
	for range 30 { // 3s at 10 fps
		slowSteps += slow.Advance(100 * time.Millisecond)
	}

	require.Equal(t, 10, fastSteps)
	require.Equal(t, 10, slowSteps)
}

func TestSchedulerCatchUpCap(t *testing.T) {
	s := NewScheduler(100*time.Millisecond, 3)
	require.Equal(t, 3, s.Advance(time.Second))
	require.Equal(t, 0, s.Advance(50*time.Millisecond), "excess steps are dropped")
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(time.Second, 5)
	s.Advance(900 * time.Millisecond)

	s.Reset(300 * time.Millisecond)
	require.Equal(t, 300*time.Millisecond, s.Interval())
	require.Equal(t, 0, s.Advance(299*time.Millisecond), "accumulated time is dropped")
	require.Equal(t, 1, s.Advance(time.Millisecond))
}

func TestSchedulerIgnoresNonPositive(t *testing.T) {
	s := NewScheduler(time.Second, 5)
	require.Equal(t, 0, s.Advance(0))
	require.Equal(t, 0, s.Advance(-time.Hour))

	zero := NewScheduler(0, 5)
	require.Equal(t, 0, zero.Advance(time.Hour))
}
