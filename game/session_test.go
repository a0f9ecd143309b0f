package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/game/types"
)

// slowSession never lets the scheduler fire during a test
func slowSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(newTestGame(t, 0))
	s.Scheduler().SetInterval(time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestSessionStartPause(t *testing.T) {
	s := slowSession(t)

	assert.Equal(t, types.Running, s.Dispatch(types.ActionStartPause))
	assert.True(t, s.Scheduler().Running())

	assert.Equal(t, types.Paused, s.Dispatch(types.ActionStartPause))
	assert.False(t, s.Scheduler().Running())

	assert.Equal(t, types.Running, s.Dispatch(types.ActionStartPause))
	assert.True(t, s.Scheduler().Running())

	assert.Equal(t, types.Paused, s.Dispatch(types.ActionPause))
	assert.Equal(t, types.Running, s.Dispatch(types.ActionStart), "start resumes")
}

func TestSessionDirectionStartsGame(t *testing.T) {
	s := slowSession(t)

	assert.Equal(t, types.Running, s.Dispatch(types.ActionUp))
	assert.Equal(t, types.Up, s.Game().snake.NextDirection())
	assert.Equal(t, types.Right, s.Game().snake.Heading())

	s.Dispatch(types.ActionPause)
	assert.Equal(t, types.Paused, s.Dispatch(types.ActionLeft))
	assert.Equal(t, types.Up, s.Game().snake.NextDirection(), "ignored while paused")
}

func TestSessionRestart(t *testing.T) {
	s := slowSession(t)
	s.Dispatch(types.ActionStart)
	require.True(t, s.Scheduler().Running())

	assert.Equal(t, types.Idle, s.Dispatch(types.ActionRestart))
	assert.False(t, s.Scheduler().Running())
	assert.Len(t, s.Game().Snapshot().Body, types.InitialLength)
}

func TestSessionSpeed(t *testing.T) {
	s := NewSession(newTestGame(t, 0))
	t.Cleanup(s.Close)
	assert.Equal(t, 150*time.Millisecond, s.Scheduler().Interval())

	s.Dispatch(types.ActionSpeedUp)
	assert.Equal(t, types.SpeedLevel(6), s.Game().SpeedLevel())
	assert.Equal(t, 125*time.Millisecond, s.Scheduler().Interval())

	s.Dispatch(types.ActionSpeedDown)
	s.Dispatch(types.ActionSpeedDown)
	assert.Equal(t, 175*time.Millisecond, s.Scheduler().Interval())

	assert.Equal(t, types.DefaultSpeedLevel, s.SetSpeedLevel(11))
	assert.Equal(t, 150*time.Millisecond, s.Scheduler().Interval())
}

func TestSessionRunsToGameOver(t *testing.T) {
	s := NewSession(newTestGame(t, 0))
	t.Cleanup(s.Close)
	s.SetSpeedLevel(10)

	s.Dispatch(types.ActionUp)
	// heading up from row 10 reaches the top wall on the 11th tick
	assert.Eventually(t, func() bool { return s.Game().State() == types.Over }, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return !s.Scheduler().Running() }, time.Second, time.Millisecond)
}
