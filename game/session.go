package game

import (
	"snake-classic/game/types"
)

// Session binds a Game to its Scheduler and translates frontend actions into
// core calls, keeping the schedule running exactly while the game is.
type Session struct {
	game  *Game
	sched *Scheduler
	level types.SpeedLevel // last level pushed to the scheduler
}

func NewSession(g *Game) *Session {
	level := g.SpeedLevel()
	return &Session{
		game:  g,
		sched: NewScheduler(g.Tick, level.Interval()),
		level: level,
	}
}

func (s *Session) Game() *Game {
	return s.game
}

func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

// Dispatch applies one input action and returns the resulting run state
func (s *Session) Dispatch(action types.Action) types.RunState {
	switch action {
	case types.ActionStartPause:
		switch s.game.State() {
		case types.Running, types.Paused:
			s.game.TogglePause()
		default:
			s.game.Start()
		}

	case types.ActionStart:
		s.game.Start()

	case types.ActionPause:
		s.game.TogglePause()

	case types.ActionRestart:
		s.sched.Stop()
		s.game.Reset()

	case types.ActionSpeedUp:
		s.applySpeed(s.game.StepSpeed(1))

	case types.ActionSpeedDown:
		s.applySpeed(s.game.StepSpeed(-1))

	case types.ActionUp, types.ActionDown, types.ActionLeft, types.ActionRight:
		dir, _ := action.Direction()
		switch s.game.State() {
		case types.Idle, types.Over:
			s.game.Start()
		case types.Paused:
			return types.Paused
		}
		s.game.SetPendingDirection(dir)
	}

	return s.sync()
}

// SetSpeedLevel sets the level from a slider-style control
func (s *Session) SetSpeedLevel(level int) types.SpeedLevel {
	l := s.game.SetSpeedLevel(level)
	s.applySpeed(l)
	return l
}

// Close stops the schedule
func (s *Session) Close() {
	s.sched.Stop()
}

func (s *Session) applySpeed(l types.SpeedLevel) {
	s.level = l
	s.sched.SetInterval(l.Interval())
}

func (s *Session) sync() types.RunState {
	// reset() may have restored the default level
	if l := s.game.SpeedLevel(); l != s.level {
		s.applySpeed(l)
	}
	state := s.game.State()
	if state == types.Running {
		s.sched.Start()
	} else {
		s.sched.Stop()
	}
	return state
}
