package game

import (
	"sync"
	"time"

	"snake-classic/game/types"
)

// Scheduler calls tick repeatedly, one interval apart, until tick stops
// returning Running or Stop is called. Changing the interval cancels the
// pending call and schedules a new one; a generation counter discards
// callbacks from timers that were replaced.
type Scheduler struct {
	mu       sync.Mutex
	tick     func() types.RunState
	onTick   func(types.RunState)
	interval time.Duration
	timer    *time.Timer
	gen      uint64
	running  bool
	ticks    uint64
}

func NewScheduler(tick func() types.RunState, interval time.Duration) *Scheduler {
	return &Scheduler{
		tick:     tick,
		interval: interval,
	}
}

// OnTick installs fn to run after every tick, outside the scheduler lock
func (s *Scheduler) OnTick(fn func(types.RunState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// Start arms the timer; no-op when already running
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.scheduleLocked()
}

// Stop cancels the pending tick
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// SetInterval replaces the delay; a running schedule is re-armed with it
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
	if s.running {
		s.cancelLocked()
		s.scheduleLocked()
	}
}

func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Ticks is the number of ticks delivered so far
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

func (s *Scheduler) scheduleLocked() {
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.interval, func() { s.fire(gen) })
}

func (s *Scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *Scheduler) stopLocked() {
	s.cancelLocked()
	s.running = false
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if !s.running || gen != s.gen {
		s.mu.Unlock()
		return
	}

	// tick runs under the scheduler lock so a concurrent SetInterval or Stop
	// cannot interleave with it
	state := s.tick()
	s.ticks++
	if state == types.Running {
		s.scheduleLocked()
	} else {
		s.stopLocked()
	}
	onTick := s.onTick
	s.mu.Unlock()

	if onTick != nil {
		onTick(state)
	}
}
