package types

import "time"

// SpeedLevel selects the tick interval, 1 slowest to 10 fastest
type SpeedLevel int

const (
	MinSpeedLevel     SpeedLevel = 1
	MaxSpeedLevel     SpeedLevel = 10
	DefaultSpeedLevel SpeedLevel = 5
)

// speedIntervals is indexed by level, slot 0 unused
var speedIntervals = [...]time.Duration{
	0,
	300 * time.Millisecond,
	250 * time.Millisecond,
	200 * time.Millisecond,
	175 * time.Millisecond,
	150 * time.Millisecond,
	125 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond,
	60 * time.Millisecond,
	40 * time.Millisecond,
}

// ClampSpeedLevel validates level; anything outside 1..10 becomes the default
func ClampSpeedLevel(level int) SpeedLevel {
	l := SpeedLevel(level)
	if !l.Valid() {
		return DefaultSpeedLevel
	}
	return l
}

// Valid reports whether l is inside the speed table
func (l SpeedLevel) Valid() bool {
	return l >= MinSpeedLevel && l <= MaxSpeedLevel
}

// Interval returns the tick delay for l
func (l SpeedLevel) Interval() time.Duration {
	if !l.Valid() {
		l = DefaultSpeedLevel
	}
	return speedIntervals[l]
}

// Step moves the level by delta, saturating at the table bounds
func (l SpeedLevel) Step(delta int) SpeedLevel {
	n := l + SpeedLevel(delta)
	if n < MinSpeedLevel {
		return MinSpeedLevel
	}
	if n > MaxSpeedLevel {
		return MaxSpeedLevel
	}
	return n
}
