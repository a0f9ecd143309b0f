package types

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p one step along d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a count×count grid
func NewSquareGrid(count int) Grid {
	return Grid{Width: count, Height: count}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, used as the spawn point
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Direction is a unit delta on the grid
type Direction Point

var (
	Neutral = Direction{X: 0, Y: 0}
	Up      = Direction{X: 0, Y: -1}
	Down    = Direction{X: 0, Y: 1}
	Left    = Direction{X: -1, Y: 0}
	Right   = Direction{X: 1, Y: 0}
)

// Opposite returns the reverse of d
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsNeutral reports whether d is the zero vector
func (d Direction) IsNeutral() bool {
	return d == Neutral
}

// IsCardinal reports whether d is one of the four unit moves
func (d Direction) IsCardinal() bool {
	return d == Up || d == Down || d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Neutral:
		return "neutral"
	}
	return "invalid"
}

// RunState is the lifecycle phase of a game
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Over
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	}
	return "unknown"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFilled // no free cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFilled:
		return "board filled"
	}
	return "none"
}

// Action is a frontend-neutral input command
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStartPause // space: start when stopped, pause/resume otherwise
	ActionStart
	ActionPause
	ActionRestart
	ActionSpeedUp
	ActionSpeedDown
	ActionQuit
)

// Direction returns the movement intent carried by a directional action
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return Neutral, false
}

// Game constants
const (
	GridCount      = 20 // cells per side
	ScoreIncrement = 10 // points per food
	InitialLength  = 3  // body length after reset
	MaxHistory     = 50 // game records kept per session
	HighScoreKey   = "snakeHighScore"
)
