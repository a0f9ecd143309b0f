package game

import (
	"sync"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Listener receives core events. Calls happen synchronously while the game
// lock is held: implementations must return quickly and must not call back into Game.
type Listener interface {
	OnFoodEaten(score int)
	OnHighScore(highScore int)
	OnGameOver(record manager.GameRecord, cause types.CollisionType)
}

// Options configures a new Game
type Options struct {
	GridCount           int    // cells per side, defaults to types.GridCount
	Seed                uint64 // food placement seed, 0 = time based
	HighScore           int    // value read from the store at startup
	SpeedLevel          int    // 1..10, invalid falls back to the default
	ResetSpeedOnRestart bool   // reset() restores the default speed level
	Now                 func() time.Time
}

// Game is the snake state machine. All methods are safe for concurrent use;
// mutations are serialized on a single mutex.
type Game struct {
	mu sync.Mutex

	grid          types.Grid
	snake         *entity.Snake
	food          types.Point
	hasFood       bool
	state         types.RunState
	speed         types.SpeedLevel
	lastCollision types.CollisionType
	resetSpeed    bool
	now           func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	listeners []Listener
}

func NewGame(opts Options) *Game {
	count := opts.GridCount
	if count <= types.InitialLength {
		count = types.GridCount
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	grid := types.NewSquareGrid(count)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		grid:         grid,
		snake:        entity.NewSnake(grid.Center()),
		state:        types.Idle,
		speed:        types.ClampSpeedLevel(opts.SpeedLevel),
		resetSpeed:   opts.ResetSpeedOnRestart,
		now:          now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, opts.Seed),
		stateMgr:     manager.NewStateManager(opts.HighScore),
	}
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	return g
}

// AddListener registers l for core events
func (g *Game) AddListener(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// SetPendingDirection buffers dir for the next tick. Reversals of the
// committed direction are dropped silently, and nothing changes while paused or over.
func (g *Game) SetPendingDirection(dir types.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == types.Paused || g.state == types.Over {
		return false
	}
	return g.snake.SetDirection(dir)
}

// Tick advances the simulation one cell. It is a no-op unless running.
func (g *Game) Tick() types.RunState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != types.Running {
		return g.state
	}

	g.snake.CommitDirection()
	newHead := g.snake.NextHead()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.gameOverLocked(collision)
		return g.state
	}

	g.snake.Move(newHead)

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		score, improved := g.stateMgr.AddScore()
		for _, l := range g.listeners {
			l.OnFoodEaten(score)
		}
		if improved {
			high := g.stateMgr.GetHighScore()
			for _, l := range g.listeners {
				l.OnHighScore(high)
			}
		}
		g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
		if !g.hasFood {
			g.gameOverLocked(types.BoardFilled)
		}
	} else {
		g.snake.RemoveTail()
	}

	return g.state
}

func (g *Game) gameOverLocked(cause types.CollisionType) {
	g.state = types.Over
	g.lastCollision = cause
	record := g.stateMgr.EndGame(g.now(), g.snake.Len())
	for _, l := range g.listeners {
		l.OnGameOver(record, cause)
	}
}

// Reset lays out a fresh 3-cell snake and returns to idle. The high score is kept.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetLocked()
	g.state = types.Idle
}

func (g *Game) resetLocked() {
	g.snake = entity.NewHorizontalSnake(g.grid.Center(), types.InitialLength)
	g.snake.SetHeading(types.Neutral)
	g.snake.SetNextDirection(types.Right)
	g.stateMgr.ResetScore()
	g.lastCollision = types.NoCollision
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	if g.resetSpeed {
		g.speed = types.DefaultSpeedLevel
	}
}

// Start begins a new game from idle or over, or resumes a paused one
func (g *Game) Start() types.RunState {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case types.Paused:
		g.state = types.Running
	case types.Idle, types.Over:
		g.resetLocked()
		g.snake.SetHeading(types.Right)
		g.stateMgr.BeginGame(g.now())
		g.state = types.Running
	}
	return g.state
}

// TogglePause flips between running and paused; other states are untouched
func (g *Game) TogglePause() types.RunState {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case types.Running:
		g.state = types.Paused
	case types.Paused:
		g.state = types.Running
	}
	return g.state
}

// SetSpeedLevel validates level and returns the level in effect
func (g *Game) SetSpeedLevel(level int) types.SpeedLevel {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.speed = types.ClampSpeedLevel(level)
	return g.speed
}

// StepSpeed nudges the speed level by delta within 1..10
func (g *Game) StepSpeed(delta int) types.SpeedLevel {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.speed = g.speed.Step(delta)
	return g.speed
}

func (g *Game) SpeedLevel() types.SpeedLevel {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed
}

// Interval is the tick delay for the scheduler
func (g *Game) Interval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed.Interval()
}

func (g *Game) State() types.RunState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Game) GetHighScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMgr.GetHighScore()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Snapshot copies the render-relevant state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Grid:          g.grid,
		Body:          g.snake.Cells(),
		Direction:     g.snake.Heading(),
		Food:          g.food,
		HasFood:       g.hasFood,
		Score:         g.stateMgr.GetScore(),
		HighScore:     g.stateMgr.GetHighScore(),
		SessionHigh:   g.stateMgr.GetSessionHigh(),
		State:         g.state,
		SpeedLevel:    g.speed,
		Interval:      g.speed.Interval(),
		LastCollision: g.lastCollision,
		History:       g.stateMgr.GetScoreHistory(),
	}
}
