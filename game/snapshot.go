package game

import (
	"fmt"
	"time"

	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Snapshot is a read-only copy of the game for renderers
type Snapshot struct {
	Grid          types.Grid
	Body          []types.Point // head first
	Direction     types.Direction
	Food          types.Point
	HasFood       bool
	Score         int
	HighScore     int
	SessionHigh   int
	State         types.RunState
	SpeedLevel    types.SpeedLevel
	Interval      time.Duration
	LastCollision types.CollisionType
	History       []manager.GameRecord
}

// Head returns the first body cell
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}

// StatusText is the one-line status shown under the board
func (s Snapshot) StatusText() string {
	switch s.State {
	case types.Running:
		return "Playing"
	case types.Paused:
		return "Paused - press space to resume"
	case types.Over:
		if s.LastCollision == types.BoardFilled {
			return fmt.Sprintf("Board cleared! Final score: %d", s.Score)
		}
		return fmt.Sprintf("Game over! Final score: %d", s.Score)
	}
	return "Press space to start"
}

// HistoryScores returns the scores of past games, oldest first
func (s Snapshot) HistoryScores() []int {
	scores := make([]int, len(s.History))
	for i, r := range s.History {
		scores[i] = r.Score
	}
	return scores
}
