package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies what the head would hit entering pos.
// The whole body counts, tail included, since the tail is removed only after the move.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.Occupies(pos)
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return !cm.isWallCollision(pos) && !cm.isSelfCollision(pos, snake)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
