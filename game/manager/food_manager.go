package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// Rejection sampling gives up after this many draws per grid cell and scans instead
const sampleAttemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager seeds placement from seed; zero picks a time-based seed
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell not covered by snake.
// ok is false only when the body covers every cell.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	attempts := fm.grid.Cells() * sampleAttemptsPerCell
	for i := 0; i < attempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
	return fm.scanFreeCell(snake)
}

// scanFreeCell draws uniformly among the remaining free cells
func (fm *FoodManager) scanFreeCell(snake *entity.Snake) (types.Point, bool) {
	free := make([]types.Point, 0, max(fm.grid.Cells()-snake.Len(), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
