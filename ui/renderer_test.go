package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"snake-classic/game/types"
)

func TestComputeLayout(t *testing.T) {
	grid := types.NewSquareGrid(types.GridCount)
	l := ComputeLayout(800, 560, grid)

	assert.Equal(t, int32(27), l.CellSize)
	assert.Equal(t, l.CellSize*20, l.GridWidth)
	assert.Equal(t, l.GridWidth, l.GridHeight)
	assert.GreaterOrEqual(t, l.OffsetX, int32(borderPadding))
	assert.LessOrEqual(t, l.OffsetX+l.GridWidth, l.PanelX, "board stays left of the panel")
	assert.Equal(t, (int32(560)-l.GridHeight)/2, l.OffsetY)

	x, y := l.CellOrigin(types.Point{X: 2, Y: 3})
	assert.Equal(t, l.OffsetX+2*l.CellSize, x)
	assert.Equal(t, l.OffsetY+3*l.CellSize, y)

	t.Run("tiny window keeps a positive cell", func(t *testing.T) {
		assert.Equal(t, int32(1), ComputeLayout(30, 30, grid).CellSize)
	})
}

func TestGraphPoints(t *testing.T) {
	points := GraphPoints([]int{0, 50, 100}, 98, 100)
	assert.Equal(t, [][2]int32{{0, 100}, {2, 50}, {4, 0}}, points)
	assert.Empty(t, GraphPoints(nil, 10, 10))
}

func TestActionForKey(t *testing.T) {
	tests := map[int32]types.Action{
		rl.KeyUp:     types.ActionUp,
		rl.KeyW:      types.ActionUp,
		rl.KeyS:      types.ActionDown,
		rl.KeyLeft:   types.ActionLeft,
		rl.KeyD:      types.ActionRight,
		rl.KeySpace:  types.ActionStartPause,
		rl.KeyR:      types.ActionRestart,
		rl.KeyEqual:  types.ActionSpeedUp,
		rl.KeyMinus:  types.ActionSpeedDown,
		rl.KeyEscape: types.ActionQuit,
		rl.KeyZ:      types.ActionNone,
	}
	for key, want := range tests {
		assert.Equal(t, want, ActionForKey(key), "key %d", key)
	}
}
