package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/game"
	"snake-classic/game/types"
)

func TestBoard(t *testing.T) {
	snap := game.Snapshot{
		Grid:    types.NewSquareGrid(4),
		Body:    []types.Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Food:    types.Point{X: 3, Y: 3},
		HasFood: true,
	}

	want := [][]rune{
		[]rune("····"),
		[]rune("oo@·"),
		[]rune("····"),
		[]rune("···*"),
	}
	assert.Equal(t, want, Board(snap))

	t.Run("no food", func(t *testing.T) {
		snap.HasFood = false
		rows := Board(snap)
		assert.Equal(t, glyphEmpty, rows[3][3])
	})
}

func TestPanelLines(t *testing.T) {
	snap := game.Snapshot{
		Score:      30,
		HighScore:  120,
		SpeedLevel: types.DefaultSpeedLevel,
		Interval:   types.DefaultSpeedLevel.Interval(),
		Body:       make([]types.Point, 4),
	}
	lines := PanelLines(snap)
	assert.Equal(t, "Score: 30", lines[0])
	assert.Equal(t, "High Score: 120", lines[1])
	assert.Equal(t, "Speed: 5 (150ms)", lines[3])
	assert.Equal(t, "Length: 4", lines[4])
	assert.Len(t, lines, 5, "no history line without games")
}

func TestActionForEvent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want types.Action
	}{
		{tcell.KeyUp, 0, types.ActionUp},
		{tcell.KeyLeft, 0, types.ActionLeft},
		{tcell.KeyRune, 'd', types.ActionRight},
		{tcell.KeyRune, 'S', types.ActionDown},
		{tcell.KeyRune, ' ', types.ActionStartPause},
		{tcell.KeyRune, 'p', types.ActionPause},
		{tcell.KeyRune, 'r', types.ActionRestart},
		{tcell.KeyRune, '+', types.ActionSpeedUp},
		{tcell.KeyRune, '-', types.ActionSpeedDown},
		{tcell.KeyRune, 'q', types.ActionQuit},
		{tcell.KeyEscape, 0, types.ActionQuit},
		{tcell.KeyCtrlC, 0, types.ActionQuit},
		{tcell.KeyRune, 'x', types.ActionNone},
		{tcell.KeyF1, 0, types.ActionNone},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		assert.Equal(t, tt.want, ActionForEvent(ev), "key %v rune %q", tt.key, tt.ch)
	}
}

func TestRendererDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	require.NoError(t, screen.Init())
	defer screen.Fini()

	g := game.NewGame(game.Options{Seed: 7})
	snap := g.Snapshot()
	NewRenderer(screen).Draw(snap)

	head := snap.Head()
	mainc, _, _, _ := screen.GetContent(1+head.X*cellWidth, 1+head.Y)
	assert.Equal(t, glyphHead, mainc)

	food, _, _, _ := screen.GetContent(1+snap.Food.X*cellWidth, 1+snap.Food.Y)
	assert.Equal(t, glyphFood, food)

	corner, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, corner)
}
