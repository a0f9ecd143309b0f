package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	maxScores     = types.MaxHistory // points kept in the history graph
	borderPadding = 10               // padding around game area
)

var (
	backgroundColor = rl.Color{R: 0x1a, G: 0x20, B: 0x2c, A: 255}
	gridLineColor   = rl.Color{R: 0x2d, G: 0x37, B: 0x48, A: 255}
	headColor       = rl.Color{R: 0xff, G: 0x6b, B: 0x35, A: 255}
	headHighlight   = rl.Color{R: 0xff, G: 0x8c, B: 0x42, A: 255}
	bodyColor       = rl.Color{R: 0x2d, G: 0x5a, B: 0x27, A: 255}
	bodyHighlight   = rl.Color{R: 0x4a, G: 0x7c, B: 0x59, A: 255}
	foodColor       = rl.Color{R: 0xe5, G: 0x3e, B: 0x3e, A: 255}
	foodHighlight   = rl.Color{R: 0xfc, G: 0x81, B: 0x81, A: 255}
)

// Layout is the pixel geometry of the board and the stats panel
type Layout struct {
	CellSize   int32
	OffsetX    int32
	OffsetY    int32
	GridWidth  int32
	GridHeight int32
	PanelX     int32
	PanelWidth int32
}

// ComputeLayout fits grid into a screen of the given size, leaving a side panel
func ComputeLayout(screenWidth, screenHeight int32, grid types.Grid) Layout {
	panel := screenWidth / 4
	gameWidth := screenWidth - panel

	availableWidth := gameWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2
	cell := min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	if cell < 1 {
		cell = 1
	}

	l := Layout{
		CellSize:   cell,
		GridWidth:  cell * int32(grid.Width),
		GridHeight: cell * int32(grid.Height),
		PanelX:     gameWidth + 5,
		PanelWidth: panel - 10,
	}
	l.OffsetX = borderPadding + (availableWidth-l.GridWidth)/2
	l.OffsetY = (screenHeight - l.GridHeight) / 2
	return l
}

// CellOrigin is the top-left pixel of cell p
func (l Layout) CellOrigin(p types.Point) (int32, int32) {
	return l.OffsetX + int32(p.X)*l.CellSize, l.OffsetY + int32(p.Y)*l.CellSize
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame of snap
func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	r.layout = ComputeLayout(r.screenWidth, r.screenHeight, snap.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	fontSize := max(r.screenHeight/36, 10)
	lineHeight := fontSize + fontSize/2

	r.drawGrid(snap.Grid)
	r.drawSnake(snap.Body)
	if snap.HasFood {
		r.drawFood(snap.Food)
	}
	r.drawStatsPanel(snap, fontSize, lineHeight)
	if snap.State == types.Over {
		r.drawGameOver(snap, fontSize)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(grid types.Grid) {
	l := r.layout
	rl.DrawRectangle(l.OffsetX-1, l.OffsetY-1, l.GridWidth+2, l.GridHeight+2, gridLineColor)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			px, py := l.CellOrigin(types.Point{X: x, Y: y})
			rl.DrawRectangle(px, py, l.CellSize, l.CellSize, backgroundColor)
			rl.DrawRectangleLines(px, py, l.CellSize, l.CellSize, gridLineColor)
		}
	}
}

func (r *Renderer) drawSnake(body []types.Point) {
	l := r.layout
	// draw tail first so the head stays on top
	for i := len(body) - 1; i >= 0; i-- {
		base, highlight := bodyColor, bodyHighlight
		if i == 0 {
			base, highlight = headColor, headHighlight
		}
		px, py := l.CellOrigin(body[i])
		rl.DrawRectangle(px+1, py+1, l.CellSize-2, l.CellSize-2, base)
		if l.CellSize > 6 {
			rl.DrawRectangle(px+3, py+3, l.CellSize-6, l.CellSize-6, highlight)
		}
	}
}

func (r *Renderer) drawFood(food types.Point) {
	l := r.layout
	px, py := l.CellOrigin(food)
	half := l.CellSize / 2
	rl.DrawCircle(px+half, py+half, float32(half-2), foodColor)
	rl.DrawCircle(px+half-3, py+half-3, 3, foodHighlight)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, fontSize, lineHeight int32) {
	l := r.layout
	x := l.PanelX
	y := int32(borderPadding * 2)

	rl.DrawRectangle(x-5, 0, r.screenWidth-x+5, r.screenHeight, rl.Color{R: 0x22, G: 0x2a, B: 0x38, A: 255})

	lines := []struct {
		text  string
		color rl.Color
	}{
		{fmt.Sprintf("Score: %d", snap.Score), rl.White},
		{fmt.Sprintf("High Score: %d", snap.HighScore), rl.Gold},
		{fmt.Sprintf("Session Best: %d", snap.SessionHigh), rl.LightGray},
		{fmt.Sprintf("Speed: %d (%dms)", snap.SpeedLevel, snap.Interval.Milliseconds()), rl.LightGray},
		{fmt.Sprintf("Length: %d", len(snap.Body)), rl.LightGray},
	}
	for _, line := range lines {
		rl.DrawText(line.text, x, y, fontSize, line.color)
		y += lineHeight
	}

	y += lineHeight / 2
	rl.DrawText(snap.StatusText(), x, y, fontSize*3/4, rl.SkyBlue)
	y += lineHeight * 2

	help := []string{
		"Arrows/WASD move",
		"Space start/pause",
		"P pause  R restart",
		"+/- speed  Q quit",
	}
	for _, h := range help {
		rl.DrawText(h, x, y, fontSize*2/3, rl.Gray)
		y += lineHeight * 3 / 4
	}

	r.drawPerformanceGraph(snap.HistoryScores(), x, fontSize)
}

func (r *Renderer) drawPerformanceGraph(scores []int, graphX, fontSize int32) {
	graphWidth := r.layout.PanelWidth
	graphHeight := r.screenHeight / 5
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("Last games", graphX, graphY-fontSize-5, fontSize*3/4, rl.White)

	points := GraphPoints(scores, graphWidth, graphHeight)
	for i := 1; i < len(points); i++ {
		rl.DrawLine(graphX+points[i-1][0], graphY+points[i-1][1], graphX+points[i][0], graphY+points[i][1], headColor)
	}

	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		avg := fmt.Sprintf("Games: %d  Avg: %.1f", len(scores), float64(sum)/float64(len(scores)))
		rl.DrawText(avg, graphX, r.screenHeight-fontSize-5, fontSize*2/3, rl.White)
	}
}

// GraphPoints maps scores to pixel offsets inside a width×height box
func GraphPoints(scores []int, width, height int32) [][2]int32 {
	maxScore := 1
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	points := make([][2]int32, len(scores))
	for i, s := range scores {
		points[i] = [2]int32{
			int32(float32(width) * float32(i) / float32(maxScores-1)),
			height - int32(float32(height)*float32(s)/float32(maxScore)),
		}
	}
	return points
}

func (r *Renderer) drawGameOver(snap game.Snapshot, fontSize int32) {
	l := r.layout
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.GridWidth, l.GridHeight, rl.Fade(rl.Black, 0.7))

	title := "Game Over"
	if snap.LastCollision == types.BoardFilled {
		title = "Board Cleared"
	}
	texts := []struct {
		text string
		size int32
		dy   int32
	}{
		{title, fontSize * 3 / 2, -fontSize * 2},
		{fmt.Sprintf("Score: %d", snap.Score), fontSize, 0},
		{"Press space to play again", fontSize * 3 / 4, fontSize * 3 / 2},
	}
	centerX := l.OffsetX + l.GridWidth/2
	centerY := l.OffsetY + l.GridHeight/2
	for _, t := range texts {
		w := rl.MeasureText(t.text, t.size)
		rl.DrawText(t.text, centerX-w/2, centerY+t.dy, t.size, rl.White)
	}
}
