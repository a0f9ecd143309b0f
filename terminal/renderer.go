package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/types"
)

// Each board cell is two columns wide so the board looks square in most fonts
const cellWidth = 2

const (
	glyphEmpty = '·'
	glyphBody  = 'o'
	glyphHead  = '@'
	glyphFood  = '*'
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleEmpty   = styleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleBody    = styleDefault.Foreground(tcell.ColorGreen)
	styleHead    = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleFood    = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = styleDefault.Foreground(tcell.ColorLightSkyBlue)
	styleHelp    = styleDefault.Foreground(tcell.ColorGray)
)

// Board returns one glyph per cell, indexed [y][x]
func Board(snap game.Snapshot) [][]rune {
	rows := make([][]rune, snap.Grid.Height)
	for y := range rows {
		rows[y] = make([]rune, snap.Grid.Width)
		for x := range rows[y] {
			rows[y][x] = glyphEmpty
		}
	}
	if snap.HasFood && snap.Grid.Contains(snap.Food) {
		rows[snap.Food.Y][snap.Food.X] = glyphFood
	}
	for i, p := range snap.Body {
		if !snap.Grid.Contains(p) {
			continue
		}
		if i == 0 {
			rows[p.Y][p.X] = glyphHead
		} else {
			rows[p.Y][p.X] = glyphBody
		}
	}
	return rows
}

// PanelLines is the text shown beside the board
func PanelLines(snap game.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High Score: %d", snap.HighScore),
		fmt.Sprintf("Session Best: %d", snap.SessionHigh),
		fmt.Sprintf("Speed: %d (%dms)", snap.SpeedLevel, snap.Interval.Milliseconds()),
		fmt.Sprintf("Length: %d", len(snap.Body)),
	}
	if scores := snap.HistoryScores(); len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		lines = append(lines, fmt.Sprintf("Games: %d  Avg: %.1f", len(scores), float64(sum)/float64(len(scores))))
	}
	return lines
}

var helpLines = []string{
	"arrows/wasd  move",
	"space        start/pause",
	"p pause  r restart",
	"+/- speed  q quit",
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders snap and flushes the screen
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.SetStyle(styleDefault)
	r.screen.Clear()

	boardW := snap.Grid.Width*cellWidth + 2
	boardH := snap.Grid.Height + 2
	r.drawBorder(0, 0, boardW, boardH)

	for y, row := range Board(snap) {
		for x, g := range row {
			style := styleEmpty
			switch g {
			case glyphHead:
				style = styleHead
			case glyphBody:
				style = styleBody
			case glyphFood:
				style = styleFood
			}
			r.screen.SetContent(1+x*cellWidth, 1+y, g, nil, style)
		}
	}

	panelX := boardW + 2
	y := 1
	for _, line := range PanelLines(snap) {
		r.drawText(panelX, y, line, styleDefault)
		y++
	}
	y++
	r.drawText(panelX, y, snap.StatusText(), styleStatus)
	y += 2
	for _, line := range helpLines {
		r.drawText(panelX, y, line, styleHelp)
		y++
	}

	if snap.State == types.Over {
		title := " GAME OVER "
		if snap.LastCollision == types.BoardFilled {
			title = " BOARD CLEARED "
		}
		r.drawText((boardW-len(title))/2, boardH/2, title, styleHead.Reverse(true))
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(x0, y0, w, h int) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
