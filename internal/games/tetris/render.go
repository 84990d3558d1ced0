package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2  // screen columns per well column
	hudGap    = 2  // space between well and side panel
	hudWidth  = 14 // side panel width
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cfg := g.engine.Config()
	wellW := cfg.Cols*cellWidth + 2
	wellH := cfg.Rows + 2
	totalW := wellW + hudGap + hudWidth

	wellX := (g.screenW - totalW) / 2
	wellY := (g.screenH - wellH) / 2
	well := core.NewRect(wellX, wellY, wellW, wellH)

	g.renderWell(dst, well)
	g.renderHUD(dst, well.Right()+hudGap, wellY)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// screenPos converts a well cell to the screen position of its left half.
// Row 0 is the floor, so rows are flipped.
func (g *Game) screenPos(well core.Rect, c Cell) (int, int) {
	rows := g.engine.Config().Rows
	return well.X + 1 + c.Col*cellWidth, well.Y + 1 + (rows - 1 - c.Row)
}

func drawBlock(dst *core.Screen, x, y int, t PieceType) {
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, blockRune, t.Color())
	}
}

// renderWell draws the border, locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well)

	for r, row := range g.engine.Grid() {
		for c, t := range row {
			x, y := g.screenPos(well, Cell{Row: r, Col: c})
			if t == None {
				dst.SetCell(x, y, emptyRune, core.ColorGray)
				continue
			}
			drawBlock(dst, x, y, t)
		}
	}

	active, ok := g.engine.Active()
	if !ok {
		return
	}
	rows, cols := g.engine.Config().Rows, g.engine.Config().Cols
	for _, c := range g.engine.ActiveCells() {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			continue
		}
		x, y := g.screenPos(well, c)
		drawBlock(dst, x, y, active)
	}
}

// renderHUD draws the title, score, line count and next-piece preview.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawColorText(x, y, "T E T R I S", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", g.engine.Score()))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines: %d", g.engine.LinesCleared()))

	dst.DrawText(x, y+5, "Next:")
	next, ok := g.engine.Upcoming()
	if !ok {
		return
	}
	// Offsets span dx in [-1, 1] and dy in [0, 3].
	previewTop := y + 6
	for _, o := range next.Offsets() {
		px := x + (o.DX+1)*cellWidth
		py := previewTop + 3 - o.DY
		drawBlock(dst, px, py, next)
	}
}

// renderOverlays draws pause and game-over boxes over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	cx, cy := well.Center()

	switch g.engine.Phase() {
	case PhasePaused:
		drawOverlay(dst, cx, cy, "PAUSED", "P to resume")
	case PhaseGameOver:
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score()), "R to restart")
	}
}

// drawOverlay draws a boxed, centered block of text lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawColorText(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/Space: Rotate | ↓: Drop | P: Pause | R: Restart | Q: Quit"
}
