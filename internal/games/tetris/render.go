package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW  = 2 // runes per grid cell
	panelW = 22
	panelH = 22
	gap    = 1
)

// layoutSize returns the screen size the well and the side panel need.
func (g *Game) layoutSize() (w, h int) {
	rows, cols := g.cfg.Playfield.Rows(), g.cfg.Playfield.Columns()
	wellW, wellH := cols*cellW+2, rows+2
	return wellW + gap + panelW, max(wellH, panelH)
}

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	needW, needH := g.layoutSize()
	if g.tooSmall {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	ox := (dst.Width() - needW) / 2
	oy := (dst.Height() - needH) / 2
	wellW := g.board.Columns()*cellW + 2

	g.renderWell(dst, ox, oy)
	g.renderPanel(dst, ox+wellW+gap, oy)

	switch {
	case g.gameOver:
		s := g.State()
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score %d  Level %d  Lines %d", s.Score, s.Level, s.Lines),
			"Press R to restart")
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the border, the locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	grid := g.board.Grid()
	dst.DrawBox(core.NewRect(ox, oy, grid.Columns()*cellW+2, grid.Rows()+2), core.ColorGray)

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Columns(); x++ {
			drawCell(dst, ox+1+x*cellW, oy+1+y, grid.At(x, y))
		}
	}

	if g.gameOver {
		return
	}
	cur := g.board.Current()
	for _, c := range cur.Cells() {
		x, y := cur.X+c.X, cur.Y+c.Y
		if grid.InBounds(x, y) {
			drawCell(dst, ox+1+x*cellW, oy+1+y, c.Kind)
		}
	}
}

func drawCell(dst *core.Screen, x, y int, k engine.Kind) {
	if k == engine.Empty {
		dst.SetColored(x+1, y, '.', core.ColorGray)
		return
	}
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, '█', k.Color())
	}
}

// renderPanel draws score, preview, mode and the heuristics readout.
func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	s := g.State()
	line := func(row int, text string) {
		dst.DrawText(px, py+row, text)
	}

	dst.DrawTextColored(px, py, g.Title(), core.ColorBrightWhite)
	line(2, fmt.Sprintf("Score  %d", s.Score))
	line(3, fmt.Sprintf("Level  %d", s.Level))
	line(4, fmt.Sprintf("Lines  %d", s.Lines))
	line(5, fmt.Sprintf("Pieces %d", g.pieces))

	line(7, "Next")
	next := g.board.Next()
	for _, c := range next.Cells() {
		drawCell(dst, px+c.X*cellW, py+8+c.Y, c.Kind)
	}

	mode, color := "Manual", core.ColorBrightGreen
	if g.auto {
		mode, color = "Autonomous", core.ColorBrightCyan
	}
	line(13, "Mode")
	dst.DrawTextColored(px+5, py+13, mode, color)

	h := bot.Inspect(g.board)
	line(15, fmt.Sprintf("Holes       %d", h.Holes))
	line(16, fmt.Sprintf("Drop height %d", h.DropHeight))
	line(17, fmt.Sprintf("Bumpiness   %d", h.Bumpiness))

	if g.auto && g.hasLastMove {
		dst.DrawTextColored(px, py+19,
			fmt.Sprintf("Last rot %d x %d", g.lastMove.Rotation, g.lastMove.X), core.ColorGray)
	}
	dst.DrawTextColored(px, py+21, "a auto  p pause", core.ColorGray)
}

// renderOverlay draws a centered box holding the given lines.
func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+1+i, l)
	}
}
