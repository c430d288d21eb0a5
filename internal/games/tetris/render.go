package tetris

import (
	"fmt"

	"github.com/vovakirdan/blocks/internal/core"
)

// DefaultBlockWidth is the number of terminal columns per board cell.
// Two columns make a block look roughly square in most fonts.
const DefaultBlockWidth = 2

const (
	blockGlyph = '█'
	titleLines = 1
)

// Palette maps a shape to its display color.
type Palette [ShapeCount + 1]core.Color

// DefaultPalette returns the classic colors: T purple, Z red, S green,
// I cyan, O yellow, L orange, J blue.
func DefaultPalette() Palette {
	return Palette{
		Empty:        core.ColorBlack,
		Cell(ShapeT): core.ColorPurple,
		Cell(ShapeZ): core.ColorRed,
		Cell(ShapeS): core.ColorGreen,
		Cell(ShapeI): core.ColorCyan,
		Cell(ShapeO): core.ColorYellow,
		Cell(ShapeL): core.ColorOrange,
		Cell(ShapeJ): core.ColorBlue,
	}
}

// ColorFor returns the color of a cell value.
func (p Palette) ColorFor(v Cell) core.Color {
	if int(v) >= len(p) {
		return core.ColorDefault
	}
	return p[v]
}

// SetPalette replaces the display colors.
func (g *Game) SetPalette(p Palette) {
	g.palette = p
}

// Palette returns the display colors.
func (g *Game) Palette() Palette {
	return g.palette
}

// SetBlockWidth sets how many terminal columns one cell occupies.
func (g *Game) SetBlockWidth(w int) {
	if w < 1 {
		w = 1
	}
	g.blockWidth = w
}

// Frame composes the board and the falling piece into a new matrix. It reads
// the game state without changing it, so two calls with no update in between
// return equal frames.
func (g *Game) Frame() Matrix {
	frame := Matrix(g.board).Clone()
	for y, row := range g.piece.Matrix {
		for x, v := range row {
			if v == Empty {
				continue
			}
			fx, fy := g.piece.X+x, g.piece.Y+y
			if fy < 0 || fy >= len(frame) || fx < 0 || fx >= len(frame[fy]) {
				continue
			}
			frame[fy][fx] = v
		}
	}
	return frame
}

// WellSize returns the screen area needed to draw the board with its border
// and title line.
func (g *Game) WellSize() (w, h int) {
	return Columns*g.blockWidth + 2, Rows + 2 + titleLines
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.WellSize()
	if !dst.Bounds().Fits(w, h) {
		g.renderTooSmall(dst, w, h)
		return
	}

	area := dst.Bounds().Centered(w, h)
	dst.DrawText(area.X+(w-len(g.Title()))/2, area.Y, g.Title())

	well := core.NewRect(area.X, area.Y+titleLines, w, h-titleLines)
	dst.DrawBox(well)

	frame := g.Frame()
	for y, row := range frame {
		for x, v := range row {
			if v == Empty {
				continue
			}
			sx := well.X + 1 + x*g.blockWidth
			sy := well.Y + 1 + y
			dst.DrawRect(core.NewRect(sx, sy, g.blockWidth, 1), blockGlyph, g.palette.ColorFor(v))
		}
	}

	if g.phase == PhaseGameOver {
		g.renderOverlay(dst, well, "GAME OVER", "R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
}

// renderOverlay draws a boxed two-line message centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := area.Centered(boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
