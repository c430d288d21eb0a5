package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blocks/internal/core"
)

func TestFrameOverlaysPiece(t *testing.T) {
	g := newTestGame(t, 4)
	g.board[Rows-1][0] = Cell(ShapeZ)
	g.piece = NewPiece(ShapeO, 3, 0)

	frame := g.Frame()
	if frame[Rows-1][0] != Cell(ShapeZ) {
		t.Error("frame should contain settled blocks")
	}
	for _, c := range [][2]int{{3, 0}, {4, 0}, {3, 1}, {4, 1}} {
		if frame[c[1]][c[0]] != Cell(ShapeO) {
			t.Errorf("frame should contain piece cell at (%d,%d)", c[0], c[1])
		}
	}

	// Composition does not touch the game.
	if g.board.Filled() != 1 {
		t.Errorf("Frame merged the piece into the board")
	}
	if !g.Frame().Equal(frame) {
		t.Error("Frame should be deterministic")
	}
}

func TestFrameClipsCellsAboveTop(t *testing.T) {
	g := newTestGame(t, 4)
	g.piece = NewPiece(ShapeO, 0, -1)

	frame := g.Frame()
	if frame[0][0] != Cell(ShapeO) || frame[0][1] != Cell(ShapeO) {
		t.Error("visible half of the piece should be drawn")
	}
	if Board(frame).Filled() != 2 {
		t.Errorf("expected 2 visible cells, got %d", Board(frame).Filled())
	}
}

func TestRenderDrawsColoredBlocks(t *testing.T) {
	g := newTestGame(t, 4)
	g.piece = NewPiece(ShapeO, 3, 0)
	g.board[Rows-1][9] = Cell(ShapeT)

	s := core.NewScreen(80, 24)
	g.Render(s)

	// 22x23 well centered on 80x24: border at x=29, first cell row at y=2.
	left, top := 30, 2
	for dx := 0; dx < 2*DefaultBlockWidth; dx++ {
		cell := s.GetCell(left+3*DefaultBlockWidth+dx, top)
		if cell.Rune != blockGlyph || cell.Color != core.ColorYellow {
			t.Errorf("expected yellow block at x=%d, got %+v", left+6+dx, cell)
		}
	}

	cell := s.GetCell(left+9*DefaultBlockWidth, top+Rows-1)
	if cell.Rune != blockGlyph || cell.Color != core.ColorPurple {
		t.Errorf("expected purple block in the bottom-right cell, got %+v", cell)
	}

	if s.Get(29, 1) != '┌' || s.Get(50, 22) != '┘' {
		t.Errorf("well border misplaced:\n%s", s.String())
	}
	if !strings.Contains(s.Row(0), "Tetris") {
		t.Errorf("title missing, row 0 = %q", s.Row(0))
	}
}

func TestRenderIsPure(t *testing.T) {
	g := newTestGame(t, 8)
	before := g.Snapshot()
	frame := g.Frame()

	g.Render(core.NewScreen(80, 24))

	if g.Snapshot() != before || !g.Frame().Equal(frame) {
		t.Error("Render changed the game state")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 4)
	s := core.NewScreen(20, 10)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", s.String())
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 4)
	g.phase = PhaseGameOver

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "GAME OVER") {
		t.Errorf("expected game over overlay, got:\n%s", s.String())
	}
}

func TestBlockWidthAndPalette(t *testing.T) {
	g := newTestGame(t, 4)
	g.SetBlockWidth(1)
	if w, h := g.WellSize(); w != Columns+2 || h != Rows+3 {
		t.Errorf("WellSize() = %dx%d with block width 1", w, h)
	}

	g.SetBlockWidth(0)
	if w, _ := g.WellSize(); w != Columns+2 {
		t.Error("block width below 1 should be clamped")
	}

	p := DefaultPalette()
	p[ShapeO] = core.ColorWhite
	g.SetPalette(p)
	g.piece = NewPiece(ShapeO, 0, 0)

	s := core.NewScreen(12, 23)
	g.Render(s)
	if cell := s.GetCell(1, 2); cell.Color != core.ColorWhite {
		t.Errorf("custom palette not applied, got %+v", cell)
	}
}

func TestDefaultPaletteMatchesShapes(t *testing.T) {
	p := DefaultPalette()
	expected := map[Shape]core.Color{
		ShapeT: core.ColorPurple,
		ShapeZ: core.ColorRed,
		ShapeS: core.ColorGreen,
		ShapeI: core.ColorCyan,
		ShapeO: core.ColorYellow,
		ShapeL: core.ColorOrange,
		ShapeJ: core.ColorBlue,
	}
	for s, c := range expected {
		if got := p.ColorFor(Cell(s)); got != c {
			t.Errorf("ColorFor(%s) = %v, expected %v", s, got, c)
		}
	}
	if p.ColorFor(Cell(42)) != core.ColorDefault {
		t.Error("unknown cell values should use the default color")
	}
}
