// Package tetris implements the falling-block game: the board and collision
// rules, the seven tetrominoes and their rotation, and the timed drop loop.
// Hosts drive it by calling Advance on every frame and Apply on every key.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blocks/internal/core"
)

// Fixed rules.
const (
	SpawnX       = 3
	SpawnY       = 0
	DropInterval = time.Second
)

// Phase is the loop state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns the whole mutable game state.
type Game struct {
	rng  *rand.Rand
	tick uint64

	board Board
	piece Piece
	phase Phase

	dropCounter  time.Duration // time accumulated since the last drop
	dropInterval time.Duration
	elapsed      time.Duration // total time advanced since Reset

	spawned int // pieces spawned since Reset
	cleared int // rows removed since Reset

	palette    Palette
	blockWidth int
	onGameOver func()
}

// New creates a game. Reset must be called before it is advanced.
func New() *Game {
	return &Game{
		board:        NewBoard(Rows, Columns),
		dropInterval: DropInterval,
		palette:      DefaultPalette(),
		blockWidth:   DefaultBlockWidth,
		phase:        PhaseGameOver,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// OnGameOver registers fn to be called once each time the game ends.
func (g *Game) OnGameOver(fn func()) {
	g.onGameOver = fn
}

// Reset starts a new game: empty board, fresh random piece at the spawn
// offset, cleared timers. This is the restart entry point.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.board = NewBoard(Rows, Columns)
	g.dropCounter = 0
	g.elapsed = 0
	g.spawned = 0
	g.cleared = 0
	g.phase = PhaseRunning
	g.piece = g.nextPiece()
}

// nextPiece picks a random shape and places it at the spawn offset.
func (g *Game) nextPiece() Piece {
	g.spawned++
	return NewPiece(RandomShape(g.rng), SpawnX, SpawnY)
}

// Advance moves the clock forward by dt. Once the accumulated time exceeds
// the drop interval the piece drops one row. Does nothing after game over.
func (g *Game) Advance(dt time.Duration) core.StepResult {
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += dt
	g.dropCounter += dt

	dropped := false
	if g.dropCounter > g.dropInterval {
		g.Drop()
		dropped = true
	}

	return core.StepResult{State: g.State(), Dropped: dropped}
}

// Apply executes a gameplay action immediately. It returns true if the
// action was a gameplay intent and the game is running.
func (g *Game) Apply(a core.Action) bool {
	if g.phase == PhaseGameOver || !a.IsGameplay() {
		return false
	}

	switch a {
	case core.ActionLeft:
		g.Shift(-1)
	case core.ActionRight:
		g.Shift(1)
	case core.ActionDown:
		g.Drop()
	case core.ActionRotate:
		g.Rotate()
	}
	return true
}

// Shift moves the piece dx columns. Returns false and leaves the piece in
// place when the new position collides.
func (g *Game) Shift(dx int) bool {
	if g.phase == PhaseGameOver {
		return false
	}
	moved := g.piece.Moved(dx, 0)
	if g.board.Collides(moved) {
		return false
	}
	g.piece = moved
	return true
}

// Rotate turns the piece clockwise in place. There is no wall kick: if the
// rotated matrix collides at the current offset the old matrix is kept.
func (g *Game) Rotate() bool {
	if g.phase == PhaseGameOver {
		return false
	}
	rotated := g.piece.Rotated()
	if g.board.Collides(rotated) {
		return false
	}
	g.piece = rotated
	return true
}

// Drop moves the piece down one row. When it cannot move, the piece is
// merged into the board, full rows are cleared, and a new piece spawns. If
// the new piece collides immediately the game is over. Drop always restarts
// the drop timer. Returns true if the piece locked.
func (g *Game) Drop() bool {
	if g.phase == PhaseGameOver {
		return false
	}

	locked := false
	moved := g.piece.Moved(0, 1)
	if g.board.Collides(moved) {
		g.lock()
		locked = true
	} else {
		g.piece = moved
	}

	g.dropCounter = 0
	return locked
}

// lock merges the current piece and spawns the next one.
func (g *Game) lock() {
	g.board.Merge(g.piece)
	g.cleared += g.board.ClearLines()

	g.piece = g.nextPiece()
	if g.board.Collides(g.piece) {
		g.phase = PhaseGameOver
		if g.onGameOver != nil {
			g.onGameOver()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Ticks:    g.tick,
	}
}

// Phase returns the loop state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Board returns a copy of the settled blocks.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Piece returns a copy of the falling piece.
func (g *Game) Piece() Piece {
	p := g.piece
	p.Matrix = p.Matrix.Clone()
	return p
}

// DebugState returns a one-line summary of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d phase=%s piece=%s@(%d,%d) filled=%d cleared=%d spawned=%d",
		g.tick, g.phase, g.piece.Shape, g.piece.X, g.piece.Y, g.board.Filled(), g.cleared, g.spawned)
}
