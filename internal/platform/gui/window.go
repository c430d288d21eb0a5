// Package gui runs the game in a desktop window with Ebitengine. Each board
// cell is drawn as a filled square with a black outline.
package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/games/tetris"
)

// Options configures the window host.
type Options struct {
	Title     string
	BlockSize int // pixels per board cell
	TickRate  int
	Seed      int64
}

// keyActions binds window keys to actions. Only the arrow keys move the piece.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Window implements ebiten.Game for one tetris game.
type Window struct {
	game   *tetris.Game
	opts   Options
	logger *log.Logger
	state  core.GameState
	seed   func() int64
}

// NewWindow creates a window host and starts a game.
func NewWindow(game *tetris.Game, opts Options, logger *log.Logger) *Window {
	if opts.BlockSize < 1 {
		opts.BlockSize = 30
	}
	if opts.TickRate <= 0 {
		opts.TickRate = ebiten.DefaultTPS
	}

	w := &Window{
		game:   game,
		opts:   opts,
		logger: logger,
		seed:   func() int64 { return time.Now().UnixNano() },
	}

	seed := opts.Seed
	if seed == 0 {
		seed = w.seed()
	}
	w.reset(seed)
	return w
}

func (w *Window) reset(seed int64) {
	w.game.Reset(core.RuntimeConfig{TickRate: w.opts.TickRate, Seed: seed})
	w.state = w.game.State()
	w.logger.Debug("game started", "seed", seed)
}

// frameTime is the fixed time advanced per Update call.
func (w *Window) frameTime() time.Duration {
	return time.Second / time.Duration(w.opts.TickRate)
}

// Update reads the keys pressed this frame and advances the game.
func (w *Window) Update() error {
	var actions []core.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return w.step(actions, w.frameTime())
}

// step applies the actions in order, then advances the clock by dt.
func (w *Window) step(actions []core.Action, dt time.Duration) error {
	for _, a := range actions {
		switch a {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionRestart:
			if w.state.GameOver {
				w.reset(w.seed())
				w.logger.Info("game restarted")
			}
		default:
			w.game.Apply(a)
			w.observe(w.game.State())
		}
	}

	w.observe(w.game.Advance(dt).State)
	return nil
}

func (w *Window) observe(state core.GameState) {
	if state.GameOver && !w.state.GameOver {
		w.logger.Info("game over", "ticks", state.Ticks)
	}
	w.state = state
}

// Draw paints the board and the falling piece.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	palette := w.game.Palette()
	size := float32(w.opts.BlockSize)
	for y, row := range w.game.Frame() {
		for x, v := range row {
			if v == tetris.Empty {
				continue
			}
			px, py := float32(x)*size, float32(y)*size
			vector.DrawFilledRect(screen, px, py, size, size, RGBA(palette.ColorFor(v)), false)
			vector.StrokeRect(screen, px, py, size, size, 1, outline, false)
		}
	}

	if w.state.GameOver {
		width, height := w.Layout(0, 0)
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), shade, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", 8, height/2-16)
	}
}

// Layout returns the logical size of the board in pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	return tetris.Columns * w.opts.BlockSize, tetris.Rows * w.opts.BlockSize
}

// GameOver reports whether the game has ended.
func (w *Window) GameOver() bool {
	return w.state.GameOver
}

// Run opens the window and blocks until it is closed.
func Run(game *tetris.Game, opts Options, logger *log.Logger) error {
	w := NewWindow(game, opts, logger)

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
