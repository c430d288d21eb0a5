package tetris

import "time"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Shape       Shape
	PieceX      int
	PieceY      int
	DropCounter time.Duration
	Elapsed     time.Duration
	Filled      int // Nonzero board cells
	Cleared     int // Rows removed since reset
	Spawned     int // Pieces spawned since reset
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Shape:       g.piece.Shape,
		PieceX:      g.piece.X,
		PieceY:      g.piece.Y,
		DropCounter: g.dropCounter,
		Elapsed:     g.elapsed,
		Filled:      g.board.Filled(),
		Cleared:     g.cleared,
		Spawned:     g.spawned,
	}
}
