package tetris

// Board dimensions.
const (
	Rows    = 20
	Columns = 10
)

// Cell is a single grid value: 0 is empty, 1-7 is a block of the
// corresponding Shape.
type Cell uint8

// Empty is the zero cell value.
const Empty Cell = 0

// Matrix is a row-major grid of cells, indexed [y][x].
type Matrix [][]Cell

// NewMatrix allocates a zeroed rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for y := range m {
		m[y] = make([]Cell, cols)
	}
	return m
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for y, row := range m {
		c[y] = append([]Cell(nil), row...)
	}
	return c
}

// Equal reports whether two matrices have the same shape and contents.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Board is the grid of settled blocks.
// It is only mutated by Merge and ClearLines.
type Board Matrix

// NewBoard creates an empty board.
func NewBoard(rows, cols int) Board {
	return Board(NewMatrix(rows, cols))
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Columns returns the number of columns.
func (b Board) Columns() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	return Board(Matrix(b).Clone())
}

// Filled returns the number of nonzero cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// Collides reports whether any nonzero cell of p lands on a wall, the floor,
// or a settled block. Cells above the top row are not a conflict: pieces spawn
// at row 0 and those rows simply do not exist yet.
func (b Board) Collides(p Piece) bool {
	rows, cols := b.Rows(), b.Columns()
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == Empty {
				continue
			}
			bx, by := p.X+x, p.Y+y
			if bx < 0 || bx >= cols || by >= rows {
				return true
			}
			if by < 0 {
				continue
			}
			if b[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes every nonzero cell of p into the board.
// The caller must have checked Collides first.
func (b Board) Merge(p Piece) {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == Empty {
				continue
			}
			bx, by := p.X+x, p.Y+y
			if by < 0 || by >= b.Rows() || bx < 0 || bx >= b.Columns() {
				continue
			}
			b[by][bx] = v
		}
	}
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (b Board) ClearLines() int {
	cleared := 0
	for y := b.Rows() - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		// Rows are rotated in place so callers holding the board see the change.
		removed := b[y]
		copy(b[1:y+1], b[0:y])
		for x := range removed {
			removed[x] = Empty
		}
		b[0] = removed
		cleared++
		// Same y again: a new row shifted into it.
	}
	return cleared
}

func (b Board) rowFull(y int) bool {
	for _, v := range b[y] {
		if v == Empty {
			return false
		}
	}
	return true
}
