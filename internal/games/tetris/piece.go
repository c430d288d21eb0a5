package tetris

import (
	"math/rand"
	"strings"
)

// Shape identifies one of the seven tetrominoes. The value doubles as the
// cell value written into the board and as the palette index.
type Shape Cell

const (
	ShapeT Shape = iota + 1
	ShapeZ
	ShapeS
	ShapeI
	ShapeO
	ShapeL
	ShapeJ
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// shapeTable holds the spawn orientation of every shape. Never mutated;
// pieces receive copies.
var shapeTable = [ShapeCount + 1]Matrix{
	ShapeT: {{1, 1, 1}, {0, 1, 0}},
	ShapeZ: {{0, 2, 2}, {2, 2, 0}},
	ShapeS: {{3, 3, 0}, {0, 3, 3}},
	ShapeI: {{4, 4, 4, 4}},
	ShapeO: {{5, 5}, {5, 5}},
	ShapeL: {{6, 6, 6}, {6, 0, 0}},
	ShapeJ: {{7, 7, 7}, {0, 0, 7}},
}

var shapeNames = [ShapeCount + 1]string{"", "T", "Z", "S", "I", "O", "L", "J"}

// AllShapes returns every shape in table order.
func AllShapes() []Shape {
	return []Shape{ShapeT, ShapeZ, ShapeS, ShapeI, ShapeO, ShapeL, ShapeJ}
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= ShapeT && s <= ShapeJ
}

// Matrix returns a fresh copy of the shape's spawn orientation.
func (s Shape) Matrix() Matrix {
	if !s.Valid() {
		return nil
	}
	return shapeTable[s].Clone()
}

// ParseShape converts a letter such as "T" or "i" to a Shape.
func ParseShape(name string) (Shape, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, s := range AllShapes() {
		if shapeNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// RandomShape picks a shape uniformly; successive calls are independent.
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.Intn(ShapeCount) + 1)
}

// Piece is the falling shape and its board-relative offset.
type Piece struct {
	Shape  Shape
	Matrix Matrix
	X, Y   int
}

// NewPiece creates a piece of the given shape at (x, y).
func NewPiece(s Shape, x, y int) Piece {
	return Piece{Shape: s, Matrix: s.Matrix(), X: x, Y: y}
}

// Moved returns a copy of p offset by (dx, dy). The matrix is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p with its matrix turned clockwise.
func (p Piece) Rotated() Piece {
	p.Matrix = Rotate(p.Matrix)
	return p
}

// Rotate returns m turned 90° clockwise. The input is left untouched.
// A rows×cols matrix becomes cols×rows.
func Rotate(m Matrix) Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	rows, cols := len(m), len(m[0])
	out := NewMatrix(cols, rows)
	for y := 0; y < cols; y++ {
		for x := 0; x < rows; x++ {
			out[y][x] = m[rows-1-x][y]
		}
	}
	return out
}
