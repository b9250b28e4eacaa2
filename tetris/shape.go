package tetris

import "image/color"

//go:generate stringer -type=Kind

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// KindCount is the number of distinct shapes.
const KindCount = 7

// Rotations is the number of rotation states per shape.
const Rotations = 4

// Cell is a (column, row) coordinate, either local to a piece's 4x4 frame or
// absolute on the grid.
type Cell struct {
	Col, Row int
}

var shapes = [KindCount][Rotations][4]Cell{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

var colors = [KindCount]color.RGBA{
	I: {0, 255, 255, 255},
	O: {255, 255, 0, 255},
	T: {128, 0, 128, 255},
	S: {0, 255, 0, 255},
	Z: {255, 0, 0, 255},
	J: {0, 0, 255, 255},
	L: {255, 165, 0, 255},
}

// Kinds returns every shape kind in catalog order.
func Kinds() [KindCount]Kind {
	return [KindCount]Kind{I, O, T, S, Z, J, L}
}

// Valid reports whether k names one of the seven shapes.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Cells returns the local offsets of the shape in the given rotation state.
// The rotation is taken modulo Rotations, so negative values are accepted.
func (k Kind) Cells(rotation int) [4]Cell {
	if !k.Valid() {
		panic("tetris: invalid kind " + k.String())
	}
	return shapes[k][wrapRotation(rotation)]
}

// Color returns the display colour of the shape.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		panic("tetris: invalid kind " + k.String())
	}
	return colors[k]
}

func wrapRotation(r int) int {
	return ((r % Rotations) + Rotations) % Rotations
}
