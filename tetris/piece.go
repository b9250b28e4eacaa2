package tetris

import "image/color"

// Piece is a tetromino placed on the grid. The anchor (Col, Row) is the
// top-left corner of the shape's 4x4 frame.
type Piece struct {
	Kind     Kind
	Rotation int
	Col, Row int
	Color    color.RGBA
}

// Spawn creates a piece of the given kind in rotation 0, horizontally
// centred on a grid of the given width, at row 0.
func Spawn(kind Kind, width int) Piece {
	return Piece{
		Kind:     kind,
		Rotation: 0,
		Col:      width/2 - 2,
		Row:      0,
		Color:    kind.Color(),
	}
}

// Cells returns the absolute grid cells covered by the piece.
func (p Piece) Cells() [4]Cell {
	return p.cellsAt(0, 0, 0)
}

// cellsAt computes the cells the piece would cover after applying the deltas.
// The piece itself is never modified.
func (p Piece) cellsAt(dCol, dRow, dRotation int) [4]Cell {
	local := p.Kind.Cells(p.Rotation + dRotation)

	var cells [4]Cell
	for i, c := range local {
		cells[i] = Cell{
			Col: p.Col + dCol + c.Col,
			Row: p.Row + dRow + c.Row,
		}
	}
	return cells
}

func (p *Piece) rotate(direction int) {
	p.Rotation = wrapRotation(p.Rotation + direction)
}

func (p *Piece) move(dCol, dRow int) {
	p.Col += dCol
	p.Row += dRow
}
