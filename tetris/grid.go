package tetris

import "image/color"

// Block is the content of one grid cell.
type Block struct {
	Filled bool
	Color  color.RGBA
}

// Grid is the committed playfield. Rows are indexed top to bottom; rows above
// the grid (row < 0) are always logically empty.
type Grid struct {
	width  int
	height int
	rows   [][]Block
}

// NewGrid creates an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		rows:   make([][]Block, height),
	}
	for y := range g.rows {
		g.rows[y] = make([]Block, width)
	}
	return g
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the block at (col, row). The second result is false when the
// coordinate lies outside the grid; rows above the grid read as empty.
func (g *Grid) At(col, row int) (Block, bool) {
	if col < 0 || col >= g.width || row >= g.height {
		return Block{}, false
	}
	if row < 0 {
		return Block{}, true
	}
	return g.rows[row][col], true
}

// Set fills a single cell. Coordinates outside the visible grid are ignored.
func (g *Grid) Set(col, row int, c color.RGBA) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return
	}
	g.rows[row][col] = Block{Filled: true, Color: c}
}

// Clear empties a single cell. Coordinates outside the visible grid are ignored.
func (g *Grid) Clear(col, row int) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return
	}
	g.rows[row][col] = Block{}
}

// IsValidPlacement reports whether the piece, after applying the rotation and
// position deltas, lies inside the grid without overlapping locked blocks.
// Cells above the top edge are allowed. The piece is not modified.
func (g *Grid) IsValidPlacement(p Piece, dCol, dRow, dRotation int) bool {
	for _, c := range p.cellsAt(dCol, dRow, dRotation) {
		if c.Col < 0 || c.Col >= g.width || c.Row >= g.height {
			return false
		}
		if c.Row >= 0 && g.rows[c.Row][c.Col].Filled {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the grid using its colour. Cells above
// the grid are skipped. Placement is not validated.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Cells() {
		g.Set(c.Col, c.Row, p.Color)
	}
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	var full []int
	for y, row := range g.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}

	for _, y := range full {
		copy(g.rows[1:y+1], g.rows[:y])
		g.rows[0] = make([]Block, g.width)
	}

	return len(full)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.rows {
		clear(g.rows[y])
	}
}

// Snapshot returns a deep copy of the visible rows.
func (g *Grid) Snapshot() [][]Block {
	rows := make([][]Block, g.height)
	for y, row := range g.rows {
		rows[y] = append([]Block(nil), row...)
	}
	return rows
}

func rowFull(row []Block) bool {
	for _, b := range row {
		if !b.Filled {
			return false
		}
	}
	return true
}
