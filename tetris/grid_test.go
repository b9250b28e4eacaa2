package tetris

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func fillRow(g *Grid, row int, c color.RGBA, skip ...int) {
	for x := 0; x < g.Width(); x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
			}
		}
		if !skipped {
			g.Set(x, row, c)
		}
	}
}

func TestGridIsValidPlacement(t *testing.T) {
	grid := NewGrid(10, 20)
	grid.Set(5, 10, red)

	tests := []struct {
		name   string
		piece  Piece
		dCol   int
		dRow   int
		dRot   int
		expect bool
	}{
		{"spawn on empty grid", Spawn(T, 10), 0, 0, 0, true},
		{"left wall", Piece{Kind: O, Col: -1}, 0, 0, 0, true},
		{"past left wall", Piece{Kind: O, Col: -1}, -1, 0, 0, false},
		{"past right wall", Piece{Kind: O, Col: 7}, 1, 0, 0, false},
		{"floor", Piece{Kind: O, Col: 0, Row: 18}, 0, 0, 0, true},
		{"below floor", Piece{Kind: O, Col: 0, Row: 18}, 0, 1, 0, false},
		{"above the top is allowed", Piece{Kind: I, Rotation: 1, Col: 0, Row: -3}, 0, 0, 0, true},
		{"overlaps locked block", Piece{Kind: O, Col: 4, Row: 9}, 0, 0, 0, false},
		{"moved onto locked block", Piece{Kind: O, Col: 4, Row: 7}, 0, 2, 0, false},
		{"rotation into locked block", Piece{Kind: I, Col: 3, Row: 9}, 0, 0, 1, false},
		{"rotation clear of locked block", Piece{Kind: I, Col: 3, Row: 9}, 0, 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, grid.IsValidPlacement(tt.piece, tt.dCol, tt.dRow, tt.dRot))
		})
	}
}

func TestGridIsValidPlacementIsPure(t *testing.T) {
	grid := NewGrid(10, 20)
	fillRow(grid, 19, blue, 0)
	before := grid.Snapshot()

	for _, kind := range Kinds() {
		for rot := range Rotations {
			for col := -3; col < 10; col++ {
				for row := -3; row < 20; row++ {
					p := Piece{Kind: kind, Rotation: rot, Col: col, Row: row, Color: kind.Color()}
					orig := p
					for dRot := -1; dRot <= 1; dRot++ {
						first := grid.IsValidPlacement(p, 1, 1, dRot)
						second := grid.IsValidPlacement(p, 1, 1, dRot)
						if first != second {
							t.Fatalf("non-deterministic result for %+v", p)
						}
					}
					if p != orig {
						t.Fatalf("piece mutated: %+v -> %+v", orig, p)
					}
				}
			}
		}
	}

	assert.Equal(t, before, grid.Snapshot())
}

func TestGridLock(t *testing.T) {
	t.Run("writes piece colour", func(t *testing.T) {
		grid := NewGrid(10, 20)
		p := Piece{Kind: T, Col: 2, Row: 5, Color: T.Color()}
		grid.Lock(p)

		for _, c := range p.Cells() {
			b, ok := grid.At(c.Col, c.Row)
			assert.True(t, ok)
			assert.True(t, b.Filled)
			assert.Equal(t, T.Color(), b.Color)
		}
	})

	t.Run("skips cells above the grid", func(t *testing.T) {
		grid := NewGrid(10, 20)
		grid.Lock(Piece{Kind: I, Rotation: 1, Col: 0, Row: -2, Color: I.Color()})

		filled := 0
		for _, row := range grid.Snapshot() {
			for _, b := range row {
				if b.Filled {
					filled++
				}
			}
		}
		assert.Equal(t, 2, filled)
	})
}

func TestGridClearFullRows(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		grid := NewGrid(10, 20)
		fillRow(grid, 19, red, 3)
		before := grid.Snapshot()

		assert.Equal(t, 0, grid.ClearFullRows())
		assert.Equal(t, before, grid.Snapshot())
	})

	t.Run("preserves order of remaining rows", func(t *testing.T) {
		grid := NewGrid(10, 20)
		fillRow(grid, 5, red)
		fillRow(grid, 7, red)
		grid.Set(0, 4, green)
		grid.Set(1, 6, blue)
		grid.Set(2, 8, white)
		grid.Set(3, 19, green)

		assert.Equal(t, 2, grid.ClearFullRows())

		rows := grid.Snapshot()
		assert.Len(t, rows, 20)
		for _, y := range []int{0, 1} {
			for x, b := range rows[y] {
				assert.False(t, b.Filled, "cell (%d,%d) should be empty", x, y)
			}
		}

		// row 4 had both cleared rows below it, row 6 only row 7
		assert.Equal(t, Block{Filled: true, Color: green}, rows[6][0])
		assert.Equal(t, Block{Filled: true, Color: blue}, rows[7][1])
		assert.Equal(t, Block{Filled: true, Color: white}, rows[8][2])
		assert.Equal(t, Block{Filled: true, Color: green}, rows[19][3])

		filled := 0
		for _, row := range rows {
			for _, b := range row {
				if b.Filled {
					filled++
				}
			}
		}
		assert.Equal(t, 4, filled)
	})

	t.Run("four adjacent rows", func(t *testing.T) {
		grid := NewGrid(10, 20)
		for y := 16; y < 20; y++ {
			fillRow(grid, y, red)
		}
		grid.Set(9, 15, blue)

		assert.Equal(t, 4, grid.ClearFullRows())
		b, _ := grid.At(9, 19)
		assert.Equal(t, Block{Filled: true, Color: blue}, b)
	})
}

func TestGridAt(t *testing.T) {
	grid := NewGrid(10, 20)
	grid.Set(0, 0, red)

	b, ok := grid.At(0, 0)
	assert.True(t, ok)
	assert.True(t, b.Filled)

	b, ok = grid.At(0, -1)
	assert.True(t, ok)
	assert.False(t, b.Filled)

	_, ok = grid.At(10, 0)
	assert.False(t, ok)
	_, ok = grid.At(0, 20)
	assert.False(t, ok)

	grid.Clear(0, 0)
	b, _ = grid.At(0, 0)
	assert.False(t, b.Filled)

	grid.Set(1, 1, red)
	grid.Reset()
	b, _ = grid.At(1, 1)
	assert.False(t, b.Filled)
}
