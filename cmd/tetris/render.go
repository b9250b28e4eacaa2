package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/handtris/tetris"
)

const (
	CellSize    = 30
	GridOffsetX = 50
	GridOffsetY = 30
	PreviewCell = 20
	bevel       = 2
)

var (
	black    = color.RGBA{0, 0, 0, 255}
	white    = color.RGBA{255, 255, 255, 255}
	gray     = color.RGBA{128, 128, 128, 255}
	darkGray = color.RGBA{40, 40, 40, 255}
	overlay  = color.RGBA{0, 0, 0, 180}
)

var controls = []string{
	"CONTROLS:",
	"Left/Right: Move",
	"Up: Rotate",
	"Z: Rotate Back",
	"Down: Soft Drop",
	"Space: Hard Drop",
	"P: Pause",
	"R: Restart",
	"ESC: Quit",
}

// Renderer draws game snapshots.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(screen *ebiten.Image, s tetris.Snapshot) {
	screen.Fill(black)

	gridW := float32(s.Width * CellSize)
	gridH := float32(s.Height * CellSize)
	vector.StrokeRect(screen, GridOffsetX, GridOffsetY, gridW, gridH, 2, darkGray, false)

	for y, row := range s.Cells {
		for x, b := range row {
			if b.Filled {
				drawBlock(screen, x, y, b.Color)
			}
		}
	}

	if !s.GameOver() {
		for _, c := range s.Current.Cells() {
			row := c.Row + s.GhostRowOffset
			if row < 0 {
				continue
			}
			vector.StrokeRect(screen,
				float32(GridOffsetX+c.Col*CellSize), float32(GridOffsetY+row*CellSize),
				CellSize, CellSize, 2, gray, false)
		}
		for _, c := range s.Current.Cells() {
			if c.Row >= 0 {
				drawBlock(screen, c.Col, c.Row, s.Current.Color)
			}
		}
	}

	for x := 0; x <= s.Width; x++ {
		fx := float32(GridOffsetX + x*CellSize)
		vector.StrokeLine(screen, fx, GridOffsetY, fx, GridOffsetY+gridH, 1, darkGray, false)
	}
	for y := 0; y <= s.Height; y++ {
		fy := float32(GridOffsetY + y*CellSize)
		vector.StrokeLine(screen, GridOffsetX, fy, GridOffsetX+gridW, fy, 1, darkGray, false)
	}

	r.drawPanel(screen, s)

	switch {
	case s.GameOver():
		drawOverlay(screen, "GAME OVER", fmt.Sprintf("Final Score: %d", s.Score), "Press R to Restart")
	case s.Paused():
		drawOverlay(screen, "PAUSED", "Press P to Resume")
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s tetris.Snapshot) {
	x := GridOffsetX + s.Width*CellSize + 30

	ebitenutil.DebugPrintAt(screen, "SCORE", x, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(s.Score), x, 50)
	ebitenutil.DebugPrintAt(screen, "LEVEL", x, 120)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(s.Level), x, 140)
	ebitenutil.DebugPrintAt(screen, "LINES CLEARED", x, 210)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(s.Lines), x, 230)

	ebitenutil.DebugPrintAt(screen, "NEXT", x, 300)
	for _, c := range s.Next.Kind.Cells(0) {
		vector.DrawFilledRect(screen,
			float32(x+20+c.Col*PreviewCell), float32(340+c.Row*PreviewCell),
			PreviewCell-2, PreviewCell-2, s.Next.Color, false)
	}

	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, x, 450+i*20)
	}
}

func drawBlock(screen *ebiten.Image, col, row int, c color.RGBA) {
	x := float32(GridOffsetX + col*CellSize)
	y := float32(GridOffsetY + row*CellSize)
	const size = CellSize - 1

	vector.DrawFilledRect(screen, x, y, size, size, c, false)

	hi := shade(c, 50)
	vector.StrokeLine(screen, x, y, x+size, y, bevel, hi, false)
	vector.StrokeLine(screen, x, y, x, y+size, bevel, hi, false)

	lo := shade(c, -50)
	vector.StrokeLine(screen, x, y+size, x+size, y+size, bevel, lo, false)
	vector.StrokeLine(screen, x+size, y, x+size, y+size, bevel, lo, false)
}

func drawOverlay(screen *ebiten.Image, title string, lines ...string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlay, false)

	cx, cy := ScreenWidth/2, ScreenHeight/2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-50)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, cx-len(line)*3, cy+i*30)
	}
}

// shade brightens (delta > 0) or darkens a colour, clamping each channel.
func shade(c color.RGBA, delta int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(v)+delta)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}
