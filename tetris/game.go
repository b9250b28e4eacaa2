package tetris

import (
	"errors"
	"fmt"
	"time"
)

//go:generate stringer -type=State

// State is the play state of a Game.
type State uint8

const (
	Playing State = iota
	Paused
	GameOver
)

// Rotation directions accepted by Game.Rotate.
const (
	CW  = 1
	CCW = -1
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = 500 * time.Millisecond
)

// ErrInvalidConfig is returned by New when the configuration cannot describe
// a playable board.
var ErrInvalidConfig = errors.New("tetris: invalid config")

var linePoints = [5]int{0, 100, 300, 500, 800}

var kicks = [5]int{0, -1, 1, -2, 2}

// Config holds the fixed parameters of a game.
type Config struct {
	Width, Height int
	FallInterval  time.Duration

	// CatchUp makes Tick perform one gravity step for every full interval
	// accumulated instead of at most one step per call.
	CatchUp bool
}

// DefaultConfig returns the reference 10x20 board with a 500ms fall interval.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FallInterval: DefaultFallInterval,
	}
}

// Validate checks that the board can hold a spawned piece.
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("%w: fall interval %s must be positive", ErrInvalidConfig, c.FallInterval)
	}
	return nil
}

// Game owns one play session: the grid, the current and next pieces, timing
// and scoring. It is not safe for concurrent use.
type Game struct {
	cfg    Config
	source PieceSource
	grid   *Grid
	stats  *Stats

	current Piece
	next    Piece

	score int
	level int
	lines int
	state State

	fallTimer time.Duration
}

// New creates a game in the Playing state. A nil source draws pieces from a
// RandomSource seeded from the current time.
func New(cfg Config, source PieceSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = NewRandomSource(uint64(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:    cfg,
		source: source,
		grid:   NewGrid(cfg.Width, cfg.Height),
		stats:  newStats(),
	}
	g.Reset()
	return g, nil
}

// Reset reinitialises the whole game state and returns to Playing.
func (g *Game) Reset() {
	g.grid.Reset()
	g.stats.reset()
	g.current = g.newPiece()
	g.next = g.newPiece()
	g.stats.recordSpawn(g.current.Kind)
	g.score = 0
	g.level = 1
	g.lines = 0
	g.state = Playing
	g.fallTimer = 0
}

// TogglePause switches between Playing and Paused. It is ignored once the
// game is over and reports whether the state changed.
func (g *Game) TogglePause() bool {
	switch g.state {
	case Playing:
		g.state = Paused
	case Paused:
		g.state = Playing
	default:
		return false
	}
	return true
}

// Move translates the current piece if the target placement is valid.
func (g *Game) Move(dCol, dRow int) bool {
	if g.state != Playing {
		return false
	}
	return g.move(dCol, dRow)
}

// Rotate turns the current piece by direction (CW or CCW), trying the wall
// kick offsets -1, +1, -2, +2 columns when the plain rotation is blocked.
func (g *Game) Rotate(direction int) bool {
	if g.state != Playing || (direction != CW && direction != CCW) {
		return false
	}

	for _, kick := range kicks {
		if g.grid.IsValidPlacement(g.current, kick, 0, direction) {
			g.current.rotate(direction)
			g.current.move(kick, 0)
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row for one point. If the piece is
// resting it locks instead, and SoftDrop returns false.
func (g *Game) SoftDrop() bool {
	if g.state != Playing {
		return false
	}
	if g.move(0, 1) {
		g.score++
		return true
	}
	g.lock()
	return false
}

// HardDrop drops the piece as far as it goes, two points per row, and locks
// it. It returns false only when the game is not Playing.
func (g *Game) HardDrop() bool {
	if g.state != Playing {
		return false
	}
	for g.move(0, 1) {
		g.score += 2
	}
	g.lock()
	return true
}

// Tick advances the fall timer by dt. Once the timer reaches the fall
// interval it is reset and the piece falls one row, locking if it cannot.
func (g *Game) Tick(dt time.Duration) {
	if g.state != Playing {
		return
	}

	g.fallTimer += dt
	if !g.cfg.CatchUp {
		if g.fallTimer >= g.cfg.FallInterval {
			g.fallTimer = 0
			g.step()
		}
		return
	}

	for g.state == Playing && g.fallTimer >= g.cfg.FallInterval {
		g.fallTimer -= g.cfg.FallInterval
		g.step()
	}
}

// GhostRowOffset returns how many rows the current piece would fall on a
// hard drop.
func (g *Game) GhostRowOffset() int {
	offset := 0
	for g.grid.IsValidPlacement(g.current, 0, offset+1, 0) {
		offset++
	}
	return offset
}

func (g *Game) step() {
	if !g.move(0, 1) {
		g.lock()
	}
}

func (g *Game) move(dCol, dRow int) bool {
	if !g.grid.IsValidPlacement(g.current, dCol, dRow, 0) {
		return false
	}
	g.current.move(dCol, dRow)
	return true
}

func (g *Game) lock() {
	g.grid.Lock(g.current)

	if n := g.grid.ClearFullRows(); n > 0 {
		g.lines += n
		g.level = g.lines/10 + 1
		g.score += linePoints[min(n, len(linePoints)-1)] * g.level
		g.stats.recordClear(n)
	}

	g.current = g.next
	g.next = g.newPiece()
	g.stats.recordSpawn(g.current.Kind)

	if !g.grid.IsValidPlacement(g.current, 0, 0, 0) {
		g.state = GameOver
	}
}

func (g *Game) newPiece() Piece {
	return Spawn(g.source.Next(), g.cfg.Width)
}

func (g *Game) Config() Config { return g.cfg }
func (g *Game) State() State { return g.state }
func (g *Game) Paused() bool { return g.state == Paused }
func (g *Game) GameOver() bool { return g.state == GameOver }
func (g *Game) Score() int { return g.score }
func (g *Game) Level() int { return g.level }
func (g *Game) Lines() int { return g.lines }
func (g *Game) Current() Piece { return g.current }
func (g *Game) Next() Piece { return g.next }
func (g *Game) Stats() *Stats { return g.stats }
func (g *Game) FallTimer() time.Duration { return g.fallTimer }

// SetFallInterval changes the gravity interval, e.g. after a configuration
// reload. Non-positive values are ignored.
func (g *Game) SetFallInterval(d time.Duration) {
	if d > 0 {
		g.cfg.FallInterval = d
	}
}

// SetCatchUp toggles multi-step gravity for large tick deltas.
func (g *Game) SetCatchUp(on bool) {
	g.cfg.CatchUp = on
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Width, Height  int
	Cells          [][]Block
	Current        Piece
	Next           Piece
	GhostRowOffset int
	Score          int
	Level          int
	Lines          int
	State          State
}

func (s Snapshot) Paused() bool { return s.State == Paused }
func (s Snapshot) GameOver() bool { return s.State == GameOver }

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:          g.grid.Width(),
		Height:         g.grid.Height(),
		Cells:          g.grid.Snapshot(),
		Current:        g.current,
		Next:           g.next,
		GhostRowOffset: g.GhostRowOffset(),
		Score:          g.score,
		Level:          g.level,
		Lines:          g.lines,
		State:          g.state,
	}
}
