package tetris

import "github.com/kamstrup/intmap"

// Stats counts the pieces that entered play and the line clears of a session.
type Stats struct {
	spawned *intmap.Map[Kind, int]
	clears  *intmap.Map[int, int]
	pieces  int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, int](KindCount),
		clears:  intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(k Kind) {
	n, _ := s.spawned.Get(k)
	s.spawned.Put(k, n+1)
	s.pieces++
}

func (s *Stats) recordClear(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.pieces = 0
}

// Spawned returns how many pieces of kind k have become the current piece.
func (s *Stats) Spawned(k Kind) int {
	n, _ := s.spawned.Get(k)
	return n
}

// Pieces returns the total number of pieces that have become current.
func (s *Stats) Pieces() int {
	return s.pieces
}

// Clears returns how many lock sequences cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
