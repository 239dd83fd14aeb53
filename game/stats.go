package game

import "github.com/kamstrup/intmap"

// Stats counts what happened during a game.
type Stats struct {
	Spawned      int
	Locked       int
	LinesCleared int
	// Clears[n-1] counts locks that matched n rows at once.
	Clears [4]int

	perType *intmap.Map[PieceType, int]
}

func newStats() Stats {
	return Stats{
		perType: intmap.New[PieceType, int](PieceCount),
	}
}

func (s *Stats) recordSpawn(t PieceType) {
	s.Spawned++
	n, _ := s.perType.Get(t)
	s.perType.Put(t, n+1)
}

func (s *Stats) recordLock() {
	s.Locked++
}

func (s *Stats) recordMatch(rows int) {
	s.LinesCleared += rows
	if rows >= 1 && rows <= len(s.Clears) {
		s.Clears[rows-1]++
	}
}

// SpawnedOf returns how many pieces of type t have been spawned.
func (s Stats) SpawnedOf(t PieceType) int {
	n, _ := s.perType.Get(t)
	return n
}

func (s Stats) clone() Stats {
	out := s
	out.perType = intmap.New[PieceType, int](PieceCount)
	s.perType.ForEach(func(t PieceType, n int) bool {
		out.perType.Put(t, n)
		return true
	})
	return out
}
