package t2048

import "math/rand"

// DefaultFourProbability is the chance of spawning a 4 instead of a 2.
const DefaultFourProbability = 0.10

// Spawn describes a tile placed by AddTile.
type Spawn struct {
	Pos   Pos
	Value int
}

// Spawner picks the cell and value of new tiles from an injected random source.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner creates a spawner. fourProb is clamped to [0, 1].
func NewSpawner(src rand.Source, fourProb float64) *Spawner {
	switch {
	case fourProb < 0:
		fourProb = 0
	case fourProb > 1:
		fourProb = 1
	}
	return &Spawner{
		rng:      rand.New(src),
		fourProb: fourProb,
	}
}

// NewSeededSpawner creates a spawner backed by a seeded math/rand source.
func NewSeededSpawner(seed int64, fourProb float64) *Spawner {
	return NewSpawner(rand.NewSource(seed), fourProb)
}

// Next chooses one of the given empty cells uniformly and a value of 2 or 4.
// Returns false when cells is empty.
func (s *Spawner) Next(cells []Pos) (Spawn, bool) {
	if len(cells) == 0 {
		return Spawn{}, false
	}

	cell := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	return Spawn{Pos: cell, Value: value}, true
}
