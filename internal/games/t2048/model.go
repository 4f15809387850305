package t2048

import "fmt"

// Classic rule values.
const (
	BoardSize      = 4
	WinTile        = 2048
	MaxUndos       = 3
	StartTileCount = 2
)

// Rules holds the fixed parameters of one game.
type Rules struct {
	Rows       int
	Cols       int
	WinTile    int // Smallest tile value that counts as a win
	MaxUndos   int // Undo budget per game, also the history capacity
	StartTiles int // Tiles spawned by the session when a game starts
}

// DefaultRules returns the classic 4x4 rules.
func DefaultRules() Rules {
	return Rules{
		Rows:       BoardSize,
		Cols:       BoardSize,
		WinTile:    WinTile,
		MaxUndos:   MaxUndos,
		StartTiles: StartTileCount,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Rows < 1 || r.Cols < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidRules, r.Rows, r.Cols)
	case !IsTileValue(r.WinTile):
		return fmt.Errorf("%w: win tile %d is not a power of two", ErrInvalidRules, r.WinTile)
	case r.MaxUndos < 0:
		return fmt.Errorf("%w: max undos %d", ErrInvalidRules, r.MaxUndos)
	case r.StartTiles < 0 || r.StartTiles > r.Rows*r.Cols:
		return fmt.Errorf("%w: start tiles %d", ErrInvalidRules, r.StartTiles)
	}
	return nil
}

// Model owns the authoritative board, score, undo budget and history of one game.
// It is not safe for concurrent use.
type Model struct {
	rules   Rules
	spawner *Spawner
	tiles   Board
	score   int
	undos   int
	history *History
}

// NewModel creates a model and starts a new game. A nil spawner is replaced
// by one seeded with 0, so such models always spawn the same sequence.
func NewModel(rules Rules, spawner *Spawner) (*Model, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if spawner == nil {
		spawner = NewSeededSpawner(0, DefaultFourProbability)
	}

	m := &Model{
		rules:   rules,
		spawner: spawner,
		history: NewHistory(rules.MaxUndos),
	}
	m.NewGame()
	return m, nil
}

// NewGame resets the board to empty, the score to zero, the undo budget to
// its maximum and clears the history.
func (m *Model) NewGame() {
	m.tiles = NewBoard(m.rules.Rows, m.rules.Cols)
	m.score = 0
	m.undos = m.rules.MaxUndos
	m.history.Reset()
}

// AddTile places a 2 or 4 in a uniformly chosen empty cell.
// Does nothing and returns false when the board is full.
func (m *Model) AddTile() (Spawn, bool) {
	spawn, ok := m.spawner.Next(m.tiles.EmptyCells())
	if !ok {
		return Spawn{}, false
	}
	m.tiles[spawn.Pos.Row][spawn.Pos.Col] = spawn.Value
	return spawn, true
}

// AttemptMove slides the board in dir. When the board changes, the new board
// and score are committed, the previous state is pushed onto the history and
// true is returned. An ineffective move leaves the model untouched.
func (m *Model) AttemptMove(dir Direction) (bool, error) {
	next, gained, err := Move(m.tiles, dir)
	if err != nil {
		return false, err
	}
	if next.Equal(m.tiles) {
		return false, nil
	}

	m.history.Push(Entry{Tiles: m.tiles, Score: m.score})
	m.tiles = next
	m.score += gained
	return true, nil
}

// UseUndo restores the state before the most recent recorded move and spends
// one undo. Returns false without changes when no undos remain or the history is empty.
func (m *Model) UseUndo() bool {
	if m.undos <= 0 {
		return false
	}
	entry, ok := m.history.Pop()
	if !ok {
		return false
	}

	m.tiles = entry.Tiles
	m.score = entry.Score
	m.undos--
	return true
}

// HasWon returns true if any tile reached the win tile.
func (m *Model) HasWon() bool {
	return m.tiles.MaxTile() >= m.rules.WinTile
}

// HasLost returns true if the board is full and no direction would change it.
// Moves are tried on copies, committed state is never touched.
func (m *Model) HasLost() bool {
	return !CanMove(m.tiles)
}

// Load replaces the board and score, for example from a saved snapshot.
// The history is cleared; the undo budget is kept.
func (m *Model) Load(tiles Board, score int) error {
	if tiles.Rows() != m.rules.Rows || tiles.Cols() != m.rules.Cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrInvalidBoard, tiles.Rows(), tiles.Cols(), m.rules.Rows, m.rules.Cols)
	}
	if err := tiles.Validate(); err != nil {
		return err
	}
	if score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidBoard, score)
	}

	m.tiles = tiles.Clone()
	m.score = score
	m.history.Reset()
	return nil
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// UndosRemaining returns how many undos are left in this game.
func (m *Model) UndosRemaining() int {
	return m.undos
}

// Tiles returns a copy of the board.
func (m *Model) Tiles() Board {
	return m.tiles.Clone()
}

// MaxTile returns the highest tile on the board.
func (m *Model) MaxTile() int {
	return m.tiles.MaxTile()
}

// HistoryLen returns the number of moves that can currently be undone,
// ignoring the undo budget.
func (m *Model) HistoryLen() int {
	return m.history.Len()
}

// Rules returns the rules of this model.
func (m *Model) Rules() Rules {
	return m.rules
}
