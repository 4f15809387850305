package t2048

import (
	"errors"
	"testing"
)

func newTestModel(t *testing.T, rules Rules) *Model {
	t.Helper()
	m, err := NewModel(rules, NewSeededSpawner(42, DefaultFourProbability))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func loadBoard(t *testing.T, m *Model, b Board, score int) {
	t.Helper()
	if err := m.Load(b, score); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
}

// oneTile is a 4x4 board with a single 2 that alternates sides on left/right moves.
func oneTile() Board {
	b := NewBoard(4, 4)
	b[0][0] = 2
	return b
}

func TestNewModelNilSpawnerIsDeterministic(t *testing.T) {
	a, err := NewModel(DefaultRules(), nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	b, _ := NewModel(DefaultRules(), nil)

	for i := range 5 {
		sa, okA := a.AddTile()
		sb, okB := b.AddTile()
		if !okA || !okB || sa != sb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, sa, sb)
		}
	}
	if !a.Tiles().Equal(b.Tiles()) {
		t.Error("models with a nil spawner should build the same board")
	}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, DefaultRules())

	if m.Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.Score())
	}
	if m.UndosRemaining() != MaxUndos {
		t.Errorf("UndosRemaining() = %d, want %d", m.UndosRemaining(), MaxUndos)
	}
	if m.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", m.HistoryLen())
	}
	if got := len(m.Tiles().EmptyCells()); got != 16 {
		t.Errorf("new board has %d empty cells, want 16", got)
	}
}

func TestNewModelInvalidRules(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
	}{
		{"zero rows", Rules{Rows: 0, Cols: 4, WinTile: 2048}},
		{"win tile not a power of two", Rules{Rows: 4, Cols: 4, WinTile: 2000}},
		{"negative undos", Rules{Rows: 4, Cols: 4, WinTile: 2048, MaxUndos: -1}},
		{"too many start tiles", Rules{Rows: 2, Cols: 2, WinTile: 2048, StartTiles: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewModel(tt.rules, nil); !errors.Is(err, ErrInvalidRules) {
				t.Errorf("NewModel() error = %v, want ErrInvalidRules", err)
			}
		})
	}
}

func TestAddTile(t *testing.T) {
	m := newTestModel(t, DefaultRules())

	spawn, ok := m.AddTile()
	if !ok {
		t.Fatal("AddTile() on an empty board should succeed")
	}
	if spawn.Value != 2 && spawn.Value != 4 {
		t.Errorf("spawned value %d, want 2 or 4", spawn.Value)
	}
	if got := m.Tiles()[spawn.Pos.Row][spawn.Pos.Col]; got != spawn.Value {
		t.Errorf("cell holds %d, want %d", got, spawn.Value)
	}
	if m.HistoryLen() != 0 || m.Score() != 0 {
		t.Error("AddTile() should not touch score or history")
	}

	full := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	loadBoard(t, m, full, 0)
	if _, ok := m.AddTile(); ok {
		t.Error("AddTile() on a full board should fail")
	}
	if !m.Tiles().Equal(full) {
		t.Error("AddTile() on a full board should not change it")
	}
}

func TestAttemptMoveChanged(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}, 10)

	changed, err := m.AttemptMove(DirLeft)
	if err != nil {
		t.Fatalf("AttemptMove() failed: %v", err)
	}
	if !changed {
		t.Fatal("AttemptMove() should report a change")
	}
	if m.Score() != 14 {
		t.Errorf("Score() = %d, want 14", m.Score())
	}
	if m.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", m.HistoryLen())
	}

	want := Board{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
	}
	if !m.Tiles().Equal(want) {
		t.Errorf("Tiles() = %v, want %v", m.Tiles(), want)
	}
}

func TestAttemptMoveUnchanged(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	loadBoard(t, m, board, 6)

	changed, err := m.AttemptMove(DirLeft)
	if err != nil {
		t.Fatalf("AttemptMove() failed: %v", err)
	}
	if changed {
		t.Error("AttemptMove() should not report a change")
	}
	if m.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", m.HistoryLen())
	}
	if m.Score() != 6 || !m.Tiles().Equal(board) {
		t.Error("ineffective move should leave the model untouched")
	}
}

func TestAttemptMoveInvalidDirection(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, oneTile(), 0)

	changed, err := m.AttemptMove(Direction(-1))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("AttemptMove() error = %v, want ErrInvalidDirection", err)
	}
	if changed || m.HistoryLen() != 0 || !m.Tiles().Equal(oneTile()) {
		t.Error("invalid direction should leave the model untouched")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	before := Board{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{8, 0, 8, 0},
		{0, 0, 0, 0},
	}
	loadBoard(t, m, before, 100)

	if changed, _ := m.AttemptMove(DirLeft); !changed {
		t.Fatal("move should change the board")
	}
	if !m.UseUndo() {
		t.Fatal("UseUndo() should succeed")
	}

	if !m.Tiles().Equal(before) {
		t.Errorf("Tiles() after undo = %v, want %v", m.Tiles(), before)
	}
	if m.Score() != 100 {
		t.Errorf("Score() after undo = %d, want 100", m.Score())
	}
	if m.UndosRemaining() != MaxUndos-1 {
		t.Errorf("UndosRemaining() = %d, want %d", m.UndosRemaining(), MaxUndos-1)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	m := newTestModel(t, DefaultRules())

	if m.UseUndo() {
		t.Error("UseUndo() with empty history should fail")
	}
	if m.UndosRemaining() != MaxUndos {
		t.Errorf("failed undo should not spend budget, got %d", m.UndosRemaining())
	}
}

func TestHistoryBoundedByMaxUndos(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, oneTile(), 0)

	for i := range 5 {
		dir := DirRight
		if i%2 == 1 {
			dir = DirLeft
		}
		if changed, _ := m.AttemptMove(dir); !changed {
			t.Fatalf("move %d should change the board", i)
		}
	}

	if m.HistoryLen() != MaxUndos {
		t.Errorf("HistoryLen() = %d, want %d", m.HistoryLen(), MaxUndos)
	}

	for i := range MaxUndos {
		if !m.UseUndo() {
			t.Fatalf("undo %d should succeed", i)
		}
	}
	if m.UseUndo() {
		t.Error("undo past the budget should fail")
	}
	if m.UndosRemaining() != 0 {
		t.Errorf("UndosRemaining() = %d, want 0", m.UndosRemaining())
	}
}

func TestUndoBudgetNeverNegative(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, oneTile(), 0)

	for i := range MaxUndos + 1 {
		dir := DirLeft
		if m.Tiles()[0][0] != Empty {
			dir = DirRight
		}
		if changed, _ := m.AttemptMove(dir); !changed {
			t.Fatalf("move %d should change the board", i)
		}
		m.UseUndo()
		if m.UndosRemaining() < 0 {
			t.Fatalf("UndosRemaining() = %d", m.UndosRemaining())
		}
	}

	if m.UndosRemaining() != 0 {
		t.Errorf("UndosRemaining() = %d, want 0", m.UndosRemaining())
	}
	if m.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1 (recorded but not undoable)", m.HistoryLen())
	}
}

func TestZeroUndoBudget(t *testing.T) {
	rules := DefaultRules()
	rules.MaxUndos = 0
	m := newTestModel(t, rules)
	loadBoard(t, m, oneTile(), 0)

	m.AttemptMove(DirRight)
	if m.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", m.HistoryLen())
	}
	if m.UseUndo() {
		t.Error("UseUndo() with zero budget should fail")
	}
}

func TestHasWon(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	if m.HasWon() {
		t.Error("empty board should not be won")
	}

	loadBoard(t, m, Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)
	if m.HasWon() {
		t.Error("board without 2048 should not be won")
	}

	m.AttemptMove(DirLeft)
	if !m.HasWon() {
		t.Error("board with 2048 should be won")
	}

	loadBoard(t, m, Board{
		{4096, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)
	if !m.HasWon() {
		t.Error("tiles above the win tile also count as a win")
	}
}

func TestHasLostDoesNotMutate(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	locked := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	loadBoard(t, m, locked, 48)

	if !m.HasLost() {
		t.Error("alternating full board should be lost")
	}
	if !m.Tiles().Equal(locked) || m.Score() != 48 || m.HistoryLen() != 0 {
		t.Error("HasLost() should not change board, score or history")
	}

	loadBoard(t, m, oneTile(), 0)
	if m.HasLost() {
		t.Error("board with empty cells should not be lost")
	}
}

func TestNewGameResets(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, oneTile(), 0)
	m.AttemptMove(DirRight)
	m.AttemptMove(DirLeft)
	m.UseUndo()

	m.NewGame()

	if m.Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.Score())
	}
	if m.UndosRemaining() != MaxUndos {
		t.Errorf("UndosRemaining() = %d, want %d", m.UndosRemaining(), MaxUndos)
	}
	if m.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", m.HistoryLen())
	}
	if !m.Tiles().Equal(NewBoard(4, 4)) {
		t.Error("NewGame() should clear the board")
	}
}

func TestLoadValidation(t *testing.T) {
	m := newTestModel(t, DefaultRules())

	if err := m.Load(NewBoard(3, 4), 0); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Load() wrong size error = %v, want ErrInvalidBoard", err)
	}

	bad := NewBoard(4, 4)
	bad[1][1] = 6
	if err := m.Load(bad, 0); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Load() bad value error = %v, want ErrInvalidBoard", err)
	}

	if err := m.Load(NewBoard(4, 4), -1); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Load() negative score error = %v, want ErrInvalidBoard", err)
	}

	src := oneTile()
	loadBoard(t, m, src, 8)
	src[0][0] = 4
	if m.Tiles()[0][0] != 2 {
		t.Error("Load() should copy the board")
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	m := newTestModel(t, DefaultRules())
	loadBoard(t, m, oneTile(), 0)

	tiles := m.Tiles()
	tiles[0][0] = 1024
	if m.MaxTile() != 2 {
		t.Error("mutating Tiles() result should not affect the model")
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cells := NewBoard(4, 4).EmptyCells()
	a := NewSeededSpawner(7, DefaultFourProbability)
	b := NewSeededSpawner(7, DefaultFourProbability)

	for i := range 50 {
		sa, _ := a.Next(cells)
		sb, _ := b.Next(cells)
		if sa != sb {
			t.Fatalf("spawn %d differs: %v vs %v", i, sa, sb)
		}
	}
}

func TestSpawnerProbability(t *testing.T) {
	cells := NewBoard(2, 2).EmptyCells()

	twos := NewSeededSpawner(1, 0)
	fours := NewSeededSpawner(1, 1)
	for range 100 {
		if s, _ := twos.Next(cells); s.Value != 2 {
			t.Fatalf("probability 0 spawned %d", s.Value)
		}
		if s, _ := fours.Next(cells); s.Value != 4 {
			t.Fatalf("probability 1 spawned %d", s.Value)
		}
	}

	// Out of range probabilities clamp to [0, 1].
	above := NewSeededSpawner(1, 3)
	below := NewSeededSpawner(1, -1)
	for range 100 {
		if s, _ := above.Next(cells); s.Value != 4 {
			t.Fatalf("probability 3 spawned %d", s.Value)
		}
		if s, _ := below.Next(cells); s.Value != 2 {
			t.Fatalf("probability -1 spawned %d", s.Value)
		}
	}
}

func TestSpawnerNoCells(t *testing.T) {
	if _, ok := NewSeededSpawner(1, 0.1).Next(nil); ok {
		t.Error("Next() without cells should fail")
	}
}

func TestSpawnerPicksOnlyGivenCells(t *testing.T) {
	cells := []Pos{{Row: 1, Col: 2}, {Row: 3, Col: 0}}
	s := NewSeededSpawner(99, 0.1)

	for range 100 {
		spawn, _ := s.Next(cells)
		if spawn.Pos != cells[0] && spawn.Pos != cells[1] {
			t.Fatalf("spawned at %v, not an offered cell", spawn.Pos)
		}
	}
}
