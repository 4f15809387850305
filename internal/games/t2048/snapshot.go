package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "endless"
	Seed      int64
	Score     int
	Board     Board
	MaxTile   int
	Undos     int // Undos remaining
	History   int // Moves currently undoable
	Moves     int
	UndosUsed int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.won && g.mode == ModeClassic:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Seed:      g.seed,
		Score:     g.model.Score(),
		Board:     g.model.Tiles(),
		MaxTile:   g.model.MaxTile(),
		Undos:     g.model.UndosRemaining(),
		History:   g.model.HistoryLen(),
		Moves:     g.moves,
		UndosUsed: g.undosUsed,
		State:     state,
	}
}
