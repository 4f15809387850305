// Package t2048 implements the 2048 sliding-tile puzzle: the row reducer,
// board transforms, move engine and the game model with bounded undo,
// plus the tick-driven session that the terminal platform runs.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Registered game IDs.
const (
	IDClassic = "2048"
	IDEndless = "2048_endless"
)

// winBannerTicks is how long the endless mode shows the win banner (~2s at 60fps).
const winBannerTicks = 120

// Game is one play session: it owns a Model and turns per-tick actions into
// model operations, spawning a tile after every effective move.
type Game struct {
	mode  Mode
	cfg   config.Config
	model *Model
	tick  uint64
	seed  int64

	moves     int
	undosUsed int
	lastSpawn *Spawn

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won        bool
	gameOver   bool
	paused     bool
	tooSmall   bool
	bannerLeft int // Ticks left for the endless win banner
}

// New creates a classic game: reaching the win tile ends the game.
func New(cfg config.Config) *Game {
	return &Game{mode: ModeClassic, cfg: cfg}
}

// NewEndless creates an endless game: play continues after the win tile.
func NewEndless(cfg config.Config) *Game {
	return &Game{mode: ModeEndless, cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          IDClassic,
		Title:       "2048",
		Description: "Join the tiles, get to 2048",
	}, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
	registry.Register(registry.GameInfo{
		ID:          IDEndless,
		Title:       "2048 (Endless)",
		Description: "Keep going after 2048 until the board locks up",
	}, func(cfg config.Config) registry.Game {
		return NewEndless(cfg)
	})
}

// RulesFromConfig converts loaded configuration to model rules.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		WinTile:    cfg.Rules.WinTile,
		MaxUndos:   cfg.Rules.MaxUndos,
		StartTiles: cfg.Rules.StartTiles,
	}
}

// Config returns the configuration the game plays by.
func (g *Game) Config() config.Config {
	return g.cfg
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false

	spawner := NewSeededSpawner(cfg.Seed, g.cfg.Spawn.FourProbability)
	model, err := NewModel(RulesFromConfig(g.cfg), spawner)
	if err != nil {
		// Config is validated on load; fall back to the classic rules anyway.
		model, _ = NewModel(DefaultRules(), spawner)
	}
	g.model = model

	g.startGame()
	g.checkScreenSize()
}

// startGame clears the board and places the opening tiles.
func (g *Game) startGame() {
	g.model.NewGame()
	g.moves = 0
	g.undosUsed = 0
	g.won = false
	g.gameOver = false
	g.bannerLeft = 0
	g.lastSpawn = nil

	for range g.model.Rules().StartTiles {
		g.spawnTile()
	}
}

// spawnTile adds a tile and checks whether the board locked up.
func (g *Game) spawnTile() {
	if spawn, ok := g.model.AddTile(); ok {
		g.lastSpawn = &spawn
	}
	if g.model.HasLost() {
		g.gameOver = true
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. New games are not started here: the
// platform calls Reset with a fresh seed so every game can be replayed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}

	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Finished games wait for the platform to restart them.
	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		moved := g.undo()
		return core.StepResult{State: g.State(), Moved: moved}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFromInput picks the first direction action present in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) bool {
	changed, err := g.model.AttemptMove(dir)
	if err != nil || !changed {
		// Board didn't change - don't spawn new tile
		return false
	}
	g.moves++

	if !g.won && g.model.HasWon() {
		g.won = true
		if g.mode == ModeClassic {
			return true
		}
		g.bannerLeft = winBannerTicks
	}

	g.spawnTile()
	return true
}

// undo reverts the last move if the budget allows it.
func (g *Game) undo() bool {
	if !g.model.UseUndo() {
		return false
	}
	g.undosUsed++
	g.lastSpawn = nil
	if g.mode == ModeEndless && !g.model.HasWon() {
		g.won = false
	}
	return true
}

// Load starts the running game from a given position instead of the opening
// tiles. Counters and history are cleared; the undo budget is kept.
func (g *Game) Load(tiles Board, score int) error {
	if err := g.model.Load(tiles, score); err != nil {
		return err
	}
	g.moves = 0
	g.undosUsed = 0
	g.lastSpawn = nil
	g.bannerLeft = 0
	g.won = g.model.HasWon()
	g.gameOver = g.model.HasLost()
	return nil
}

// finished reports whether the session accepts no more moves.
func (g *Game) finished() bool {
	return g.gameOver || (g.won && g.mode == ModeClassic)
}

// Model returns the underlying game model.
func (g *Game) Model() *Model {
	return g.model
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.model == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.model.Score(),
		MaxTile:  g.model.MaxTile(),
		Undos:    g.model.UndosRemaining(),
		Moves:    g.moves,
		Spent:    g.undosUsed,
		Won:      g.won,
		GameOver: g.finished(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Resize adapts the session to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.model != nil {
		g.checkScreenSize()
	}
}
