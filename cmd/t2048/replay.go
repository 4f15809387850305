package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagReplayMode  string
	flagReplayGame  string
	flagReplayBoard string
)

var replayCmd = &cobra.Command{
	Use:   "replay <move>...",
	Short: "Replay a sequence of moves and print the board",
	Long: `Replay a game from a seed without a terminal UI.

Each argument is a direction (up, down, left, right or u/d/l/r) or
"undo". The same seed and moves always produce the same board.

With --game, the mode, seed and rules are taken from a recorded game
(see 't2048 scores'), so moves are replayed on the same opening with
the same undo budget and spawn odds. --config and --difficulty only
apply to games recorded before rules were stored.

With --board, play starts from the given position instead of the
opening tiles. Rows are separated by "/", cells by ",", and empty
cells are written as 0 or ".".

Examples:
  t2048 replay --seed 42 left up up right
  t2048 replay --seed 42 --mode 2048_endless l l u undo r
  t2048 replay --game 6f1c...e2 left left down
  t2048 replay --board "2,2,.,./.,.,.,./.,.,.,./.,.,.,4" left`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayMode, "mode", t2048.IDClassic, "Mode to replay")
	replayCmd.Flags().StringVar(&flagReplayGame, "game", "", "Take mode, seed and rules from a recorded game ID")
	replayCmd.Flags().StringVar(&flagReplayBoard, "board", "", "Start from this position instead of the opening tiles")
}

// replayAction converts a replay argument to a game action.
func replayAction(arg string) (core.Action, error) {
	if strings.EqualFold(arg, "undo") {
		return core.ActionUndo, nil
	}

	dir, err := t2048.ParseDirection(arg)
	if err != nil {
		return core.ActionNone, err
	}

	switch dir {
	case t2048.DirUp:
		return core.ActionUp, nil
	case t2048.DirDown:
		return core.ActionDown, nil
	case t2048.DirLeft:
		return core.ActionLeft, nil
	default:
		return core.ActionRight, nil
	}
}

func runReplay(_ *cobra.Command, args []string) {
	actions := make([]core.Action, 0, len(args))
	for _, arg := range args {
		action, err := replayAction(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		actions = append(actions, action)
	}

	setup, err := resolveReplaySetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagReplayBoard != "" {
		if setup.board, err = parseBoard(flagReplayBoard); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	snap, applied, err := replay(setup, actions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if applied < len(actions) {
		fmt.Printf("Game ended after %d of %d moves.\n", applied, len(actions))
	}

	printSnapshot(snap)
}

// replaySetup is the mode, seed and rules a replay starts from. A nil board
// keeps the opening tiles.
type replaySetup struct {
	mode  string
	seed  int64
	cfg   config.Config
	board t2048.Board
}

// parseBoard reads a position: rows separated by "/", cells by ",", empty
// cells as 0 or ".".
func parseBoard(s string) (t2048.Board, error) {
	var board t2048.Board
	for _, line := range strings.Split(s, "/") {
		var row []int
		for _, cell := range strings.Split(line, ",") {
			cell = strings.TrimSpace(cell)
			if cell == "." {
				row = append(row, t2048.Empty)
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("board cell %q: %w", cell, err)
			}
			row = append(row, v)
		}
		board = append(board, row)
	}
	return board, nil
}

// resolveReplaySetup reads the setup from the flags, or from the recorded
// game named by --game.
func resolveReplaySetup() (replaySetup, error) {
	if flagReplayGame == "" {
		cfg, err := loadGameConfig()
		if err != nil {
			return replaySetup{}, err
		}
		return replaySetup{mode: flagReplayMode, seed: flagSeed, cfg: cfg}, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return replaySetup{}, fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return recordedSetup(store, flagReplayGame)
}

// recordedSetup takes mode, seed and rules from a saved game. Games recorded
// before rules were stored are replayed with the loaded config.
func recordedSetup(store *storage.Store, id string) (replaySetup, error) {
	rec, err := store.GameByID(id)
	if err != nil {
		return replaySetup{}, err
	}
	if rec == nil {
		return replaySetup{}, fmt.Errorf("no recorded game %q", id)
	}

	setup := replaySetup{mode: rec.Mode, seed: rec.Seed}
	if rec.Config != nil {
		setup.cfg = *rec.Config
		return setup, nil
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return replaySetup{}, err
	}
	newLogger().Warn("recorded game has no stored rules, using the current config", "game", id)
	setup.cfg = cfg
	return setup, nil
}

// replay runs the actions headlessly. It returns the final snapshot and the
// number of actions applied before the game ended.
func replay(setup replaySetup, actions []core.Action) (t2048.Snapshot, int, error) {
	created, err := registry.Create(setup.mode, setup.cfg)
	if err != nil {
		return t2048.Snapshot{}, 0, fmt.Errorf("creating game: %w", err)
	}
	game, ok := created.(*t2048.Game)
	if !ok {
		return t2048.Snapshot{}, 0, fmt.Errorf("mode %q cannot be replayed", setup.mode)
	}

	// Screen size only matters for rendering; pick one that always fits.
	game.Reset(core.RuntimeConfig{
		ScreenW:  200,
		ScreenH:  100,
		TickRate: flagFPS,
		Seed:     setup.seed,
	})
	if setup.board != nil {
		if err := game.Load(setup.board, 0); err != nil {
			return t2048.Snapshot{}, 0, fmt.Errorf("loading board: %w", err)
		}
	}

	frame := core.NewInputFrame()
	for i, action := range actions {
		if game.State().GameOver {
			return game.Snapshot(), i, nil
		}
		frame.Set(action)
		game.Step(frame)
		frame.Clear()
	}
	return game.Snapshot(), len(actions), nil
}

// printSnapshot writes the board and counters as plain text.
func printSnapshot(s t2048.Snapshot) {
	width := len(fmt.Sprint(s.MaxTile)) + 1
	for _, row := range s.Board {
		var b strings.Builder
		for _, v := range row {
			cell := "."
			if v != t2048.Empty {
				cell = fmt.Sprint(v)
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		fmt.Println(b.String())
	}

	fmt.Println()
	fmt.Printf("Mode: %s  Seed: %d  State: %s\n", s.Mode, s.Seed, s.State)
	fmt.Printf("Score: %d  Max tile: %d  Moves: %d  Undos left: %d\n", s.Score, s.MaxTile, s.Moves, s.Undos)
}
