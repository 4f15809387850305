package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagRecent     int
	flagLimit      int
	flagAllModes   bool
	flagClearModes bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the high scores, overall statistics and the most recent
games for the specified mode (default: 2048).

The ID and seed of each recent game are shown; pass the ID to
't2048 replay --game <id>' to replay moves on the same opening.

Examples:
  t2048 scores
  t2048 scores 2048_endless --recent 10
  t2048 scores --limit 0      # every recorded score
  t2048 scores --all          # summary of all modes
  t2048 scores 2048 --clear   # forget scores and games of a mode`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to list")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of high scores to list (0 = all)")
	scoresCmd.Flags().BoolVar(&flagAllModes, "all", false, "Summarize every mode that has been played")
	scoresCmd.Flags().BoolVar(&flagClearModes, "clear", false, "Delete all scores and games of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := t2048.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok && !flagAllModes {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagAllModes:
		err = printAllModes(store)
	case flagClearModes:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared scores and games of %s.\n", info.Title)
		}
	default:
		err = printModeScores(store, info)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printModeScores shows high scores, statistics and recent games of one mode.
func printModeScores(store *storage.Store, info registry.GameInfo) error {
	var scores []storage.ScoreEntry
	var err error
	if flagLimit <= 0 {
		scores, err = store.AllScores(info.ID)
	} else {
		scores, err = store.TopScores(info.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetGameStats(info.ID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Best tile: %d  Games: %d  Wins: %d  Avg: %.0f\n",
			stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins, stats.AvgScore)
	}

	if flagRecent <= 0 {
		return nil
	}

	games, err := store.RecentGames(info.ID, flagRecent)
	if err != nil || len(games) == 0 {
		return err
	}

	fmt.Println()
	fmt.Println("Recent games:")
	fmt.Printf("  %-36s  %-8s  %-6s  %-6s  %-5s  %-4s  %s\n", "ID", "Score", "Tile", "Moves", "Undos", "Won", "Seed")
	for _, g := range games {
		won := "no"
		if g.Won {
			won = "yes"
		}
		fmt.Printf("  %-36s  %-8d  %-6d  %-6d  %-5d  %-4s  %d\n",
			g.ID, g.Score, g.MaxTile, g.Moves, g.UndosUsed, won, g.Seed)
	}
	return nil
}

// printAllModes prints one summary line per played mode.
func printAllModes(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	modes := make([]string, 0, len(all))
	for mode := range all {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Printf("  %-14s  %-6s  %-5s  %-8s  %-6s  %-8s  %s\n", "Mode", "Games", "Wins", "Best", "Tile", "Avg", "Last played")
	for _, mode := range modes {
		s := all[mode]
		fmt.Printf("  %-14s  %-6d  %-5d  %-8d  %-6d  %-8.0f  %s\n",
			mode, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
