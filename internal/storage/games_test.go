package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordGameAndLookup(t *testing.T) {
	store := openTestStore(t)

	rec := GameRecord{
		Mode:      "2048",
		Score:     20480,
		MaxTile:   2048,
		Moves:     950,
		UndosUsed: 2,
		Won:       true,
		Seed:      42,
	}
	cfg := config.Default()
	cfg.Board.Rows = 5
	cfg.Rules.MaxUndos = 1
	cfg.Spawn.FourProbability = 0.25
	rec.Config = &cfg

	id, err := store.RecordGame(rec)
	if err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	got, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("GameByID() returned nil for a saved game")
	}

	if got.ID != id || got.Mode != rec.Mode || got.Score != rec.Score || got.MaxTile != rec.MaxTile ||
		got.Moves != rec.Moves || got.UndosUsed != rec.UndosUsed || !got.Won || got.Seed != rec.Seed {
		t.Errorf("GameByID() = %+v, want %+v", got, rec)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if got.Config == nil || *got.Config != cfg {
		t.Errorf("Config = %+v, want %+v", got.Config, cfg)
	}

	missing, err := store.GameByID("no-such-game")
	if err != nil || missing != nil {
		t.Errorf("GameByID() of a missing game = %v, %v; want nil, nil", missing, err)
	}
}

func TestRecordGameUniqueIDs(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.RecordGame(GameRecord{Mode: "2048"})
	b, _ := store.RecordGame(GameRecord{Mode: "2048"})
	if a == "" || a == b {
		t.Errorf("expected distinct IDs, got %q and %q", a, b)
	}

	// Games recorded without rules read back without a config.
	if rec, _ := store.GameByID(a); rec == nil || rec.Config != nil {
		t.Errorf("GameByID() = %+v, want a record without config", rec)
	}
}

func TestOpenUpgradesGamesWithoutRules(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "v2.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	if _, err := db.Exec(migrations[0] + migrations[1] + "PRAGMA user_version = 2;"); err != nil {
		t.Fatalf("seeding v2 schema failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO games (id, mode, score, seed) VALUES ('old', '2048', 256, 9)"); err != nil {
		t.Fatalf("seeding game failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	old, err := store.GameByID("old")
	if err != nil || old == nil {
		t.Fatalf("GameByID(old) = %v, %v", old, err)
	}
	if old.Seed != 9 || old.Config != nil {
		t.Errorf("old game = %+v, want seed 9 and no config", old)
	}

	cfg := config.Default()
	id, err := store.RecordGame(GameRecord{Mode: "2048", Score: 8, Config: &cfg})
	if err != nil {
		t.Fatalf("RecordGame() after upgrade failed: %v", err)
	}
	if rec, _ := store.GameByID(id); rec == nil || rec.Config == nil || *rec.Config != cfg {
		t.Errorf("GameByID() = %+v, want config %+v", rec, cfg)
	}
}

func TestRecentGames(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.RecordGame(GameRecord{Mode: "2048", Score: i * 100})
	}
	store.RecordGame(GameRecord{Mode: "2048_endless", Score: 9000})

	games, err := store.RecentGames("2048", 3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(games))
	}
	// Same created_at second; newest insert first
	if games[0].Score != 400 {
		t.Errorf("Expected newest game first, got score %d", games[0].Score)
	}
	for _, g := range games {
		if g.Mode != "2048" {
			t.Errorf("RecentGames(2048) returned mode %q", g.Mode)
		}
	}

	all, err := store.RecentGames("", 0)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 games across modes, got %d", len(all))
	}
}

func TestTopGames(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame(GameRecord{Mode: "2048", Score: 500, MaxTile: 64})
	store.RecordGame(GameRecord{Mode: "2048", Score: 900, MaxTile: 128})
	store.RecordGame(GameRecord{Mode: "2048", Score: 500, MaxTile: 128})
	store.RecordGame(GameRecord{Mode: "2048_endless", Score: 9000, MaxTile: 1024})

	games, err := store.TopGames("2048", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	want := []struct{ score, tile int }{{900, 128}, {500, 128}, {500, 64}}
	for i, w := range want {
		if games[i].Score != w.score || games[i].MaxTile != w.tile {
			t.Errorf("games[%d] = %d/%d, want %d/%d", i, games[i].Score, games[i].MaxTile, w.score, w.tile)
		}
	}

	all, _ := store.TopGames("", 1)
	if len(all) != 1 || all[0].Score != 9000 {
		t.Errorf("TopGames(\"\", 1) = %+v, want the endless game", all)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.RecordGame(GameRecord{Mode: "2048", Score: 1000, MaxTile: 128, Moves: 100})
	store.RecordGame(GameRecord{Mode: "2048", Score: 3000, MaxTile: 2048, Moves: 300, Won: true})
	store.RecordGame(GameRecord{Mode: "2048_endless", Score: 50000, MaxTile: 4096, Moves: 2000, Won: true})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 3000 || stats.BestTile != 2048 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 2000 || stats.TotalMoves != 400 {
		t.Errorf("Unexpected averages: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["2048_endless"].BestTile != 4096 {
		t.Errorf("Unexpected stats map: %+v", all)
	}
}

func TestClearScoresRemovesGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.RecordGame(GameRecord{Mode: "2048", Score: 100})
	store.RecordGame(GameRecord{Mode: "2048_endless", Score: 200})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	games, _ := store.RecentGames("", 10)
	if len(games) != 1 || games[0].Mode != "2048_endless" {
		t.Errorf("Expected only the endless game to remain, got %+v", games)
	}
}

func TestRecordGame(t *testing.T) {
	store := openTestStore(t)

	id, err := store.RecordGame(GameRecord{Mode: "2048", Score: 1234, MaxTile: 128, Moves: 90, Seed: 3})
	if err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	rec, _ := store.GameByID(id)
	if rec == nil || rec.Score != 1234 || rec.Seed != 3 {
		t.Errorf("GameByID() = %+v", rec)
	}
	if high, _ := store.HighScore("2048"); high != 1234 {
		t.Errorf("HighScore() = %d, want 1234", high)
	}

	// A game without points is kept, but not as a score.
	if _, err := store.RecordGame(GameRecord{Mode: "2048_endless"}); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}
	if scores, _ := store.TopScores("2048_endless", 10); len(scores) != 0 {
		t.Errorf("zero-score game should not add a score entry, got %d", len(scores))
	}
	if games, _ := store.RecentGames("2048_endless", 10); len(games) != 1 {
		t.Errorf("expected the zero-score game to be recorded, got %d", len(games))
	}
}
