package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// GameRecord is the summary of one finished game.
type GameRecord struct {
	ID        string
	Mode      string
	Score     int
	MaxTile   int
	Moves     int
	UndosUsed int
	Won       bool
	Seed      int64
	CreatedAt time.Time

	// Config holds the rules the game was played with. It is nil for games
	// recorded before rules were stored.
	Config *config.Config
}

// GameStats contains aggregated statistics for a mode.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	BestTile   int
	AvgScore   float64
	TotalMoves int64
	LastPlayed time.Time
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// RecordGame stores a finished game together with its high score entry in
// one transaction. Games that scored nothing get no score entry.
func (s *Store) RecordGame(rec GameRecord) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertGame(tx, rec)
	if err != nil {
		return "", err
	}

	if rec.Score > 0 {
		if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", rec.Mode, rec.Score); err != nil {
			return "", fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit: %w", err)
	}
	return id, nil
}

func insertGame(ex execer, rec GameRecord) (string, error) {
	id := uuid.New().String()

	// Rules columns stay NULL without a config.
	rules := make([]any, 6)
	if c := rec.Config; c != nil {
		rules = []any{c.Board.Rows, c.Board.Cols, c.Rules.WinTile, c.Rules.MaxUndos, c.Rules.StartTiles, c.Spawn.FourProbability}
	}

	args := append([]any{id, rec.Mode, rec.Score, rec.MaxTile, rec.Moves, rec.UndosUsed, rec.Won, rec.Seed}, rules...)
	_, err := ex.Exec(
		`INSERT INTO games (id, mode, score, max_tile, moves, undos_used, won, seed,
		                    board_rows, board_cols, win_tile, max_undos, start_tiles, four_probability)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	return id, nil
}

// GameByID retrieves a finished game by its ID.
// Returns nil without error when no such game exists.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+gameColumns+`
		 FROM games WHERE id = ?`,
		id,
	)

	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return &rec, nil
}

// RecentGames retrieves the most recently finished games of a mode.
// An empty mode returns games of every mode.
func (s *Store) RecentGames(mode string, limit int) ([]GameRecord, error) {
	return s.queryGames(mode, "created_at DESC, rowid DESC", limit)
}

// TopGames retrieves the highest scoring games of a mode. Ties go to the
// bigger tile, then to the earlier game.
func (s *Store) TopGames(mode string, limit int) ([]GameRecord, error) {
	return s.queryGames(mode, "score DESC, max_tile DESC, created_at ASC", limit)
}

// queryGames lists games of a mode in the given order. The order clause is
// never built from user input.
func (s *Store) queryGames(mode, order string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE ? = '' OR mode = ?
		 ORDER BY `+order+`
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// gameColumns is the column list scanGame expects.
const gameColumns = `id, mode, score, max_tile, moves, undos_used, won, seed, created_at,
	board_rows, board_cols, win_tile, max_undos, start_tiles, four_probability`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(r rowScanner) (GameRecord, error) {
	var rec GameRecord
	var createdAt any
	var rows, cols, winTile, maxUndos, startTiles sql.NullInt64
	var fourProb sql.NullFloat64
	err := r.Scan(
		&rec.ID,
		&rec.Mode,
		&rec.Score,
		&rec.MaxTile,
		&rec.Moves,
		&rec.UndosUsed,
		&rec.Won,
		&rec.Seed,
		&createdAt,
		&rows,
		&cols,
		&winTile,
		&maxUndos,
		&startTiles,
		&fourProb,
	)
	if err != nil {
		return GameRecord{}, err
	}
	rec.CreatedAt = parseTime(createdAt)

	if rows.Valid {
		rec.Config = &config.Config{
			Board: config.BoardConfig{Rows: int(rows.Int64), Cols: int(cols.Int64)},
			Rules: config.RulesConfig{
				WinTile:    int(winTile.Int64),
				MaxUndos:   int(maxUndos.Int64),
				StartTiles: int(startTiles.Int64),
			},
			Spawn: config.SpawnConfig{FourProbability: fourProb.Float64},
		}
	}
	return rec, nil
}

// GetGameStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(MAX(max_tile), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM games WHERE mode = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.BestTile,
		&stats.AvgScore, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all modes that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), SUM(won), MAX(score), MAX(max_tile), AVG(score), SUM(moves), MAX(created_at)
		 FROM games
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.Wins, &gs.HighScore, &gs.BestTile,
			&gs.AvgScore, &gs.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
