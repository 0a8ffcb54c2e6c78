// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDuplicateRound is returned when a round ID was already recorded.
var ErrDuplicateRound = errors.New("storage: round already recorded")

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round on the leaderboard.
type RoundResult struct {
	ID         int64
	RoundID    string
	Difficulty string
	Score      int
	Length     int
	Reason     string // boundary, self, board_full
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns the inserted row ID.
// Saving the same round twice returns ErrDuplicateRound.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, difficulty, score, length, reason)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RoundID, r.Difficulty, r.Score, r.Length, r.Reason,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateRound, r.RoundID)
		}
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best rounds for a difficulty, highest score first.
// An empty difficulty returns the best rounds across all presets.
func (s *Store) TopScores(difficulty string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, round_id, difficulty, score, length, reason, created_at FROM rounds`
	args := []any{}
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []RoundResult
	for rows.Next() {
		var e RoundResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Difficulty, &e.Score, &e.Length, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a difficulty, or across all
// presets when difficulty is empty. Returns 0 if no rounds exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	var err error
	if difficulty == "" {
		err = s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	} else {
		err = s.db.QueryRow("SELECT MAX(score) FROM rounds WHERE difficulty = ?", difficulty).Scan(&score)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the rounds of a difficulty, or every round when
// difficulty is empty.
func (s *Store) ClearScores(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM rounds")
	} else {
		_, err = s.db.Exec("DELETE FROM rounds WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one difficulty.
type Stats struct {
	Difficulty  string
	RoundsCount int
	HighScore   int
	AvgScore    float64
	LongestLen  int
	LastPlayed  time.Time
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MAX(length), MAX(created_at)
		 FROM rounds
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.RoundsCount, &st.HighScore, &st.AvgScore, &st.LongestLen, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// aggregated DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
