// Package storage persists high scores and round history in SQLite.
// The pure-Go modernc.org/sqlite driver keeps the build CGO-free.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go driver
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one stored high score.
type ScoreEntry struct {
	ID        int64
	MazeID    string
	Score     int
	CreatedAt time.Time
}

// RunRecord represents one finished round: how it ended and where the
// maze stood when it did.
type RunRecord struct {
	ID          int64
	MazeID      string
	Outcome     string // "win", "loss", "quit"
	Score       int
	LivesLeft   int
	PelletsLeft int
	Duration    int // Duration in seconds
	CreatedAt   time.Time
}

// Run outcome values.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeQuit = "quit"
)

// Open opens (or creates) the database at dbPath, expanding a leading
// "~", creating parent directories, and applying the schema.
func Open(dbPath string) (*Store, error) {
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

// migrate applies the schema idempotently.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_maze_id ON scores(maze_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(maze_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			pellets_left INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_maze_id ON runs(maze_id);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(maze_id, outcome);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore inserts a score row for a maze and returns its ID.
func (s *Store) SaveScore(mazeID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (maze_id, score) VALUES (?, ?)",
		mazeID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores returns up to limit scores for a maze, best first.
func (s *Store) TopScores(mazeID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, maze_id, score, created_at
		 FROM scores
		 WHERE maze_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mazeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MazeID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score for a maze, or 0 when none exist.
func (s *Store) HighScore(mazeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE maze_id = ?",
		mazeID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes every score row for a maze.
func (s *Store) ClearScores(mazeID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE maze_id = ?", mazeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveRun inserts a round-history row and returns its ID.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (maze_id, outcome, score, lives_left, pellets_left, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.MazeID,
		run.Outcome,
		run.Score,
		run.LivesLeft,
		run.PelletsLeft,
		run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the newest round-history rows for a maze; an
// empty mazeID spans all mazes.
func (s *Store) RecentRuns(mazeID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, maze_id, outcome, score, lives_left, pellets_left, duration_secs, created_at
		 FROM runs`
	args := []any{}
	if mazeID != "" {
		query += ` WHERE maze_id = ?`
		args = append(args, mazeID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var results []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MazeID, &r.Outcome, &r.Score, &r.LivesLeft,
			&r.PelletsLeft, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// MazeStats aggregates a maze's play history for the scoreboard and
// the scores command.
type MazeStats struct {
	MazeID     string
	Rounds     int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetMazeStats combines score aggregates with the win count from the
// run history.
func (s *Store) GetMazeStats(mazeID string) (*MazeStats, error) {
	stats := &MazeStats{MazeID: mazeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE maze_id = ?`,
		mazeID,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get maze stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM runs WHERE maze_id = ? AND outcome = ?`,
		mazeID, OutcomeWin,
	).Scan(&stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE maze_id = ? ORDER BY created_at DESC LIMIT 1`,
		mazeID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// raw DATETIME string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
