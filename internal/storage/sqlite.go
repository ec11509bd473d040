// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// MatchResult represents the recorded outcome of one match.
type MatchResult struct {
	ID        int64
	MatchID   string // UUID assigned by the caller
	Bot1      string
	Bot2      string
	Score1    int
	Score2    int
	Winner    int // 1 or 2
	Rounds    int
	Bullets1  int // Total bullets fired by player 1
	Bullets2  int
	Duration  int    // Simulated duration in seconds
	EndReason string // "score", "clock", "stalemate", "aborted"
	Seed      int64
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			bot1 TEXT NOT NULL,
			bot2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			bullets1 INTEGER NOT NULL DEFAULT 0,
			bullets2 INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_bot1 ON matches(bot1);
		CREATE INDEX IF NOT EXISTS idx_matches_bot2 ON matches(bot2);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records the result of a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, bot1, bot2, score1, score2, winner, rounds, bullets1, bullets2, duration_secs, end_reason, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Bot1,
		result.Bot2,
		result.Score1,
		result.Score2,
		result.Winner,
		result.Rounds,
		result.Bullets1,
		result.Bullets2,
		result.Duration,
		result.EndReason,
		result.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	var result MatchResult
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, match_id, bot1, bot2, score1, score2, winner, rounds,
		        bullets1, bullets2, duration_secs, end_reason, seed, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	).Scan(
		&result.ID,
		&result.MatchID,
		&result.Bot1,
		&result.Bot2,
		&result.Score1,
		&result.Score2,
		&result.Winner,
		&result.Rounds,
		&result.Bullets1,
		&result.Bullets2,
		&result.Duration,
		&result.EndReason,
		&result.Seed,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	result.CreatedAt = parseCreatedAt(createdAt)
	return &result, nil
}

// RecentMatches retrieves the most recent match results.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, bot1, bot2, score1, score2, winner, rounds,
		        bullets1, bullets2, duration_secs, end_reason, seed, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var result MatchResult
		var createdAt any

		if err := rows.Scan(
			&result.ID,
			&result.MatchID,
			&result.Bot1,
			&result.Bot2,
			&result.Score1,
			&result.Score2,
			&result.Winner,
			&result.Rounds,
			&result.Bullets1,
			&result.Bullets2,
			&result.Duration,
			&result.EndReason,
			&result.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		result.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BotStats contains aggregated statistics for one bot across all matches.
type BotStats struct {
	Bot       string
	Matches   int
	Wins      int
	GoalsFor  int
	GoalsAgst int
}

// GetBotStats retrieves aggregated statistics for a specific bot,
// counting appearances on either side.
func (s *Store) GetBotStats(bot string) (*BotStats, error) {
	stats := &BotStats{Bot: bot}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN (bot1 = ? AND winner = 1) OR (bot2 = ? AND winner = 2) THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN bot1 = ? THEN score1 ELSE score2 END), 0),
		        COALESCE(SUM(CASE WHEN bot1 = ? THEN score2 ELSE score1 END), 0)
		 FROM matches WHERE bot1 = ? OR bot2 = ?`,
		bot, bot, bot, bot, bot, bot,
	).Scan(&stats.Matches, &stats.Wins, &stats.GoalsFor, &stats.GoalsAgst)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get bot stats: %w", err)
	}

	return stats, nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
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
