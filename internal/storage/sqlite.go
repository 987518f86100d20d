// Package storage provides SQLite-based persistence for learner state and
// the leaderboard. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxRecords is how many leaderboard records are kept.
const MaxRecords = 20

// Store manages the SQLite database connection.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Record is one finished session on the leaderboard.
type Record struct {
	ID        int64
	Mode      string // "practice" or "challenge"
	Scope     string // Empty for challenge sessions
	Score     int
	Duration  int // Configured session length in seconds
	MaxCombo  int
	Answered  int
	Correct   int
	Cleared   int // Terms mastered or cleared from the wrong-words queue
	CreatedAt time.Time
}

type recordRow struct {
	ID        int64  `db:"id"`
	Mode      string `db:"mode"`
	Scope     string `db:"scope"`
	Score     int    `db:"score"`
	Duration  int    `db:"duration_secs"`
	MaxCombo  int    `db:"max_combo"`
	Answered  int    `db:"answered"`
	Correct   int    `db:"correct"`
	Cleared   int    `db:"cleared"`
	CreatedAt int64  `db:"created_at"` // unix milliseconds
}

func (r recordRow) record() Record {
	return Record{
		ID:        r.ID,
		Mode:      r.Mode,
		Scope:     r.Scope,
		Score:     r.Score,
		Duration:  r.Duration,
		MaxCombo:  r.MaxCombo,
		Answered:  r.Answered,
		Correct:   r.Correct,
		Cleared:   r.Cleared,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
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

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			scope TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			answered INTEGER NOT NULL DEFAULT 0,
			correct INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_top ON records(score DESC);
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

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot remove %q: %w", key, err)
	}
	return nil
}

// SaveRecord appends a leaderboard record and trims the table to the best
// MaxRecords scores. Returns the ID of the inserted record; the record may
// already have been trimmed if it did not make the cut.
func (s *Store) SaveRecord(r Record) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.NamedExec(
		`INSERT INTO records (mode, scope, score, duration_secs, max_combo, answered, correct, cleared, created_at)
		 VALUES (:mode, :scope, :score, :duration_secs, :max_combo, :answered, :correct, :cleared, :created_at)`,
		recordRow{
			Mode:      r.Mode,
			Scope:     r.Scope,
			Score:     r.Score,
			Duration:  r.Duration,
			MaxCombo:  r.MaxCombo,
			Answered:  r.Answered,
			Correct:   r.Correct,
			Cleared:   r.Cleared,
			CreatedAt: r.CreatedAt.UnixMilli(),
		},
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM records WHERE id NOT IN (
			SELECT id FROM records ORDER BY score DESC, id ASC LIMIT ?
		)`,
		MaxRecords,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit record: %w", err)
	}

	return id, nil
}

// TopRecords retrieves the top N records ordered by score descending.
// Ties keep insertion order.
func (s *Store) TopRecords(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = MaxRecords
	}

	var rows []recordRow
	err := s.db.Select(&rows,
		`SELECT id, mode, scope, score, duration_secs, max_combo, answered, correct, cleared, created_at
		 FROM records
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no records exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM records"); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRecords deletes every leaderboard record.
func (s *Store) ClearRecords() error {
	if _, err := s.db.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// Stats contains aggregated leaderboard statistics.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStats aggregates the kept records.
func (s *Store) GetStats() (*Stats, error) {
	var row struct {
		Games      int           `db:"games"`
		HighScore  int           `db:"high"`
		AvgScore   float64       `db:"avg"`
		LastPlayed sql.NullInt64 `db:"last"`
	}
	err := s.db.Get(&row,
		`SELECT COUNT(*) AS games, COALESCE(MAX(score), 0) AS high,
		        COALESCE(AVG(score), 0) AS avg, MAX(created_at) AS last
		 FROM records`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats := &Stats{Games: row.Games, HighScore: row.HighScore, AvgScore: row.AvgScore}
	if row.LastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(row.LastPlayed.Int64)
	}
	return stats, nil
}
