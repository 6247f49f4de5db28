// Package storage provides SQLite-based persistence for player standings.
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

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrInvalidResult is returned when a result cannot be recorded.
var ErrInvalidResult = errors.New("invalid result")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished match. Only the totals it
// contributes to are stored; the match itself is not.
type Result struct {
	MatchID string
	Variant string
	Player1 string
	Player2 string
	Winner  int // 1 or 2, 0 for a tie
}

// NewResult creates a result with a fresh match ID.
func NewResult(variant, player1, player2 string, winner int) Result {
	return Result{
		MatchID: uuid.NewString(),
		Variant: variant,
		Player1: player1,
		Player2: player2,
		Winner:  winner,
	}
}

func (r Result) validate() error {
	switch {
	case r.MatchID == "":
		return fmt.Errorf("storage: missing match id: %w", ErrInvalidResult)
	case r.Variant == "":
		return fmt.Errorf("storage: missing variant: %w", ErrInvalidResult)
	case strings.TrimSpace(r.Player1) == "" || strings.TrimSpace(r.Player2) == "":
		return fmt.Errorf("storage: missing player name: %w", ErrInvalidResult)
	case r.Player1 == r.Player2:
		return fmt.Errorf("storage: player %q on both sides: %w", r.Player1, ErrInvalidResult)
	case r.Winner < 0 || r.Winner > 2:
		return fmt.Errorf("storage: winner %d: %w", r.Winner, ErrInvalidResult)
	}
	return nil
}

// Standing is a player's running record in one variant.
// Variant is empty for totals across all variants.
type Standing struct {
	Variant   string
	Player    string
	Wins      int
	Losses    int
	Ties      int
	UpdatedAt time.Time
}

// Games returns the number of finished games.
func (s Standing) Games() int {
	return s.Wins + s.Losses + s.Ties
}

// WinRate returns wins per game in [0, 1], counting ties as half.
func (s Standing) WinRate() float64 {
	if s.Games() == 0 {
		return 0
	}
	return (float64(s.Wins) + float64(s.Ties)/2) / float64(s.Games())
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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
		CREATE TABLE IF NOT EXISTS standings (
			variant TEXT NOT NULL,
			player TEXT NOT NULL,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			ties INTEGER NOT NULL DEFAULT 0,
			last_match TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (variant, player)
		);
		CREATE INDEX IF NOT EXISTS idx_standings_rank ON standings(variant, wins DESC);
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

// upsertStanding adds one game to a player's totals. Rows already stamped
// with the same match ID are left alone, so recording a result twice is harmless.
const upsertStanding = `
	INSERT INTO standings (variant, player, wins, losses, ties, last_match, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(variant, player) DO UPDATE SET
		wins = wins + excluded.wins,
		losses = losses + excluded.losses,
		ties = ties + excluded.ties,
		last_match = excluded.last_match,
		updated_at = excluded.updated_at
	WHERE standings.last_match IS NOT excluded.last_match`

// RecordResult adds a finished match to both players' standings.
func (s *Store) RecordResult(r Result) error {
	if err := r.validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	w1, l1, t := outcomeCounts(r.Winner, 1)
	w2, l2, _ := outcomeCounts(r.Winner, 2)

	if _, err := tx.Exec(upsertStanding, r.Variant, r.Player1, w1, l1, t, r.MatchID); err != nil {
		return fmt.Errorf("storage: cannot record result for %s: %w", r.Player1, err)
	}
	if _, err := tx.Exec(upsertStanding, r.Variant, r.Player2, w2, l2, t, r.MatchID); err != nil {
		return fmt.Errorf("storage: cannot record result for %s: %w", r.Player2, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return nil
}

// outcomeCounts returns the win, loss and tie increments for the given seat.
func outcomeCounts(winner, seat int) (wins, losses, ties int) {
	switch winner {
	case 0:
		return 0, 0, 1
	case seat:
		return 1, 0, 0
	default:
		return 0, 1, 0
	}
}

// TopStandings returns the best records for a variant, or across all
// variants when variant is empty. Ordered by wins, then win margin, then ties.
func (s *Store) TopStandings(variant string, limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if variant == "" {
		rows, err = s.db.Query(
			`SELECT '', player, SUM(wins), SUM(losses), SUM(ties), MAX(updated_at)
			 FROM standings
			 GROUP BY player
			 ORDER BY SUM(wins) DESC, SUM(wins) - SUM(losses) DESC, SUM(ties) DESC, player ASC
			 LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT variant, player, wins, losses, ties, updated_at
			 FROM standings
			 WHERE variant = ?
			 ORDER BY wins DESC, wins - losses DESC, ties DESC, player ASC
			 LIMIT ?`,
			variant, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var result []Standing
	for rows.Next() {
		var st Standing
		var updatedAt any
		if err := rows.Scan(&st.Variant, &st.Player, &st.Wins, &st.Losses, &st.Ties, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.UpdatedAt = parseTime(updatedAt)
		result = append(result, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// PlayerRecord returns one player's record in a variant.
// A player who never finished a game gets a zero record.
func (s *Store) PlayerRecord(variant, player string) (Standing, error) {
	st := Standing{Variant: variant, Player: player}
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT wins, losses, ties, updated_at
		 FROM standings
		 WHERE variant = ? AND player = ?`,
		variant, player,
	).Scan(&st.Wins, &st.Losses, &st.Ties, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot query record: %w", err)
	}

	st.UpdatedAt = parseTime(updatedAt)
	return st, nil
}

// Variants lists the variants that have standings, sorted by name.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM standings ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return variants, nil
}

// ClearStandings deletes the standings of one variant, or all of them when variant is empty.
func (s *Store) ClearStandings(variant string) error {
	var err error
	if variant == "" {
		_, err = s.db.Exec("DELETE FROM standings")
	} else {
		_, err = s.db.Exec("DELETE FROM standings WHERE variant = ?", variant)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear standings: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
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
