// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/colornova/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for profiles, scores and achievements.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			games_played INTEGER NOT NULL DEFAULT 0,
			highest_score INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			mode TEXT NOT NULL,
			shape_mode INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			user_id TEXT NOT NULL,
			achievement_id TEXT NOT NULL,
			unlocked_at TEXT NOT NULL,
			PRIMARY KEY (user_id, achievement_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_created_at ON scores(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_user ON scores(user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureProfile returns the local profile, creating it with name if none exists.
func (s *Store) EnsureProfile(ctx context.Context, name string) (model.Profile, error) {
	p, err := s.loadProfile(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, err
	}
	p = model.Profile{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, created_at, games_played, highest_score) VALUES (?, ?, ?, 0, 0)`,
		p.ID, p.Name, p.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (s *Store) loadProfile(ctx context.Context) (model.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, games_played, highest_score FROM profiles ORDER BY created_at ASC LIMIT 1`)
	var p model.Profile
	var createdAt string
	if err := row.Scan(&p.ID, &p.Name, &createdAt, &p.GamesPlayed, &p.HighestScore); err != nil {
		return model.Profile{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Profile{}, err
	}
	p.CreatedAt = parsed
	return p, nil
}

// RenameProfile changes the display name of a profile. Existing score entries keep the old name.
func (s *Store) RenameProfile(ctx context.Context, userID, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE profiles SET name = ? WHERE id = ?`, name, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("profile %s not found", userID)
	}
	return nil
}

// RecordGame counts a finished game for the profile and returns games played so far.
func (s *Store) RecordGame(ctx context.Context, userID string, score int) (int, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET games_played = games_played + 1,
			highest_score = MAX(highest_score, ?)
		 WHERE id = ?`, score, userID)
	if err != nil {
		return 0, err
	}
	var played int
	if err := s.db.QueryRowContext(ctx, `SELECT games_played FROM profiles WHERE id = ?`, userID).Scan(&played); err != nil {
		return 0, err
	}
	return played, nil
}

// InsertScore appends a score entry and returns its id.
func (s *Store) InsertScore(ctx context.Context, entry model.ScoreEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (id, user_id, name, score, mode, shape_mode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.UserID,
		entry.Name,
		entry.Score,
		string(entry.Mode),
		boolToInt(entry.ShapeMode),
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// ListTopScores returns up to window entries ordered by score, highest first.
// Equal scores keep insertion order.
func (s *Store) ListTopScores(ctx context.Context, window int) ([]model.ScoreEntry, error) {
	if window <= 0 {
		return nil, nil
	}
	return s.queryScores(ctx, `SELECT id, user_id, name, score, mode, shape_mode, created_at
		FROM scores
		ORDER BY score DESC, rowid ASC
		LIMIT ?`, window)
}

// ListScoresForUser returns a player's entries in chronological order.
// When cfg.Last is set only the most recent entries are kept.
func (s *Store) ListScoresForUser(ctx context.Context, userID string, cfg model.StatsConfig) ([]model.ScoreEntry, error) {
	clauses := []string{"user_id = ?"}
	args := []any{userID}
	if cfg.Mode != nil {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(*cfg.Mode))
	}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, user_id, name, score, mode, shape_mode, created_at
		FROM scores
		WHERE %s
		ORDER BY created_at ASC, rowid ASC`, strings.Join(clauses, " AND "))
	entries, err := s.queryScores(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(entries) > cfg.Last {
		entries = entries[len(entries)-cfg.Last:]
	}
	return entries, nil
}

// CountGames counts a player's entries, optionally narrowed by mode and shape setting.
func (s *Store) CountGames(ctx context.Context, userID string, filter model.LeaderboardFilter) (int, error) {
	clauses := []string{"user_id = ?"}
	args := []any{userID}
	if filter.Mode != nil {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(*filter.Mode))
	}
	if filter.ShapeMode != nil {
		clauses = append(clauses, "shape_mode = ?")
		args = append(args, boolToInt(*filter.ShapeMode))
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM scores WHERE %s`, strings.Join(clauses, " AND "))
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// UnlockAchievement records an unlock. It reports false when the achievement was already unlocked.
func (s *Store) UnlockAchievement(ctx context.Context, userID, achievementID string, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO achievements (user_id, achievement_id, unlocked_at) VALUES (?, ?, ?)
		 ON CONFLICT(user_id, achievement_id) DO NOTHING`,
		userID, achievementID, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListUnlocked returns unlock times keyed by achievement id.
func (s *Store) ListUnlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT achievement_id, unlocked_at FROM achievements WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]time.Time{}
	for rows.Next() {
		var id, at string
		if err := rows.Scan(&id, &at); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, err
		}
		result[id] = parsed
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) queryScores(ctx context.Context, query string, args ...any) ([]model.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.ScoreEntry
	for rows.Next() {
		var e model.ScoreEntry
		var mode, createdAt string
		var shape int
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Score, &mode, &shape, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		e.Mode = model.ModeID(mode)
		e.ShapeMode = shape != 0
		e.Timestamp = parsed
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
