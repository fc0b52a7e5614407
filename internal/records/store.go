package records

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kingrea/robotfindskitten/internal/game"
)

// Record is one finished session as stored on disk.
type Record struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Result    game.Result
	Moves     int
	Touches   int
	Items     int
	Seed      int64
	Width     int
	Height    int
}

// Duration is how long the session lasted.
func (r Record) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Summary aggregates every stored session.
type Summary struct {
	Sessions     int
	Finds        int
	Quits        int
	FewestMoves  int // 0 when kitten was never found
	AverageMoves float64
	FastestFind  time.Duration
}

// Store persists sessions in SQLite.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open initializes the database at path, creating it if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("records: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("records: open database: %w", err)
	}
	// One writer; SQLite serializes anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		ended_at INTEGER NOT NULL,
		result TEXT NOT NULL,
		moves INTEGER NOT NULL DEFAULT 0,
		touches INTEGER NOT NULL DEFAULT 0,
		items INTEGER NOT NULL DEFAULT 0,
		seed INTEGER NOT NULL DEFAULT 0,
		width INTEGER NOT NULL DEFAULT 0,
		height INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
	CREATE INDEX IF NOT EXISTS idx_sessions_result ON sessions(result);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("records: create schema: %w", err)
	}
	return nil
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores a finished session. Saving the same session twice replaces
// the earlier row.
func (s *Store) Save(ctx context.Context, sess *game.Session) error {
	if sess == nil {
		return fmt.Errorf("records: session is required")
	}
	if !sess.Finished() {
		return fmt.Errorf("records: session %s is still in progress", sess.ID)
	}
	rec := Record{
		ID:        sess.ID,
		StartedAt: sess.StartedAt,
		EndedAt:   sess.EndedAt,
		Result:    sess.Result,
		Moves:     sess.Moves,
		Touches:   sess.Touches,
		Seed:      sess.Seed,
	}
	if w := sess.World(); w != nil {
		rec.Items = w.ItemCount()
		rec.Width = w.Width()
		rec.Height = w.Height()
	}
	return s.Insert(ctx, rec)
}

// Insert writes a record directly.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sessions
			(id, started_at, ended_at, result, moves, touches, items, seed, width, height)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UnixMilli(),
		rec.EndedAt.UnixMilli(),
		string(rec.Result),
		rec.Moves,
		rec.Touches,
		rec.Items,
		rec.Seed,
		rec.Width,
		rec.Height,
	)
	if err != nil {
		return fmt.Errorf("records: save %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, result, moves, touches, items, seed, width, height
		FROM sessions
		ORDER BY started_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("records: query recent: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec            Record
			started, ended int64
			result         string
		)
		if err := rows.Scan(&rec.ID, &started, &ended, &result, &rec.Moves, &rec.Touches, &rec.Items, &rec.Seed, &rec.Width, &rec.Height); err != nil {
			return nil, fmt.Errorf("records: scan: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started)
		rec.EndedAt = time.UnixMilli(ended)
		rec.Result = game.Result(result)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: iterate: %w", err)
	}
	return out, nil
}

// Summary aggregates all stored sessions.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		sum         Summary
		finds       sql.NullInt64
		quits       sql.NullInt64
		fewest      sql.NullInt64
		average     sql.NullFloat64
		fastestFind sql.NullInt64
	)
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
			MIN(CASE WHEN result = ? THEN moves END),
			AVG(moves),
			MIN(CASE WHEN result = ? THEN ended_at - started_at END)
		FROM sessions`,
		string(game.ResultFound), string(game.ResultQuit), string(game.ResultFound), string(game.ResultFound))
	if err := row.Scan(&sum.Sessions, &finds, &quits, &fewest, &average, &fastestFind); err != nil {
		return Summary{}, fmt.Errorf("records: summary: %w", err)
	}
	sum.Finds = int(finds.Int64)
	sum.Quits = int(quits.Int64)
	sum.FewestMoves = int(fewest.Int64)
	sum.AverageMoves = average.Float64
	sum.FastestFind = time.Duration(fastestFind.Int64) * time.Millisecond
	return sum, nil
}
