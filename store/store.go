// Package store provides SQLite-based persistence for puzzles and solve
// sessions. Puzzles are keyed by their content identifier, so saving the
// same givens twice never duplicates a row.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

// Store handles SQLite database operations for the puzzle library.
type Store struct {
	db *sql.DB
}

// Puzzle is a stored puzzle record.
type Puzzle struct {
	CID        string    `json:"cid"`
	Givens     string    `json:"givens"` // 81-character row-major form
	Difficulty string    `json:"difficulty,omitempty"`
	Source     string    `json:"source,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session is a recorded solve attempt against a stored puzzle.
type Session struct {
	ID         string    `json:"id"`
	PuzzleCID  string    `json:"puzzle_cid"`
	Status     string    `json:"status"` // solved, unsolvable, error
	Solution   string    `json:"solution,omitempty"`
	Copies     int       `json:"copies"`
	Forced     int       `json:"forced"`
	Branches   int       `json:"branches"`
	MaxDepth   int       `json:"max_depth"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// New creates a new Store with the given database path.
// Use ":memory:" for an ephemeral store.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one
	// so every query sees the same schema.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		cid TEXT PRIMARY KEY,
		givens TEXT NOT NULL,
		difficulty TEXT,
		source TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		puzzle_cid TEXT NOT NULL,
		status TEXT NOT NULL,
		solution TEXT,
		copies INTEGER DEFAULT 0,
		forced INTEGER DEFAULT 0,
		branches INTEGER DEFAULT 0,
		max_depth INTEGER DEFAULT 0,
		duration_ms INTEGER DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (puzzle_cid) REFERENCES puzzles(cid)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_puzzle ON sessions(puzzle_cid);
	CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SavePuzzle stores a puzzle and returns its content identifier.
// Saving the same givens again is a no-op.
func (s *Store) SavePuzzle(g *grid.Grid, difficulty, source string) (string, error) {
	cid := g.CID()
	_, err := s.db.Exec(
		`INSERT INTO puzzles (cid, givens, difficulty, source, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cid) DO NOTHING`,
		cid, g.Compact(), difficulty, source, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("save puzzle: %w", err)
	}
	return cid, nil
}

// GetPuzzle retrieves a puzzle by content identifier.
func (s *Store) GetPuzzle(cid string) (*Puzzle, error) {
	row := s.db.QueryRow(
		`SELECT cid, givens, difficulty, source, created_at
		 FROM puzzles WHERE cid = ?`, cid,
	)

	var p Puzzle
	var difficulty, source sql.NullString
	err := row.Scan(&p.CID, &p.Givens, &difficulty, &source, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if difficulty.Valid {
		p.Difficulty = difficulty.String
	}
	if source.Valid {
		p.Source = source.String
	}
	return &p, nil
}

// Grid parses the stored givens back into a grid.
func (p *Puzzle) Grid() (*grid.Grid, error) {
	return grid.ParseCompact(p.Givens)
}

// ListPuzzles returns stored puzzles, newest first. An empty difficulty
// matches every puzzle; limit 0 means no limit.
func (s *Store) ListPuzzles(difficulty string, limit int) ([]*Puzzle, error) {
	query := `SELECT cid, givens, difficulty, source, created_at FROM puzzles`
	args := []any{}
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var puzzles []*Puzzle
	for rows.Next() {
		var p Puzzle
		var diff, source sql.NullString
		if err := rows.Scan(&p.CID, &p.Givens, &diff, &source, &p.CreatedAt); err != nil {
			return nil, err
		}
		if diff.Valid {
			p.Difficulty = diff.String
		}
		if source.Valid {
			p.Source = source.String
		}
		puzzles = append(puzzles, &p)
	}
	return puzzles, rows.Err()
}

// DeletePuzzle removes a puzzle and its sessions.
func (s *Store) DeletePuzzle(cid string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE puzzle_cid = ?`, cid); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM puzzles WHERE cid = ?`, cid)
	return err
}

// RecordSession records a solve attempt. A fresh session id is assigned
// when the record carries none.
func (s *Store) RecordSession(sess *Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, puzzle_cid, status, solution, copies,
		 forced, branches, max_depth, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.PuzzleCID, sess.Status, sess.Solution, sess.Copies,
		sess.Forced, sess.Branches, sess.MaxDepth, sess.DurationMS, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}
	return sess.ID, nil
}

// RecordSolve builds and records a session from solver output. A nil
// result with an error records the failure status instead of a solution.
func (s *Store) RecordSolve(puzzleCID string, res *solver.Result, solveErr error) (string, error) {
	sess := &Session{PuzzleCID: puzzleCID}
	switch {
	case solveErr == nil:
		sess.Status = "solved"
		sess.Solution = res.Solution.Compact()
		sess.Copies = res.Stats.Copies
		sess.Forced = res.Stats.Forced
		sess.Branches = res.Stats.Branches
		sess.MaxDepth = res.Stats.MaxDepth
		sess.DurationMS = res.Duration.Milliseconds()
	case errors.Is(solveErr, solver.ErrUnsolvable):
		sess.Status = "unsolvable"
	default:
		sess.Status = "error"
	}
	return s.RecordSession(sess)
}

// GetSession retrieves a session by id.
func (s *Store) GetSession(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, puzzle_cid, status, solution, copies, forced, branches,
		 max_depth, duration_ms, created_at
		 FROM sessions WHERE id = ?`, id,
	)

	var sess Session
	var solution sql.NullString
	err := row.Scan(&sess.ID, &sess.PuzzleCID, &sess.Status, &solution,
		&sess.Copies, &sess.Forced, &sess.Branches, &sess.MaxDepth,
		&sess.DurationMS, &sess.CreatedAt)
	if err != nil {
		return nil, err
	}
	if solution.Valid {
		sess.Solution = solution.String
	}
	return &sess, nil
}

// ListSessions returns sessions, newest first. An empty puzzle cid matches
// every session; limit 0 means no limit.
func (s *Store) ListSessions(puzzleCID string, limit int) ([]*Session, error) {
	query := `SELECT id, puzzle_cid, status, solution, copies, forced,
	 branches, max_depth, duration_ms, created_at FROM sessions`
	args := []any{}
	if puzzleCID != "" {
		query += ` WHERE puzzle_cid = ?`
		args = append(args, puzzleCID)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var sess Session
		var solution sql.NullString
		err := rows.Scan(&sess.ID, &sess.PuzzleCID, &sess.Status, &solution,
			&sess.Copies, &sess.Forced, &sess.Branches, &sess.MaxDepth,
			&sess.DurationMS, &sess.CreatedAt)
		if err != nil {
			return nil, err
		}
		if solution.Valid {
			sess.Solution = solution.String
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// Counts holds library-wide totals.
type Counts struct {
	Puzzles  int `json:"puzzles"`
	Sessions int `json:"sessions"`
	Solved   int `json:"solved"`
}

// Stats returns library-wide totals.
func (s *Store) Stats() (*Counts, error) {
	var c Counts
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM puzzles`).Scan(&c.Puzzles); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&c.Sessions); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE status = 'solved'`).Scan(&c.Solved); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExportPuzzleJSON exports a puzzle and its sessions as JSON.
func (s *Store) ExportPuzzleJSON(cid string) ([]byte, error) {
	p, err := s.GetPuzzle(cid)
	if err != nil {
		return nil, err
	}

	sessions, err := s.ListSessions(cid, 0)
	if err != nil {
		return nil, err
	}

	export := map[string]any{
		"puzzle":   p,
		"sessions": sessions,
	}

	return json.MarshalIndent(export, "", "  ")
}
