// Package storage provides SQLite-based persistence for finished sketches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-sketch/internal/canvas"
)

// Store manages the SQLite database connection for the sketch gallery.
type Store struct {
	db *sql.DB
}

// SketchEntry represents one saved sketch's metadata.
type SketchEntry struct {
	ID        int64
	Name      string
	Dimension int
	Cells     int // Number of painted cells
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
		CREATE TABLE IF NOT EXISTS sketches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			dimension INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sketches_created ON sketches(created_at DESC);

		CREATE TABLE IF NOT EXISTS sketch_cells (
			sketch_id INTEGER NOT NULL REFERENCES sketches(id) ON DELETE CASCADE,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			r INTEGER NOT NULL,
			g INTEGER NOT NULL,
			b INTEGER NOT NULL,
			PRIMARY KEY (sketch_id, x, y)
		);
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

// SaveSketch records a finished sketch: its metadata plus every painted
// cell. Returns the ID of the inserted record.
func (s *Store) SaveSketch(name string, cv *canvas.Canvas) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.Exec(
		"INSERT INTO sketches (name, dimension) VALUES (?, ?)",
		name, cv.Dimension(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save sketch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO sketch_cells (sketch_id, x, y, r, g, b) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cv.PaintedCoords() {
		color, _ := cv.ColorAt(c)
		if _, err := stmt.Exec(id, c.X, c.Y, color.R, color.G, color.B); err != nil {
			return 0, fmt.Errorf("storage: cannot save cell %v: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit sketch: %w", err)
	}

	return id, nil
}

// ListSketches retrieves metadata for all saved sketches, newest first.
func (s *Store) ListSketches() ([]SketchEntry, error) {
	rows, err := s.db.Query(
		`SELECT s.id, s.name, s.dimension, s.created_at,
		        (SELECT COUNT(*) FROM sketch_cells c WHERE c.sketch_id = s.id)
		 FROM sketches s
		 ORDER BY s.created_at DESC, s.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketches: %w", err)
	}
	defer rows.Close()

	var entries []SketchEntry
	for rows.Next() {
		var e SketchEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Dimension, &createdAt, &e.Cells); err != nil {
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

// LoadSketch reconstructs a saved sketch's canvas by ID.
// Returns nil entry if the sketch does not exist.
func (s *Store) LoadSketch(id int64) (*SketchEntry, *canvas.Canvas, error) {
	var e SketchEntry
	var createdAt any

	err := s.db.QueryRow(
		"SELECT id, name, dimension, created_at FROM sketches WHERE id = ?",
		id,
	).Scan(&e.ID, &e.Name, &e.Dimension, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("storage: cannot query sketch: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)

	cv, err := canvas.New(e.Dimension)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: sketch %d has invalid dimension: %w", id, err)
	}

	rows, err := s.db.Query(
		"SELECT x, y, r, g, b FROM sketch_cells WHERE sketch_id = ?",
		id,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: cannot query cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var x, y int
		var r, g, b uint8
		if err := rows.Scan(&x, &y, &r, &g, &b); err != nil {
			return nil, nil, fmt.Errorf("storage: cannot scan cell: %w", err)
		}
		cv.SetColor(canvas.C(x, y), canvas.RGB{R: r, G: g, B: b})
		e.Cells++
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &e, cv, nil
}

// DeleteSketch removes a saved sketch and its cells.
func (s *Store) DeleteSketch(id int64) error {
	if _, err := s.db.Exec("DELETE FROM sketch_cells WHERE sketch_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete cells: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sketches WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete sketch: %w", err)
	}
	return nil
}

// WipeSketches deletes every saved sketch.
func (s *Store) WipeSketches() error {
	if _, err := s.db.Exec("DELETE FROM sketch_cells"); err != nil {
		return fmt.Errorf("storage: cannot wipe cells: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sketches"); err != nil {
		return fmt.Errorf("storage: cannot wipe sketches: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetime values the
// driver may return.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
