package store

import (
	"context"
	"database/sql"
	"fmt"

	"gallery-backend/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the collection in an embedded SQLite database. It honors
// the same full-read, full-replace contract as the JSON file backend: Save
// rewrites every row inside one transaction.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and ensures the schema
// exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS photos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		filename TEXT NOT NULL,
		display_order INTEGER NOT NULL
	);`); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the full collection.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.Photo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, filename, display_order FROM photos`)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo store: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Filename, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read photo store: %w", err)
	}
	return photos, nil
}

// Save replaces the stored collection in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, photos []models.Photo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin store transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM photos`); err != nil {
		return fmt.Errorf("failed to clear photo store: %w", err)
	}
	for _, p := range photos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO photos (id, title, description, filename, display_order)
			 VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Description, p.Filename, p.DisplayOrder,
		); err != nil {
			return fmt.Errorf("failed to write photo store: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit photo store: %w", err)
	}
	return nil
}
