// ABOUTME: SQLite storage implementation for articles, downloads, and annotations
// ABOUTME: Provides a file-based store with cascade deletes from downloads

package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements the Storage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) the database at filePath and initializes
// the schema
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "marginalia.db"
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filePath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite serializes writes anyway; one connection also keeps
	// in-memory databases coherent across queries
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			abstract TEXT NOT NULL DEFAULT '',
			authors TEXT NOT NULL DEFAULT '[]',
			source TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS downloads (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			abstract TEXT NOT NULL DEFAULT '',
			authors TEXT NOT NULL DEFAULT '[]',
			source TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			thumbnail TEXT NOT NULL DEFAULT '',
			accent_color TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '[]',
			downloaded_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS highlights (
			id TEXT PRIMARY KEY,
			download_id TEXT NOT NULL REFERENCES downloads(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			color TEXT NOT NULL,
			start_offset INTEGER NOT NULL DEFAULT 0,
			end_offset INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY,
			download_id TEXT NOT NULL REFERENCES downloads(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			label TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS thoughts (
			id TEXT PRIMARY KEY,
			download_id TEXT NOT NULL REFERENCES downloads(id) ON DELETE CASCADE,
			highlight_id TEXT NOT NULL DEFAULT '',
			highlighted_text TEXT NOT NULL,
			text TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS annotations (
			id TEXT PRIMARY KEY,
			download_id TEXT NOT NULL REFERENCES downloads(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			text TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS preferences (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			theme TEXT NOT NULL,
			font_family TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_highlights_download ON highlights(download_id);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_download ON bookmarks(download_id);
		CREATE INDEX IF NOT EXISTS idx_thoughts_download ON thoughts(download_id);
		CREATE INDEX IF NOT EXISTS idx_annotations_download ON annotations(download_id);
	`

	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
