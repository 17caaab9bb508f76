// ABOUTME: Reader preference persistence over SQLite
// ABOUTME: A single row holds the current theme and font family

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

// GetPreferences retrieves the saved preferences
func (s *Store) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	var p domain.Preferences
	err := s.db.QueryRowContext(ctx,
		"SELECT theme, font_family, updated_at FROM preferences WHERE id = 1").
		Scan(&p.Theme, &p.FontFamily, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "preferences", ID: "1"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return &p, nil
}

// SavePreferences stores the preferences, replacing any previous row
func (s *Store) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	prefs.UpdatedAt = time.Now()

	query := `
		INSERT OR REPLACE INTO preferences (id, theme, font_family, updated_at)
		VALUES (1, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, prefs.Theme, prefs.FontFamily, prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
