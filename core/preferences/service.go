// ABOUTME: Preferences service manages reader theme and font family settings
// ABOUTME: Falls back to defaults when nothing has been saved yet

package preferences

import (
	"context"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

// Service manages reader preferences
type Service struct {
	storage interfaces.PreferenceStorage
	logger  interfaces.Logger
}

// NewService creates a new preferences service
func NewService(storage interfaces.PreferenceStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the saved preferences, or defaults when none exist
func (s *Service) Get(ctx context.Context) (*domain.Preferences, error) {
	prefs, err := s.storage.GetPreferences(ctx)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			return domain.DefaultPreferences(), nil
		}
		return nil, coreerrors.WrapError(err, "failed to load preferences")
	}
	if prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Update validates and persists new preferences
func (s *Service) Update(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "preferences", Message: err.Error()}
	}

	if err := s.storage.SavePreferences(ctx, prefs); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save preferences")
	}

	s.logger.Info("Preferences updated", map[string]interface{}{
		"theme":       prefs.Theme,
		"font_family": prefs.FontFamily,
	})

	return prefs, nil
}
