// ABOUTME: Preference handlers for the Huma API
// ABOUTME: Endpoints for reading and updating the reader's theme and font

package handlers

import (
	"context"
	"net/http"

	"marginalia-api/api/dto/requests"
	"marginalia-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// PreferenceHandler handles reader preference requests
type PreferenceHandler struct {
	preferenceService PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// RegisterRoutes registers all preference-related routes
func (h *PreferenceHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/preferences",
		Summary:     "Get reader preferences",
		Description: "Returns the saved preferences, or the defaults when none are saved",
		Tags:        []string{"Preferences"},
	}, h.GetPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "updatePreferences",
		Method:      http.MethodPut,
		Path:        "/preferences",
		Summary:     "Update reader preferences",
		Tags:        []string{"Preferences"},
	}, h.UpdatePreferences)
}

// GetPreferencesOutput defines the output for the GetPreferences operation
type GetPreferencesOutput struct {
	Body domain.Preferences
}

// GetPreferences handles the GET /preferences endpoint
func (h *PreferenceHandler) GetPreferences(ctx context.Context, _ *struct{}) (*GetPreferencesOutput, error) {
	prefs, err := h.preferenceService.Get(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetPreferencesOutput{Body: *prefs}, nil
}

// UpdatePreferencesInput defines the input for the UpdatePreferences operation
type UpdatePreferencesInput struct {
	Body requests.UpdatePreferencesRequest
}

// UpdatePreferencesOutput defines the output for the UpdatePreferences operation
type UpdatePreferencesOutput struct {
	Body domain.Preferences
}

// UpdatePreferences handles the PUT /preferences endpoint
func (h *PreferenceHandler) UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	prefs, err := h.preferenceService.Update(ctx, &domain.Preferences{
		Theme:      input.Body.Theme,
		FontFamily: input.Body.FontFamily,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &UpdatePreferencesOutput{Body: *prefs}, nil
}
