// ABOUTME: Request DTOs for reader preference endpoints
// ABOUTME: Theme and font settings applied across the reader shell

package requests

// UpdatePreferencesRequest replaces the saved reader preferences
type UpdatePreferencesRequest struct {
	Theme      string `json:"theme" required:"true" enum:"default,glass" doc:"Reader theme"`
	FontFamily string `json:"fontFamily" required:"true" enum:"sans,serif,display,script,body,elegant,reading" doc:"Reader font family"`
}
