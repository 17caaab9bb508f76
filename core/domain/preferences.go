// ABOUTME: Reader preference domain model for theme and font settings
// ABOUTME: Provides defaults and validation for the render shell

package domain

import (
	"errors"
	"time"
)

// Themes supported by the reader shell
var Themes = []string{"default", "glass"}

// FontFamilies supported by the reader shell
var FontFamilies = []string{"sans", "serif", "display", "script", "body", "elegant", "reading"}

// Preferences holds reader display settings
type Preferences struct {
	Theme      string    `json:"theme"`
	FontFamily string    `json:"fontFamily"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DefaultPreferences returns the preferences used before any are saved
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:      "default",
		FontFamily: "sans",
	}
}

// Validate checks if the preferences hold known values
func (p *Preferences) Validate() error {
	if !contains(Themes, p.Theme) {
		return errors.New("theme must be one of the supported themes")
	}

	if !contains(FontFamilies, p.FontFamily) {
		return errors.New("font family must be one of the supported fonts")
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
