// ABOUTME: Annotation domain models: highlights, thoughts, underlines, sticky notes, bookmarks
// ABOUTME: Anchor snippets are captured once at creation and never recomputed

package domain

import (
	"errors"
	"strings"
	"time"
)

// HighlightColors is the fixed palette for color highlights. Unknown colors
// fall back to the first entry when rendering.
var HighlightColors = []string{"yellow", "green", "red", "blue", "orange", "purple"}

// NoteColors is the palette for sticky-note backgrounds.
var NoteColors = []string{"yellow", "pink", "blue", "green", "purple"}

// Annotation types
const (
	AnnotationUnderline  = "underline"
	AnnotationStickyNote = "sticky_note"
)

// Highlight is a color highlight anchored to a literal text snippet.
// Highlights are immutable; the only mutation is deletion.
type Highlight struct {
	ID         string    `json:"id"`
	DownloadID string    `json:"downloadId"`

	// Text is the anchor snippet captured from the user's selection
	Text string `json:"text"`

	// Color is one of HighlightColors
	Color string `json:"color"`

	StartOffset int       `json:"startOffset"`
	EndOffset   int       `json:"endOffset"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Thought is a margin comment anchored to a highlighted snippet.
// HighlightedText is immutable after creation; Text is editable.
type Thought struct {
	ID         string `json:"id"`
	DownloadID string `json:"downloadId"`

	// HighlightID optionally references the highlight this thought was
	// created alongside. Weak reference, not ownership.
	HighlightID string `json:"highlightId,omitempty"`

	// HighlightedText is the anchor snippet
	HighlightedText string `json:"highlightedText"`

	// Text is the user's comment
	Text string `json:"text"`

	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Annotation is an underline or sticky note anchored to a literal snippet.
// Text is immutable after creation; Content (sticky-note body) is editable.
type Annotation struct {
	ID         string `json:"id"`
	DownloadID string `json:"downloadId"`

	// Type is "underline" or "sticky_note"
	Type string `json:"type"`

	// Text is the anchor snippet
	Text string `json:"text"`

	// Content is the sticky-note body; underlines have none
	Content string `json:"content,omitempty"`

	// Color is the sticky-note background, one of NoteColors
	Color string `json:"color,omitempty"`

	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bookmark marks a reading position, labeled with the selected text.
type Bookmark struct {
	ID         string    `json:"id"`
	DownloadID string    `json:"downloadId"`
	Text       string    `json:"text"`
	Position   int       `json:"position"`
	Label      string    `json:"label,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsHighlightColor reports whether color is in the highlight palette
func IsHighlightColor(color string) bool {
	for _, c := range HighlightColors {
		if c == color {
			return true
		}
	}
	return false
}

// IsNoteColor reports whether color is in the sticky-note palette
func IsNoteColor(color string) bool {
	for _, c := range NoteColors {
		if c == color {
			return true
		}
	}
	return false
}

// Validate checks if the highlight has valid required fields
func (h *Highlight) Validate() error {
	if h.DownloadID == "" {
		return errors.New("highlight download id cannot be empty")
	}

	if strings.TrimSpace(h.Text) == "" {
		return errors.New("highlight text cannot be empty")
	}

	if !IsHighlightColor(h.Color) {
		return errors.New("highlight color must be one of the palette colors")
	}

	return nil
}

// Validate checks if the thought has valid required fields
func (t *Thought) Validate() error {
	if t.DownloadID == "" {
		return errors.New("thought download id cannot be empty")
	}

	if strings.TrimSpace(t.HighlightedText) == "" {
		return errors.New("thought highlighted text cannot be empty")
	}

	if strings.TrimSpace(t.Text) == "" {
		return errors.New("thought text cannot be empty")
	}

	return nil
}

// Validate checks if the annotation has valid required fields
func (a *Annotation) Validate() error {
	if a.DownloadID == "" {
		return errors.New("annotation download id cannot be empty")
	}

	if a.Type != AnnotationUnderline && a.Type != AnnotationStickyNote {
		return errors.New("annotation type must be underline or sticky_note")
	}

	if strings.TrimSpace(a.Text) == "" {
		return errors.New("annotation text cannot be empty")
	}

	if a.Type == AnnotationStickyNote {
		if strings.TrimSpace(a.Content) == "" {
			return errors.New("sticky note content cannot be empty")
		}
		if a.Color != "" && !IsNoteColor(a.Color) {
			return errors.New("sticky note color must be one of the palette colors")
		}
	}

	return nil
}

// Validate checks if the bookmark has valid required fields
func (b *Bookmark) Validate() error {
	if b.DownloadID == "" {
		return errors.New("bookmark download id cannot be empty")
	}

	if strings.TrimSpace(b.Text) == "" {
		return errors.New("bookmark text cannot be empty")
	}

	if b.Position < 0 {
		return errors.New("bookmark position cannot be negative")
	}

	return nil
}
