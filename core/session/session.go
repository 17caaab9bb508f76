// ABOUTME: Reading session state machine for selection and overlay interactions
// ABOUTME: Tracks ephemeral per-session state; nothing here is persisted

package session

import (
	"context"
	"strings"
	"sync"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

// Session states
type State string

const (
	StateIdle            State = "idle"
	StateSelectionActive State = "selection_active"
	StateThoughtPopover  State = "thought_popover_open"
	StateDetailOpen      State = "detail_open"
	StateImagePreview    State = "image_preview_open"
)

// Event kinds
const (
	EventThought    = "thought"
	EventHighlight  = "highlight"
	EventUnderline  = "underline"
	EventStickyNote = "stickyNote"
	EventImage      = "image"
)

// Event describes an interaction the session surfaced to its observers
type Event struct {
	Kind string
	ID   string
	Text string
}

// Rect is the bounding rectangle of a text selection
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Selection captures the selected text and where it sits on screen
type Selection struct {
	Text string
	Rect Rect
}

// Session is the per-reader interaction state machine. A session belongs
// to one download; annotation actions run through the annotation service
// with the captured selection as anchor.
type Session struct {
	mu          sync.Mutex
	state       State
	downloadID  string
	selection   Selection
	annotations interfaces.AnnotationService
	handlers    []func(Event)
}

// NewSession creates an idle session for a download
func NewSession(downloadID string, annotations interfaces.AnnotationService) *Session {
	return &Session{
		state:       StateIdle,
		downloadID:  downloadID,
		annotations: annotations,
	}
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnEvent registers an observer for session events
func (s *Session) OnEvent(handler func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *Session) emit(e Event) {
	s.mu.Lock()
	handlers := s.handlers
	s.mu.Unlock()
	for _, h := range handlers {
		h(e)
	}
}

// BeginSelection enters selection-active with the captured text. Starting
// a new selection closes any open overlay.
func (s *Session) BeginSelection(sel Selection) error {
	if strings.TrimSpace(sel.Text) == "" {
		return &coreerrors.ValidationError{Field: "selection", Message: "selection text cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSelectionActive
	s.selection = sel
	return nil
}

// Selection returns the captured selection while selection-active
func (s *Session) Selection() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelectionActive {
		return Selection{}, false
	}
	return s.selection, true
}

// ClearSelection returns to idle without acting on the selection
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSelectionActive {
		s.state = StateIdle
		s.selection = Selection{}
	}
}

// ApplyHighlight persists a highlight for the captured selection. The
// session returns to idle on success and stays selection-active on
// failure so the reader can retry.
func (s *Session) ApplyHighlight(ctx context.Context, color string) (*domain.Highlight, error) {
	sel, err := s.takeSelection()
	if err != nil {
		return nil, err
	}

	h, err := s.annotations.CreateHighlight(ctx, &domain.Highlight{
		DownloadID: s.downloadID,
		Text:       sel.Text,
		Color:      color,
	})
	if err != nil {
		return nil, err
	}

	s.finishAction()
	s.emit(Event{Kind: EventHighlight, ID: h.ID, Text: h.Text})
	return h, nil
}

// ApplyThought persists a thought anchored to the captured selection
func (s *Session) ApplyThought(ctx context.Context, comment string) (*domain.Thought, error) {
	sel, err := s.takeSelection()
	if err != nil {
		return nil, err
	}

	t, err := s.annotations.CreateThought(ctx, &domain.Thought{
		DownloadID:      s.downloadID,
		HighlightedText: sel.Text,
		Text:            comment,
	})
	if err != nil {
		return nil, err
	}

	s.finishAction()
	s.emit(Event{Kind: EventThought, ID: t.ID, Text: t.HighlightedText})
	return t, nil
}

// ApplyUnderline persists an underline for the captured selection
func (s *Session) ApplyUnderline(ctx context.Context) (*domain.Annotation, error) {
	sel, err := s.takeSelection()
	if err != nil {
		return nil, err
	}

	a, err := s.annotations.CreateAnnotation(ctx, &domain.Annotation{
		DownloadID: s.downloadID,
		Type:       domain.AnnotationUnderline,
		Text:       sel.Text,
	})
	if err != nil {
		return nil, err
	}

	s.finishAction()
	s.emit(Event{Kind: EventUnderline, ID: a.ID, Text: a.Text})
	return a, nil
}

// ApplyStickyNote persists a sticky note for the captured selection
func (s *Session) ApplyStickyNote(ctx context.Context, content, color string) (*domain.Annotation, error) {
	sel, err := s.takeSelection()
	if err != nil {
		return nil, err
	}

	a, err := s.annotations.CreateAnnotation(ctx, &domain.Annotation{
		DownloadID: s.downloadID,
		Type:       domain.AnnotationStickyNote,
		Text:       sel.Text,
		Content:    content,
		Color:      color,
	})
	if err != nil {
		return nil, err
	}

	s.finishAction()
	s.emit(Event{Kind: EventStickyNote, ID: a.ID, Text: a.Text})
	return a, nil
}

func (s *Session) takeSelection() (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelectionActive {
		return Selection{}, &coreerrors.ValidationError{Field: "state", Message: "no active selection"}
	}
	return s.selection, nil
}

func (s *Session) finishAction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.selection = Selection{}
}

// OpenThoughtPopover shows a thought's comment. Only one overlay is open
// at a time; opening a new one replaces the previous.
func (s *Session) OpenThoughtPopover(id, text string) {
	s.openOverlay(StateThoughtPopover, Event{Kind: EventThought, ID: id, Text: text})
}

// OpenDetail shows the detail panel for a highlight, underline, or note
func (s *Session) OpenDetail(kind, id, text string) {
	s.openOverlay(StateDetailOpen, Event{Kind: kind, ID: id, Text: text})
}

// OpenImagePreview shows a full-size article image
func (s *Session) OpenImagePreview(imageURL string) {
	s.openOverlay(StateImagePreview, Event{Kind: EventImage, ID: imageURL, Text: ""})
}

// CloseOverlay dismisses the open overlay and returns to idle
func (s *Session) CloseOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateThoughtPopover, StateDetailOpen, StateImagePreview:
		s.state = StateIdle
	}
}

func (s *Session) openOverlay(state State, e Event) {
	s.mu.Lock()
	s.state = state
	s.selection = Selection{}
	handlers := s.handlers
	s.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}
