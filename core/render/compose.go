// ABOUTME: Annotation compositor merges annotation layers into inline markup per segment
// ABOUTME: Fixed layer precedence with explicit consumed ranges and laminar nesting

package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"marginalia-api/core/domain"
)

// Layer precedence, lowest first. Earlier layers render as the outer
// element when ranges coincide.
const (
	layerSearch = iota
	layerHighlight
	layerThought
	layerUnderline
	layerStickyNote
)

// span is one accepted inline wrapper within a segment's text
type span struct {
	r     Range
	layer int
	seq   int
	open  string
	close string
}

// segmentMarkup is the composed inline markup for one segment plus the
// number of search matches it contributed
type segmentMarkup struct {
	html    string
	matches int
}

// composeState tracks cross-segment counters and per-annotation anchor hits
// for one ComposeArticle pass
type composeState struct {
	searchTerm   string
	currentIndex int
	matchCounter int
	anchorHits   map[string]int
}

func newComposeState(searchTerm string, currentIndex int) *composeState {
	return &composeState{
		searchTerm:   strings.TrimSpace(searchTerm),
		currentIndex: currentIndex,
		anchorHits:   make(map[string]int),
	}
}

// composeSegment applies every annotation layer to one paragraph segment.
// Every segment containing an anchor snippet gets the annotation; layers are
// applied in precedence order and each layer receives its own consumed
// ranges so an identical snippet is never wrapped twice within one layer.
func (st *composeState) composeSegment(seg domain.Segment, highlights []domain.Highlight,
	thoughts []domain.Thought, annotations []domain.Annotation) segmentMarkup {

	var accepted []span
	seq := 0

	// Search matches first (lowest precedence, outermost wrapper).
	matches := 0
	if st.searchTerm != "" {
		for _, r := range Locate(seg.Text, st.searchTerm, nil) {
			class := "search-match"
			if st.matchCounter == st.currentIndex {
				class += " current-match"
			}
			accepted = append(accepted, span{
				r:     r,
				layer: layerSearch,
				seq:   seq,
				open:  fmt.Sprintf("<span class=%q>", class),
				close: "</span>",
			})
			seq++
			st.matchCounter++
			matches++
		}
	}

	// Color highlights.
	var consumed []Range
	for _, h := range highlights {
		ranges := Locate(seg.Text, h.Text, consumed)
		for _, r := range ranges {
			if !laminar(accepted, r) {
				continue
			}
			accepted = append(accepted, span{
				r:     r,
				layer: layerHighlight,
				seq:   seq,
				open: fmt.Sprintf("<mark class=\"highlight-%s\" data-highlight-id=%q>",
					highlightColor(h.Color), html.EscapeString(h.ID)),
				close: "</mark>",
			})
			seq++
			consumed = append(consumed, r)
			st.anchorHits["highlight:"+h.ID]++
		}
	}

	// Thought anchors carry a hidden copy of the comment for export.
	consumed = nil
	for _, t := range thoughts {
		ranges := Locate(seg.Text, t.HighlightedText, consumed)
		for _, r := range ranges {
			if !laminar(accepted, r) {
				continue
			}
			accepted = append(accepted, span{
				r:     r,
				layer: layerThought,
				seq:   seq,
				open:  fmt.Sprintf("<span class=\"thought-anchor\" data-thought-id=%q>", html.EscapeString(t.ID)),
				close: fmt.Sprintf("<span class=\"thought-text\" hidden>%s</span></span>", html.EscapeString(t.Text)),
			})
			seq++
			consumed = append(consumed, r)
			st.anchorHits["thought:"+t.ID]++
		}
	}

	// Underlines.
	consumed = nil
	for _, a := range annotations {
		if a.Type != domain.AnnotationUnderline {
			continue
		}
		ranges := Locate(seg.Text, a.Text, consumed)
		for _, r := range ranges {
			if !laminar(accepted, r) {
				continue
			}
			accepted = append(accepted, span{
				r:     r,
				layer: layerUnderline,
				seq:   seq,
				open:  fmt.Sprintf("<span class=\"annotation-underline\" data-annotation-id=%q>", html.EscapeString(a.ID)),
				close: "</span>",
			})
			seq++
			consumed = append(consumed, r)
			st.anchorHits["annotation:"+a.ID]++
		}
	}

	// Sticky-note anchors carry a hidden copy of the note body for export.
	consumed = nil
	for _, a := range annotations {
		if a.Type != domain.AnnotationStickyNote {
			continue
		}
		ranges := Locate(seg.Text, a.Text, consumed)
		for _, r := range ranges {
			if !laminar(accepted, r) {
				continue
			}
			accepted = append(accepted, span{
				r:     r,
				layer: layerStickyNote,
				seq:   seq,
				open: fmt.Sprintf("<span class=\"annotation-note note-%s\" data-annotation-id=%q data-note-text=%q>",
					noteColor(a.Color), html.EscapeString(a.ID), html.EscapeString(a.Text)),
				close: fmt.Sprintf("<span class=\"note-content\" hidden>%s</span></span>", html.EscapeString(a.Content)),
			})
			seq++
			consumed = append(consumed, r)
			st.anchorHits["annotation:"+a.ID]++
		}
	}

	return segmentMarkup{html: renderSpans(seg.Text, accepted), matches: matches}
}

// laminar reports whether r can join the accepted set without any tag
// crossing: r must be disjoint from, equal to, nested inside, or fully
// enclosing every accepted range.
func laminar(accepted []span, r Range) bool {
	for _, sp := range accepted {
		if !sp.r.Overlaps(r) {
			continue
		}
		if !sp.r.Contains(r) && !r.Contains(sp.r) {
			return false
		}
	}
	return true
}

// renderSpans emits escaped segment text with the accepted spans as nested
// markup. The span set is laminar, so a containment sort yields a proper
// nesting: outer spans first, equal ranges ordered by layer precedence.
func renderSpans(text string, spans []span) string {
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.r.Start != b.r.Start {
			return a.r.Start < b.r.Start
		}
		if a.r.End != b.r.End {
			return a.r.End > b.r.End
		}
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.seq < b.seq
	})

	var b strings.Builder
	var emit func(start, end int, spans []span)
	emit = func(start, end int, spans []span) {
		pos := start
		i := 0
		for i < len(spans) {
			sp := spans[i]
			j := i + 1
			for j < len(spans) && sp.r.Contains(spans[j].r) {
				j++
			}
			b.WriteString(html.EscapeString(text[pos:sp.r.Start]))
			b.WriteString(sp.open)
			emit(sp.r.Start, sp.r.End, spans[i+1:j])
			b.WriteString(sp.close)
			pos = sp.r.End
			i = j
		}
		b.WriteString(html.EscapeString(text[pos:end]))
	}
	emit(0, len(text), sorted)

	return b.String()
}

// highlightColor maps arbitrary input to the fixed palette, falling back
// to yellow for unknown colors
func highlightColor(color string) string {
	if domain.IsHighlightColor(color) {
		return color
	}
	return domain.HighlightColors[0]
}

// noteColor maps arbitrary input to the sticky-note palette
func noteColor(color string) string {
	if domain.IsNoteColor(color) {
		return color
	}
	return domain.NoteColors[0]
}
