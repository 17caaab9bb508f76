// ABOUTME: Render service ties segmentation and composition into one article pass
// ABOUTME: Pure and side-effect free, safe to re-run on every annotation or search change

package render

import (
	"fmt"

	"marginalia-api/core/domain"
	"marginalia-api/core/interfaces"
)

// Service composes articles with their annotations
type Service struct {
	logger interfaces.Logger
}

// NewService creates a new render service
func NewService(logger interfaces.Logger) *Service {
	return &Service{logger: logger}
}

// ComposeArticle renders content into segments with all annotation layers
// applied. For a fixed input tuple the output is byte-identical across
// calls; anchors that match no segment are counted as dropped, never
// surfaced as errors.
func (s *Service) ComposeArticle(content string, highlights []domain.Highlight,
	thoughts []domain.Thought, annotations []domain.Annotation,
	opts interfaces.RenderOptions) domain.ComposedArticle {

	segments := SegmentContent(content)
	state := newComposeState(opts.SearchTerm, opts.CurrentSearchIndex)
	font := fontClass(opts.FontFamily)

	rendered := make([]domain.RenderedSegment, 0, len(segments))
	total := 0

	for _, seg := range segments {
		// Headings, subheadings and media bypass every annotation layer.
		if !seg.Annotatable() {
			rendered = append(rendered, domain.RenderedSegment{Type: seg.Type, HTML: seg.HTML})
			continue
		}

		markup := state.composeSegment(seg, highlights, thoughts, annotations)
		total += markup.matches

		rendered = append(rendered, domain.RenderedSegment{
			Type: seg.Type,
			HTML: fmt.Sprintf("<p class=\"article-paragraph font-%s\">%s</p>", font, markup.html),
		})
	}

	dropped := state.countDropped(highlights, thoughts, annotations)
	if dropped > 0 && s.logger != nil {
		s.logger.Debug("Dropped annotations with unmatched anchors", map[string]interface{}{
			"dropped": dropped,
		})
	}

	return domain.ComposedArticle{
		Segments:           rendered,
		TotalSearchMatches: total,
		DroppedAnchors:     dropped,
	}
}

// countDropped counts annotations whose anchor snippet matched no segment
func (st *composeState) countDropped(highlights []domain.Highlight,
	thoughts []domain.Thought, annotations []domain.Annotation) int {

	dropped := 0
	for _, h := range highlights {
		if st.anchorHits["highlight:"+h.ID] == 0 {
			dropped++
		}
	}
	for _, t := range thoughts {
		if st.anchorHits["thought:"+t.ID] == 0 {
			dropped++
		}
	}
	for _, a := range annotations {
		if st.anchorHits["annotation:"+a.ID] == 0 {
			dropped++
		}
	}
	return dropped
}

// fontClass validates the requested font family, defaulting to sans
func fontClass(font string) string {
	for _, f := range domain.FontFamilies {
		if f == font {
			return font
		}
	}
	return "sans"
}
