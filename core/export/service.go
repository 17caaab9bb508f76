// ABOUTME: Export service renders a download to Markdown with optional annotations
// ABOUTME: Composes the article without the search layer before conversion

package export

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
	"marginalia-api/core/render"
	"marginalia-api/core/session"
)

// Service converts downloads and their annotations into Markdown documents
type Service struct {
	storage  interfaces.Storage
	renderer interfaces.RenderService
	logger   interfaces.Logger
}

// NewService creates a new export service
func NewService(storage interfaces.Storage, renderer interfaces.RenderService, logger interfaces.Logger) *Service {
	return &Service{
		storage:  storage,
		renderer: renderer,
		logger:   logger,
	}
}

// ExportMarkdown renders the download to Markdown. With annotations
// included, the composed markup keeps highlight and note wrappers and an
// appendix lists every annotation; without them, the plain content is
// converted directly.
func (s *Service) ExportMarkdown(ctx context.Context, downloadID string, includeAnnotations bool) (string, error) {
	download, err := s.storage.GetDownload(ctx, downloadID)
	if err != nil {
		return "", err
	}

	var (
		highlights  []domain.Highlight
		thoughts    []domain.Thought
		annotations []domain.Annotation
	)

	if includeAnnotations {
		if highlights, err = s.storage.ListHighlights(ctx, downloadID); err != nil {
			return "", coreerrors.WrapError(err, "failed to load highlights")
		}
		if thoughts, err = s.storage.ListThoughts(ctx, downloadID); err != nil {
			return "", coreerrors.WrapError(err, "failed to load thoughts")
		}
		if annotations, err = s.storage.ListAnnotations(ctx, downloadID); err != nil {
			return "", coreerrors.WrapError(err, "failed to load annotations")
		}
	}

	composed := s.renderer.ComposeArticle(download.Content, highlights, thoughts, annotations, interfaces.RenderOptions{})

	var html strings.Builder
	for _, seg := range composed.Segments {
		html.WriteString(seg.HTML)
		html.WriteString("\n")
	}

	converter := md.NewConverter("", true, nil)
	body, err := converter.ConvertString(html.String())
	if err != nil {
		return "", coreerrors.WrapError(err, "failed to convert content to markdown")
	}

	var out strings.Builder
	out.WriteString("# ")
	out.WriteString(download.Title)
	out.WriteString("\n\n")

	if len(download.Authors) > 0 {
		out.WriteString(fmt.Sprintf("**Authors:** %s\n\n", strings.Join(download.Authors, ", ")))
	}
	if download.SourceURL != "" {
		out.WriteString(fmt.Sprintf("**Source:** %s\n\n", download.SourceURL))
	}

	out.WriteString(body)
	out.WriteString("\n")

	if includeAnnotations {
		segments := render.SegmentContent(download.Content)
		appendix := buildAppendix(segments, highlights, thoughts, annotations)
		if appendix != "" {
			out.WriteString("\n---\n\n## Annotations\n\n")
			out.WriteString(appendix)
		}
	}

	s.logger.Debug("Markdown export complete", map[string]interface{}{
		"download_id": downloadID,
		"annotations": includeAnnotations,
		"bytes":       out.Len(),
	})

	return out.String(), nil
}

// buildAppendix lists annotations grouped by kind, each entry citing the
// section its anchor resolves to
func buildAppendix(segments []domain.Segment, highlights []domain.Highlight, thoughts []domain.Thought, annotations []domain.Annotation) string {
	var out strings.Builder

	section := func(snippet string) string {
		anchor, ok := session.JumpToAnchor(segments, snippet)
		if !ok {
			return ""
		}
		return fmt.Sprintf(" (section %d)", anchor.SegmentIndex+1)
	}

	if len(highlights) > 0 {
		out.WriteString("### Highlights\n\n")
		for _, h := range highlights {
			out.WriteString(fmt.Sprintf("- %s (%s)%s\n", blockquote(h.Text), h.Color, section(h.Text)))
		}
		out.WriteString("\n")
	}

	if len(thoughts) > 0 {
		out.WriteString("### Thoughts\n\n")
		for _, t := range thoughts {
			out.WriteString(fmt.Sprintf("- %s%s\n  - %s\n", blockquote(t.HighlightedText), section(t.HighlightedText), t.Text))
		}
		out.WriteString("\n")
	}

	var underlines, notes []domain.Annotation
	for _, a := range annotations {
		if a.Type == domain.AnnotationStickyNote {
			notes = append(notes, a)
		} else {
			underlines = append(underlines, a)
		}
	}

	if len(underlines) > 0 {
		out.WriteString("### Underlines\n\n")
		for _, a := range underlines {
			out.WriteString(fmt.Sprintf("- %s%s\n", blockquote(a.Text), section(a.Text)))
		}
		out.WriteString("\n")
	}

	if len(notes) > 0 {
		out.WriteString("### Notes\n\n")
		for _, a := range notes {
			out.WriteString(fmt.Sprintf("- %s%s\n  - %s\n", blockquote(a.Text), section(a.Text), a.Content))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func blockquote(text string) string {
	return "\"" + strings.TrimSpace(text) + "\""
}
