// ABOUTME: Content segmenter splits raw article markup into ordered typed segments
// ABOUTME: Handles HTML blocks, media embeds, and ==Section== fence markers in plain text

package render

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"marginalia-api/core/domain"
)

// mediaTags are block elements emitted verbatim and excluded from matching
var mediaTags = map[string]bool{
	"audio":  true,
	"video":  true,
	"iframe": true,
	"embed":  true,
}

// headingTags maps element names to segment kinds
var headingTags = map[string]string{
	"h1": domain.SegmentHeading,
	"h2": domain.SegmentHeading,
	"h3": domain.SegmentSubheading,
	"h4": domain.SegmentSubheading,
}

// SegmentContent parses raw article content into block-level segments in
// document order. Malformed markup is parsed permissively; unknown blocks
// degrade to paragraphs. Empty or whitespace-only text produces no segment.
func SegmentContent(content string) []domain.Segment {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Parser refused the input outright; degrade to fenced plain text.
		return segmentText(content)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return segmentText(content)
	}

	var segments []domain.Segment
	body.Contents().Each(func(_ int, s *goquery.Selection) {
		segments = append(segments, segmentNode(s)...)
	})

	return segments
}

// segmentNode emits the segments for one top-level block node
func segmentNode(s *goquery.Selection) []domain.Segment {
	node := s.Get(0)

	switch node.Type {
	case xhtml.TextNode:
		return segmentText(node.Data)

	case xhtml.ElementNode:
		name := node.Data

		if kind, ok := headingTags[name]; ok {
			title := strings.TrimSpace(s.Text())
			if title == "" {
				return nil
			}
			return []domain.Segment{newHeadingSegment(kind, title)}
		}

		if isMedia(s, name) {
			markup, err := goquery.OuterHtml(s)
			if err != nil || strings.TrimSpace(markup) == "" {
				return nil
			}
			return []domain.Segment{{Type: domain.SegmentMedia, HTML: markup}}
		}

		// Paragraph-like and unknown elements degrade to their plain text,
		// which may still carry inline section fences.
		return segmentText(s.Text())
	}

	return nil
}

// isMedia reports whether the element is a media embed or wraps one
func isMedia(s *goquery.Selection, name string) bool {
	if mediaTags[name] {
		return true
	}
	return s.Find("audio, video, iframe, embed").Length() > 0
}

// segmentText splits plain text into paragraph and fenced heading segments.
// Each non-empty line becomes its own segment, matching the source's
// line-oriented section structure.
func segmentText(text string) []domain.Segment {
	var segments []domain.Segment

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if title, kind, ok := parseFence(line); ok {
			segments = append(segments, newHeadingSegment(kind, title))
			continue
		}

		segments = append(segments, domain.Segment{
			Type: domain.SegmentParagraph,
			Text: line,
			HTML: "<p class=\"article-paragraph\">" + html.EscapeString(line) + "</p>",
		})
	}

	return segments
}

// parseFence recognizes section-marker runs of 2-4 (or more) repeated "="
// characters surrounding a title. Three markers produce a heading, two or
// four and above produce a subheading.
func parseFence(line string) (title, kind string, ok bool) {
	lead := runLen(line)
	trail := runLen(reverse(line))
	if lead < 2 || trail < 2 {
		return "", "", false
	}

	inner := strings.TrimSpace(strings.Trim(line, "="))
	if inner == "" {
		return "", "", false
	}

	markers := lead
	if trail < markers {
		markers = trail
	}

	kind = domain.SegmentSubheading
	if markers == 3 {
		kind = domain.SegmentHeading
	}

	return inner, kind, true
}

func runLen(s string) int {
	n := 0
	for _, r := range s {
		if r != '=' {
			break
		}
		n++
	}
	return n
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// newHeadingSegment builds a heading or subheading segment with its
// fallback markup
func newHeadingSegment(kind, title string) domain.Segment {
	tag := "h3"
	class := "article-subheading"
	if kind == domain.SegmentHeading {
		tag = "h2"
		class = "article-heading"
	}

	return domain.Segment{
		Type: kind,
		Text: title,
		HTML: "<" + tag + " class=\"" + class + "\">" + html.EscapeString(title) + "</" + tag + ">",
	}
}
