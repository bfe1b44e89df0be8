package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/vosim/vosim/internal/strings"
)

// WrapParagraphs wraps prose to the given width, collapsing internal
// whitespace within each paragraph. Lines that are already formatted,
// such as key-value tables, pass through untouched when they contain
// runs of two or more spaces.
func WrapParagraphs(value string, width int) string {
	value = internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(value))
	if value == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}
	paragraphs := splitParagraphs(value)
	wrapped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if isPreformatted(paragraph) {
			wrapped = append(wrapped, paragraph)
			continue
		}
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, width))
	}
	return strings.Join(wrapped, "\n\n")
}

func splitParagraphs(value string) []string {
	lines := strings.Split(value, "\n")
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
		current = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

func isPreformatted(paragraph string) bool {
	for _, line := range strings.Split(paragraph, "\n") {
		if strings.Contains(strings.TrimSpace(line), "  ") {
			return true
		}
	}
	return false
}
