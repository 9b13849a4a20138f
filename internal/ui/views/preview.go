package views

import (
	"strings"

	"dosedit/internal/search"
)

// RenderPreview draws the read-only document with every span highlighted.
// Span offsets are rune offsets into lines[span.Node].
func (r *Renderer) RenderPreview(lines []string, spans []search.Span, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	tab := strings.Repeat(" ", tabWidth)

	out := make([]string, len(lines))
	for i, line := range lines {
		text := []rune(line)
		var b strings.Builder
		pos := 0
		for _, span := range search.SpansFor(spans, i) {
			start := min(span.Offset, len(text))
			end := min(span.Offset+span.Length, len(text))
			if start < pos {
				continue
			}
			b.WriteString(r.styles.EditorText.Render(expandTabs(text[pos:start], tab)))
			b.WriteString(r.styles.Highlight.Render(expandTabs(text[start:end], tab)))
			pos = end
		}
		b.WriteString(r.styles.EditorText.Render(expandTabs(text[pos:], tab)))
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

func expandTabs(runes []rune, tab string) string {
	return strings.ReplaceAll(string(runes), "\t", tab)
}
