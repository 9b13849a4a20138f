package search

// Span marks one occurrence inside a rendered text node.
type Span struct {
	Node   int // index into the nodes passed to HighlightAll
	Offset int // rune offset within the node
	Length int
}

// HighlightAll finds every non-overlapping occurrence of q.Value in each node,
// in document order. It is a literal find-all: the replacement, whole-word
// flag and any cursor position are ignored. An empty value yields no spans.
func (e *Engine) HighlightAll(nodes []string, q Query) []Span {
	if q.Value == "" {
		return nil
	}
	needle := []rune(q.Value)
	if !q.MatchCase {
		needle = foldRunes(e.folder, needle)
	}

	var spans []Span
	for i, node := range nodes {
		hay := []rune(node)
		if !q.MatchCase {
			hay = foldRunes(e.folder, hay)
		}
		for _, off := range occurrences(hay, needle, false) {
			spans = append(spans, Span{Node: i, Offset: off, Length: len(needle)})
		}
	}
	return spans
}

// SpansFor returns the spans that belong to node, preserving order.
func SpansFor(spans []Span, node int) []Span {
	var out []Span
	for _, s := range spans {
		if s.Node == node {
			out = append(out, s)
		}
	}
	return out
}
