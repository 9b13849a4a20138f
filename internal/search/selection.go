package search

// Selection is a half-open range [Start, End) of rune offsets into a buffer.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

func (s Selection) Len() int {
	return s.End - s.Start
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Clamp orders the bounds and clamps them into [0, n].
func (s Selection) Clamp(n int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = clamp(s.Start, 0, n)
	s.End = clamp(s.End, 0, n)
	return s
}

// Text returns the part of buffer covered by the selection.
func (s Selection) Text(buffer string) string {
	runes := []rune(buffer)
	s = s.Clamp(len(runes))
	return string(runes[s.Start:s.End])
}

// LineAt returns the 0-based index of the line containing offset and the text
// of that line without its trailing newline.
func LineAt(buffer string, offset int) (int, string) {
	runes := []rune(buffer)
	offset = clamp(offset, 0, len(runes))

	line, lineStart := 0, 0
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}
	return line, string(runes[lineStart:lineEnd])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
