// Package search implements find-next and replace over an in-memory text
// buffer, plus find-all highlighting for read-only views.
//
// All offsets are rune offsets. The engine keeps no state between calls: every
// operation is a function of the buffer, the current selection and the query.
package search

import (
	"regexp"
	"unicode/utf8"
)

// NotFound is the Match index reported when the query does not occur.
const NotFound = -1

// Match is where the next occurrence begins and how long it is.
type Match struct {
	Index  int
	Length int
}

func (m Match) Found() bool {
	return m.Index != NotFound
}

// Selection returns the range covered by the match.
func (m Match) Selection() Selection {
	return Selection{Start: m.Index, End: m.Index + m.Length}
}

// Result is the outcome of Execute: the buffer and selection the host should
// apply, the match that was located, and how many occurrences were replaced.
type Result struct {
	Buffer    string
	Selection Selection
	Match     Match
	Replaced  int
}

// Changed reports whether the buffer was modified.
func (r Result) Changed() bool {
	return r.Replaced > 0
}

type Option func(*Engine)

// WithCaseFolder sets the folder used when a query does not match case.
func WithCaseFolder(f CaseFolder) Option {
	return func(e *Engine) {
		if f != nil {
			e.folder = f
		}
	}
}

// Engine runs queries against buffers.
type Engine struct {
	folder CaseFolder
}

func New(opts ...Option) *Engine {
	e := &Engine{folder: SimpleFolder}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FindNext locates the next occurrence of q.Value after the selection,
// wrapping to the start of the buffer. An empty value never matches.
func (e *Engine) FindNext(buffer string, sel Selection, q Query) Match {
	text := []rune(buffer)
	m, _, _ := e.locate(text, sel.Clamp(len(text)), q)
	return m
}

// Execute runs FindNext and, when the query carries a replacement, applies
// it. A query that finds nothing returns the buffer and selection unchanged.
func (e *Engine) Execute(buffer string, sel Selection, q Query) Result {
	text := []rune(buffer)
	sel = sel.Clamp(len(text))

	m, hay, needle := e.locate(text, sel, q)
	res := Result{Buffer: buffer, Selection: sel, Match: m}
	if !m.Found() {
		return res
	}
	if !q.IsReplace() {
		res.Selection = m.Selection()
		return res
	}

	repl := []rune(*q.ReplaceWith)
	if q.ReplaceAll {
		starts := occurrences(hay, needle, q.MatchWord)
		out, anchor := spliceAll(text, starts, len(needle), repl, m.Index)
		res.Buffer = string(out)
		res.Selection = Selection{Start: anchor, End: anchor + len(repl)}
		res.Replaced = len(starts)
		return res
	}

	out := make([]rune, 0, len(text)-m.Length+len(repl))
	out = append(out, text[:m.Index]...)
	out = append(out, repl...)
	out = append(out, text[m.Index+m.Length:]...)
	res.Buffer = string(out)
	res.Selection = Selection{Start: m.Index, End: m.Index + len(repl)}
	res.Replaced = 1
	return res
}

// Count returns the number of occurrences a replace-all of q would touch.
func (e *Engine) Count(buffer string, q Query) int {
	if q.Value == "" {
		return 0
	}
	hay, needle := e.prepare([]rune(buffer), q)
	return len(occurrences(hay, needle, q.MatchWord))
}

func (e *Engine) locate(text []rune, sel Selection, q Query) (Match, []rune, []rune) {
	if q.Value == "" {
		return Match{Index: NotFound}, nil, nil
	}
	hay, needle := e.prepare(text, q)

	var idx int
	if q.MatchWord {
		idx = nextWord(occurrences(hay, needle, true), len(needle), sel)
	} else {
		idx = nextPlain(hay, needle, sel)
	}
	if idx == NotFound {
		return Match{Index: NotFound}, hay, needle
	}
	return Match{Index: idx, Length: len(needle)}, hay, needle
}

func (e *Engine) prepare(text []rune, q Query) ([]rune, []rune) {
	needle := []rune(q.Value)
	if q.MatchCase {
		return text, needle
	}
	return foldRunes(e.folder, text), foldRunes(e.folder, needle)
}

// nextWord picks the first word match at or after the selection start,
// skipping one that is exactly the current selection unless it is the only
// match.
func nextWord(starts []int, n int, sel Selection) int {
	if len(starts) == 0 {
		return NotFound
	}
	first := 0
	for first < len(starts) && starts[first] < sel.Start {
		first++
	}
	for i := range starts {
		s := starts[(i+first)%len(starts)]
		if len(starts) > 1 && s == sel.Start && s+n == sel.End {
			continue
		}
		return s
	}
	return NotFound
}

func nextPlain(hay, needle []rune, sel Selection) int {
	start := sel.Start
	if equalRunes(hay[sel.Start:sel.End], needle) {
		start++
	}
	idx := indexRunes(hay, needle, start)
	if idx < 0 {
		idx = indexRunes(hay, needle, 0)
	}
	if idx < 0 {
		return NotFound
	}
	return idx
}

// occurrences lists the starts of all non-overlapping matches, left to right.
func occurrences(hay, needle []rune, word bool) []int {
	if len(needle) == 0 {
		return nil
	}
	if word {
		return wordOccurrences(hay, needle)
	}
	var starts []int
	for from := 0; ; {
		idx := indexRunes(hay, needle, from)
		if idx < 0 {
			return starts
		}
		starts = append(starts, idx)
		from = idx + len(needle)
	}
}

// wordOccurrences matches the literal needle between \b boundaries. The
// needle is quoted so regexp metacharacters in user input match themselves.
func wordOccurrences(hay, needle []rune) []int {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(string(needle)) + `\b`)
	if err != nil {
		return nil
	}
	s := string(hay)
	locs := re.FindAllStringIndex(s, -1)
	starts := make([]int, 0, len(locs))
	pos, runes := 0, 0
	for _, loc := range locs {
		runes += utf8.RuneCountInString(s[pos:loc[0]])
		pos = loc[0]
		starts = append(starts, runes)
	}
	return starts
}

// spliceAll replaces every occurrence and returns the new text together with
// the offset of the replacement standing in for the first occurrence at or
// after located (or the first occurrence when none is).
func spliceAll(text []rune, starts []int, n int, repl []rune, located int) ([]rune, int) {
	pick := 0
	for k, s := range starts {
		if s >= located {
			pick = k
			break
		}
	}

	out := make([]rune, 0, max(0, len(text)+len(starts)*(len(repl)-n)))
	prev, anchor := 0, 0
	for k, s := range starts {
		out = append(out, text[prev:s]...)
		if k == pick {
			anchor = len(out)
		}
		out = append(out, repl...)
		prev = s + n
	}
	out = append(out, text[prev:]...)
	return out, anchor
}

func indexRunes(hay, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		if equalRunes(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
