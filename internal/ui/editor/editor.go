// Package editor implements the editable text area: a rune buffer with an
// anchor/cursor selection, keyboard editing and a scrolling view.
package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"dosedit/internal/search"
)

const defaultTabWidth = 4

// Styles used when rendering the text area
type Styles struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Reverse(true),
		Cursor:    lipgloss.NewStyle().Reverse(true).Blink(true),
	}
}

// Model is the text area. Offsets are rune offsets into the buffer; the
// selection runs between anchor and cursor in either direction.
type Model struct {
	KeyMap   KeyMap
	Styles   Styles
	TabWidth int

	runes    []rune
	anchor   int
	cursor   int
	goalCol  int // display column kept across vertical moves, -1 when unset
	revision int

	width     int
	height    int
	offsetRow int
	offsetCol int
	focused   bool
}

func New() *Model {
	return &Model{
		KeyMap:   DefaultKeyMap(),
		Styles:   DefaultStyles(),
		TabWidth: defaultTabWidth,
		goalCol:  -1,
		width:    80,
		height:   20,
	}
}

// SetValue replaces the whole text. The selection is clamped to the new text.
func (m *Model) SetValue(s string) {
	m.runes = []rune(s)
	m.anchor = clamp(m.anchor, 0, len(m.runes))
	m.cursor = clamp(m.cursor, 0, len(m.runes))
	m.goalCol = -1
	m.revision++
	m.ensureVisible()
}

func (m *Model) Value() string {
	return string(m.runes)
}

// Len returns the buffer length in runes
func (m *Model) Len() int {
	return len(m.runes)
}

// Revision increases every time the text changes
func (m *Model) Revision() int {
	return m.revision
}

// Selection returns the selected range in document order
func (m *Model) Selection() search.Selection {
	if m.anchor <= m.cursor {
		return search.Selection{Start: m.anchor, End: m.cursor}
	}
	return search.Selection{Start: m.cursor, End: m.anchor}
}

// SetSelection selects sel, leaving the cursor at its end
func (m *Model) SetSelection(sel search.Selection) {
	sel = sel.Clamp(len(m.runes))
	m.anchor = sel.Start
	m.cursor = sel.End
	m.goalCol = -1
	m.ensureVisible()
}

func (m *Model) SelectedText() string {
	sel := m.Selection()
	return string(m.runes[sel.Start:sel.End])
}

// InsertText replaces the selection with s and places the cursor after it
func (m *Model) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	sel := m.Selection()
	ins := []rune(s)

	out := make([]rune, 0, len(m.runes)-sel.Len()+len(ins))
	out = append(out, m.runes[:sel.Start]...)
	out = append(out, ins...)
	out = append(out, m.runes[sel.End:]...)
	m.runes = out

	m.anchor = sel.Start + len(ins)
	m.cursor = m.anchor
	m.goalCol = -1
	m.revision++
	m.ensureVisible()
}

// DeleteSelection removes the selected text and reports whether anything was removed
func (m *Model) DeleteSelection() bool {
	if m.Selection().IsEmpty() {
		return false
	}
	m.InsertText("")
	return true
}

// CursorLineCol returns the 1-based line and column of the cursor
func (m *Model) CursorLineCol() (int, int) {
	line, col := m.lineCol(m.cursor)
	return line + 1, col + 1
}

// LineCount returns the number of lines in the buffer
func (m *Model) LineCount() int {
	return len(m.lineStarts())
}

func (m *Model) SetSize(width, height int) {
	m.width = max(1, width)
	m.height = max(1, height)
	m.ensureVisible()
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

func (m *Model) Focused() bool {
	return m.focused
}

// Update handles editing keys. Keys the text area does not know are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
		m.InsertText(string(keyMsg.Runes))
		return nil
	}
	if keyMsg.Type == tea.KeySpace {
		m.InsertText(" ")
		return nil
	}

	km := m.KeyMap
	switch {
	case key.Matches(keyMsg, km.CharacterLeft):
		m.moveHorizontal(-1, false)
	case key.Matches(keyMsg, km.CharacterRight):
		m.moveHorizontal(1, false)
	case key.Matches(keyMsg, km.SelectLeft):
		m.moveHorizontal(-1, true)
	case key.Matches(keyMsg, km.SelectRight):
		m.moveHorizontal(1, true)
	case key.Matches(keyMsg, km.LineUp):
		m.moveVertical(-1, false)
	case key.Matches(keyMsg, km.LineDown):
		m.moveVertical(1, false)
	case key.Matches(keyMsg, km.SelectUp):
		m.moveVertical(-1, true)
	case key.Matches(keyMsg, km.SelectDown):
		m.moveVertical(1, true)
	case key.Matches(keyMsg, km.PageUp):
		m.moveVertical(-m.height, false)
	case key.Matches(keyMsg, km.PageDown):
		m.moveVertical(m.height, false)
	case key.Matches(keyMsg, km.LineStart):
		m.moveToLineEdge(false, false)
	case key.Matches(keyMsg, km.LineEnd):
		m.moveToLineEdge(true, false)
	case key.Matches(keyMsg, km.SelectLineStart):
		m.moveToLineEdge(false, true)
	case key.Matches(keyMsg, km.SelectLineEnd):
		m.moveToLineEdge(true, true)
	case key.Matches(keyMsg, km.DocumentStart):
		m.moveTo(0, false)
	case key.Matches(keyMsg, km.DocumentEnd):
		m.moveTo(len(m.runes), false)
	case key.Matches(keyMsg, km.SelectAll):
		m.anchor = 0
		m.moveTo(len(m.runes), true)
	case key.Matches(keyMsg, km.DeleteBackward):
		if !m.DeleteSelection() && m.cursor > 0 {
			m.anchor = m.cursor - 1
			m.InsertText("")
		}
	case key.Matches(keyMsg, km.DeleteForward):
		if !m.DeleteSelection() && m.cursor < len(m.runes) {
			m.anchor = m.cursor + 1
			m.InsertText("")
		}
	case key.Matches(keyMsg, km.InsertNewline):
		m.InsertText("\n")
	case key.Matches(keyMsg, km.InsertTab):
		m.InsertText(strings.Repeat(" ", m.tabWidth()))
	}
	return nil
}

// View renders the visible window of the buffer
func (m *Model) View() string {
	starts := m.lineStarts()
	sel := m.Selection()

	var b strings.Builder
	for row := 0; row < m.height; row++ {
		line := m.offsetRow + row
		if row > 0 {
			b.WriteByte('\n')
		}
		if line >= len(starts) {
			continue
		}
		start, end := starts[line], m.lineEnd(starts, line)
		b.WriteString(m.renderLine(start, end, sel))
	}
	return b.String()
}

type cellClass int

const (
	classText cellClass = iota
	classSelection
	classCursor
)

func (m *Model) renderLine(start, end int, sel search.Selection) string {
	var out strings.Builder
	var run strings.Builder
	runClass := classText
	col := 0

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(m.style(runClass).Render(run.String()))
		run.Reset()
	}
	emit := func(text string, class cellClass) {
		if class != runClass {
			flush()
			runClass = class
		}
		run.WriteString(text)
	}

	for off := start; off <= end; off++ {
		atEnd := off == end
		if atEnd && !(m.focused && m.cursor == end) {
			break
		}

		text, w := " ", 1
		if !atEnd {
			text, w = m.cell(m.runes[off])
		}

		class := classText
		switch {
		case m.focused && off == m.cursor:
			class = classCursor
		case off >= sel.Start && off < sel.End:
			class = classSelection
		}

		if col+w <= m.offsetCol {
			col += w
			continue
		}
		if col < m.offsetCol {
			// wide cell cut by the left edge
			col += w
			emit(strings.Repeat(" ", col-m.offsetCol), classText)
			continue
		}
		if col-m.offsetCol+w > m.width {
			break
		}
		emit(text, class)
		col += w
	}
	flush()
	return out.String()
}

func (m *Model) style(c cellClass) lipgloss.Style {
	switch c {
	case classCursor:
		return m.Styles.Cursor
	case classSelection:
		return m.Styles.Selection
	default:
		return m.Styles.Text
	}
}

// cell returns what is drawn for r and its width in columns
func (m *Model) cell(r rune) (string, int) {
	if r == '\t' {
		return strings.Repeat(" ", m.tabWidth()), m.tabWidth()
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return string(r), 0
	}
	return string(r), w
}

func (m *Model) tabWidth() int {
	if m.TabWidth <= 0 {
		return defaultTabWidth
	}
	return m.TabWidth
}

func (m *Model) moveTo(offset int, extend bool) {
	m.cursor = clamp(offset, 0, len(m.runes))
	if !extend {
		m.anchor = m.cursor
	}
	m.ensureVisible()
}

func (m *Model) moveHorizontal(delta int, extend bool) {
	sel := m.Selection()
	m.goalCol = -1
	if !extend && !sel.IsEmpty() {
		// collapse to the side of the selection in the direction of travel
		if delta < 0 {
			m.moveTo(sel.Start, false)
		} else {
			m.moveTo(sel.End, false)
		}
		return
	}
	m.moveTo(m.cursor+delta, extend)
}

func (m *Model) moveVertical(delta int, extend bool) {
	starts := m.lineStarts()
	line, _ := m.lineCol(m.cursor)
	if m.goalCol < 0 {
		m.goalCol = m.displayCol(starts[line], m.cursor)
	}
	target := clamp(line+delta, 0, len(starts)-1)
	m.moveTo(m.offsetForCol(starts, target, m.goalCol), extend)
}

func (m *Model) moveToLineEdge(toEnd, extend bool) {
	starts := m.lineStarts()
	line, _ := m.lineCol(m.cursor)
	m.goalCol = -1
	if toEnd {
		m.moveTo(m.lineEnd(starts, line), extend)
	} else {
		m.moveTo(starts[line], extend)
	}
}

// ensureVisible scrolls so the cursor stays inside the window
func (m *Model) ensureVisible() {
	starts := m.lineStarts()
	line, _ := m.lineCol(m.cursor)
	if line < m.offsetRow {
		m.offsetRow = line
	}
	if line >= m.offsetRow+m.height {
		m.offsetRow = line - m.height + 1
	}

	col := m.displayCol(starts[line], m.cursor)
	if col < m.offsetCol {
		m.offsetCol = col
	}
	if col >= m.offsetCol+m.width {
		m.offsetCol = col - m.width + 1
	}
}

func (m *Model) lineStarts() []int {
	starts := []int{0}
	for i, r := range m.runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (m *Model) lineEnd(starts []int, line int) int {
	if line+1 < len(starts) {
		return starts[line+1] - 1
	}
	return len(m.runes)
}

func (m *Model) lineCol(offset int) (int, int) {
	starts := m.lineStarts()
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return line, offset - starts[line]
}

func (m *Model) displayCol(lineStart, offset int) int {
	col := 0
	for i := lineStart; i < offset && i < len(m.runes); i++ {
		_, w := m.cell(m.runes[i])
		col += w
	}
	return col
}

func (m *Model) offsetForCol(starts []int, line, goal int) int {
	end := m.lineEnd(starts, line)
	col := 0
	for off := starts[line]; off < end; off++ {
		_, w := m.cell(m.runes[off])
		if col+w > goal {
			return off
		}
		col += w
	}
	return end
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
