package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/search"
	"dosedit/internal/ui/input/types"
)

// Focus identifies the control of a dialog that receives keys
type Focus int

const (
	FocusFind Focus = iota
	FocusReplace
	FocusMatchWord
	FocusMatchCase
	FocusPrimary
	FocusChangeAll
	FocusCancel
)

// Button is a push button of a dialog
type Button struct {
	Label string
	Focus Focus
}

const fieldWidth = 40

// DialogMode is the find dialog, or the replace dialog when it was created
// with NewReplaceMode.
type DialogMode struct {
	mode        types.Mode
	withReplace bool

	find      textinput.Model
	replace   textinput.Model
	matchWord bool
	matchCase bool
	focus     Focus
}

func NewFindMode() *DialogMode {
	return newDialogMode(types.ModeFind, false)
}

func NewReplaceMode() *DialogMode {
	return newDialogMode(types.ModeReplace, true)
}

func newDialogMode(mode types.Mode, withReplace bool) *DialogMode {
	newField := func() textinput.Model {
		ti := textinput.New()
		ti.Prompt = "" // drawn by the view
		ti.Width = fieldWidth
		return ti
	}
	return &DialogMode{
		mode:        mode,
		withReplace: withReplace,
		find:        newField(),
		replace:     newField(),
	}
}

func (m *DialogMode) Name() string {
	return m.mode.String()
}

// Title is the caption drawn on the dialog frame
func (m *DialogMode) Title() string {
	if m.withReplace {
		return "Replace"
	}
	return "Find"
}

// Enter preloads the dialog from the selection and the last query
func (m *DialogMode) Enter(ctx types.Context) []types.Action {
	last := ctx.LastQuery()

	value := last.Value
	if sel := ctx.SelectedText(); sel != "" && !strings.Contains(sel, "\n") {
		value = sel
	}
	m.find.SetValue(value)
	m.find.CursorEnd()

	m.replace.Reset()
	if last.ReplaceWith != nil {
		m.replace.SetValue(*last.ReplaceWith)
		m.replace.CursorEnd()
	}

	m.matchWord = last.MatchWord
	m.matchCase = last.MatchCase
	m.setFocus(FocusFind)
	return nil
}

func (m *DialogMode) Exit(ctx types.Context) []types.Action {
	m.find.Blur()
	m.replace.Blur()
	return nil
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return m.cancel(), true

	case "tab", "down":
		m.cycleFocus(1)
		return nil, true

	case "shift+tab", "up":
		m.cycleFocus(-1)
		return nil, true

	case "alt+w":
		m.matchWord = !m.matchWord
		return nil, true

	case "alt+c":
		m.matchCase = !m.matchCase
		return nil, true

	case "alt+a":
		if m.withReplace {
			return m.submit(true), true
		}
		return nil, true

	case "enter":
		return m.press(m.focus), true

	case " ":
		switch m.focus {
		case FocusMatchWord:
			m.matchWord = !m.matchWord
			return nil, true
		case FocusMatchCase:
			m.matchCase = !m.matchCase
			return nil, true
		case FocusPrimary, FocusChangeAll, FocusCancel:
			return m.press(m.focus), true
		}
	}

	// Let the handler route the key into the focused field
	return nil, false
}

// Update feeds msg to the focused text field
func (m *DialogMode) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusFind:
		m.find, cmd = m.find.Update(msg)
	case FocusReplace:
		m.replace, cmd = m.replace.Update(msg)
	}
	return cmd
}

func (m *DialogMode) press(f Focus) []types.Action {
	switch f {
	case FocusCancel:
		return m.cancel()
	case FocusChangeAll:
		return m.submit(true)
	default:
		return m.submit(false)
	}
}

func (m *DialogMode) cancel() []types.Action {
	return []types.Action{
		types.CancelDialogAction{},
		types.ChangeModeAction{Mode: types.ModeEdit},
	}
}

func (m *DialogMode) submit(all bool) []types.Action {
	q := search.Query{
		Value:     m.find.Value(),
		MatchWord: m.matchWord,
		MatchCase: m.matchCase,
	}
	if err := q.Validate(); err != nil {
		m.setFocus(FocusFind)
		return []types.Action{types.StatusAction{Message: "Enter the text to find"}}
	}
	if m.withReplace {
		q = q.WithReplacement(m.replace.Value())
		q.ReplaceAll = all
	}
	return []types.Action{
		types.SubmitSearchAction{Query: q},
		types.ChangeModeAction{Mode: types.ModeEdit},
	}
}

func (m *DialogMode) order() []Focus {
	if m.withReplace {
		return []Focus{FocusFind, FocusReplace, FocusMatchWord, FocusMatchCase, FocusPrimary, FocusChangeAll, FocusCancel}
	}
	return []Focus{FocusFind, FocusMatchWord, FocusMatchCase, FocusPrimary, FocusCancel}
}

func (m *DialogMode) cycleFocus(delta int) {
	order := m.order()
	i := 0
	for j, f := range order {
		if f == m.focus {
			i = j
			break
		}
	}
	i = (i + delta + len(order)) % len(order)
	m.setFocus(order[i])
}

func (m *DialogMode) setFocus(f Focus) {
	m.focus = f
	m.find.Blur()
	m.replace.Blur()
	switch f {
	case FocusFind:
		m.find.Focus()
	case FocusReplace:
		m.replace.Focus()
	}
}

// Accessors for rendering

func (m *DialogMode) WithReplace() bool { return m.withReplace }
func (m *DialogMode) MatchWord() bool   { return m.matchWord }
func (m *DialogMode) MatchCase() bool   { return m.matchCase }
func (m *DialogMode) Focused() Focus    { return m.focus }

func (m *DialogMode) FindInput() textinput.Model    { return m.find }
func (m *DialogMode) ReplaceInput() textinput.Model { return m.replace }

// Buttons lists the dialog's buttons from left to right
func (m *DialogMode) Buttons() []Button {
	if m.withReplace {
		return []Button{
			{Label: "Find and Replace", Focus: FocusPrimary},
			{Label: "Change All", Focus: FocusChangeAll},
			{Label: "Cancel", Focus: FocusCancel},
		}
	}
	return []Button{
		{Label: "OK", Focus: FocusPrimary},
		{Label: "Cancel", Focus: FocusCancel},
	}
}
