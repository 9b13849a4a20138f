package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/search"
)

// Mode represents an input mode
type Mode int

const (
	ModeEdit Mode = iota
	ModeFind
	ModeReplace
	ModeConfirmQuit
)

func (m Mode) String() string {
	switch m {
	case ModeFind:
		return "find"
	case ModeReplace:
		return "replace"
	case ModeConfirmQuit:
		return "confirm"
	default:
		return "edit"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	PreviewMode() bool
	HasSelection() bool
	SelectedText() string
	// LastQuery is the query most recently submitted, or the remembered
	// search options with an empty value.
	LastQuery() search.Query
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TextHandler is a mode that owns text fields and wants unconsumed keys and
// other messages such as cursor blinks.
type TextHandler interface {
	ModeHandler
	Update(msg tea.Msg) tea.Cmd
}
