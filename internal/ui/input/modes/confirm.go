package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/ui/input/types"
)

// ConfirmMode asks whether to save a modified document before quitting
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm-quit"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "c", "C":
		// Back to the document
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeEdit},
			types.SaveAndQuitAction{},
		}, true
	case "n", "N":
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Swallow everything else while the question is open
	return nil, true
}
