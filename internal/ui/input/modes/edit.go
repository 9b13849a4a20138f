package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/ui/input/types"
)

// EditMode handles the global shortcuts while the text area has focus. Keys
// it does not consume go to the editor.
type EditMode struct{}

func NewEditMode() *EditMode {
	return &EditMode{}
}

func (m *EditMode) Name() string {
	return "edit"
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "ctrl+q":
		return []types.Action{types.QuitAction{}}, true

	case "ctrl+f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFind}}, true

	case "ctrl+h":
		if ctx.PreviewMode() {
			return []types.Action{types.StatusAction{Message: "Replace is not available in preview mode"}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeReplace}}, true

	case "f3":
		return []types.Action{types.FindAgainAction{}}, true

	case "f4":
		return []types.Action{types.TogglePreviewAction{}}, true

	case "f1":
		return []types.Action{types.ShowHelpAction{}}, true

	case "ctrl+s":
		return []types.Action{types.SaveAction{}}, true

	case "ctrl+k":
		if ctx.HasSelection() {
			return []types.Action{types.CopyAction{}}, true
		}
		return nil, true

	case "ctrl+x":
		if ctx.PreviewMode() {
			return nil, true
		}
		if ctx.HasSelection() {
			return []types.Action{types.CutAction{}}, true
		}
		return nil, true

	case "ctrl+v":
		if ctx.PreviewMode() {
			return nil, true
		}
		return []types.Action{types.PasteAction{}}, true
	}

	return nil, false
}
