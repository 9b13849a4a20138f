package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/ui/input/modes"
	"dosedit/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeEdit,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeEdit] = modes.NewEditMode()
	h.modes[types.ModeFind] = modes.NewFindMode()
	h.modes[types.ModeReplace] = modes.NewReplaceMode()
	h.modes[types.ModeConfirmQuit] = modes.NewConfirmMode()

	return h
}

// HandleKey routes msg to the current mode. It reports false when no mode
// consumed the key so the caller can hand it to the editor.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed {
		text, ok := handler.(types.TextHandler)
		if !ok {
			return nil, nil, false
		}
		// Text modes swallow every key so typing never leaks into the editor
		return nil, text.Update(msg), true
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	return allActions, cmd, true
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action

	// Exit current mode
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	// Enter new mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches modes outside of key handling
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeEdit
	}
	return h.currentMode
}

// Dialog returns the open find or replace dialog, nil in edit mode
func (h *Handler) Dialog() *modes.DialogMode {
	if !h.isTextMode(h.currentMode) {
		return nil
	}
	dialog, _ := h.modes[h.currentMode].(*modes.DialogMode)
	return dialog
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeFind, types.ModeReplace:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for the dialog fields
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if text, ok := h.modes[h.currentMode].(types.TextHandler); ok {
		return text.Update(msg)
	}
	return nil
}
