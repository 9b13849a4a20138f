package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/domain"
	"dosedit/internal/search"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. A nil clipboard falls back to
// an in-process one.
func NewExecutor(ctx CommandContext) *Executor {
	if ctx.Engine == nil {
		ctx.Engine = search.New()
	}
	if ctx.Clipboard == nil {
		ctx.Clipboard = &MemoryClipboard{}
	}
	return &Executor{ctx: &ctx}
}

func (e *Executor) ExecuteSearch(q search.Query) tea.Cmd {
	return NewSearchCommand(e.ctx, q).Execute()
}

func (e *Executor) ExecuteHighlight(q search.Query) tea.Cmd {
	return NewHighlightCommand(e.ctx, q).Execute()
}

func (e *Executor) ExecuteSave() tea.Cmd {
	return NewSaveCommand(e.ctx).Execute()
}

func (e *Executor) ExecuteCopy() tea.Cmd {
	return NewCopyCommand(e.ctx).Execute()
}

func (e *Executor) ExecuteCut() tea.Cmd {
	return NewCutCommand(e.ctx).Execute()
}

func (e *Executor) ExecutePaste() tea.Cmd {
	return NewPasteCommand(e.ctx).Execute()
}

func (e *Executor) ExecuteRememberSettings(settings domain.SearchSettings) tea.Cmd {
	return NewRememberSettingsCommand(e.ctx, settings).Execute()
}
