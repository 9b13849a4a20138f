package commands

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/document"
	"dosedit/internal/domain"
	"dosedit/internal/eventbus"
	"dosedit/internal/search"
	"dosedit/internal/ui/editor"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// StatusMsg asks the model to show a message in the status bar
type StatusMsg struct {
	Text    string
	IsError bool
}

// HighlightMsg carries the preview highlights of a find
type HighlightMsg struct {
	Query search.Query
	Spans []search.Span
}

// CommandContext provides context for command execution
type CommandContext struct {
	Engine    *search.Engine
	Editor    *editor.Model
	Document  *domain.Document
	Store     *document.Store
	Bus       eventbus.EventBus
	Clipboard Clipboard
}

func (c *CommandContext) publish(e eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

// syncDocument copies the editor text into the document
func (c *CommandContext) syncDocument() {
	if c.Document != nil {
		c.Document.SetContents(c.Editor.Value())
	}
}

func status(format string, args ...any) tea.Cmd {
	msg := StatusMsg{Text: fmt.Sprintf(format, args...)}
	return func() tea.Msg { return msg }
}

func failure(format string, args ...any) tea.Cmd {
	msg := StatusMsg{Text: fmt.Sprintf(format, args...), IsError: true}
	return func() tea.Msg { return msg }
}

// SearchCommand runs a find, a replace or a replace-all against the editor
type SearchCommand struct {
	ctx   *CommandContext
	query search.Query
}

func NewSearchCommand(ctx *CommandContext, query search.Query) *SearchCommand {
	return &SearchCommand{ctx: ctx, query: query}
}

func (c *SearchCommand) Execute() tea.Cmd {
	if err := c.query.Validate(); err != nil {
		return status("Enter the text to find")
	}

	ed := c.ctx.Editor
	res := c.ctx.Engine.Execute(ed.Value(), ed.Selection(), c.query)
	c.ctx.publish(eventbus.SearchCompletedEvent{
		Query: c.query.Value,
		Found: res.Match.Found(),
		Index: res.Match.Index,
	})

	if !res.Match.Found() {
		log.Printf("No match for %q", c.query.Value)
		return status("Match not found")
	}

	if !res.Changed() {
		ed.SetSelection(res.Selection)
		return nil
	}

	ed.SetValue(res.Buffer)
	ed.SetSelection(res.Selection)
	c.ctx.syncDocument()

	log.Printf("Replaced %d occurrence(s) of %q", res.Replaced, c.query.Value)
	c.ctx.publish(eventbus.TextReplacedEvent{
		Query:       c.query.Value,
		ReplaceWith: *c.query.ReplaceWith,
		Count:       res.Replaced,
		All:         c.query.ReplaceAll,
	})
	return status("Replaced %d occurrence(s)", res.Replaced)
}

// HighlightCommand marks every occurrence of the query, one node per line
type HighlightCommand struct {
	ctx   *CommandContext
	query search.Query
}

func NewHighlightCommand(ctx *CommandContext, query search.Query) *HighlightCommand {
	return &HighlightCommand{ctx: ctx, query: query}
}

func (c *HighlightCommand) Execute() tea.Cmd {
	lines := strings.Split(c.ctx.Editor.Value(), "\n")
	spans := c.ctx.Engine.HighlightAll(lines, c.query)

	c.ctx.publish(eventbus.SearchCompletedEvent{
		Query:   c.query.Value,
		Found:   len(spans) > 0,
		Index:   search.NotFound,
		Matches: len(spans),
		Preview: true,
	})

	msg := HighlightMsg{Query: c.query, Spans: spans}
	return func() tea.Msg { return msg }
}

// SaveCommand writes the editor text to the document's file
type SaveCommand struct {
	ctx *CommandContext
}

func NewSaveCommand(ctx *CommandContext) *SaveCommand {
	return &SaveCommand{ctx: ctx}
}

func (c *SaveCommand) Execute() tea.Cmd {
	c.ctx.syncDocument()

	err := c.ctx.Store.Save(c.ctx.Document)
	switch {
	case errors.Is(err, document.ErrNoPath):
		return status("No file name: start dosedit with a FILE argument")
	case err != nil:
		log.Printf("Save failed: %v", err)
		c.ctx.publish(eventbus.ErrorEvent{Message: "Save failed", Err: err})
		return failure("Save failed: %v", err)
	}
	return status("Saved %s", c.ctx.Document.Name())
}

// CopyCommand puts the selected text on the clipboard
type CopyCommand struct {
	ctx *CommandContext
	cut bool
}

func NewCopyCommand(ctx *CommandContext) *CopyCommand {
	return &CopyCommand{ctx: ctx}
}

// NewCutCommand copies the selection and then deletes it
func NewCutCommand(ctx *CommandContext) *CopyCommand {
	return &CopyCommand{ctx: ctx, cut: true}
}

func (c *CopyCommand) Execute() tea.Cmd {
	text := c.ctx.Editor.SelectedText()
	if text == "" {
		return nil
	}
	if err := c.ctx.Clipboard.WriteAll(text); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		c.ctx.publish(eventbus.ErrorEvent{Message: "Clipboard unavailable", Err: err})
		return failure("Clipboard unavailable: %v", err)
	}
	if c.cut {
		c.ctx.Editor.DeleteSelection()
		c.ctx.syncDocument()
	}
	return nil
}

// PasteCommand replaces the selection with the clipboard text
type PasteCommand struct {
	ctx *CommandContext
}

func NewPasteCommand(ctx *CommandContext) *PasteCommand {
	return &PasteCommand{ctx: ctx}
}

func (c *PasteCommand) Execute() tea.Cmd {
	text, err := c.ctx.Clipboard.ReadAll()
	if err != nil {
		log.Printf("Clipboard read failed: %v", err)
		c.ctx.publish(eventbus.ErrorEvent{Message: "Clipboard unavailable", Err: err})
		return failure("Clipboard unavailable: %v", err)
	}
	if text == "" {
		return nil
	}
	c.ctx.Editor.InsertText(text)
	c.ctx.syncDocument()
	return nil
}

// RememberSettingsCommand asks for the dialog's search options to be saved
type RememberSettingsCommand struct {
	ctx      *CommandContext
	settings domain.SearchSettings
}

func NewRememberSettingsCommand(ctx *CommandContext, settings domain.SearchSettings) *RememberSettingsCommand {
	return &RememberSettingsCommand{ctx: ctx, settings: settings}
}

func (c *RememberSettingsCommand) Execute() tea.Cmd {
	c.ctx.publish(eventbus.ConfigChangedEvent{Search: c.settings})
	return nil
}
