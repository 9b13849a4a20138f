package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dosedit/internal/config"
	"dosedit/internal/document"
	"dosedit/internal/domain"
	"dosedit/internal/eventbus"
	"dosedit/internal/search"
	"dosedit/internal/ui/commands"
	"dosedit/internal/ui/editor"
	"dosedit/internal/ui/input"
	"dosedit/internal/ui/input/modes"
	inputtypes "dosedit/internal/ui/input/types"
	"dosedit/internal/ui/views"
)

const statusTimeout = 5 * time.Second

// Option customises a Model
type Option func(*Model)

// WithClipboard replaces the system clipboard
func WithClipboard(c commands.Clipboard) Option {
	return func(m *Model) { m.clipboard = c }
}

// WithEngine replaces the search engine built from the config
func WithEngine(e *search.Engine) Option {
	return func(m *Model) { m.engine = e }
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	document *domain.Document

	width       int
	height      int
	help        help.Model
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode

	editor      *editor.Model
	revision    int // editor revision last copied into the document
	preview     viewport.Model
	previewMode bool
	highlights  []search.Span

	lastQuery     search.Query
	statusMessage string
	statusIsError bool
	statusSeq     int

	engine       *search.Engine
	clipboard    commands.Clipboard
	renderer     *views.Renderer
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model editing doc
func NewModel(bus eventbus.EventBus, cfg *config.Config, doc *domain.Document, store *document.Store, opts ...Option) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		document:     doc,
		help:         help.New(),
		keys:         newKeyMap(),
		editor:       editor.New(),
		preview:      viewport.New(80, 20),
		previewMode:  cfg.Editor.StartInPreview,
		clipboard:    commands.SystemClipboard{},
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.engine == nil {
		folder, err := search.FolderForLocale(cfg.Search.Locale)
		if err != nil {
			log.Printf("Ignoring search locale: %v", err)
			folder = search.SimpleFolder
		}
		m.engine = search.New(search.WithCaseFolder(folder))
	}

	styles := m.renderer.Styles()
	m.editor.Styles = editor.Styles{
		Text:      styles.EditorText,
		Selection: styles.EditorSelection,
		Cursor:    styles.EditorCursor,
	}
	m.editor.TabWidth = cfg.Editor.TabWidth
	m.editor.SetValue(doc.Contents)
	m.editor.SetSelection(search.Caret(0))
	m.revision = m.editor.Revision()

	remembered := cfg.Search.Options()
	m.lastQuery = search.Query{MatchCase: remembered.MatchCase, MatchWord: remembered.MatchWord}

	m.cmdExecutor = commands.NewExecutor(commands.CommandContext{
		Engine:    m.engine,
		Editor:    m.editor,
		Document:  doc,
		Store:     store,
		Bus:       bus,
		Clipboard: m.clipboard,
	})

	m.setPreviewMode(m.previewMode)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dosedit - " + m.document.Name())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	default:
		// Handle non-keyboard messages
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd, consumed := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if !consumed {
		if m.previewMode {
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			cmds = append(cmds, vpCmd)
		} else {
			cmds = append(cmds, m.editor.Update(msg))
			m.syncDocument()
		}
	}

	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Editor:  m.editor,
		Preview: m.previewMode,
		Last:    m.lastQuery,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.SubmitSearchAction:
		m.rememberQuery(a.Query)
		return m.runSearch(a.Query)

	case inputtypes.FindAgainAction:
		if m.lastQuery.Value == "" {
			m.inputHandler.ChangeMode(inputtypes.ModeFind, m.inputContext())
			return nil
		}
		return m.runSearch(m.lastQuery.FindOnly())

	case inputtypes.TogglePreviewAction:
		m.setPreviewMode(!m.previewMode)

	case inputtypes.CopyAction:
		return m.cmdExecutor.ExecuteCopy()

	case inputtypes.CutAction:
		cmd := m.cmdExecutor.ExecuteCut()
		m.revision = m.editor.Revision()
		return cmd

	case inputtypes.PasteAction:
		cmd := m.cmdExecutor.ExecutePaste()
		m.revision = m.editor.Revision()
		return cmd

	case inputtypes.SaveAction:
		m.syncDocument()
		return m.cmdExecutor.ExecuteSave()

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(NewHelpRenderer().RenderHelpContent())

	case inputtypes.StatusAction:
		return m.setStatus(a.Message, false)

	case inputtypes.CancelDialogAction:
		// Nothing to undo, the dialog works on its own copy of the query

	case inputtypes.SaveAndQuitAction:
		m.syncDocument()
		return m.saveAndQuit()

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

// runSearch sends q to the engine. In preview mode every match is
// highlighted instead of moving the selection.
func (m *Model) runSearch(q search.Query) tea.Cmd {
	if m.previewMode {
		return m.cmdExecutor.ExecuteHighlight(q.FindOnly())
	}
	cmd := m.cmdExecutor.ExecuteSearch(q)
	m.revision = m.editor.Revision()
	return cmd
}

// rememberQuery stores q for F3 and the next dialog, and asks for the
// options to be saved when they changed.
func (m *Model) rememberQuery(q search.Query) {
	before := domain.SearchSettings{MatchCase: m.lastQuery.MatchCase, MatchWord: m.lastQuery.MatchWord}
	after := domain.SearchSettings{MatchCase: q.MatchCase, MatchWord: q.MatchWord}
	m.lastQuery = q
	if before != after {
		m.cmdExecutor.ExecuteRememberSettings(after)
	}
}

func (m *Model) quit(force bool) tea.Cmd {
	m.syncDocument()
	if force || !m.document.Dirty {
		return tea.Quit
	}
	if m.config.UISettings.AutosaveOnExit && m.document.Path != "" {
		return m.saveAndQuit()
	}
	m.inputHandler.ChangeMode(inputtypes.ModeConfirmQuit, m.inputContext())
	return nil
}

// saveAndQuit quits only when the save left the document clean
func (m *Model) saveAndQuit() tea.Cmd {
	cmd := m.cmdExecutor.ExecuteSave()
	if m.document.Dirty {
		log.Printf("Not quitting, %s is still modified", m.document.Name())
		return cmd
	}
	return tea.Quit
}

func (m *Model) setPreviewMode(on bool) {
	m.previewMode = on
	m.keys.setPreview(on)
	m.highlights = nil
	if on {
		m.editor.Blur()
		m.refreshPreview()
	} else {
		m.editor.Focus()
	}
}

func (m *Model) refreshPreview() {
	lines := strings.Split(m.editor.Value(), "\n")
	m.preview.SetContent(m.renderer.RenderPreview(lines, m.highlights, m.editor.TabWidth))
}

// syncDocument copies editor changes into the document
func (m *Model) syncDocument() {
	if rev := m.editor.Revision(); rev != m.revision {
		m.document.SetContents(m.editor.Value())
		m.revision = rev
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	m.statusSeq++
	if text == "" {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// layout sizes the text area and the preview to the window
func (m *Model) layout() {
	bodyHeight := views.BodyHeight(m.height, m.config.UISettings.ShowHelpBar)
	m.editor.SetSize(m.width, bodyHeight)
	m.preview.Width = m.width
	m.preview.Height = bodyHeight
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return m.setStatus("Help is not available", true)
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case commands.StatusMsg:
		return m, m.setStatus(msg.Text, msg.IsError)

	case commands.HighlightMsg:
		m.highlights = msg.Spans
		m.refreshPreview()
		if len(msg.Spans) == 0 {
			return m, m.setStatus("Match not found", false)
		}
		m.preview.SetYOffset(msg.Spans[0].Node)
		return m, m.setStatus(fmt.Sprintf("%d match(es)", len(msg.Spans)), false)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// handleEvent reacts to domain events published outside the UI
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return m.setStatus(e.Message, true)
	case eventbus.ConfigSavedEvent:
		log.Printf("Search options saved")
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		DocumentName:  m.document.Name(),
		Dirty:         m.document.Dirty,
		Mode:          m.modeName(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Dialog:        m.dialogView(),
	}

	if m.previewMode {
		state.Body = m.preview.View()
		state.Line, state.Col = m.preview.YOffset+1, 1
	} else {
		state.Body = m.editor.View()
		state.Line, state.Col = m.editor.CursorLineCol()
	}

	if m.config.UISettings.ShowHelpBar {
		state.HelpBar = m.help.View(m.keys)
	}

	return m.renderer.Render(state)
}

func (m *Model) modeName() string {
	if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModeEdit {
		return mode.String()
	}
	if m.previewMode {
		return "preview"
	}
	return "edit"
}

// dialogView converts the open dialog into its view description
func (m *Model) dialogView() *views.DialogView {
	if m.inputHandler.CurrentMode() == inputtypes.ModeConfirmQuit {
		return &views.DialogView{
			Title:   "Exit",
			Message: fmt.Sprintf("Save changes to %s?", m.document.Name()),
			Buttons: []views.DialogButton{{Label: "Yes", Focused: true}, {Label: "No"}, {Label: "Cancel"}},
		}
	}

	d := m.inputHandler.Dialog()
	if d == nil {
		return nil
	}
	focus := d.Focused()

	view := &views.DialogView{
		Title: d.Title(),
		Fields: []views.DialogField{
			{Label: "Find What:", Input: d.FindInput().View(), Focused: focus == modes.FocusFind},
		},
		Toggles: []views.DialogToggle{
			{Label: "Match Whole Word Only", Checked: d.MatchWord(), Focused: focus == modes.FocusMatchWord},
			{Label: "Match Case", Checked: d.MatchCase(), Focused: focus == modes.FocusMatchCase},
		},
	}
	if d.WithReplace() {
		view.Fields = append(view.Fields, views.DialogField{
			Label: "Replace With:", Input: d.ReplaceInput().View(), Focused: focus == modes.FocusReplace,
		})
	}
	for _, b := range d.Buttons() {
		view.Buttons = append(view.Buttons, views.DialogButton{Label: b.Label, Focused: focus == b.Focus})
	}
	return view
}

// Document returns the document being edited
func (m *Model) Document() *domain.Document {
	return m.document
}

// StatusMessage returns the message shown in the status bar
func (m *Model) StatusMessage() string {
	return m.statusMessage
}
