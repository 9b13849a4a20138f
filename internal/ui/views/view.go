package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dosedit/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	DocumentName  string
	Dirty         bool
	Mode          string
	Line          int
	Col           int
	StatusMessage string
	StatusIsError bool
	Body          string // editor or preview content, already sized
	HelpBar       string // empty hides the help bar
	Dialog        *DialogView
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

func (r *Renderer) Styles() *Styles {
	return r.styles
}

// BodyHeight is the number of rows left for the text once the title bar,
// the status bar and the optional help bar are drawn.
func BodyHeight(height int, helpBar bool) int {
	rows := height - 2
	if helpBar {
		rows--
	}
	return max(1, rows)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	bodyHeight := BodyHeight(height, state.HelpBar != "")
	body := r.styles.Body.
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		MaxWidth(width).
		Render(state.Body)

	if state.Dialog != nil {
		body = Overlay(body, r.popupRender.RenderDialog(*state.Dialog), width, bodyHeight)
	}

	rows := []string{r.renderTitle(state, width), body}
	if state.HelpBar != "" {
		rows = append(rows, r.styles.HelpBar.Width(width).MaxWidth(width).Render(state.HelpBar))
	}
	rows = append(rows, r.renderStatus(state, width))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	name := state.DocumentName
	if name == "" {
		name = domain.UntitledName
	}
	if state.Dirty {
		name += " *"
	}
	return r.styles.Title.
		Width(width).
		MaxWidth(width).
		Align(lipgloss.Center).
		Render(name)
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	position := fmt.Sprintf(" %s │ %05d:%03d ", strings.ToUpper(state.Mode), state.Line, state.Col)
	room := max(0, width-lipgloss.Width(position))

	message := ansi.Truncate(" "+state.StatusMessage, room, "…")

	style := r.styles.Status
	if state.StatusIsError {
		style = r.styles.StatusError
	}
	left := style.Width(room).Render(message)
	return left + r.styles.Status.Render(position)
}
