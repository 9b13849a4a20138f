package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Colours of the classic blue editor screen
const (
	colorBlue      = lipgloss.Color("4")
	colorCyan      = lipgloss.Color("6")
	colorGray      = lipgloss.Color("7")
	colorBlack     = lipgloss.Color("0")
	colorWhite     = lipgloss.Color("15")
	colorYellow    = lipgloss.Color("11")
	colorBrightRed = lipgloss.Color("9")
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title lipgloss.Style
	Body  lipgloss.Style

	EditorText      lipgloss.Style
	EditorSelection lipgloss.Style
	EditorCursor    lipgloss.Style
	Highlight       lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
	HelpBar     lipgloss.Style

	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	DialogText    lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlack),
		Body: lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorGray),

		EditorText: lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorGray),
		EditorSelection: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlue),
		EditorCursor: lipgloss.NewStyle().
			Background(colorWhite).
			Foreground(colorBlack),
		Highlight: lipgloss.NewStyle().
			Background(colorCyan).
			Foreground(colorYellow).
			Bold(true),

		Status: lipgloss.NewStyle().
			Background(colorCyan).
			Foreground(colorBlack),
		StatusError: lipgloss.NewStyle().
			Background(colorCyan).
			Foreground(colorBrightRed).
			Bold(true),
		HelpBar: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlack),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorWhite).
			BorderBackground(colorGray).
			Background(colorGray).
			Foreground(colorBlack).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlack).
			Bold(true),
		DialogText: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlack),
		Field: lipgloss.NewStyle().
			Background(colorBlack).
			Foreground(colorGray),
		FieldFocused: lipgloss.NewStyle().
			Background(colorBlack).
			Foreground(colorWhite),
		Button: lipgloss.NewStyle().
			Background(colorGray).
			Foreground(colorBlack),
		ButtonFocused: lipgloss.NewStyle().
			Background(colorBlack).
			Foreground(colorWhite).
			Bold(true),
	}
}
