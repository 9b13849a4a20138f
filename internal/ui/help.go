package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpSection is one block of the keyboard reference
type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Moving the cursor", [][2]string{
		{"Arrows", "Character left/right, line up/down"},
		{"Home/End", "Start/end of line"},
		{"PgUp/PgDn", "Page up/down"},
		{"Ctrl+Home/End", "Start/end of document"},
	}},
	{"Selecting and editing", [][2]string{
		{"Shift+Arrows", "Extend the selection"},
		{"Shift+Home/End", "Select to start/end of line"},
		{"Ctrl+A", "Select all"},
		{"Ctrl+X", "Cut"},
		{"Ctrl+K", "Copy"},
		{"Ctrl+V", "Paste"},
		{"Del", "Delete the selection or the next character"},
	}},
	{"Search", [][2]string{
		{"Ctrl+F", "Find"},
		{"Ctrl+H", "Replace (edit mode only)"},
		{"F3", "Repeat last find"},
		{"Tab", "Next field in a dialog"},
		{"Alt+W", "Toggle Match Whole Word Only"},
		{"Alt+C", "Toggle Match Case"},
		{"Alt+A", "Change All"},
	}},
	{"File and view", [][2]string{
		{"Ctrl+S", "Save"},
		{"F4", "Toggle preview (find highlights every match)"},
		{"F1", "This help"},
		{"Ctrl+Q", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("4"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, section := range helpSections {
		for _, k := range section.keys {
			keyWidth = max(keyWidth, len(k[0]))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(" DOSEDIT Help "))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&help, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, k[0])),
				descStyle.Render(k[1]))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("Press q to return to the editor"))
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
