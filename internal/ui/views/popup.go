package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DialogView is everything needed to draw the find or replace dialog
type DialogView struct {
	Title   string
	Message string
	Fields  []DialogField
	Toggles []DialogToggle
	Buttons []DialogButton
}

type DialogField struct {
	Label   string
	Input   string // rendered text input
	Focused bool
}

type DialogToggle struct {
	Label   string
	Checked bool
	Focused bool
}

type DialogButton struct {
	Label   string
	Focused bool
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderDialog draws the dialog box
func (pr *PopupRenderer) RenderDialog(d DialogView) string {
	s := pr.styles
	var rows []string

	rows = append(rows, s.DialogTitle.Render(d.Title))
	if d.Message != "" {
		rows = append(rows, "", s.DialogText.Render(d.Message))
	}

	labelWidth := 0
	for _, f := range d.Fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}
	for _, f := range d.Fields {
		label := s.DialogText.Width(labelWidth + 1).Render(f.Label)
		field := s.Field
		if f.Focused {
			field = s.FieldFocused
		}
		rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, label, field.Render(f.Input)))
	}

	var toggles []string
	for _, t := range d.Toggles {
		mark := " "
		if t.Checked {
			mark = "X"
		}
		style := s.DialogText
		if t.Focused {
			style = s.ButtonFocused
		}
		toggles = append(toggles, style.Render("["+mark+"] "+t.Label))
	}
	if len(toggles) > 0 {
		rows = append(rows, "", strings.Join(toggles, s.DialogText.Render("   ")))
	}

	var buttons []string
	for _, b := range d.Buttons {
		style := s.Button
		if b.Focused {
			style = s.ButtonFocused
		}
		buttons = append(buttons, style.Render("< "+b.Label+" >"))
	}
	if len(buttons) > 0 {
		rows = append(rows, "", strings.Join(buttons, s.DialogText.Render("  ")))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return s.Dialog.Render(body)
}

// Overlay draws popup centred on top of base. The parts of base left and
// right of the popup stay visible.
func Overlay(base, popup string, width, height int) string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	popupLines := strings.Split(popup, "\n")
	popupWidth := lipgloss.Width(popup)
	x := max(0, (width-popupWidth)/2)
	y := max(0, (height-len(popupLines))/2)

	for i, pl := range popupLines {
		row := y + i
		if row >= len(lines) {
			break
		}
		line := lines[row]

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if w := ansi.StringWidth(pl); w < popupWidth {
			pl += strings.Repeat(" ", popupWidth-w)
		}
		right := ansi.TruncateLeft(line, x+popupWidth, "")

		lines[row] = left + pl + right
	}
	return strings.Join(lines, "\n")
}
