package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editing and navigation bindings of the text area.
type KeyMap struct {
	CharacterLeft   key.Binding
	CharacterRight  key.Binding
	LineUp          key.Binding
	LineDown        key.Binding
	LineStart       key.Binding
	LineEnd         key.Binding
	PageUp          key.Binding
	PageDown        key.Binding
	DocumentStart   key.Binding
	DocumentEnd     key.Binding
	SelectLeft      key.Binding
	SelectRight     key.Binding
	SelectUp        key.Binding
	SelectDown      key.Binding
	SelectLineStart key.Binding
	SelectLineEnd   key.Binding
	SelectAll       key.Binding
	DeleteBackward  key.Binding
	DeleteForward   key.Binding
	InsertNewline   key.Binding
	InsertTab       key.Binding
}

// DefaultKeyMap mirrors the cursor keys of the classic DOS editor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CharacterLeft:   key.NewBinding(key.WithKeys("left")),
		CharacterRight:  key.NewBinding(key.WithKeys("right")),
		LineUp:          key.NewBinding(key.WithKeys("up")),
		LineDown:        key.NewBinding(key.WithKeys("down")),
		LineStart:       key.NewBinding(key.WithKeys("home")),
		LineEnd:         key.NewBinding(key.WithKeys("end")),
		PageUp:          key.NewBinding(key.WithKeys("pgup")),
		PageDown:        key.NewBinding(key.WithKeys("pgdown")),
		DocumentStart:   key.NewBinding(key.WithKeys("ctrl+home")),
		DocumentEnd:     key.NewBinding(key.WithKeys("ctrl+end")),
		SelectLeft:      key.NewBinding(key.WithKeys("shift+left")),
		SelectRight:     key.NewBinding(key.WithKeys("shift+right")),
		SelectUp:        key.NewBinding(key.WithKeys("shift+up")),
		SelectDown:      key.NewBinding(key.WithKeys("shift+down")),
		SelectLineStart: key.NewBinding(key.WithKeys("shift+home")),
		SelectLineEnd:   key.NewBinding(key.WithKeys("shift+end")),
		SelectAll:       key.NewBinding(key.WithKeys("ctrl+a")),
		DeleteBackward:  key.NewBinding(key.WithKeys("backspace")),
		DeleteForward:   key.NewBinding(key.WithKeys("delete")),
		InsertNewline:   key.NewBinding(key.WithKeys("enter")),
		InsertTab:       key.NewBinding(key.WithKeys("tab")),
	}
}
