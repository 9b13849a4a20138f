package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the summary of shortcuts shown in the help bar. The bindings
// themselves are dispatched by the input modes.
type keyMap struct {
	Help    key.Binding
	Find    key.Binding
	Replace key.Binding
	Repeat  key.Binding
	Preview key.Binding
	Save    key.Binding
	Quit    key.Binding
	Cut     key.Binding
	Copy    key.Binding
	Paste   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Find:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("^F", "find")),
		Replace: key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("^H", "replace")),
		Repeat:  key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "repeat find")),
		Preview: key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "preview")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "quit")),
		Cut:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "cut")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("^K", "copy")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^V", "paste")),
	}
}

// setPreview disables the bindings that edit the text
func (k *keyMap) setPreview(preview bool) {
	k.Replace.SetEnabled(!preview)
	k.Cut.SetEnabled(!preview)
	k.Paste.SetEnabled(!preview)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Find, k.Replace, k.Repeat, k.Preview, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Find, k.Replace, k.Repeat},
		{k.Cut, k.Copy, k.Paste},
		{k.Preview, k.Save, k.Help, k.Quit},
	}
}
