package domain

import "path/filepath"

// UntitledName is shown for a document that has never been saved
const UntitledName = "UNTITLED"

// Document represents the text being edited
type Document struct {
	Path     string // empty until the document is saved somewhere
	Contents string
	Dirty    bool // modified since last load or save
}

// Name returns the name shown in the title bar
func (d *Document) Name() string {
	if d == nil || d.Path == "" {
		return UntitledName
	}
	return filepath.Base(d.Path)
}

// SetContents replaces the text and marks the document dirty when it changed
func (d *Document) SetContents(contents string) {
	if contents == d.Contents {
		return
	}
	d.Contents = contents
	d.Dirty = true
}

// SearchSettings are the find dialog options remembered between sessions
type SearchSettings struct {
	MatchCase bool
	MatchWord bool
}
