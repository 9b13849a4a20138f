package input

import (
	"dosedit/internal/search"
	"dosedit/internal/ui/editor"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Editor  *editor.Model
	Preview bool
	Last    search.Query
}

// PreviewMode reports whether the document is shown read-only
func (c *ModelContext) PreviewMode() bool {
	return c.Preview
}

// HasSelection returns true if any text is selected
func (c *ModelContext) HasSelection() bool {
	return c.Editor != nil && !c.Editor.Selection().IsEmpty()
}

func (c *ModelContext) SelectedText() string {
	if c.Editor == nil {
		return ""
	}
	return c.Editor.SelectedText()
}

func (c *ModelContext) LastQuery() search.Query {
	return c.Last
}
