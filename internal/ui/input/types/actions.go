package types

import "dosedit/internal/search"

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// SubmitSearchAction carries the query built by the find or replace dialog
type SubmitSearchAction struct {
	Query search.Query
}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type CancelDialogAction struct{}

func (a CancelDialogAction) Type() string { return "cancel_dialog" }

// FindAgainAction repeats the last submitted query in find-only mode
type FindAgainAction struct{}

func (a FindAgainAction) Type() string { return "find_again" }

type TogglePreviewAction struct{}

func (a TogglePreviewAction) Type() string { return "toggle_preview" }

// Clipboard actions
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type CutAction struct{}

func (a CutAction) Type() string { return "cut" }

type PasteAction struct{}

func (a PasteAction) Type() string { return "paste" }

type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// StatusAction shows a message in the status bar without doing anything else
type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

// SaveAndQuitAction saves the document and quits once the save succeeded
type SaveAndQuitAction struct{}

func (a SaveAndQuitAction) Type() string { return "save_and_quit" }

type QuitAction struct {
	Force bool // quit without saving or asking
}

func (a QuitAction) Type() string { return "quit" }
