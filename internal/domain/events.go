package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentOpened  EventType = "DocumentOpened"
	EventDocumentSaved   EventType = "DocumentSaved"
	EventSearchCompleted EventType = "SearchCompleted"
	EventTextReplaced    EventType = "TextReplaced"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentOpenedEvent is emitted when a file is loaded (or created empty)
type DocumentOpenedEvent struct {
	Path  string
	IsNew bool // the file did not exist yet
}

func (e DocumentOpenedEvent) Type() EventType { return EventDocumentOpened }

// DocumentSavedEvent is emitted after the document was written to disk
type DocumentSavedEvent struct {
	Path  string
	Bytes int
}

func (e DocumentSavedEvent) Type() EventType { return EventDocumentSaved }

// SearchCompletedEvent is emitted after every find, replace or highlight run
type SearchCompletedEvent struct {
	Query   string
	Found   bool
	Index   int // rune offset of the located match, -1 if none
	Matches int // highlight count in preview mode
	Preview bool
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// TextReplacedEvent is emitted when a replace changed the document
type TextReplacedEvent struct {
	Query       string
	ReplaceWith string
	Count       int
	All         bool
}

func (e TextReplacedEvent) Type() EventType { return EventTextReplaced }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when remembered search options changed and need saving
type ConfigChangedEvent struct {
	Search SearchSettings
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the editor is initialized
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
