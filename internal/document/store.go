// Package document loads and saves the text being edited.
package document

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"dosedit/internal/domain"
	"dosedit/internal/eventbus"
)

// ErrNoPath is returned when saving a document that has no file name yet.
var ErrNoPath = errors.New("document has no file name")

// Store reads and writes documents on a file system.
type Store struct {
	fs  afero.Fs
	bus eventbus.EventBus
}

// NewStore creates a store; bus may be nil.
func NewStore(fs afero.Fs, bus eventbus.EventBus) *Store {
	return &Store{fs: fs, bus: bus}
}

// Open reads path. A file that does not exist yet opens as a new empty
// document that will be created on the first save. An empty path opens an
// untitled document.
func (s *Store) Open(path string) (*domain.Document, error) {
	if path == "" {
		return &domain.Document{}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := s.fs.Stat(abs)
	switch {
	case os.IsNotExist(err):
		log.Printf("Opening new document %s", abs)
		s.publish(eventbus.DocumentOpenedEvent{Path: abs, IsNew: true})
		return &domain.Document{Path: abs}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	case info.IsDir():
		return nil, fmt.Errorf("%s is a directory", abs)
	}

	data, err := afero.ReadFile(s.fs, abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}

	log.Printf("Opened %s (%d bytes)", abs, len(data))
	s.publish(eventbus.DocumentOpenedEvent{Path: abs})
	return &domain.Document{
		Path:     abs,
		Contents: normalizeNewlines(string(data)),
	}, nil
}

// Save writes the document to its path and clears the dirty flag.
func (s *Store) Save(doc *domain.Document) error {
	if doc.Path == "" {
		return ErrNoPath
	}
	if err := s.fs.MkdirAll(filepath.Dir(doc.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", doc.Path, err)
	}
	if err := afero.WriteFile(s.fs, doc.Path, []byte(doc.Contents), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}

	doc.Dirty = false
	log.Printf("Saved %s (%d bytes)", doc.Path, len(doc.Contents))
	s.publish(eventbus.DocumentSavedEvent{Path: doc.Path, Bytes: len(doc.Contents)})
	return nil
}

func (s *Store) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// normalizeNewlines converts CRLF and lone CR line endings to LF so offsets
// count one rune per line break.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
