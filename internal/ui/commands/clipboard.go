package commands

import "github.com/atotto/clipboard"

// Clipboard is where cut and copy put text and paste takes it from
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the text in process
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadAll() (string, error) {
	return c.text, nil
}

func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
