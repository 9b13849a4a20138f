package commands

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"dosedit/internal/document"
	"dosedit/internal/domain"
	"dosedit/internal/eventbus"
	"dosedit/internal/search"
	"dosedit/internal/ui/editor"
)

type brokenClipboard struct{}

func (brokenClipboard) ReadAll() (string, error) { return "", errors.New("no clipboard tool") }
func (brokenClipboard) WriteAll(string) error    { return errors.New("no clipboard tool") }

type fixture struct {
	exec *Executor
	ed   *editor.Model
	doc  *domain.Document
	fs   afero.Fs
	bus  eventbus.EventBus
	clip Clipboard
}

func newFixture(t *testing.T, text string) *fixture {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	fs := afero.NewMemMapFs()
	ed := editor.New()
	ed.SetValue(text)
	doc := &domain.Document{Path: "/docs/notes.txt", Contents: text}
	clip := &MemoryClipboard{}

	return &fixture{
		exec: NewExecutor(CommandContext{
			Engine:    search.New(),
			Editor:    ed,
			Document:  doc,
			Store:     document.NewStore(fs, bus),
			Bus:       bus,
			Clipboard: clip,
		}),
		ed:   ed,
		doc:  doc,
		fs:   fs,
		bus:  bus,
		clip: clip,
	}
}

func (f *fixture) capture(typ eventbus.EventType) <-chan eventbus.DomainEvent {
	ch := make(chan eventbus.DomainEvent, 10)
	f.bus.Subscribe(typ, func(e eventbus.DomainEvent) { ch <- e })
	return ch
}

func receive(t *testing.T, ch <-chan eventbus.DomainEvent) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("event not published")
		return nil
	}
}

func statusOf(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(StatusMsg)
	require.True(t, ok)
	return msg.Text
}

func TestSearchSelectsNextMatch(t *testing.T) {
	f := newFixture(t, "the cat sat on the mat")
	events := f.capture(eventbus.EventSearchCompleted)

	cmd := f.exec.ExecuteSearch(search.Find("at"))
	require.Nil(t, cmd)
	require.Equal(t, search.Selection{Start: 5, End: 7}, f.ed.Selection())
	require.False(t, f.doc.Dirty)

	e := receive(t, events).(eventbus.SearchCompletedEvent)
	require.True(t, e.Found)
	require.Equal(t, 5, e.Index)

	f.exec.ExecuteSearch(search.Find("at"))
	require.Equal(t, search.Selection{Start: 9, End: 11}, f.ed.Selection())
}

func TestSearchNotFound(t *testing.T) {
	f := newFixture(t, "hello")
	f.ed.SetSelection(search.Selection{Start: 1, End: 3})
	events := f.capture(eventbus.EventSearchCompleted)

	require.Equal(t, "Match not found", statusOf(t, f.exec.ExecuteSearch(search.Find("xyz"))))
	require.Equal(t, search.Selection{Start: 1, End: 3}, f.ed.Selection())
	require.False(t, receive(t, events).(eventbus.SearchCompletedEvent).Found)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	f := newFixture(t, "hello")
	require.Equal(t, "Enter the text to find", statusOf(t, f.exec.ExecuteSearch(search.Find(""))))
}

func TestReplaceUpdatesEditorAndDocument(t *testing.T) {
	f := newFixture(t, "one two one")
	events := f.capture(eventbus.EventTextReplaced)

	status := statusOf(t, f.exec.ExecuteSearch(search.Find("one").WithReplacement("1")))
	require.Equal(t, "Replaced 1 occurrence(s)", status)
	require.Equal(t, "1 two one", f.ed.Value())
	require.Equal(t, search.Selection{Start: 0, End: 1}, f.ed.Selection())
	require.Equal(t, "1 two one", f.doc.Contents)
	require.True(t, f.doc.Dirty)

	e := receive(t, events).(eventbus.TextReplacedEvent)
	require.Equal(t, 1, e.Count)
	require.False(t, e.All)
}

func TestReplaceAll(t *testing.T) {
	f := newFixture(t, "Cat cat CAT")
	events := f.capture(eventbus.EventTextReplaced)

	q := search.Find("cat").WithReplacement("dog")
	q.ReplaceAll = true
	require.Equal(t, "Replaced 3 occurrence(s)", statusOf(t, f.exec.ExecuteSearch(q)))
	require.Equal(t, "dog dog dog", f.ed.Value())

	e := receive(t, events).(eventbus.TextReplacedEvent)
	require.Equal(t, eventbus.TextReplacedEvent{Query: "cat", ReplaceWith: "dog", Count: 3, All: true}, e)
}

func TestHighlightMarksEveryLine(t *testing.T) {
	f := newFixture(t, "foo bar\nbar foo foo")

	cmd := f.exec.ExecuteHighlight(search.Find("FOO"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(HighlightMsg)
	require.True(t, ok)
	require.Equal(t, []search.Span{
		{Node: 0, Offset: 0, Length: 3},
		{Node: 1, Offset: 4, Length: 3},
		{Node: 1, Offset: 8, Length: 3},
	}, msg.Spans)
	require.Equal(t, "foo bar\nbar foo foo", f.ed.Value())
}

func TestSaveWritesEditorText(t *testing.T) {
	f := newFixture(t, "draft")
	f.ed.SetValue("final")

	require.Equal(t, "Saved notes.txt", statusOf(t, f.exec.ExecuteSave()))
	require.False(t, f.doc.Dirty)

	data, err := afero.ReadFile(f.fs, "/docs/notes.txt")
	require.NoError(t, err)
	require.Equal(t, "final", string(data))
}

func TestSaveUntitled(t *testing.T) {
	f := newFixture(t, "text")
	f.doc.Path = ""
	require.Contains(t, statusOf(t, f.exec.ExecuteSave()), "No file name")
}

func TestSaveFailurePublishesError(t *testing.T) {
	f := newFixture(t, "text")
	events := f.capture(eventbus.EventError)
	f.exec.ctx.Store = document.NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), f.bus)

	require.Contains(t, statusOf(t, f.exec.ExecuteSave()), "Save failed")
	require.Error(t, receive(t, events).(eventbus.ErrorEvent).Err)
}

func TestCutCopyPaste(t *testing.T) {
	f := newFixture(t, "hello world")
	f.ed.SetSelection(search.Selection{Start: 0, End: 5})

	require.Nil(t, f.exec.ExecuteCopy())
	text, _ := f.clip.ReadAll()
	require.Equal(t, "hello", text)
	require.Equal(t, "hello world", f.ed.Value())

	require.Nil(t, f.exec.ExecuteCut())
	require.Equal(t, " world", f.ed.Value())
	require.True(t, f.doc.Dirty)

	f.ed.SetSelection(search.Caret(6))
	require.Nil(t, f.exec.ExecutePaste())
	require.Equal(t, " worldhello", f.ed.Value())
	require.Equal(t, " worldhello", f.doc.Contents)
}

func TestCopyWithoutSelectionIsNoop(t *testing.T) {
	f := newFixture(t, "abc")
	require.NoError(t, f.clip.WriteAll("keep"))

	require.Nil(t, f.exec.ExecuteCopy())
	text, _ := f.clip.ReadAll()
	require.Equal(t, "keep", text)
}

func TestClipboardFailure(t *testing.T) {
	f := newFixture(t, "abc")
	f.exec.ctx.Clipboard = brokenClipboard{}
	f.ed.SetSelection(search.Selection{Start: 0, End: 1})

	require.Contains(t, statusOf(t, f.exec.ExecuteCut()), "Clipboard unavailable")
	require.Equal(t, "abc", f.ed.Value())
	require.Contains(t, statusOf(t, f.exec.ExecutePaste()), "Clipboard unavailable")
}

func TestRememberSettingsPublishesConfigChange(t *testing.T) {
	f := newFixture(t, "")
	events := f.capture(eventbus.EventConfigChanged)

	settings := domain.SearchSettings{MatchCase: true}
	require.Nil(t, f.exec.ExecuteRememberSettings(settings))
	require.Equal(t, settings, receive(t, events).(eventbus.ConfigChangedEvent).Search)
}
