package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/driver"
)

func newModel(t *testing.T, files ...string) (*progressModel, chan driver.ProgressEvent) {
	t.Helper()
	events := make(chan driver.ProgressEvent, len(files))
	m, ok := NewProgressModel("formatting", files, events).(*progressModel)
	require.True(t, ok)
	return m, events
}

func TestProgressCountsEvents(t *testing.T) {
	m, _ := newModel(t, "a.json", "b.js", "c.ts")

	m.Update(eventMsg{Path: "b.js", Status: driver.StatusChanged, Done: 1, Total: 3})
	m.Update(eventMsg{Path: "a.json", Status: driver.StatusUnchanged, Done: 2, Total: 3})

	assert.Equal(t, 2, m.done)
	assert.Equal(t, 1, m.counts[driver.StatusChanged])
	assert.Equal(t, 1, m.counts[driver.StatusUnchanged])
	assert.Equal(t, "queued", m.items[2].status)

	view := m.View()
	assert.Contains(t, view, "formatting 2/3")
	assert.Contains(t, view, "changed b.js")
	assert.Contains(t, view, "1 ok, 1 changed")
}

func TestProgressIgnoresUnknownAndRepeated(t *testing.T) {
	m, _ := newModel(t, "a.json")

	m.Update(eventMsg{Path: "other.json", Status: driver.StatusFailed})
	m.Update(eventMsg{Path: "a.json", Status: driver.StatusFailed})
	m.Update(eventMsg{Path: "a.json", Status: driver.StatusChanged})

	assert.Equal(t, 1, m.done)
	assert.Equal(t, 1, m.counts[driver.StatusFailed])
	assert.Zero(t, m.counts[driver.StatusChanged])
}

func TestProgressQuitsWhenEventsClose(t *testing.T) {
	m, events := newModel(t, "a.json")
	events <- driver.ProgressEvent{Path: "a.json", Status: driver.StatusCached, Done: 1, Total: 1}
	close(events)

	listen := m.listenForEvent()
	msg := listen()
	require.IsType(t, eventMsg{}, msg)
	m.Update(msg)

	msg = listen()
	require.IsType(t, doneMsg{}, msg)
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "done: formatting 1/1")
}

func TestProgressKeepsRecentWindow(t *testing.T) {
	files := make([]string, 0, maxVisible+5)
	for i := 0; i < maxVisible+5; i++ {
		files = append(files, strings.Repeat("f", i+1)+".js")
	}
	m, _ := newModel(t, files...)
	for _, f := range files {
		m.Update(eventMsg{Path: f, Status: driver.StatusUnchanged})
	}
	assert.Len(t, m.recent, maxVisible)
	assert.Equal(t, len(files)-1, m.recent[len(m.recent)-1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "src/co...", truncate("src/components/app.js", 9))
	assert.Equal(t, "sr", truncate("src", 2))
	assert.Equal(t, "日本...", truncate("日本語のファイル.json", 7))
}

func TestEmptyViewWithoutFiles(t *testing.T) {
	m, _ := newModel(t)
	assert.Empty(t, m.View())
}
