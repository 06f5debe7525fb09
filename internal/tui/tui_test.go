package tui

import (
	"strings"
	"testing"

	"github.com/pcouy/inha-downloader/internal/download"
)

func TestProgressEventsReachLogs(t *testing.T) {
	m := NewModel()

	m.sendEvent(download.ProgressEvent{
		Message: "Found album: Recueil de dessins (3 pages)",
		Level:   download.LevelInfo,
	})

	msg := m.listenForEvents()()
	pm, ok := msg.(ProgressMsg)
	if !ok {
		t.Fatalf("listener returned %T, want ProgressMsg", msg)
	}

	updated, cmd := m.Update(pm)
	m = updated.(Model)

	if len(m.logs) != 1 {
		t.Fatalf("logs = %+v, want one entry", m.logs)
	}
	if m.logs[0].Message != "Found album: Recueil de dessins (3 pages)" {
		t.Errorf("log message = %q", m.logs[0].Message)
	}
	if !strings.Contains(m.renderLogs(), "Found album") {
		t.Error("rendered log tail should include the event message")
	}
	// The handler must re-arm the listener or later events are lost.
	if cmd == nil {
		t.Error("ProgressMsg handler returned no command")
	}
}

func TestProgressEvents_VerboseFiltered(t *testing.T) {
	m := NewModel()

	m.sendEvent(download.ProgressEvent{Message: "Fetching album 42", Level: download.LevelVerbose})
	updated, _ := m.Update(m.listenForEvents()().(ProgressMsg))
	m = updated.(Model)
	if len(m.logs) != 0 {
		t.Fatalf("verbose event should be filtered, logs = %+v", m.logs)
	}

	m.verbose = true
	m.sendEvent(download.ProgressEvent{Message: "Fetching album 42", Level: download.LevelVerbose})
	updated, _ = m.Update(m.listenForEvents()().(ProgressMsg))
	m = updated.(Model)
	if len(m.logs) != 1 {
		t.Fatalf("verbose mode should keep the event, logs = %+v", m.logs)
	}
}

func TestProgressEvents_LogTailCapped(t *testing.T) {
	m := NewModel()

	for i := 0; i < 15; i++ {
		m.sendEvent(download.ProgressEvent{Message: "line", Level: download.LevelInfo})
		updated, _ := m.Update(m.listenForEvents()().(ProgressMsg))
		m = updated.(Model)
	}

	if len(m.logs) != 10 {
		t.Errorf("log tail length = %d, want 10", len(m.logs))
	}
}

func TestSendEvent_DoesNotBlockWhenBufferFull(t *testing.T) {
	m := NewModel()

	// Overfill the buffer with nothing draining it; the sends must all
	// return instead of stalling the download loop.
	for i := 0; i < cap(m.events)+5; i++ {
		m.sendEvent(download.ProgressEvent{Message: "x", Level: download.LevelInfo})
	}

	if len(m.events) != cap(m.events) {
		t.Errorf("buffered events = %d, want %d", len(m.events), cap(m.events))
	}
}
