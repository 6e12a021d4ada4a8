package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/backend"
	"github.com/atomicstack/tile-grid-control/internal/logging"
	"github.com/atomicstack/tile-grid-control/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a freshly loaded manifest. The whole grid is
// repopulated, so focus returns to the first tile.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		logging.Error(evt.Err)
		events.Grid.ManifestError(evt.Err)
		return
	}
	if evt.Manifest == nil {
		return
	}
	m.errMsg = ""
	m.full = evt.Manifest.Tiles
	if evt.Manifest.Title != "" {
		m.manifestTitle = evt.Manifest.Title
	}
	events.Grid.ManifestReload(m.manifestPath, len(m.full))
	m.populate(m.filteredSpecs())
	if m.verbose {
		m.setInfo("Manifest reloaded")
	}
}
