package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/grid"
	"github.com/atomicstack/tile-grid-control/internal/logging"
	"github.com/atomicstack/tile-grid-control/internal/logging/events"
	"github.com/atomicstack/tile-grid-control/internal/ui/command"
)

// SetInputActive toggles key handling. While inactive only ctrl+c is
// honoured; the host uses this to suspend navigation during teardown.
func (m *Model) SetInputActive(active bool) {
	m.inputActive = active
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !m.inputActive {
		if keyMsg.String() == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.filter != "" {
			m.setFilter("")
			return nil
		}
		return tea.Quit
	case "enter":
		return m.activateFocused()
	case "up":
		m.moveFocus(grid.DirUp)
		return nil
	case "down":
		m.moveFocus(grid.DirDown)
		return nil
	case "left":
		m.moveFocus(grid.DirLeft)
		return nil
	case "right":
		m.moveFocus(grid.DirRight)
		return nil
	case "ctrl+u":
		m.setFilter("")
		return nil
	case "pgup":
		m.pageFocus(-1)
		return nil
	case "pgdown":
		m.pageFocus(1)
		return nil
	case "home":
		m.jumpFocus(0)
		return nil
	case "end":
		m.jumpFocus(m.collection.Len() - 1)
		return nil
	}
	// Vim-style aliases share the keyboard with filter typing: they act as
	// bindings only while no filter text is entered, like space.
	if m.filter == "" {
		switch keyMsg.String() {
		case "q":
			return tea.Quit
		case "h":
			m.moveFocus(grid.DirLeft)
			return nil
		case "j":
			m.moveFocus(grid.DirDown)
			return nil
		case "k":
			m.moveFocus(grid.DirUp)
			return nil
		case "l":
			m.moveFocus(grid.DirRight)
			return nil
		}
	}
	switch keyMsg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if runes := []rune(m.filter); len(runes) > 0 {
			m.setFilter(string(runes[:len(runes)-1]))
		}
	case tea.KeySpace:
		// Space activates when no filter is being typed; otherwise it is
		// part of the filter text.
		if m.filter == "" {
			return m.activateFocused()
		}
		m.setFilter(m.filter + " ")
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) == 0 {
			return nil
		}
		for _, r := range keyMsg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.setFilter(m.filter + string(keyMsg.Runes))
	}
	return nil
}

// moveFocus maps a direction onto an index delta. Columns are recomputed
// from current measurements immediately before the move so a mid-session
// resize or reflow never steers the focus with stale geometry.
func (m *Model) moveFocus(dir grid.Direction) {
	if m.collection.Len() == 0 {
		return
	}
	cols := m.coordinator.RecomputeMetrics()
	m.navigator.Move(dir.Delta(cols))
}

// pageFocus moves a full page of rows up or down. sign is -1 or 1.
func (m *Model) pageFocus(sign int) {
	if m.collection.Len() == 0 {
		return
	}
	cols := m.coordinator.RecomputeMetrics()
	rows := m.visibleRows()
	if rows < 1 {
		rows = 1
	}
	m.navigator.Move(sign * rows * cols)
}

// jumpFocus moves focus to an absolute index. The navigator clamps, so the
// first and last tile are reachable by passing 0 and Len()-1.
func (m *Model) jumpFocus(index int) {
	if m.collection.Len() == 0 {
		return
	}
	m.coordinator.RecomputeMetrics()
	m.navigator.Move(index - m.navigator.FocusedIndex())
}

func (m *Model) activateFocused() tea.Cmd {
	idx := m.navigator.FocusedIndex()
	if idx < 0 {
		return nil
	}
	entry, err := m.collection.At(idx)
	if err != nil {
		logging.Error(err)
		return nil
	}
	t := entry.Tile
	events.UI.Activate(t.ID, t.Title)
	if len(t.Command) == 0 {
		m.selected = &t
		return tea.Quit
	}
	return m.bus.Execute(command.Request{ID: t.ID, Label: t.Title, Argv: t.Command})
}

func (m *Model) setFilter(query string) {
	if m.filter == query {
		return
	}
	m.filter = query
	specs := m.filteredSpecs()
	if query == "" {
		events.Filter.Cleared()
	} else {
		events.Filter.Changed(query, len(specs))
	}
	m.errMsg = ""
	m.forceClearInfo()
	m.populate(specs)
}
