package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tile-grid-control/internal/tile"
	"github.com/atomicstack/tile-grid-control/internal/ui/command"
)

// testManifest yields nine command-less tiles, which lay out as a 4x3 grid
// at width 96 with the default gap of 2.
func testManifest(n int) *tile.Manifest {
	specs := make([]tile.Spec, 0, n)
	for i := 0; i < n; i++ {
		specs = append(specs, tile.Spec{
			ID:    fmt.Sprintf("tile-%d", i),
			Title: fmt.Sprintf("Tile %d", i),
		})
	}
	return &tile.Manifest{Title: "Dev", Tiles: specs}
}

func newTestModel(t *testing.T, manifest *tile.Manifest, opts Options) *Model {
	t.Helper()
	opts.Manifest = manifest
	if opts.Width == 0 {
		opts.Width = 96
	}
	if opts.Gap == 0 {
		opts.Gap = 2
	}
	return NewModel(opts)
}

func TestNewModelPopulatesGrid(t *testing.T) {
	m := newTestModel(t, testManifest(9), Options{})
	if m.collection.Len() != 9 {
		t.Fatalf("expected 9 tiles, got %d", m.collection.Len())
	}
	if m.metrics.Columns() != 4 {
		t.Fatalf("expected 4 columns at width 96, got %d", m.metrics.Columns())
	}
	if m.navigator.FocusedIndex() != 0 {
		t.Fatalf("expected focus on first tile, got %d", m.navigator.FocusedIndex())
	}
	if m.Selected() != nil {
		t.Fatalf("expected no selection on startup")
	}
}

func TestNewModelReportsDuplicateIDs(t *testing.T) {
	manifest := &tile.Manifest{Title: "Dev", Tiles: []tile.Spec{
		{ID: "dup", Title: "First"},
		{ID: "dup", Title: "Second"},
	}}
	m := newTestModel(t, manifest, Options{})
	if m.collection.Len() != 1 {
		t.Fatalf("expected only the first duplicate to survive, got %d", m.collection.Len())
	}
	if !strings.Contains(m.errMsg, "duplicate tile id") {
		t.Fatalf("expected duplicate id error, got %q", m.errMsg)
	}
}

func TestNewModelEmptyManifest(t *testing.T) {
	m := newTestModel(t, &tile.Manifest{Title: "Dev"}, Options{})
	if m.collection.Len() != 0 {
		t.Fatalf("expected empty grid, got %d", m.collection.Len())
	}
	if m.navigator.FocusedIndex() != -1 {
		t.Fatalf("expected no focus, got %d", m.navigator.FocusedIndex())
	}
}

func TestWindowSizeRecomputesColumns(t *testing.T) {
	m := NewModel(Options{Manifest: testManifest(9), Gap: 2})
	m.Update(tea.WindowSizeMsg{Width: 48, Height: 30})
	if m.metrics.Columns() != 2 {
		t.Fatalf("expected 2 columns at width 48, got %d", m.metrics.Columns())
	}
	m.Update(tea.WindowSizeMsg{Width: 96, Height: 30})
	if m.metrics.Columns() != 4 {
		t.Fatalf("expected 4 columns at width 96, got %d", m.metrics.Columns())
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	m := newTestModel(t, testManifest(9), Options{Height: 20})
	m.Update(tea.WindowSizeMsg{Width: 48, Height: 5})
	if m.width != 96 || m.height != 20 {
		t.Fatalf("expected fixed 96x20, got %dx%d", m.width, m.height)
	}
	if m.metrics.Columns() != 4 {
		t.Fatalf("expected 4 columns, got %d", m.metrics.Columns())
	}
}

func TestActivationResultErrorStaysOpen(t *testing.T) {
	m := newTestModel(t, testManifest(1), Options{})
	cmd := m.handleActivationResultMsg(command.Result{Label: "Tile 0", Err: errors.New("exec failed")})
	if cmd != nil {
		t.Fatalf("expected no quit on activation error")
	}
	if m.errMsg != "exec failed" {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
}

func TestActivationResultSuccessQuits(t *testing.T) {
	m := newTestModel(t, testManifest(1), Options{})
	cmd := m.handleActivationResultMsg(command.Result{Label: "Tile 0"})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}
