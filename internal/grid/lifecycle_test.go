package grid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/atomicstack/tile-grid-control/internal/tile"
)

// fakeRenderer measures every tile at a fixed width and records releases.
type fakeRenderer struct {
	width    int
	released []string
}

func (r *fakeRenderer) Measure(t tile.Tile) int { return r.width }

func (r *fakeRenderer) Release(t tile.Tile) {
	r.released = append(r.released, t.ID)
}

func newCoordinator(width, gap int, renderWidth int) (*Coordinator, *Navigator, *Metrics, *fakeRenderer) {
	collection := NewCollection()
	metrics := NewMetrics()
	nav := NewNavigator(collection.Len)
	renderer := &fakeRenderer{width: renderWidth}
	coord := NewCoordinator(collection, metrics, nav, renderer, gap)
	coord.SetContainerWidth(width)
	return coord, nav, metrics, renderer
}

func TestCoordinatorAddMeasuresAndFocuses(t *testing.T) {
	coord, nav, metrics, _ := newCoordinator(1000, 16, 200)
	entry, err := coord.Add(tile.Spec{ID: "a", Title: "Alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Width() != 200 {
		t.Fatalf("expected measured width 200, got %d", entry.Width())
	}
	if metrics.Columns() != 4 {
		t.Fatalf("expected 4 columns, got %d", metrics.Columns())
	}
	if nav.FocusedIndex() != 0 {
		t.Fatalf("expected focus at 0, got %d", nav.FocusedIndex())
	}
}

func TestCoordinatorAddDuplicateLeavesStateIntact(t *testing.T) {
	coord, nav, _, _ := newCoordinator(1000, 16, 200)
	if _, err := coord.Add(tile.Spec{ID: "a", Title: "Alpha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := coord.Add(tile.Spec{ID: "a", Title: "Alpha again"})
	var dupErr *DuplicateIDError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if nav.FocusedIndex() != 0 {
		t.Fatalf("focus should be untouched by a failed add, got %d", nav.FocusedIndex())
	}
}

// Walks the full lifecycle of a nine tile grid in a 1000 cell container:
// four columns, focus stepping a full row per vertical move, clamping on the
// last row, and returning to the empty state on clear.
func TestCoordinatorLifecycleScenario(t *testing.T) {
	coord, nav, metrics, renderer := newCoordinator(1000, 16, 200)
	for i := 0; i < 9; i++ {
		spec := tile.Spec{ID: fmt.Sprintf("tile-%d", i), Title: fmt.Sprintf("Tile %d", i)}
		if _, err := coord.Add(spec); err != nil {
			t.Fatalf("add %d: unexpected error: %v", i, err)
		}
	}
	if metrics.Columns() != 4 {
		t.Fatalf("expected 4 columns, got %d", metrics.Columns())
	}
	if nav.FocusedIndex() != 0 {
		t.Fatalf("expected focus at 0 after adds, got %d", nav.FocusedIndex())
	}

	for step, want := range []int{4, 8, 8} {
		cols := coord.RecomputeMetrics()
		nav.Move(DirDown.Delta(cols))
		if nav.FocusedIndex() != want {
			t.Fatalf("down %d: expected index %d, got %d", step+1, want, nav.FocusedIndex())
		}
	}

	coord.Clear()
	if nav.FocusedIndex() != -1 {
		t.Fatalf("expected no focus after clear, got %d", nav.FocusedIndex())
	}
	if len(renderer.released) != 9 {
		t.Fatalf("expected 9 releases, got %d", len(renderer.released))
	}
}

func TestCoordinatorClearKeepsColumnCount(t *testing.T) {
	coord, _, metrics, _ := newCoordinator(1000, 16, 200)
	if _, err := coord.Add(tile.Spec{ID: "a", Title: "Alpha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := metrics.Columns()
	coord.Clear()
	if metrics.Columns() != before {
		t.Fatalf("expected column count %d to survive clear, got %d", before, metrics.Columns())
	}
}

func TestCoordinatorResizeRecomputesColumns(t *testing.T) {
	coord, _, metrics, _ := newCoordinator(1000, 16, 200)
	if _, err := coord.Add(tile.Spec{ID: "a", Title: "Alpha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coord.SetContainerWidth(432)
	if metrics.Columns() != 2 {
		t.Fatalf("expected 2 columns after shrink, got %d", metrics.Columns())
	}
	coord.SetContainerWidth(0)
	if metrics.Columns() != 1 {
		t.Fatalf("expected 1 column at zero width, got %d", metrics.Columns())
	}
}
