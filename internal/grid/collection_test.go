package grid

import (
	"errors"
	"testing"

	"github.com/atomicstack/tile-grid-control/internal/tile"
)

func newTile(id, title string) *Entry {
	return &Entry{Tile: tile.New(tile.Spec{ID: id, Title: title})}
}

func TestCollectionAppendAndAt(t *testing.T) {
	c := NewCollection()
	if err := c.Append(newTile("a", "Alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Append(newTile("b", "Beta")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected length 2, got %d", c.Len())
	}
	entry, err := c.At(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Tile.Title != "Beta" {
		t.Fatalf("expected Beta at index 1, got %q", entry.Tile.Title)
	}
}

func TestCollectionRejectsDuplicateID(t *testing.T) {
	c := NewCollection()
	if err := c.Append(newTile("dup", "First")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := c.Append(newTile("dup", "Second"))
	var dupErr *DuplicateIDError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dupErr.ID != "dup" {
		t.Fatalf("expected id %q, got %q", "dup", dupErr.ID)
	}
	if c.Len() != 1 {
		t.Fatalf("expected length 1 after rejected append, got %d", c.Len())
	}
}

func TestCollectionAtOutOfRange(t *testing.T) {
	c := NewCollection()
	if err := c.Append(newTile("a", "Alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, idx := range []int{-1, 1, 10} {
		_, err := c.At(idx)
		var rangeErr *OutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("index %d: expected OutOfRangeError, got %v", idx, err)
		}
	}
}

func TestCollectionRemoveAllFreesIDs(t *testing.T) {
	c := NewCollection()
	if err := c.Append(newTile("a", "Alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.RemoveAll()
	if c.Len() != 0 {
		t.Fatalf("expected empty collection, got %d entries", c.Len())
	}
	if err := c.Append(newTile("a", "Alpha again")); err != nil {
		t.Fatalf("expected id to be reusable after RemoveAll, got %v", err)
	}
}

func TestCollectionEntriesReturnsCopy(t *testing.T) {
	c := NewCollection()
	if err := c.Append(newTile("a", "Alpha")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := c.Entries()
	entries[0] = nil
	fresh, err := c.At(0)
	if err != nil || fresh == nil {
		t.Fatalf("mutating the returned slice should not affect the collection")
	}
}
