package grid

import "github.com/atomicstack/tile-grid-control/internal/tile"

// Entry pairs a tile with its lazily measured visual width. Entries are
// created by the Coordinator and destroyed on Clear; an entry must not be
// referenced after the collection that owns it has been emptied.
type Entry struct {
	Tile  tile.Tile
	width int
}

// Width returns the measured visual width in cells, or 0 when the tile has
// not been rendered yet.
func (e *Entry) Width() int {
	return e.width
}

// Collection is an ordered sequence of tile entries. Insertion order defines
// the grid's row-major layout order: index i sits at row i/cols, column
// i%cols.
type Collection struct {
	entries []*Entry
	ids     map[string]struct{}
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{ids: make(map[string]struct{})}
}

// Append adds an entry to the end of the sequence. Appending an id held by a
// live entry fails with DuplicateIDError; uniqueness is only enforced among
// live entries, never against ids already freed by RemoveAll.
func (c *Collection) Append(e *Entry) error {
	if _, ok := c.ids[e.Tile.ID]; ok {
		return &DuplicateIDError{ID: e.Tile.ID}
	}
	c.ids[e.Tile.ID] = struct{}{}
	c.entries = append(c.entries, e)
	return nil
}

// RemoveAll empties the sequence. Previously returned entries are considered
// destroyed and their ids become available for reuse on the next Append.
func (c *Collection) RemoveAll() {
	c.entries = nil
	c.ids = make(map[string]struct{})
}

// Len reports the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// At returns the entry at the given index, or OutOfRangeError when the index
// is outside [0, Len).
func (c *Collection) At(index int) (*Entry, error) {
	if index < 0 || index >= len(c.entries) {
		return nil, &OutOfRangeError{Index: index, Length: len(c.entries)}
	}
	return c.entries[index], nil
}

// Entries returns a shallow copy of the entry sequence in display order.
func (c *Collection) Entries() []*Entry {
	dup := make([]*Entry, len(c.entries))
	copy(dup, c.entries)
	return dup
}
