package grid

import "github.com/atomicstack/tile-grid-control/internal/tile"

// Renderer is the visual collaborator for the lifecycle: it measures a
// tile's rendered width and releases visual resources when a tile is
// destroyed.
type Renderer interface {
	Measure(t tile.Tile) int
	Release(t tile.Tile)
}

// Coordinator owns tile add/clear operations. After every structural change
// it recomputes the grid metrics and re-validates the navigator, so the
// collection length and the focused index are never observed inconsistent.
type Coordinator struct {
	collection     *Collection
	metrics        *Metrics
	navigator      *Navigator
	renderer       Renderer
	containerWidth int
	gap            int
}

// NewCoordinator wires the collection, metrics, and navigator together.
func NewCoordinator(collection *Collection, metrics *Metrics, navigator *Navigator, renderer Renderer, gap int) *Coordinator {
	if gap < 0 {
		gap = 0
	}
	return &Coordinator{
		collection: collection,
		metrics:    metrics,
		navigator:  navigator,
		renderer:   renderer,
		gap:        gap,
	}
}

// SetContainerWidth records the available grid width and refreshes the
// column count.
func (c *Coordinator) SetContainerWidth(width int) {
	c.containerWidth = width
	c.RecomputeMetrics()
}

// Add constructs a tile from the spec, appends it, and re-validates metrics
// and focus. The navigator reset runs against the length that already
// includes the new entry.
func (c *Coordinator) Add(spec tile.Spec) (*Entry, error) {
	entry := &Entry{Tile: tile.New(spec)}
	if err := c.collection.Append(entry); err != nil {
		return nil, err
	}
	if c.renderer != nil {
		entry.width = c.renderer.Measure(entry.Tile)
	}
	c.RecomputeMetrics()
	c.navigator.RegisterAll(c.collection.Len())
	return entry, nil
}

// Clear releases every tile's visual resources, empties the collection, and
// moves the navigator to its empty state.
func (c *Coordinator) Clear() {
	if c.renderer != nil {
		for _, entry := range c.collection.Entries() {
			c.renderer.Release(entry.Tile)
		}
	}
	c.collection.RemoveAll()
	c.RecomputeMetrics()
	c.navigator.RegisterAll(0)
}

// RecomputeMetrics refreshes the column count from the first entry's
// measured width. On an empty collection the previous column count is kept.
func (c *Coordinator) RecomputeMetrics() int {
	if c.collection.Len() == 0 {
		return c.metrics.Columns()
	}
	sample, err := c.collection.At(0)
	if err != nil {
		return c.metrics.Columns()
	}
	return c.metrics.Recompute(c.containerWidth, sample.Width(), c.gap)
}
