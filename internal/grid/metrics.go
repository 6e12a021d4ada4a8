package grid

// Metrics derives the number of grid columns from live layout measurements.
// The column count is a cache over the measurement inputs that produced it;
// callers recompute it before every navigation decision so a resize or
// reflow never leaves a stale value in play.
type Metrics struct {
	columns int
}

// NewMetrics returns metrics with a single column until the first recompute.
func NewMetrics() *Metrics {
	return &Metrics{columns: 1}
}

// Recompute derives the columns that physically fit per row. Fractional
// results truncate. A non-positive sample width (tile not yet laid out)
// yields a single column, as does any container too narrow for one tile.
func (m *Metrics) Recompute(containerWidth, sampleItemWidth, gap int) int {
	if sampleItemWidth <= 0 {
		m.columns = 1
		return 1
	}
	if gap < 0 {
		gap = 0
	}
	cols := containerWidth / (sampleItemWidth + gap)
	if cols < 1 {
		cols = 1
	}
	m.columns = cols
	return cols
}

// Columns returns the most recently computed column count, always >= 1.
func (m *Metrics) Columns() int {
	if m.columns < 1 {
		return 1
	}
	return m.columns
}
