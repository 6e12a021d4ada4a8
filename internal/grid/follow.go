package grid

// Follower keeps the focused tile visible by adjusting the viewport's row
// offset. The focused row is centered in the visible window where possible,
// clamped to the valid offset range.
type Follower struct {
	offset int
}

// Offset returns the current viewport row offset.
func (f *Follower) Offset() int {
	return f.offset
}

// Reset returns the viewport to the top.
func (f *Follower) Reset() {
	f.offset = 0
}

// Follow recenters the viewport on the focused index and returns the new
// offset. It is a no-op when nothing is focused, the collection is empty, or
// the viewport height is not yet known.
func (f *Follower) Follow(index, columns, total, visibleRows int) int {
	if index < 0 || total <= 0 || visibleRows <= 0 {
		return f.offset
	}
	if columns < 1 {
		columns = 1
	}
	rows := (total + columns - 1) / columns
	row := index / columns
	offset := row - visibleRows/2
	maxOffset := rows - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	f.offset = offset
	return offset
}
