package grid

// Listener receives focus transitions. Indices are -1 when nothing is
// focused. The listener fires on every RegisterAll and every Move performed
// while something is focused, even when the index did not change, so visual
// focus state and scroll position are resynchronised after any structural
// change.
type Listener func(prev, next int)

// Direction identifies one of the four arrow movements.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Delta converts the direction into an index offset for a grid with the
// given number of columns.
func (d Direction) Delta(columns int) int {
	if columns < 1 {
		columns = 1
	}
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	case DirUp:
		return -columns
	case DirDown:
		return columns
	}
	return 0
}

// Navigator holds the currently focused index over an ordered collection. It
// reads the collection length through a function supplied at construction
// and never mutates the collection itself.
type Navigator struct {
	length   func() int
	focused  int
	listener Listener
}

// NewNavigator returns a navigator with nothing focused.
func NewNavigator(length func() int) *Navigator {
	if length == nil {
		length = func() int { return 0 }
	}
	return &Navigator{length: length, focused: -1}
}

// SetListener installs the focus-change listener.
func (n *Navigator) SetListener(fn Listener) {
	n.listener = fn
}

// FocusedIndex returns the focused index, or -1 when the collection is empty.
func (n *Navigator) FocusedIndex() int {
	return n.focused
}

// RegisterAll re-validates focus after the collection has been repopulated.
// A non-empty collection always focuses the first item; focus identity is
// not preserved across structural changes.
func (n *Navigator) RegisterAll(length int) {
	prev := n.focused
	if length <= 0 {
		n.focused = -1
	} else {
		n.focused = 0
	}
	n.emit(prev, n.focused)
}

// Move shifts focus by delta, clamped to the collection bounds. Moving past
// either end stays on that end. Move is a no-op when nothing is focused.
// It reports whether the focused index changed.
func (n *Navigator) Move(delta int) bool {
	if n.focused < 0 {
		return false
	}
	total := n.length()
	if total <= 0 {
		return false
	}
	target := n.focused + delta
	if target < 0 {
		target = 0
	}
	if target > total-1 {
		target = total - 1
	}
	prev := n.focused
	n.focused = target
	n.emit(prev, target)
	return prev != target
}

func (n *Navigator) emit(prev, next int) {
	if n.listener != nil {
		n.listener(prev, next)
	}
}
