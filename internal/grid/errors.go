package grid

import "fmt"

// DuplicateIDError reports an attempt to register a tile id that is already
// present in the collection.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate tile id %q", e.ID)
}

// OutOfRangeError reports an index access outside the collection bounds.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}
