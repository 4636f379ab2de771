package browse

// Selection tracks which single record, if any, is open in a detail view.
// At most one record is selected at a time; selecting a new record
// implicitly deselects the previous one. The zero value is Unselected.
type Selection[T any] struct {
	current  T
	selected bool
}

// Select sets the current record. Selecting the already-selected record
// is a no-op state change.
func (s *Selection[T]) Select(rec T) {
	s.current = rec
	s.selected = true
}

// Clear returns the selection to the unselected state. Clearing an
// unselected selection is a no-op.
func (s *Selection[T]) Clear() {
	var zero T
	s.current = zero
	s.selected = false
}

// Get returns the selected record and whether one is selected.
func (s *Selection[T]) Get() (T, bool) {
	return s.current, s.selected
}

// IsSelected reports whether a record is currently selected.
func (s *Selection[T]) IsSelected() bool {
	return s.selected
}
