// Package memo provides a dependency-keyed single-slot memoizer.
//
// A Slot caches the last computed value together with a snapshot of the
// scalar dependencies it was computed from. A read with an equal snapshot
// returns the cached value; any differing dependency discards it and
// recomputes lazily. There is no eviction beyond the one slot.
package memo

// Slot memoizes one derived value per dependency snapshot.
//
// The zero value is an empty slot.
type Slot[T any] struct {
	snapshot []float64
	value    T
	valid    bool
}

// Get returns the cached value when deps equals the stored snapshot
// element-wise, and otherwise recomputes it via compute. A compute error
// leaves the slot empty.
func (s *Slot[T]) Get(deps []float64, compute func() (T, error)) (T, error) {
	if s.valid && snapshotEqual(s.snapshot, deps) {
		return s.value, nil
	}

	s.valid = false

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	s.snapshot = append(s.snapshot[:0], deps...)
	s.value = value
	s.valid = true

	return value, nil
}

// Invalidate discards the cached value.
func (s *Slot[T]) Invalidate() {
	s.valid = false
	var zero T
	s.value = zero
}

func snapshotEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
