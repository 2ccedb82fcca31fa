package set

import "iter"

// Set is an ordered collection rejecting elements that are structurally equal
// to one already present. The zero value is ready to use. Sets are not safe
// for concurrent mutation.
type Set[T Item] struct {
	items []T
}

// New returns a set seeded with items in argument order.
func New[T Item](items ...T) *Set[T] {
	s := &Set[T]{}
	s.Add(items...)
	return s
}

// Add appends every item not already present. Duplicates are ignored. Key
// elements are normalised with KeyOf first; empty keys are dropped.
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		item, ok := normalize(item)
		if !ok || s.contains(item) {
			continue
		}
		s.items = append(s.items, item)
	}
}

// Remove deletes every element exposing a Key contained in names. Elements
// that do not implement Keyer are kept.
func (s *Set[T]) Remove(names ...string) {
	if len(names) == 0 || len(s.items) == 0 {
		return
	}
	drop := make(map[Key]struct{}, len(names))
	for _, name := range names {
		drop[KeyOf(name)] = struct{}{}
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if keyer, ok := any(item).(Keyer); ok {
			if _, found := drop[keyer.Key()]; found {
				continue
			}
		}
		kept = append(kept, item)
	}
	clear(s.items[len(kept):])
	s.items = kept
}

// FindByName returns the first element equal to name.
func (s *Set[T]) FindByName(name string) (T, bool) {
	for _, item := range s.items {
		if item.Equal(KeyOf(name)) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindByNames returns every element equal to one of names, in set order.
func (s *Set[T]) FindByNames(names ...string) []T {
	keys := Keys(names...)
	var out []T
	for _, item := range s.items {
		for _, key := range keys {
			if item.Equal(key) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Index reports the position of the element equal to name, or -1.
func (s *Set[T]) Index(name string) int {
	for idx, item := range s.items {
		if item.Equal(KeyOf(name)) {
			return idx
		}
	}
	return -1
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool { return s.Len() == 0 }

// Items returns a copy of the elements in order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s.items...)
}

// All iterates the elements in order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Plus returns a new set holding this set's elements followed by items, with
// later duplicates dropped. The receiver is not modified.
func (s *Set[T]) Plus(items ...T) *Set[T] {
	out := s.Clone()
	out.Add(items...)
	return out
}

// Clone copies the backing slice; elements themselves are shared.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return &Set[T]{}
	}
	return &Set[T]{items: append([]T(nil), s.items...)}
}

func (s *Set[T]) contains(item T) bool {
	for _, existing := range s.items {
		if existing.Equal(item) {
			return true
		}
	}
	return false
}

func normalize[T Item](item T) (T, bool) {
	key, ok := any(item).(Key)
	if !ok {
		return item, true
	}
	key = KeyOf(string(key))
	if key == "" {
		return item, false
	}
	return any(key).(T), true
}
