package set

import "strings"

// Key is the normalised name elements are identified by.
type Key string

// KeyOf normalises a string into the key space.
func KeyOf(name string) Key {
	return Key(strings.TrimSpace(name))
}

// Keys normalises every name.
func Keys(names ...string) []Key {
	out := make([]Key, 0, len(names))
	for _, name := range names {
		out = append(out, KeyOf(name))
	}
	return out
}

// Item is implemented by every element stored in a Set.
type Item interface {
	Equal(other any) bool
}

// Keyer is implemented by elements that can be removed by name.
type Keyer interface {
	Key() Key
}

// Key implements Keyer so a Set[Key] stores plain names.
func (k Key) Key() Key { return k }

func (k Key) String() string { return string(k) }

// Equal matches another Key, a string normalising to k, or any Keyer with the
// same key. The empty key never matches.
func (k Key) Equal(other any) bool {
	if k == "" {
		return false
	}
	switch v := other.(type) {
	case Key:
		return KeyOf(string(v)) == k
	case string:
		return v != "" && KeyOf(v) == k
	case Keyer:
		return v.Key() == k
	default:
		return false
	}
}
