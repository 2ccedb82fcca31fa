// Package set implements the insertion-ordered, uniqueness-enforcing
// container that every collection in go-scaffold builds on. Membership is
// structural: an element matches a query when its Equal method accepts it,
// which lets column sets be searched by Key, by plain string or by element.
// Plain strings are normalised into the Key space before comparison.
package set
