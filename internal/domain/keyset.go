package domain

import "sort"

// KeySet is a set of Zotero item keys. Keys are opaque strings assigned by
// Zotero; membership is all that matters, ordering never does.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given keys, collapsing duplicates.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether key is a member of the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// Diff returns the keys present in s but absent from other.
func (s KeySet) Diff(other KeySet) KeySet {
	out := make(KeySet)
	for k := range s {
		if !other.Contains(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Sorted returns the keys in lexicographic order. Ordering has no semantic
// effect; it keeps batch output reproducible.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
