package selection

import (
	"sort"
	"strings"
)

// Set is a selection value: either an explicit set of keys or All.
//
// All is intensional: it means "every selectable key of the current
// collection", so it stays correct when the collection is rebuilt. Code that
// consumes a Set must check IsAll before enumerating Keys.
//
// Sets are immutable values. With and Without return modified copies.
// The zero Set is empty.
type Set struct {
	all  bool
	keys map[string]struct{}
}

// All returns the sentinel "everything selectable is selected" value.
func All() Set {
	return Set{all: true}
}

// Empty returns an explicit empty set.
func Empty() Set {
	return Set{}
}

// NewSet returns an explicit set containing keys.
func NewSet(keys ...string) Set {
	if len(keys) == 0 {
		return Set{}
	}
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return Set{keys: m}
}

// IsAll reports whether s is the All sentinel.
func (s Set) IsAll() bool {
	return s.all
}

// Has reports explicit membership. All has every key.
func (s Set) Has(key string) bool {
	if s.all {
		return true
	}
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of explicit keys, or -1 for All.
func (s Set) Len() int {
	if s.all {
		return -1
	}
	return len(s.keys)
}

// IsEmpty reports whether s is an explicit set with no keys.
func (s Set) IsEmpty() bool {
	return !s.all && len(s.keys) == 0
}

// Keys returns the explicit keys sorted, or nil for All.
func (s Set) Keys() []string {
	if s.all {
		return nil
	}
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// With returns a copy of s that also contains key. All is returned unchanged.
func (s Set) With(key string) Set {
	if s.all {
		return s
	}
	m := make(map[string]struct{}, len(s.keys)+1)
	for k := range s.keys {
		m[k] = struct{}{}
	}
	m[key] = struct{}{}
	return Set{keys: m}
}

// Without returns a copy of s without key. All cannot be narrowed without a
// collection; resolve it first.
func (s Set) Without(key string) Set {
	if s.all {
		return s
	}
	if _, ok := s.keys[key]; !ok {
		return s
	}
	m := make(map[string]struct{}, len(s.keys))
	for k := range s.keys {
		if k != key {
			m[k] = struct{}{}
		}
	}
	return Set{keys: m}
}

// Equal reports whether s and o hold the same value.
func (s Set) Equal(o Set) bool {
	if s.all || o.all {
		return s.all == o.all
	}
	if len(s.keys) != len(o.keys) {
		return false
	}
	for k := range s.keys {
		if _, ok := o.keys[k]; !ok {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	if s.all {
		return "all"
	}
	return "{" + strings.Join(s.Keys(), ",") + "}"
}
