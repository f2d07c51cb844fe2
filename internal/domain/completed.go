package domain

import "sort"

// CompletedSet is the set of exercise IDs the user has marked done.
// IDs are globally unique across the plan, so membership is not
// namespaced per day.
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from a list of IDs. Empty IDs are dropped.
func NewCompletedSet(ids ...string) CompletedSet {
	s := make(CompletedSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s CompletedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle adds id if absent or removes it if present, and returns the new
// membership.
func (s CompletedSet) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s CompletedSet) Len() int { return len(s) }

// IDs returns the members in sorted order.
func (s CompletedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s CompletedSet) Clone() CompletedSet {
	c := make(CompletedSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}
