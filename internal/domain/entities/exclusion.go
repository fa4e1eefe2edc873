package entities

import (
	"strconv"
	"strings"
)

// ExclusionSet is an insertion-ordered set of item ids the user flagged out
// of the result. The zero value is an empty set.
type ExclusionSet struct {
	ids   []int
	index map[int]struct{}
}

// NewExclusionSet creates a set holding the given ids, dropping duplicates.
func NewExclusionSet(ids ...int) *ExclusionSet {
	s := &ExclusionSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was newly added.
func (s *ExclusionSet) Add(id int) bool {
	if s.Contains(id) {
		return false
	}
	if s.index == nil {
		s.index = make(map[int]struct{})
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *ExclusionSet) Remove(id int) bool {
	if !s.Contains(id) {
		return false
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether id is in the set. A nil set is empty.
func (s *ExclusionSet) Contains(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Len returns the number of ids.
func (s *ExclusionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns a copy of the ids in insertion order.
func (s *ExclusionSet) IDs() []int {
	if s == nil {
		return []int{}
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy.
func (s *ExclusionSet) Clone() *ExclusionSet {
	return NewExclusionSet(s.IDs()...)
}

// String serializes the set as comma-separated numeric ids.
func (s *ExclusionSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, id := range s.IDs() {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// ExclusionChange notifies that an item moved in or out of the exclusion set.
type ExclusionChange struct {
	ItemID   int
	Name     string
	Excluded bool
}
