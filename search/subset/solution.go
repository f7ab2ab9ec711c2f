// Package subset implements the canonical domain model for local search
// over subsets of a fixed universe: pick a subset of candidate IDs,
// perturbed by swapping one selected ID for one unselected ID.
package subset

import "sort"

// SubsetSolution is a subset of a fixed universe of integer candidate
// IDs. The universe itself never changes across Clone/Apply/Undo; only
// membership does.
type SubsetSolution struct {
	Universe []int
	selected map[int]struct{}
}

// New constructs a SubsetSolution over universe with initiallySelected
// marked as selected. Every ID in initiallySelected must be present in
// universe; callers outside this package should validate that via their
// own construction path.
func New(universe []int, initiallySelected []int) *SubsetSolution {
	sol := &SubsetSolution{
		Universe: universe,
		selected: make(map[int]struct{}, len(initiallySelected)),
	}
	for _, id := range initiallySelected {
		sol.selected[id] = struct{}{}
	}
	return sol
}

// IsSelected reports whether id is currently in the subset.
func (s *SubsetSolution) IsSelected(id int) bool {
	_, ok := s.selected[id]
	return ok
}

// Select adds id to the subset. No-op if already selected.
func (s *SubsetSolution) Select(id int) {
	s.selected[id] = struct{}{}
}

// Deselect removes id from the subset. No-op if not selected.
func (s *SubsetSolution) Deselect(id int) {
	delete(s.selected, id)
}

// Selected returns the currently-selected IDs in ascending order.
func (s *SubsetSolution) Selected() []int {
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Unselected returns the universe IDs not currently selected, in
// ascending order.
func (s *SubsetSolution) Unselected() []int {
	ids := make([]int, 0, len(s.Universe)-len(s.selected))
	for _, id := range s.Universe {
		if _, ok := s.selected[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Size returns the number of currently-selected IDs.
func (s *SubsetSolution) Size() int {
	return len(s.selected)
}

// Clone implements search.Solution.
func (s *SubsetSolution) Clone() *SubsetSolution {
	clone := &SubsetSolution{
		Universe: s.Universe,
		selected: make(map[int]struct{}, len(s.selected)),
	}
	for id := range s.selected {
		clone.selected[id] = struct{}{}
	}
	return clone
}

// Equals implements search.Solution: two subsets are equal iff they
// select exactly the same IDs (the universe is assumed shared, since
// Clone never changes it).
func (s *SubsetSolution) Equals(other *SubsetSolution) bool {
	if other == nil || len(s.selected) != len(other.selected) {
		return false
	}
	for id := range s.selected {
		if _, ok := other.selected[id]; !ok {
			return false
		}
	}
	return true
}
