package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsetSolution_SelectedUnselectedPartition(t *testing.T) {
	universe := []int{1, 2, 3, 4, 5}
	s := New(universe, []int{1, 3})

	selected := s.Selected()
	unselected := s.Unselected()

	assert.ElementsMatch(t, []int{1, 3}, selected)
	assert.ElementsMatch(t, []int{2, 4, 5}, unselected)
	assert.Equal(t, len(universe), len(selected)+len(unselected))
}

func TestSubsetSolution_CloneIsIndependent(t *testing.T) {
	s := New([]int{1, 2, 3}, []int{1})
	clone := s.Clone()

	clone.Select(2)

	assert.False(t, s.IsSelected(2))
	assert.True(t, clone.IsSelected(2))
}

func TestSubsetSolution_Equals(t *testing.T) {
	a := New([]int{1, 2, 3}, []int{1, 2})
	b := New([]int{1, 2, 3}, []int{2, 1})
	c := New([]int{1, 2, 3}, []int{1, 3})

	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
	require.False(t, a.Equals(nil))
}

func TestSubsetSolution_SelectDeselectIdempotent(t *testing.T) {
	s := New([]int{1, 2}, nil)

	s.Select(1)
	s.Select(1)
	assert.Equal(t, 1, s.Size())

	s.Deselect(1)
	s.Deselect(1)
	assert.Equal(t, 0, s.Size())
}
