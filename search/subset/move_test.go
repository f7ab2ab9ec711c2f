package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapMove_UndoSoundness(t *testing.T) {
	s := New([]int{1, 2, 3, 4}, []int{1, 2})
	before := s.Clone()

	move := SwapMove{Add: 3, Del: 1}
	move.Apply(s)
	require.True(t, s.IsSelected(3))
	require.False(t, s.IsSelected(1))

	move.Undo(s)
	assert.True(t, before.Equals(s))
}

func TestSwapMove_PreservesSize(t *testing.T) {
	s := New([]int{1, 2, 3, 4, 5}, []int{1, 2, 3})
	sizeBefore := s.Size()

	SwapMove{Add: 4, Del: 1}.Apply(s)

	assert.Equal(t, sizeBefore, s.Size())
}
