package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ls-engine/localsearch-go/search"
)

func sum(selected []int) float64 {
	total := 0.0
	for _, id := range selected {
		total += float64(id)
	}
	return total
}

func TestPenalizingSubsetProblem_EvaluateIsSumOfSelected(t *testing.T) {
	p := NewPenalizingSubsetProblem(search.Maximize, []int{1, 2, 3, 4}, 0, 1, sum)
	s := New([]int{1, 2, 3, 4}, []int{2, 4})

	eval := p.Evaluate(s)
	assert.Equal(t, 6.0, eval.Value)
}

func TestPenalizingSubsetProblem_FixedSizeConstraint(t *testing.T) {
	p := NewPenalizingSubsetProblem(search.Minimize, []int{1, 2, 3, 4}, 2, 1, sum, FixedSize(2))

	ok := New([]int{1, 2, 3, 4}, []int{1, 2})
	tooMany := New([]int{1, 2, 3, 4}, []int{1, 2, 3})

	assert.False(t, p.RejectSolution(ok))
	assert.True(t, p.RejectSolution(tooMany))
}

func TestPenalizingSubsetProblem_SizeRangeConstraint(t *testing.T) {
	p := NewPenalizingSubsetProblem(search.Minimize, []int{1, 2, 3, 4, 5}, 0, 1, sum, SizeRange(2, 3))

	tooFew := New([]int{1, 2, 3, 4, 5}, []int{1})
	ok := New([]int{1, 2, 3, 4, 5}, []int{1, 2, 3})
	tooMany := New([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4})

	assert.True(t, p.RejectSolution(tooFew))
	assert.False(t, p.RejectSolution(ok))
	assert.True(t, p.RejectSolution(tooMany))
}

func TestPenalizingSubsetProblem_CreateRandomSolutionRespectsTargetSize(t *testing.T) {
	p := NewPenalizingSubsetProblem(search.Maximize, []int{1, 2, 3, 4, 5}, 3, 7, sum)

	for i := 0; i < 10; i++ {
		s := p.CreateRandomSolution()
		require.Equal(t, 3, s.Size())
	}
}

func TestPenalizingSubsetProblem_CreateRandomSolutionIsWithinUniverse(t *testing.T) {
	universe := []int{1, 2, 3}
	p := NewPenalizingSubsetProblem(search.Minimize, universe, 0, 3, sum)

	s := p.CreateRandomSolution()
	for _, id := range s.Selected() {
		assert.Contains(t, universe, id)
	}
}
