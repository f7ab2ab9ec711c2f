package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ls-engine/localsearch-go/search"
	"github.com/ls-engine/localsearch-go/search/subset"
)

func TestVNS_ReachesOptimumWithTwoNeighbourhoods(t *testing.T) {
	universe := []int{1, 2, 3, 4, 5, 6, 7, 8}
	problem := newFixedSizeProblem(search.Maximize, universe, 3, 31)

	narrow := subset.NewSingleSwapNeighbourhood(nil, 32)
	broad := subset.NewSingleSwapNeighbourhood(nil, 33)
	vns := NewVNS[*subset.SubsetSolution](narrow, broad)

	ns, err := search.New[*subset.SubsetSolution](
		problem,
		narrow,
		vns.Step(),
		search.WithSeed[*subset.SubsetSolution](34),
		search.WithMaxSteps[*subset.SubsetSolution](100),
	)
	require.NoError(t, err)
	require.NoError(t, ns.Start())

	best, ok := ns.GetBestSolution()
	require.True(t, ok)
	require.ElementsMatch(t, []int{6, 7, 8}, best.Selected())
}

func TestVNS_StopsWhenEveryNeighbourhoodExhausted(t *testing.T) {
	universe := []int{1, 2}
	problem := newFixedSizeProblem(search.Maximize, universe, 2, 35)
	neighbourhood := subset.NewSingleSwapNeighbourhood(nil, 36)
	vns := NewVNS[*subset.SubsetSolution](neighbourhood)

	ns, err := search.New[*subset.SubsetSolution](
		problem,
		neighbourhood,
		vns.Step(),
		search.WithMaxSteps[*subset.SubsetSolution](1000),
	)
	require.NoError(t, err)
	require.NoError(t, ns.Start())
	require.Equal(t, search.IDLE, ns.GetStatus())
}
