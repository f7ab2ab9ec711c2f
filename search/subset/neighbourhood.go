package subset

import (
	"github.com/ls-engine/localsearch-go/search"
)

// SingleSwapNeighbourhood generates every (or one random) SwapMove that
// exchanges a selected, non-fixed ID for an unselected, non-fixed one.
// IDs in fixed can never be swapped out of selected nor into it, modeling
// domain constraints like "this candidate is mandatory" or "this
// candidate is excluded".
//
// Since Neighbourhood's interface methods take no RNG parameter, the
// neighbourhood draws from a search.RNGSource, the same no-shared-state
// per-call RNG mechanism the engine itself uses, rather than a single
// mutex-guarded *rand.Rand — so one neighbourhood can safely be shared
// across concurrently-running searches (e.g. parallel-tempering replicas)
// with no contention on a shared generator.
type SingleSwapNeighbourhood struct {
	fixed map[int]struct{}
	rng   *search.RNGSource
}

// NewSingleSwapNeighbourhood constructs a neighbourhood where no ID in
// fixed is ever swapped out. Pass a deterministic seed for reproducible
// tests, or NewSingleSwapNeighbourhoodUnseeded for production use.
func NewSingleSwapNeighbourhood(fixed []int, seed int64) *SingleSwapNeighbourhood {
	f := make(map[int]struct{}, len(fixed))
	for _, id := range fixed {
		f[id] = struct{}{}
	}
	return &SingleSwapNeighbourhood{
		fixed: f,
		rng:   search.NewRNGSource(seed),
	}
}

// NewSingleSwapNeighbourhoodUnseeded constructs a neighbourhood whose RNG
// is not reproducible across runs, for production use.
func NewSingleSwapNeighbourhoodUnseeded(fixed []int) *SingleSwapNeighbourhood {
	f := make(map[int]struct{}, len(fixed))
	for _, id := range fixed {
		f[id] = struct{}{}
	}
	return &SingleSwapNeighbourhood{
		fixed: f,
		rng:   search.NewUnseededRNGSource(),
	}
}

func (n *SingleSwapNeighbourhood) swappable(s *SubsetSolution) []int {
	selected := s.Selected()
	out := selected[:0:0]
	for _, id := range selected {
		if _, fixed := n.fixed[id]; !fixed {
			out = append(out, id)
		}
	}
	return out
}

func (n *SingleSwapNeighbourhood) addable(s *SubsetSolution) []int {
	unselected := s.Unselected()
	out := unselected[:0:0]
	for _, id := range unselected {
		if _, fixed := n.fixed[id]; !fixed {
			out = append(out, id)
		}
	}
	return out
}

// GetRandomMove implements search.Neighbourhood.
func (n *SingleSwapNeighbourhood) GetRandomMove(s *SubsetSolution) (search.Move[*SubsetSolution], bool) {
	swappable := n.swappable(s)
	addable := n.addable(s)
	if len(swappable) == 0 || len(addable) == 0 {
		return nil, false
	}

	rng := n.rng.Next()
	del := swappable[rng.Intn(len(swappable))]
	add := addable[rng.Intn(len(addable))]

	return SwapMove{Add: add, Del: del}, true
}

// GetAllMoves implements search.Neighbourhood.
func (n *SingleSwapNeighbourhood) GetAllMoves(s *SubsetSolution) []search.Move[*SubsetSolution] {
	swappable := n.swappable(s)
	addable := n.addable(s)
	moves := make([]search.Move[*SubsetSolution], 0, len(swappable)*len(addable))
	for _, del := range swappable {
		for _, add := range addable {
			moves = append(moves, SwapMove{Add: add, Del: del})
		}
	}
	return moves
}
