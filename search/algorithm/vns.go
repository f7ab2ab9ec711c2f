package algorithm

import (
	"sync"

	"github.com/ls-engine/localsearch-go/search"
)

// VNS composes a sequence of neighbourhoods: at each step it takes the
// best improving move from the current neighbourhood, or, if none
// improves, advances to the next (broader) neighbourhood. Any accepted
// move resets back to the first (typically narrowest) neighbourhood.
// Stops itself once no neighbourhood in the sequence yields an improving
// move.
//
// The engine's own Neighbourhood (passed to search.New) is not used by
// VNS's StepFunc; pass any non-nil neighbourhood (e.g. neighbourhoods[0])
// to satisfy search.New's validation.
type VNS[S search.Solution[S]] struct {
	neighbourhoods []search.Neighbourhood[S]

	mu     sync.Mutex
	active int
}

// NewVNS constructs a VNS advancing through neighbourhoods in order.
func NewVNS[S search.Solution[S]](neighbourhoods ...search.Neighbourhood[S]) *VNS[S] {
	return &VNS[S]{neighbourhoods: neighbourhoods}
}

// Step returns the StepFunc driven by this VNS's neighbourhood sequence.
func (v *VNS[S]) Step() search.StepFunc[S] {
	return func(ns *search.NeighbourhoodSearch[S]) error {
		if ns.GetSteps() == 0 {
			v.mu.Lock()
			v.active = 0
			v.mu.Unlock()
		}

		v.mu.Lock()
		idx := v.active
		v.mu.Unlock()
		if idx >= len(v.neighbourhoods) {
			ns.Stop()
			return nil
		}

		current, ok := ns.GetCurrentSolution()
		if !ok {
			return ErrNoCurrentSolution
		}

		moves := v.neighbourhoods[idx].GetAllMoves(current)
		best, found := ns.GetMoveWithLargestDelta(moves, true)
		if found {
			ns.AcceptMove(best)
			v.mu.Lock()
			v.active = 0
			v.mu.Unlock()
			return nil
		}

		for _, m := range moves {
			ns.RejectMove(m)
		}
		v.mu.Lock()
		v.active++
		exhausted := v.active >= len(v.neighbourhoods)
		v.mu.Unlock()
		if exhausted {
			ns.Stop()
		}
		return nil
	}
}
