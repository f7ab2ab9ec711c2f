package algorithm

import "github.com/ls-engine/localsearch-go/search"

// SteepestDescent enumerates every move in the engine's Neighbourhood
// each step and accepts the one with the largest improving delta. Stops
// itself once no improving move remains (local optimum) or the
// neighbourhood is empty.
func SteepestDescent[S search.Solution[S]]() search.StepFunc[S] {
	return func(ns *search.NeighbourhoodSearch[S]) error {
		current, ok := ns.GetCurrentSolution()
		if !ok {
			return ErrNoCurrentSolution
		}

		moves := ns.Neighbourhood().GetAllMoves(current)
		if len(moves) == 0 {
			ns.Stop()
			return nil
		}

		best, found := ns.GetMoveWithLargestDelta(moves, true)
		if !found {
			for _, m := range moves {
				ns.RejectMove(m)
			}
			ns.Stop()
			return nil
		}

		ns.AcceptMove(best)
		return nil
	}
}
