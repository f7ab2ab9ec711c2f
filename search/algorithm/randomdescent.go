// Package algorithm provides concrete search.StepFunc implementations:
// random descent, steepest descent, tabu search, variable neighbourhood
// search, and parallel tempering. Each is plain configuration of
// search.NeighbourhoodSearch, not a distinct engine type.
package algorithm

import (
	"errors"

	"github.com/ls-engine/localsearch-go/search"
)

// ErrNoCurrentSolution is returned by a StepFunc when called before the
// engine has established a current solution, which should not happen in
// normal operation (init() always sets one before the loop starts).
var ErrNoCurrentSolution = errors.New("algorithm: search has no current solution")

// RandomDescent draws one random move per step from the engine's
// Neighbourhood and accepts it iff it's a strict improvement. Stops
// itself once the neighbourhood offers no move (local exhaustion).
func RandomDescent[S search.Solution[S]]() search.StepFunc[S] {
	return func(ns *search.NeighbourhoodSearch[S]) error {
		current, ok := ns.GetCurrentSolution()
		if !ok {
			return ErrNoCurrentSolution
		}

		move, ok := ns.Neighbourhood().GetRandomMove(current)
		if !ok {
			ns.Stop()
			return nil
		}

		if ns.IsImprovement(move) {
			ns.AcceptMove(move)
		} else {
			ns.RejectMove(move)
		}
		return nil
	}
}
