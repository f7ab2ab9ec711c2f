package algorithm

import (
	"sync"

	"github.com/ls-engine/localsearch-go/search"
)

// Tabu holds bounded-history tabu memory shared across the steps of one
// run: a move is forbidden for tenure steps after being applied, unless
// accepting it anyway would beat the best solution found so far
// (aspiration).
//
// A Tabu value's Step() method is itself the StepFunc; construct one Tabu
// per search (its memory is reset at the start of every run, detected via
// GetSteps() == 0, so the same Tabu can be reused across repeated Start
// calls on the same engine).
type Tabu[S search.Solution[S]] struct {
	tenure int64

	mu             sync.Mutex
	forbiddenUntil map[search.Move[S]]int64
}

// NewTabu constructs a Tabu with the given tenure (in steps).
func NewTabu[S search.Solution[S]](tenure int64) *Tabu[S] {
	return &Tabu[S]{
		tenure:         tenure,
		forbiddenUntil: make(map[search.Move[S]]int64),
	}
}

// Step returns the StepFunc driven by this Tabu's memory.
func (t *Tabu[S]) Step() search.StepFunc[S] {
	return func(ns *search.NeighbourhoodSearch[S]) error {
		step := ns.GetSteps() + 1
		if step == 1 {
			t.mu.Lock()
			t.forbiddenUntil = make(map[search.Move[S]]int64)
			t.mu.Unlock()
		}

		current, ok := ns.GetCurrentSolution()
		if !ok {
			return ErrNoCurrentSolution
		}
		moves := ns.Neighbourhood().GetAllMoves(current)
		if len(moves) == 0 {
			ns.Stop()
			return nil
		}

		currentEval, _ := ns.GetCurrentSolutionEvaluation()
		bestEval, hasBest := ns.GetBestSolutionEvaluation()
		orientation := ns.Problem().Orientation()

		var chosen search.Move[S]
		var chosenDelta float64
		found := false

		t.mu.Lock()
		t.prune(step)
		for _, m := range moves {
			if ns.ValidateMove(m) {
				continue
			}
			eval := ns.EvaluateMove(m)
			delta := orientation.Delta(currentEval, eval)

			tabu := t.forbiddenUntil[m] > step
			aspired := hasBest && orientation.Delta(bestEval, eval) > 0
			if tabu && !aspired {
				continue
			}
			if !found || delta > chosenDelta {
				found = true
				chosen = m
				chosenDelta = delta
			}
		}
		t.mu.Unlock()

		if !found {
			for _, m := range moves {
				ns.RejectMove(m)
			}
			ns.Stop()
			return nil
		}

		t.mu.Lock()
		t.forbiddenUntil[chosen] = step + t.tenure + 1
		t.mu.Unlock()

		ns.AcceptMove(chosen)
		return nil
	}
}

// prune discards expired entries. Caller must hold t.mu.
func (t *Tabu[S]) prune(step int64) {
	if len(t.forbiddenUntil) < 1024 {
		return
	}
	for move, until := range t.forbiddenUntil {
		if until <= step {
			delete(t.forbiddenUntil, move)
		}
	}
}
