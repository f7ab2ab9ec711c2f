package algorithm

import (
	"errors"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/ls-engine/localsearch-go/search"
)

// Replica pairs one independently-running search with its tempering
// temperature. Higher temperature replicas explore more freely; the
// replica's own StepFunc governs its internal move acceptance, while
// Temperature only affects the inter-replica swap step below.
type Replica[S search.Solution[S]] struct {
	Search      *search.NeighbourhoodSearch[S]
	Temperature float64
}

// stepBudget is a StopCriterion used internally to bound one parallel-
// tempering round. Unlike search.MaxSteps (a func value, and therefore
// not reliably comparable for removal), stepBudget is a plain comparable
// struct, so AddStopCriterion/RemoveStopCriterion round-trips cleanly.
type stepBudget[S any] struct{ limit int64 }

func (c stepBudget[S]) SearchShouldStop(s search.Search[S]) bool {
	return s.GetSteps() >= c.limit
}

// RunParallelTempering runs replicas concurrently in rounds of roundSteps
// steps each, attempting one Metropolis-criterion swap between a random
// adjacent pair of replicas (ordered as given, conventionally ascending
// by Temperature) after every round. Each replica must already have a
// Problem/Neighbourhood/StepFunc of its own; RunParallelTempering only
// drives Start/Stop and the inter-replica swap. Returns the first error
// raised by any replica's Start, or by the swap step.
func RunParallelTempering[S search.Solution[S]](replicas []Replica[S], roundSteps int64, numRounds int, rng *rand.Rand) error {
	if len(replicas) < 2 {
		return errors.New("parallel tempering: need at least two replicas")
	}
	if roundSteps <= 0 {
		return errors.New("parallel tempering: roundSteps must be positive")
	}

	budget := stepBudget[S]{limit: roundSteps}

	for round := 0; round < numRounds; round++ {
		var g errgroup.Group
		for i := range replicas {
			r := replicas[i]
			g.Go(func() error {
				if err := r.Search.AddStopCriterion(budget); err != nil {
					return err
				}
				defer r.Search.RemoveStopCriterion(budget)
				return r.Search.Start()
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if err := attemptSwap(replicas, rng); err != nil {
			return err
		}
	}
	return nil
}

// energy maps an Evaluation to a minimization-oriented quantity
// regardless of the problem's own Orientation, so the Metropolis formula
// below has one form.
func energy[S search.Solution[S]](problem search.Problem[S], eval search.Evaluation) float64 {
	if problem.Orientation() == search.Maximize {
		return -eval.Value
	}
	return eval.Value
}

// attemptSwap proposes exchanging the current solutions of one random
// adjacent pair of replicas, accepting with the standard parallel-
// tempering (replica-exchange) Metropolis probability
// min(1, exp(-(betaA-betaB)(eB-eA))).
func attemptSwap[S search.Solution[S]](replicas []Replica[S], rng *rand.Rand) error {
	i := rng.Intn(len(replicas) - 1)
	j := i + 1
	a, b := replicas[i], replicas[j]

	evalA, ok := a.Search.GetCurrentSolutionEvaluation()
	if !ok {
		return nil
	}
	evalB, ok := b.Search.GetCurrentSolutionEvaluation()
	if !ok {
		return nil
	}

	eA := energy[S](a.Search.Problem(), evalA)
	eB := energy[S](b.Search.Problem(), evalB)
	betaA := 1 / a.Temperature
	betaB := 1 / b.Temperature
	delta := (betaA - betaB) * (eB - eA)

	if delta > 0 && rng.Float64() >= math.Exp(-delta) {
		return nil
	}

	solA, _ := a.Search.GetCurrentSolution()
	solB, _ := b.Search.GetCurrentSolution()
	if err := a.Search.SetCurrentSolution(solB); err != nil {
		return err
	}
	if err := b.Search.SetCurrentSolution(solA); err != nil {
		return err
	}
	return nil
}
