package search

import "time"

// StopCriterion is a predicate over a search's live metadata that
// requests termination. Implementations must be safe to call
// concurrently: the checker evaluates them from its own background
// goroutine while the search loop runs on the caller's goroutine.
type StopCriterion[S any] interface {
	// SearchShouldStop reports whether s should stop now.
	SearchShouldStop(s Search[S]) bool
}

// StopCriterionFunc adapts a plain function to a StopCriterion.
type StopCriterionFunc[S any] func(s Search[S]) bool

// SearchShouldStop implements StopCriterion.
func (f StopCriterionFunc[S]) SearchShouldStop(s Search[S]) bool { return f(s) }

// MaxRuntime stops the search once GetRuntime() reaches or exceeds d.
// Enforced by the periodic checker and by the manual poll at each step;
// time granularity is bounded by the checker's check period, so the
// actual stop may lag d by up to one period plus one step's runtime.
func MaxRuntime[S any](d time.Duration) StopCriterion[S] {
	return StopCriterionFunc[S](func(s Search[S]) bool {
		return s.GetRuntime() >= d
	})
}

// MaxSteps stops the search once GetSteps() reaches or exceeds n.
func MaxSteps[S any](n int64) StopCriterion[S] {
	return StopCriterionFunc[S](func(s Search[S]) bool {
		return s.GetSteps() >= n
	})
}

// NoImprovement stops the search once steps or within (whichever the
// caller cares about combining) have elapsed without a new best solution.
// Pass 0 for either bound to ignore it; passing both as 0 never stops.
func NoImprovement[S any](steps int64, within time.Duration) StopCriterion[S] {
	return StopCriterionFunc[S](func(s Search[S]) bool {
		if steps > 0 && s.GetStepsWithoutImprovement() >= steps {
			return true
		}
		if within > 0 && s.GetTimeWithoutImprovement() >= within {
			return true
		}
		return false
	})
}

// Any stops as soon as any one of criteria reports true.
func Any[S any](criteria ...StopCriterion[S]) StopCriterion[S] {
	return StopCriterionFunc[S](func(s Search[S]) bool {
		for _, c := range criteria {
			if c.SearchShouldStop(s) {
				return true
			}
		}
		return false
	})
}

// All stops only once every one of criteria reports true.
func All[S any](criteria ...StopCriterion[S]) StopCriterion[S] {
	return StopCriterionFunc[S](func(s Search[S]) bool {
		for _, c := range criteria {
			if !c.SearchShouldStop(s) {
				return false
			}
		}
		return len(criteria) > 0
	})
}
