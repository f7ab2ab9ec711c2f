package search

// SearchListener receives lifecycle notifications common to every search.
//
// All callbacks are invoked synchronously on the search's own goroutine
// (the one blocked inside Start); implementations must not block for long
// or call back into the search (Start/Stop/Dispose are fine; mutators that
// require IDLE are not, since the search is RUNNING when listeners fire).
type SearchListener[S any] interface {
	// SearchStarted fires once, immediately after init() succeeds and the
	// search transitions to RUNNING.
	SearchStarted(s Search[S])
	// SearchStopped fires once, just before the search transitions back to
	// IDLE at the end of a run (status is still TERMINATING).
	SearchStopped(s Search[S])
	// NewBestSolution fires whenever updateBestSolution records a strict
	// improvement.
	NewBestSolution(s Search[S], best S, evaluation Evaluation)
	// StepCompleted fires after every searchStep, once per-step counters
	// have been updated.
	StepCompleted(s Search[S], step int64)
	// StatusChanged fires on every status transition.
	StatusChanged(s Search[S], oldStatus, newStatus Status)
}

// NeighbourhoodSearchListener extends SearchListener with a callback
// specific to neighbourhood searches. The engine invokes this broader set
// only for listeners that implement it.
type NeighbourhoodSearchListener[S any] interface {
	SearchListener[S]
	// ModifiedCurrentSolution fires whenever acceptMove mutates the
	// current solution.
	ModifiedCurrentSolution(s Search[S], current S, evaluation Evaluation)
}

// SearchListenerFuncs is an adapter allowing callers to supply plain
// closures instead of implementing SearchListener directly. Any nil field
// is treated as a no-op.
type SearchListenerFuncs[S any] struct {
	OnSearchStarted    func(s Search[S])
	OnSearchStopped    func(s Search[S])
	OnNewBestSolution  func(s Search[S], best S, evaluation Evaluation)
	OnStepCompleted    func(s Search[S], step int64)
	OnStatusChanged    func(s Search[S], oldStatus, newStatus Status)
}

// SearchStarted implements SearchListener.
func (f SearchListenerFuncs[S]) SearchStarted(s Search[S]) {
	if f.OnSearchStarted != nil {
		f.OnSearchStarted(s)
	}
}

// SearchStopped implements SearchListener.
func (f SearchListenerFuncs[S]) SearchStopped(s Search[S]) {
	if f.OnSearchStopped != nil {
		f.OnSearchStopped(s)
	}
}

// NewBestSolution implements SearchListener.
func (f SearchListenerFuncs[S]) NewBestSolution(s Search[S], best S, evaluation Evaluation) {
	if f.OnNewBestSolution != nil {
		f.OnNewBestSolution(s, best, evaluation)
	}
}

// StepCompleted implements SearchListener.
func (f SearchListenerFuncs[S]) StepCompleted(s Search[S], step int64) {
	if f.OnStepCompleted != nil {
		f.OnStepCompleted(s, step)
	}
}

// StatusChanged implements SearchListener.
func (f SearchListenerFuncs[S]) StatusChanged(s Search[S], oldStatus, newStatus Status) {
	if f.OnStatusChanged != nil {
		f.OnStatusChanged(s, oldStatus, newStatus)
	}
}

// NeighbourhoodSearchListenerFuncs extends SearchListenerFuncs with the
// neighbourhood-only callback.
type NeighbourhoodSearchListenerFuncs[S any] struct {
	SearchListenerFuncs[S]
	OnModifiedCurrentSolution func(s Search[S], current S, evaluation Evaluation)
}

// ModifiedCurrentSolution implements NeighbourhoodSearchListener.
func (f NeighbourhoodSearchListenerFuncs[S]) ModifiedCurrentSolution(s Search[S], current S, evaluation Evaluation) {
	if f.OnModifiedCurrentSolution != nil {
		f.OnModifiedCurrentSolution(s, current, evaluation)
	}
}
