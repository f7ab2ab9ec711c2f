package search

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ls-engine/localsearch-go/search/emit"
)

// StepFunc performs one step of a neighbourhood search: typically draw or
// enumerate moves from ns.Neighbourhood(), evaluate/validate them via
// ns.EvaluateMove/ns.ValidateMove, and accept or reject exactly one via
// ns.AcceptMove/ns.RejectMove. Returning an error aborts the run; the
// search still unwinds back to IDLE, and the error is returned from
// Start().
type StepFunc[S Solution[S]] func(ns *NeighbourhoodSearch[S]) error

// NeighbourhoodSearch is the concrete engine: every algorithm in this
// package (random descent, steepest descent, tabu, variable
// neighbourhood, parallel tempering) is a NeighbourhoodSearch configured
// with a different StepFunc, not a distinct type. It is the only
// implementation of the Search interface: every search this engine runs
// perturbs a current solution via a Neighbourhood.
type NeighbourhoodSearch[S Solution[S]] struct {
	mu       sync.RWMutex
	status   Status
	disposed bool

	problem       Problem[S]
	neighbourhood Neighbourhood[S]
	step          StepFunc[S]

	listeners []SearchListener[S]
	checker   *stopChecker[S]

	cache   EvaluatedMoveCache[S]
	emitter emit.Emitter
	metrics *SearchMetrics
	rng     *RNGSource
	runID   string

	hasBest                bool
	bestSolution           S
	bestSolutionEvaluation Evaluation

	hasCurrent                bool
	currentSolution           S
	currentSolutionEvaluation Evaluation
	currentSolutionValidation Validation

	everRun             bool
	startTime           time.Time
	stopTime            time.Time
	lastImprovementTime time.Time
	lastImprovementStep int64
	hasMinDelta         bool
	minDelta            float64

	// pendingStepNumber is touched only by the goroutine running the step
	// loop (Start), never concurrently with itself, so it needs no lock.
	pendingStepNumber int64

	stepCount        atomic.Int64
	numAcceptedMoves atomic.Int64
	numRejectedMoves atomic.Int64
}

// New constructs a NeighbourhoodSearch, idle and ready to Start. problem,
// neighbourhood and step must be non-nil.
func New[S Solution[S]](problem Problem[S], neighbourhood Neighbourhood[S], step StepFunc[S], opts ...Option[S]) (*NeighbourhoodSearch[S], error) {
	if problem == nil {
		return nil, newError(CodeNullInput, "problem must not be nil")
	}
	if neighbourhood == nil {
		return nil, newError(CodeNullInput, "neighbourhood must not be nil")
	}
	if step == nil {
		return nil, newError(CodeNullInput, "step must not be nil")
	}

	cfg := defaultConfig[S]()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	ns := &NeighbourhoodSearch[S]{
		status:        IDLE,
		problem:       problem,
		neighbourhood: neighbourhood,
		step:          step,
		cache:         cfg.cache,
		emitter:       cfg.emitter,
		metrics:       cfg.metrics,
	}
	if ns.cache == nil {
		ns.cache = NewSingleEvaluatedMoveCache[S]()
	}
	if ns.emitter == nil {
		ns.emitter = emit.NewNullEmitter()
	}
	if cfg.seed != nil {
		ns.rng = NewRNGSource(*cfg.seed)
	} else {
		ns.rng = NewUnseededRNGSource()
	}

	ns.checker = newStopChecker[S](ns)
	ns.checker.setPeriod(cfg.checkPeriod)
	for _, criterion := range cfg.stopCriteria {
		ns.checker.addCriterion(criterion)
	}

	return ns, nil
}

// Problem returns the configured Problem, for use by StepFunc implementations.
func (ns *NeighbourhoodSearch[S]) Problem() Problem[S] { return ns.problem }

// Neighbourhood returns the configured Neighbourhood, for use by StepFunc
// implementations.
func (ns *NeighbourhoodSearch[S]) Neighbourhood() Neighbourhood[S] { return ns.neighbourhood }

// RNG returns a fresh, independently-usable random source for this call,
// for use by StepFunc and Neighbourhood implementations that need
// randomness (e.g. GetRandomMove).
func (ns *NeighbourhoodSearch[S]) RNG() *rand.Rand { return ns.rng.Next() }

// Start implements Search.
func (ns *NeighbourhoodSearch[S]) Start() error {
	if err := ns.beginInit(); err != nil {
		return err
	}
	ns.fireStatusChanged(IDLE, INITIALIZING)

	if err := ns.init(); err != nil {
		ns.mu.Lock()
		ns.status = IDLE
		ns.mu.Unlock()
		ns.emitter.Emit(emit.Event{
			RunID:  ns.runID,
			Source: "search",
			Msg:    "init_warning",
			Meta:   map[string]interface{}{"level": emit.LevelWarn, "error": err},
		})
		ns.fireStatusChanged(INITIALIZING, IDLE)
		return err
	}

	ns.mu.Lock()
	ns.status = RUNNING
	ns.mu.Unlock()
	ns.fireStatusChanged(INITIALIZING, RUNNING)
	ns.fireSearchStarted()

	ns.checker.startChecking(ns.onCriterionPanic, ns.onCheckerTick)

	var stepErr error
	for ns.continueSearch() {
		ns.pendingStepNumber = ns.stepCount.Load() + 1
		if err := ns.step(ns); err != nil {
			stepErr = wrapError(CodeEvaluation, "search step failed", err)
			ns.Stop()
			break
		}
		n := ns.pendingStepNumber
		ns.stepCount.Store(n)
		ns.metrics.observeStep(ns.runID)
		ns.fireStepCompleted(n)

		if ns.checker.anySatisfied(ns.onCriterionPanic) {
			ns.Stop()
		}
	}

	ns.checker.stopChecking()

	ns.fireSearchStopped()

	ns.mu.Lock()
	ns.stopTime = time.Now()
	oldStatus := ns.status
	ns.status = IDLE
	ns.mu.Unlock()

	ns.fireStatusChanged(oldStatus, IDLE)

	return stepErr
}

func (ns *NeighbourhoodSearch[S]) beginInit() error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if ns.disposed {
		return wrapError(CodeDisposed, "cannot start a disposed search", ErrDisposed)
	}
	if ns.status != IDLE {
		return wrapError(CodeNotIdle, "cannot start: search is not idle", ErrNotIdle)
	}
	ns.status = INITIALIZING
	ns.runID = newRunID()
	return nil
}

// init resets per-run metadata and ensures a current solution is present
// (drawing one from the problem if not). Configuration is checked by New,
// not here.
func (ns *NeighbourhoodSearch[S]) init() error {
	now := time.Now()

	ns.mu.Lock()
	ns.startTime = now
	ns.stopTime = time.Time{}
	ns.lastImprovementTime = now
	ns.lastImprovementStep = 0
	ns.hasMinDelta = false
	ns.minDelta = 0
	needsInitialSolution := !ns.hasCurrent
	ns.everRun = true
	ns.mu.Unlock()

	ns.stepCount.Store(0)
	ns.numAcceptedMoves.Store(0)
	ns.numRejectedMoves.Store(0)

	if needsInitialSolution {
		initial := ns.problem.CreateRandomSolution()
		if err := ns.applyCurrentSolution(initial); err != nil {
			return wrapError(CodeInit, "failed to evaluate initial random solution", err)
		}
	}
	return nil
}

func (ns *NeighbourhoodSearch[S]) continueSearch() bool {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.status == RUNNING
}

// Stop implements Search.
func (ns *NeighbourhoodSearch[S]) Stop() {
	ns.mu.Lock()
	if ns.status != RUNNING {
		ns.mu.Unlock()
		return
	}
	ns.status = TERMINATING
	ns.mu.Unlock()
	ns.fireStatusChanged(RUNNING, TERMINATING)
}

// Dispose implements Search.
func (ns *NeighbourhoodSearch[S]) Dispose() error {
	ns.mu.Lock()
	if ns.disposed {
		ns.mu.Unlock()
		return nil
	}
	if ns.status != IDLE {
		ns.mu.Unlock()
		return wrapError(CodeNotIdle, "cannot dispose: search is not idle", ErrNotIdle)
	}
	ns.disposed = true
	ns.status = DISPOSED
	ns.mu.Unlock()
	ns.fireStatusChanged(IDLE, DISPOSED)
	return nil
}

// AddStopCriterion implements Search.
func (ns *NeighbourhoodSearch[S]) AddStopCriterion(c StopCriterion[S]) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	if c == nil {
		return wrapError(CodeNullInput, "stop criterion must not be nil", ErrNullInput)
	}
	ns.checker.addCriterion(c)
	return nil
}

// RemoveStopCriterion implements Search.
func (ns *NeighbourhoodSearch[S]) RemoveStopCriterion(c StopCriterion[S]) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	ns.checker.removeCriterion(c)
	return nil
}

// SetStopCriterionCheckPeriod implements Search.
func (ns *NeighbourhoodSearch[S]) SetStopCriterionCheckPeriod(d time.Duration) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	if d <= 0 {
		return newError(CodeInit, "check period must be positive")
	}
	ns.checker.setPeriod(d)
	return nil
}

// AddSearchListener implements Search.
func (ns *NeighbourhoodSearch[S]) AddSearchListener(l SearchListener[S]) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	if l == nil {
		return wrapError(CodeNullInput, "listener must not be nil", ErrNullInput)
	}
	ns.mu.Lock()
	ns.listeners = append(ns.listeners, l)
	ns.mu.Unlock()
	return nil
}

// RemoveSearchListener implements Search.
func (ns *NeighbourhoodSearch[S]) RemoveSearchListener(l SearchListener[S]) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i, existing := range ns.listeners {
		if existing == l {
			ns.listeners = append(ns.listeners[:i], ns.listeners[i+1:]...)
			break
		}
	}
	return nil
}

func (ns *NeighbourhoodSearch[S]) requireIdle() error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if ns.disposed {
		return wrapError(CodeDisposed, "search has been disposed", ErrDisposed)
	}
	if ns.status != IDLE {
		return wrapError(CodeNotIdle, "search is not idle", ErrNotIdle)
	}
	return nil
}

// GetStatus implements Search.
func (ns *NeighbourhoodSearch[S]) GetStatus() Status {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.status
}

// GetBestSolution implements Search.
func (ns *NeighbourhoodSearch[S]) GetBestSolution() (S, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if !ns.hasBest {
		var zero S
		return zero, false
	}
	return ns.bestSolution.Clone(), true
}

// GetBestSolutionEvaluation implements Search.
func (ns *NeighbourhoodSearch[S]) GetBestSolutionEvaluation() (Evaluation, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if !ns.hasBest {
		return Evaluation{}, false
	}
	return ns.bestSolutionEvaluation, true
}

// GetCurrentSolution returns the search's current solution, or (zero,
// false) if none has been set (only possible before the first run).
func (ns *NeighbourhoodSearch[S]) GetCurrentSolution() (S, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if !ns.hasCurrent {
		var zero S
		return zero, false
	}
	return ns.currentSolution.Clone(), true
}

// GetCurrentSolutionEvaluation returns the evaluation paired with
// GetCurrentSolution.
func (ns *NeighbourhoodSearch[S]) GetCurrentSolutionEvaluation() (Evaluation, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if !ns.hasCurrent {
		return Evaluation{}, false
	}
	return ns.currentSolutionEvaluation, true
}

// SetCurrentSolution replaces the current solution. Requires IDLE; clears
// the move cache and re-evaluates against the new solution.
func (ns *NeighbourhoodSearch[S]) SetCurrentSolution(s S) error {
	if err := ns.requireIdle(); err != nil {
		return err
	}
	return ns.applyCurrentSolution(s)
}

func (ns *NeighbourhoodSearch[S]) applyCurrentSolution(s S) error {
	clone := s.Clone()
	eval := ns.problem.Evaluate(clone)
	validation := ns.problem.Validate(clone)

	ns.mu.Lock()
	ns.currentSolution = clone
	ns.currentSolutionEvaluation = eval
	ns.currentSolutionValidation = validation
	ns.hasCurrent = true
	ns.mu.Unlock()

	ns.cache.Clear()

	if validation.Passed {
		ns.updateBestSolution(clone.Clone(), eval)
	}
	return nil
}

// notMeaningful reports whether per-run counters/durations are not yet
// defined: no run has ever started, or init() has not yet reset them.
func (ns *NeighbourhoodSearch[S]) notMeaningful() bool {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return !ns.everRun || ns.status == INITIALIZING
}

// GetRuntime implements Search.
func (ns *NeighbourhoodSearch[S]) GetRuntime() time.Duration {
	if ns.notMeaningful() {
		return NoValue
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if ns.status == IDLE {
		return ns.stopTime.Sub(ns.startTime)
	}
	return time.Since(ns.startTime)
}

// GetSteps implements Search.
func (ns *NeighbourhoodSearch[S]) GetSteps() int64 {
	if ns.notMeaningful() {
		return NoValue
	}
	return ns.stepCount.Load()
}

// GetTimeWithoutImprovement implements Search.
func (ns *NeighbourhoodSearch[S]) GetTimeWithoutImprovement() time.Duration {
	if ns.notMeaningful() {
		return NoValue
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if ns.status == IDLE {
		return ns.stopTime.Sub(ns.lastImprovementTime)
	}
	return time.Since(ns.lastImprovementTime)
}

// GetStepsWithoutImprovement implements Search.
func (ns *NeighbourhoodSearch[S]) GetStepsWithoutImprovement() int64 {
	if ns.notMeaningful() {
		return NoValue
	}
	ns.mu.RLock()
	last := ns.lastImprovementStep
	ns.mu.RUnlock()
	return ns.stepCount.Load() - last
}

// GetMinDelta implements Search.
func (ns *NeighbourhoodSearch[S]) GetMinDelta() (float64, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.minDelta, ns.hasMinDelta
}

// GetNumAcceptedMoves returns the number of moves accepted in the current
// (or just-finished) run, or NoValue if not meaningful.
func (ns *NeighbourhoodSearch[S]) GetNumAcceptedMoves() int64 {
	if ns.notMeaningful() {
		return NoValue
	}
	return ns.numAcceptedMoves.Load()
}

// GetNumRejectedMoves returns the number of moves rejected in the current
// (or just-finished) run, or NoValue if not meaningful.
func (ns *NeighbourhoodSearch[S]) GetNumRejectedMoves() int64 {
	if ns.notMeaningful() {
		return NoValue
	}
	return ns.numRejectedMoves.Load()
}

func (ns *NeighbourhoodSearch[S]) updateBestSolution(candidate S, eval Evaluation) {
	orientation := ns.problem.Orientation()
	now := time.Now()

	ns.mu.Lock()
	improved := true
	var delta float64
	if ns.hasBest {
		delta = orientation.Delta(ns.bestSolutionEvaluation, eval)
		improved = delta > 0
	}
	if !improved {
		ns.mu.Unlock()
		return
	}
	ns.bestSolution = candidate
	ns.bestSolutionEvaluation = eval
	if ns.hasBest && delta > 0 {
		if !ns.hasMinDelta || delta < ns.minDelta {
			ns.minDelta = delta
			ns.hasMinDelta = true
		}
	}
	ns.hasBest = true
	ns.lastImprovementTime = now
	ns.lastImprovementStep = ns.pendingStepNumber
	ns.mu.Unlock()

	ns.metrics.observeBest(ns.runID, eval.Value)
	ns.fireNewBestSolution(candidate, eval)
}

// EvaluateMove evaluates move against the current solution, preferring a
// cached result and falling back to the problem's delta-evaluation path
// or a plain apply/evaluate/undo.
func (ns *NeighbourhoodSearch[S]) EvaluateMove(move Move[S]) Evaluation {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if eval, ok := ns.cache.Evaluation(move); ok {
		return eval
	}
	eval := evaluate(ns.problem, move, ns.currentSolution, ns.currentSolutionEvaluation)
	ns.cache.PutEvaluation(move, eval)
	return eval
}

// ValidateMove reports whether move would be rejected if applied to the
// current solution.
func (ns *NeighbourhoodSearch[S]) ValidateMove(move Move[S]) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if rejected, ok := ns.cache.Rejected(move); ok {
		return rejected
	}
	v := validate(ns.problem, move, ns.currentSolution, ns.currentSolutionValidation)
	rejected := !v.Passed
	ns.cache.PutRejected(move, rejected)
	return rejected
}

// IsImprovement reports whether move, if accepted, would strictly improve
// on the current solution's evaluation and would not be rejected.
func (ns *NeighbourhoodSearch[S]) IsImprovement(move Move[S]) bool {
	if move == nil {
		return false
	}
	if ns.ValidateMove(move) {
		return false
	}
	eval := ns.EvaluateMove(move)

	ns.mu.RLock()
	current := ns.currentSolutionEvaluation
	ns.mu.RUnlock()

	return ns.problem.Orientation().Delta(current, eval) > 0
}

// GetMoveWithLargestDelta scans moves and returns the one with the
// largest signed delta relative to the current solution, skipping
// rejected moves. If positiveOnly, only strictly improving moves are
// considered. Returns (nil, false) if no candidate qualifies.
func (ns *NeighbourhoodSearch[S]) GetMoveWithLargestDelta(moves []Move[S], positiveOnly bool) (Move[S], bool) {
	ns.mu.RLock()
	current := ns.currentSolutionEvaluation
	ns.mu.RUnlock()
	orientation := ns.problem.Orientation()

	var best Move[S]
	var bestEval Evaluation
	var bestDelta float64
	found := false

	for _, m := range moves {
		if ns.ValidateMove(m) {
			continue
		}
		eval := ns.EvaluateMove(m)
		delta := orientation.Delta(current, eval)
		if positiveOnly && delta <= 0 {
			continue
		}
		if !found || delta > bestDelta {
			found = true
			best = m
			bestEval = eval
			bestDelta = delta
		}
	}

	if found {
		ns.mu.Lock()
		ns.cache.PutEvaluation(best, bestEval)
		ns.cache.PutRejected(best, false)
		ns.mu.Unlock()
	}
	return best, found
}

// AcceptMove applies move to the current solution, updates per-run
// counters and the best-solution record, clears the move cache, and
// notifies listeners.
func (ns *NeighbourhoodSearch[S]) AcceptMove(move Move[S]) {
	eval := ns.EvaluateMove(move)

	ns.mu.Lock()
	move.Apply(ns.currentSolution)
	ns.currentSolutionEvaluation = eval
	validation := ns.problem.Validate(ns.currentSolution)
	ns.currentSolutionValidation = validation
	candidate := ns.currentSolution.Clone()
	ns.mu.Unlock()

	ns.cache.Clear()
	ns.numAcceptedMoves.Add(1)

	if validation.Passed {
		ns.updateBestSolution(candidate.Clone(), eval)
	}
	ns.metrics.observeAccepted(ns.runID)
	ns.fireModifiedCurrentSolution(candidate, eval)
}

// RejectMove records that move was considered and rejected.
func (ns *NeighbourhoodSearch[S]) RejectMove(move Move[S]) {
	ns.numRejectedMoves.Add(1)
	ns.metrics.observeRejected(ns.runID)
}

func (ns *NeighbourhoodSearch[S]) onCriterionPanic(recovered interface{}) {
	ns.emitter.Emit(emit.Event{
		RunID:  ns.runID,
		Step:   ns.stepCount.Load(),
		Source: "stopcriterion",
		Msg:    "stop_criterion_error",
		Meta:   map[string]interface{}{"level": emit.LevelWarn, "error": recovered},
	})
}

func (ns *NeighbourhoodSearch[S]) onCheckerTick() {
	ns.metrics.observeStopCheck(ns.runID)
}

func (ns *NeighbourhoodSearch[S]) listenerSnapshot() []SearchListener[S] {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make([]SearchListener[S], len(ns.listeners))
	copy(out, ns.listeners)
	return out
}

func (ns *NeighbourhoodSearch[S]) fireSearchStarted() {
	for _, l := range ns.listenerSnapshot() {
		l.SearchStarted(ns)
	}
	ns.emitter.Emit(emit.Event{
		RunID:  ns.runID,
		Source: "search",
		Msg:    "search_started",
		Meta:   map[string]interface{}{"level": emit.LevelInfo},
	})
}

func (ns *NeighbourhoodSearch[S]) fireSearchStopped() {
	for _, l := range ns.listenerSnapshot() {
		l.SearchStopped(ns)
	}
	ns.emitter.Emit(emit.Event{
		RunID:  ns.runID,
		Step:   ns.stepCount.Load(),
		Source: "search",
		Msg:    "search_stopped",
		Meta:   map[string]interface{}{"level": emit.LevelInfo},
	})
}

func (ns *NeighbourhoodSearch[S]) fireNewBestSolution(best S, eval Evaluation) {
	for _, l := range ns.listenerSnapshot() {
		l.NewBestSolution(ns, best, eval)
	}
	ns.emitter.Emit(emit.Event{
		RunID:  ns.runID,
		Step:   ns.pendingStepNumber,
		Source: "search",
		Msg:    "new_best",
		Meta:   map[string]interface{}{"level": emit.LevelInfo, "evaluation": eval.Value},
	})
}

func (ns *NeighbourhoodSearch[S]) fireStepCompleted(step int64) {
	for _, l := range ns.listenerSnapshot() {
		l.StepCompleted(ns, step)
	}
	ns.emitter.Emit(emit.Event{
		RunID:  ns.runID,
		Step:   step,
		Source: "search",
		Msg:    "step_completed",
		Meta:   map[string]interface{}{"level": emit.LevelDebug},
	})
}

func (ns *NeighbourhoodSearch[S]) fireStatusChanged(oldStatus, newStatus Status) {
	for _, l := range ns.listenerSnapshot() {
		l.StatusChanged(ns, oldStatus, newStatus)
	}
}

func (ns *NeighbourhoodSearch[S]) fireModifiedCurrentSolution(current S, eval Evaluation) {
	for _, l := range ns.listenerSnapshot() {
		if nl, ok := l.(NeighbourhoodSearchListener[S]); ok {
			nl.ModifiedCurrentSolution(ns, current, eval)
		}
	}
}
