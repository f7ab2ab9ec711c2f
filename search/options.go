package search

import (
	"time"

	"github.com/ls-engine/localsearch-go/search/emit"
)

// engineConfig accumulates Option values before New constructs the engine.
type engineConfig[S Solution[S]] struct {
	checkPeriod  time.Duration
	cache        EvaluatedMoveCache[S]
	emitter      emit.Emitter
	metrics      *SearchMetrics
	seed         *int64
	stopCriteria []StopCriterion[S]
}

func defaultConfig[S Solution[S]]() *engineConfig[S] {
	return &engineConfig[S]{
		checkPeriod: time.Second,
	}
}

// Option configures a NeighbourhoodSearch at construction time.
type Option[S Solution[S]] func(*engineConfig[S]) error

// WithStopCriterionCheckPeriod sets the background checker's poll period.
func WithStopCriterionCheckPeriod[S Solution[S]](d time.Duration) Option[S] {
	return func(c *engineConfig[S]) error {
		if d <= 0 {
			return newError(CodeInit, "check period must be positive")
		}
		c.checkPeriod = d
		return nil
	}
}

// WithEvaluatedMoveCache overrides the default single-entry move cache.
func WithEvaluatedMoveCache[S Solution[S]](cache EvaluatedMoveCache[S]) Option[S] {
	return func(c *engineConfig[S]) error {
		if cache == nil {
			return newError(CodeInit, "cache must not be nil")
		}
		c.cache = cache
		return nil
	}
}

// WithEmitter attaches an observability sink. Defaults to emit.NullEmitter.
func WithEmitter[S Solution[S]](emitter emit.Emitter) Option[S] {
	return func(c *engineConfig[S]) error {
		if emitter == nil {
			return newError(CodeInit, "emitter must not be nil")
		}
		c.emitter = emitter
		return nil
	}
}

// WithMetrics attaches a Prometheus metrics sink. Defaults to nil (disabled;
// SearchMetrics methods are nil-receiver-safe).
func WithMetrics[S Solution[S]](metrics *SearchMetrics) Option[S] {
	return func(c *engineConfig[S]) error {
		c.metrics = metrics
		return nil
	}
}

// WithSeed fixes the engine's per-call RNG source to a deterministic seed,
// for reproducible tests. Unseeded by default (time-derived, for
// production use).
func WithSeed[S Solution[S]](seed int64) Option[S] {
	return func(c *engineConfig[S]) error {
		c.seed = &seed
		return nil
	}
}

// WithStopCriterion registers an initial stop criterion, equivalent to
// calling AddStopCriterion before the first Start.
func WithStopCriterion[S Solution[S]](criterion StopCriterion[S]) Option[S] {
	return func(c *engineConfig[S]) error {
		if criterion == nil {
			return newError(CodeInit, "stop criterion must not be nil")
		}
		c.stopCriteria = append(c.stopCriteria, criterion)
		return nil
	}
}

// WithMaxSteps is a convenience for WithStopCriterion(MaxSteps[S](n)).
func WithMaxSteps[S Solution[S]](n int64) Option[S] {
	return WithStopCriterion[S](MaxSteps[S](n))
}

// WithMaxRuntime is a convenience for WithStopCriterion(MaxRuntime[S](d)).
func WithMaxRuntime[S Solution[S]](d time.Duration) Option[S] {
	return WithStopCriterion[S](MaxRuntime[S](d))
}
