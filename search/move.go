package search

// Move is a reversible perturbation of a solution. Contract: for any
// solution s, Apply(s) followed by Undo(s) must restore s to its
// observable pre-state (the Undo Soundness invariant).
//
// Moves must be comparable by value (implementations should be small
// value types, e.g. a struct of two ints) so they can key an
// EvaluatedMoveCache.
type Move[S any] interface {
	// Apply mutates s in place, performing this move.
	Apply(s S)
	// Undo mutates s in place, reversing this move. Only valid to call
	// immediately after Apply on the same s, with no intervening
	// mutation.
	Undo(s S)
}
