package search

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a SearchError.
type ErrorCode string

const (
	// CodeInit marks a failure during init(): the problem is misconfigured
	// (nil problem, inconsistent subset sizes, empty neighbourhood list).
	CodeInit ErrorCode = "Init"
	// CodeNotIdle marks a mutator called while status != IDLE.
	CodeNotIdle ErrorCode = "NotIdle"
	// CodeDisposed marks any operation attempted on a disposed search.
	CodeDisposed ErrorCode = "Disposed"
	// CodeEvaluation marks an error raised by user-supplied Problem.Evaluate.
	CodeEvaluation ErrorCode = "Evaluation"
	// CodeValidation marks an error raised by user-supplied Problem.Validate.
	CodeValidation ErrorCode = "Validation"
	// CodeNullInput marks a nil argument where one is required (e.g. nil
	// solution to SetCurrentSolution, nil criterion to AddStopCriterion).
	CodeNullInput ErrorCode = "NullInput"
)

// SearchError is the error type returned by the search engine's own
// lifecycle and validation failures, as distinct from errors surfaced
// verbatim from user-supplied Problem/Neighbourhood code.
type SearchError struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped cause, if any
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("search: %s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *SearchError) Unwrap() error { return e.Err }

// newError constructs a SearchError with the given code and message.
func newError(code ErrorCode, message string) *SearchError {
	return &SearchError{Code: code, Message: message}
}

// wrapError constructs a SearchError wrapping an underlying cause.
func wrapError(code ErrorCode, message string, cause error) *SearchError {
	return &SearchError{Code: code, Message: message, Err: cause}
}

// Sentinel errors for use with errors.Is. Each corresponds to a
// SearchError of the matching Code. SearchError.Is matches them by Code,
// so errors.Is succeeds whether or not the sentinel is also wrapped as the
// SearchError's Err (the engine's own call sites wrap it).
var (
	// ErrNotIdle is returned by any mutator requiring IDLE status when the
	// search is not IDLE.
	ErrNotIdle = errors.New("search is not idle")
	// ErrDisposed is returned by any operation on a disposed search, other
	// than a repeated call to Dispose.
	ErrDisposed = errors.New("search has been disposed")
	// ErrNullInput is returned when a required argument is nil.
	ErrNullInput = errors.New("required argument is nil")
)

// Is allows errors.Is(err, ErrNotIdle) (etc.) to match a *SearchError with
// the corresponding code, without requiring callers to import ErrorCode.
func (e *SearchError) Is(target error) bool {
	switch target {
	case ErrNotIdle:
		return e.Code == CodeNotIdle
	case ErrDisposed:
		return e.Code == CodeDisposed
	case ErrNullInput:
		return e.Code == CodeNullInput
	}
	return false
}
