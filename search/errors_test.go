package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchError_IsMatchesSentinels(t *testing.T) {
	err := wrapError(CodeNotIdle, "cannot start", ErrNotIdle)
	assert.True(t, errors.Is(err, ErrNotIdle))
	assert.False(t, errors.Is(err, ErrDisposed))
}

func TestSearchError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapError(CodeEvaluation, "evaluate failed", cause)
	require.ErrorIs(t, err, cause)
}

func TestSearchError_ErrorStringIncludesCode(t *testing.T) {
	err := newError(CodeInit, "bad config")
	assert.Contains(t, err.Error(), string(CodeInit))
	assert.Contains(t, err.Error(), "bad config")
}
