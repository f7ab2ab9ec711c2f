package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchListenerFuncs_NilFieldsAreNoOps(t *testing.T) {
	f := SearchListenerFuncs[int]{}
	assert.NotPanics(t, func() {
		f.SearchStarted(&fakeSearch{})
		f.SearchStopped(&fakeSearch{})
		f.NewBestSolution(&fakeSearch{}, 1, Evaluation{})
		f.StepCompleted(&fakeSearch{}, 1)
		f.StatusChanged(&fakeSearch{}, IDLE, RUNNING)
	})
}

func TestSearchListenerFuncs_InvokesSetCallbacks(t *testing.T) {
	var started, stepped bool
	f := SearchListenerFuncs[int]{
		OnSearchStarted: func(s Search[int]) { started = true },
		OnStepCompleted: func(s Search[int], step int64) { stepped = true },
	}

	f.SearchStarted(&fakeSearch{})
	f.StepCompleted(&fakeSearch{}, 3)

	assert.True(t, started)
	assert.True(t, stepped)
}

func TestNeighbourhoodSearchListenerFuncs_ModifiedCurrentSolution(t *testing.T) {
	var called bool
	f := NeighbourhoodSearchListenerFuncs[int]{
		OnModifiedCurrentSolution: func(s Search[int], current int, eval Evaluation) { called = true },
	}
	f.ModifiedCurrentSolution(&fakeSearch{}, 5, Evaluation{})
	assert.True(t, called)
}
