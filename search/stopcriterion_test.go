package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSearch struct {
	steps               int64
	runtime             time.Duration
	stepsWithoutImprove int64
	timeWithoutImprove  time.Duration
}

func (f *fakeSearch) Start() error                                 { return nil }
func (f *fakeSearch) Stop()                                        {}
func (f *fakeSearch) Dispose() error                                { return nil }
func (f *fakeSearch) AddStopCriterion(StopCriterion[int]) error     { return nil }
func (f *fakeSearch) RemoveStopCriterion(StopCriterion[int]) error  { return nil }
func (f *fakeSearch) SetStopCriterionCheckPeriod(time.Duration) error { return nil }
func (f *fakeSearch) AddSearchListener(SearchListener[int]) error   { return nil }
func (f *fakeSearch) RemoveSearchListener(SearchListener[int]) error { return nil }
func (f *fakeSearch) GetStatus() Status                            { return RUNNING }
func (f *fakeSearch) GetBestSolution() (int, bool)                  { return 0, false }
func (f *fakeSearch) GetBestSolutionEvaluation() (Evaluation, bool) { return Evaluation{}, false }
func (f *fakeSearch) GetRuntime() time.Duration                     { return f.runtime }
func (f *fakeSearch) GetSteps() int64                                { return f.steps }
func (f *fakeSearch) GetTimeWithoutImprovement() time.Duration       { return f.timeWithoutImprove }
func (f *fakeSearch) GetStepsWithoutImprovement() int64              { return f.stepsWithoutImprove }
func (f *fakeSearch) GetMinDelta() (float64, bool)                   { return 0, false }

func TestMaxSteps(t *testing.T) {
	c := MaxSteps[int](10)
	assert.False(t, c.SearchShouldStop(&fakeSearch{steps: 9}))
	assert.True(t, c.SearchShouldStop(&fakeSearch{steps: 10}))
}

func TestMaxRuntime(t *testing.T) {
	c := MaxRuntime[int](time.Second)
	assert.False(t, c.SearchShouldStop(&fakeSearch{runtime: 500 * time.Millisecond}))
	assert.True(t, c.SearchShouldStop(&fakeSearch{runtime: time.Second}))
}

func TestNoImprovement(t *testing.T) {
	c := NoImprovement[int](5, time.Second)
	assert.False(t, c.SearchShouldStop(&fakeSearch{stepsWithoutImprove: 4, timeWithoutImprove: 0}))
	assert.True(t, c.SearchShouldStop(&fakeSearch{stepsWithoutImprove: 5}))
	assert.True(t, c.SearchShouldStop(&fakeSearch{timeWithoutImprove: time.Second}))
}

func TestAny(t *testing.T) {
	c := Any[int](MaxSteps[int](100), MaxRuntime[int](time.Second))
	assert.True(t, c.SearchShouldStop(&fakeSearch{runtime: time.Hour}))
	assert.False(t, c.SearchShouldStop(&fakeSearch{}))
}

func TestAll(t *testing.T) {
	c := All[int](MaxSteps[int](10), MaxRuntime[int](time.Second))
	assert.False(t, c.SearchShouldStop(&fakeSearch{steps: 10}))
	assert.True(t, c.SearchShouldStop(&fakeSearch{steps: 10, runtime: time.Second}))
}

func TestAll_EmptyCriteriaListNeverStops(t *testing.T) {
	c := All[int]()
	assert.False(t, c.SearchShouldStop(&fakeSearch{}))
}
