package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionsTestSolution struct{ v int }

func (s *optionsTestSolution) Clone() *optionsTestSolution            { return &optionsTestSolution{v: s.v} }
func (s *optionsTestSolution) Equals(o *optionsTestSolution) bool     { return o != nil && s.v == o.v }

func TestWithStopCriterionCheckPeriod_RejectsNonPositive(t *testing.T) {
	cfg := defaultConfig[*optionsTestSolution]()
	err := WithStopCriterionCheckPeriod[*optionsTestSolution](0)(cfg)
	require.Error(t, err)
}

func TestWithStopCriterionCheckPeriod_SetsPeriod(t *testing.T) {
	cfg := defaultConfig[*optionsTestSolution]()
	require.NoError(t, WithStopCriterionCheckPeriod[*optionsTestSolution](5*time.Second)(cfg))
	assert.Equal(t, 5*time.Second, cfg.checkPeriod)
}

func TestWithEmitter_RejectsNil(t *testing.T) {
	cfg := defaultConfig[*optionsTestSolution]()
	err := WithEmitter[*optionsTestSolution](nil)(cfg)
	require.Error(t, err)
}

func TestWithMaxSteps_RegistersStopCriterion(t *testing.T) {
	cfg := defaultConfig[*optionsTestSolution]()
	require.NoError(t, WithMaxSteps[*optionsTestSolution](5)(cfg))
	require.Len(t, cfg.stopCriteria, 1)
}
