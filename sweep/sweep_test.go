package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/startup-model/founder"
	"github.com/warp/startup-model/sweep"
)

func TestRange_IsHalfOpen(t *testing.T) {
	assert.Equal(t, []float64{4000, 5000, 6000, 7000, 8000, 9000}, sweep.Range(4000, 10000, 1000))
	assert.Empty(t, sweep.Range(1, 1, 1))
	assert.Empty(t, sweep.Range(0, 10, 0))
}

func TestLookupAxis(t *testing.T) {
	axis, err := sweep.LookupAxis("capital")
	require.NoError(t, err)

	s := founder.DefaultScenario()
	axis.Apply(&s, 250000)
	assert.Equal(t, 250000.0, s.State.Capital)

	_, err = sweep.LookupAxis("luck")
	assert.ErrorIs(t, err, sweep.ErrUnknownAxis)
}

func TestAxisNames_AreSorted(t *testing.T) {
	names := sweep.AxisNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "survival-salary")
}

func TestSweeper_SurvivalSalary(t *testing.T) {
	// GIVEN: The one-business preset
	// WHEN: Sweeping survival salary from 4000 to 9000
	// THEN: One run per value, each paying at least its own survival salary,
	//       and the base scenario is left untouched
	preset, err := founder.LookupPreset("one-business")
	require.NoError(t, err)
	axis, err := sweep.LookupAxis("survival-salary")
	require.NoError(t, err)

	points, err := sweep.NewSweeper(nil).Run(preset.Scenario, axis, sweep.Range(4000, 10000, 1000), 2018)
	require.NoError(t, err)

	require.Len(t, points, 6)
	for _, p := range points {
		assert.Equal(t, p.Value, p.Run.Scenario.Personality.Salary)
		first, ok := p.Run.Timeline.At(1)
		require.True(t, ok)
		assert.Equal(t, p.Value, first.Result.TotalSalaries)
	}
	assert.Equal(t, 4000.0, preset.Scenario.Personality.Salary)
}

func TestSweeper_HigherSalaryBurnsMoreCashInMonthOne(t *testing.T) {
	axis, err := sweep.LookupAxis("survival-salary")
	require.NoError(t, err)

	points, err := sweep.NewSweeper(nil).Run(founder.DefaultScenario(), axis, []float64{4000, 8000}, 1)
	require.NoError(t, err)

	low, _ := points[0].Run.Timeline.At(1)
	high, _ := points[1].Run.Timeline.At(1)
	// 4000 more salary plus 30% payroll tax.
	assert.InDelta(t, 5200.0, low.Result.Cash-high.Result.Cash, 1e-9)
}

func TestSweeper_InvalidValue_Fails(t *testing.T) {
	axis, err := sweep.LookupAxis("flake")
	require.NoError(t, err)

	_, err = sweep.NewSweeper(nil).Run(founder.DefaultScenario(), axis, []float64{0.5, 2}, 1)

	require.Error(t, err)
	assert.True(t, founder.IsInvalidScenario(err))
	assert.Contains(t, err.Error(), "flake=2")
}
