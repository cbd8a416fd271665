package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/startup-model/founder"
	"github.com/warp/startup-model/model"
	"github.com/warp/startup-model/report"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "saasmodel version "+version+"\n", out)
}

func TestRunCmd_CSV(t *testing.T) {
	out, stderr, err := execute(t, "run", "--format", "csv", "--seed", "9")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, model.Horizon+1)
	assert.Contains(t, stderr, "run complete")
}

func TestRunCmd_FlagsOverridePreset(t *testing.T) {
	// GIVEN: The one-business preset ($200k)
	// WHEN: Overriding months and salary on the command line
	// THEN: The JSON scenario shows the overrides and keeps the preset capital
	out, _, err := execute(t, "run", "--preset", "one-business", "--months", "12", "--salary", "5000", "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var doc struct {
		Scenario founder.Scenario    `json:"scenario"`
		Months   []model.MonthRecord `json:"months"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 200000.0, doc.Scenario.State.Capital)
	assert.Equal(t, 5000.0, doc.Scenario.Personality.Salary)
	assert.Len(t, doc.Months, 12)
}

func TestRunCmd_SameSeedSameOutput(t *testing.T) {
	a, _, err := execute(t, "run", "--format", "csv", "--seed", "5")
	require.NoError(t, err)
	b, _, err := execute(t, "run", "--format", "csv", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunCmd_InvalidScenario(t *testing.T) {
	_, _, err := execute(t, "run", "--flake", "1.5")
	require.Error(t, err)
	assert.True(t, founder.IsInvalidScenario(err))
}

func TestRunCmd_NonFiniteFlag_IsInvalidScenario(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--capital", "NaN"},
		{"run", "--overhead", "Inf", "--format", "csv"},
		{"sweep", "--acq-cost=-Inf"},
	} {
		out, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.True(t, founder.IsInvalidScenario(err), "%v", args)
		assert.Empty(t, out)
	}
}

func TestRunCmd_UnknownPresetAndFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--preset", "unicorn")
	assert.ErrorIs(t, err, founder.ErrUnknownPreset)

	_, _, err = execute(t, "run", "--format", "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestSweepCmd(t *testing.T) {
	out, _, err := execute(t, "sweep", "--preset", "one-business", "--axis", "survival-salary",
		"--from", "4000", "--to", "10000", "--step", "1000", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, "4000", records[1][0])
	assert.Equal(t, "9000", records[6][0])
}

func TestSweepCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "sweep", "--axis", "luck")
	assert.Error(t, err)

	_, _, err = execute(t, "sweep", "--from", "10", "--to", "5")
	assert.ErrorContains(t, err, "empty sweep")
}

func TestPresetsCmd(t *testing.T) {
	out, _, err := execute(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "one-business"))
	assert.Contains(t, lines[0], "$200,000.00")
	assert.True(t, strings.HasPrefix(lines[1], "single-founder"))
}
