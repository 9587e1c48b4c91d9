package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestTracker_KeepsLowest(t *testing.T) {
	b := &bestTracker{fitness: 1e9}
	b.observe(-10, []float64{1, 2})
	b.observe(-5, []float64{3, 4})
	b.observe(-20, []float64{5, 6})

	assert.Equal(t, -20.0, b.fitness)
	assert.Equal(t, []float64{5, 6}, b.params)
}

func TestSurvivalFromFitness_InvertsFitness(t *testing.T) {
	assert.InDelta(t, 42.0, survivalFromFitness(computeFitness(42, 0.5), 0.5), 1e-9)
}

func TestEvalLog_WritesHeaderAndRows(t *testing.T) {
	pv := NewParamVector()
	path := filepath.Join(t.TempDir(), "optimize_log.csv")

	l, err := createEvalLog(path, pv)
	require.NoError(t, err)
	require.NoError(t, l.Record(1, -12.5, pv.DefaultVector()))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "eval,fitness,plant_cost,"))
	assert.True(t, strings.HasPrefix(lines[1], "1,-12.500000,1.000000,"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1m05s", formatDuration(65*time.Second))
	assert.Equal(t, "2h03m04s", formatDuration(2*time.Hour+3*time.Minute+4*time.Second))
}

func TestRun_RequiresOutput(t *testing.T) {
	assert.Error(t, run(options{}))
}
