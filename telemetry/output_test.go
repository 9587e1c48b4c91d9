package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/config"
)

func TestNewOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	// A nil manager swallows every write.
	assert.NoError(t, om.WriteTelemetry(DayStats{Day: 1}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 1))
	assert.NoError(t, om.WriteConfig(nil))
	assert.Equal(t, "", om.Dir())
	assert.NoError(t, om.Close())
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteTelemetry(DayStats{Day: 1, Weather: "sunny", Plants: 3}))
	require.NoError(t, om.WriteTelemetry(DayStats{Day: 2, Weather: "rainy", Plants: 2}))
	require.NoError(t, om.WritePerf(NewPerfCollector(5).Stats(), 2))

	cfg, err := config.Defaults()
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "day,weather,plants,"))
	assert.True(t, strings.HasPrefix(lines[1], "1,sunny,3,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,rainy,2,"))

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(perf), "hunting_pct")

	_, err = config.Load(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
