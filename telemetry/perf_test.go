package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/environment"
)

var _ environment.Observer = (*PerfCollector)(nil)

// simulateDay drives pc through one day, sleeping in each listed phase.
func simulateDay(pc *PerfCollector, day int, phases map[components.Phase]time.Duration) {
	pc.DayStarted(day, components.Sunny)
	for _, phase := range components.DayPhases() {
		d, ok := phases[phase]
		if !ok {
			continue
		}
		pc.PhaseStarted(phase)
		time.Sleep(d)
	}
	pc.DayEnded(day)
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	for day := 1; day <= 5; day++ {
		simulateDay(pc, day, map[components.Phase]time.Duration{
			components.PhaseHunting:  100 * time.Microsecond,
			components.PhaseForaging: 200 * time.Microsecond,
		})
	}

	stats := pc.Stats()
	assert.Positive(t, stats.AvgDayDuration)
	assert.LessOrEqual(t, stats.MinDayDuration, stats.AvgDayDuration)
	assert.GreaterOrEqual(t, stats.MaxDayDuration, stats.AvgDayDuration)
	assert.Contains(t, stats.PhaseAvg, components.PhaseHunting)
	assert.Contains(t, stats.PhaseAvg, components.PhaseForaging)
	assert.NotContains(t, stats.PhaseAvg, components.PhaseWeather)
}

func TestPerfCollector_WindowKeepsRecentDays(t *testing.T) {
	pc := NewPerfCollector(3)
	for day := 1; day <= 3; day++ {
		simulateDay(pc, day, map[components.Phase]time.Duration{components.PhaseHunting: 3 * time.Millisecond})
	}
	for day := 4; day <= 6; day++ {
		simulateDay(pc, day, map[components.Phase]time.Duration{components.PhaseWeather: 10 * time.Microsecond})
	}

	require.Len(t, pc.days, 3)
	stats := pc.Stats()
	assert.NotContains(t, stats.PhaseAvg, components.PhaseHunting)
	assert.Contains(t, stats.PhaseAvg, components.PhaseWeather)
	assert.Less(t, stats.MaxDayDuration, 3*time.Millisecond)
	assert.Positive(t, stats.DaysPerSecond)
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	for day := 1; day <= 5; day++ {
		simulateDay(pc, day, map[components.Phase]time.Duration{
			components.PhaseWeather:    10 * time.Microsecond,
			components.PhaseMetabolism: 2 * time.Millisecond,
		})
	}

	stats := pc.Stats()
	assert.Greater(t, stats.PhasePct[components.PhaseMetabolism], stats.PhasePct[components.PhaseWeather])
	assert.LessOrEqual(t, stats.PhasePct[components.PhaseMetabolism], 100.0)

	row := stats.ToCSV(5)
	assert.Equal(t, 5, row.Day)
	assert.Equal(t, stats.PhasePct[components.PhaseMetabolism], row.MetabolismPct)
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	assert.Zero(t, stats.AvgDayDuration)
	assert.Zero(t, stats.DaysPerSecond)
	assert.NotNil(t, stats.PhaseAvg)
	assert.NotNil(t, stats.PhasePct)
}

func TestPerfCollector_ThroughObserverFanOut(t *testing.T) {
	pc := NewPerfCollector(10)
	obs := environment.Observers(NewCollector(1), pc)

	obs.DayStarted(1, components.Sunny)
	for _, phase := range components.DayPhases() {
		obs.PhaseStarted(phase)
	}
	obs.DayEnded(1)

	assert.Len(t, pc.Stats().PhaseAvg, len(components.DayPhases()))
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	assert.GreaterOrEqual(t, stats.FrameDuration, 15*time.Millisecond)
	assert.Positive(t, stats.FPS)
}
