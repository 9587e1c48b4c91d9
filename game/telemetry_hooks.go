package game

import (
	"log/slog"

	"github.com/pthm-cable/ecosim/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it.
func (g *Game) flushTelemetry() {
	day := g.env.Day()
	if !g.collector.ShouldFlush(day) {
		return
	}

	sample := telemetry.SampleOrganisms(g.env.Organisms())
	stats := g.collector.Flush(day, g.env.Weather(), sample)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, day); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	if !g.collapsed && len(sample.Living) == 0 && sample.Dead > 0 {
		g.collapsed = true
		g.logger.Warn("population collapsed", "day", day, "dead", sample.Dead)
	}
}
