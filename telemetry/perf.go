package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/environment"
)

// dayTiming is the wall-clock cost of one simulated day.
type dayTiming struct {
	total  time.Duration
	phases map[components.Phase]time.Duration
}

// PerfCollector times simulated days and their phases. It is an
// environment.Observer and keeps only the most recent window of days.
type PerfCollector struct {
	environment.NopObserver

	window int
	days   []dayTiming // oldest first

	dayStart   time.Time
	phase      components.Phase
	phaseStart time.Time
	current    map[components.Phase]time.Duration

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window days.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 30
	}
	return &PerfCollector{
		window:  window,
		current: make(map[components.Phase]time.Duration),
	}
}

// DayStarted opens a fresh timing record.
func (p *PerfCollector) DayStarted(int, components.Weather) {
	p.dayStart = time.Now()
	p.phase = ""
	p.current = make(map[components.Phase]time.Duration, len(components.DayPhases()))
}

func (p *PerfCollector) PhaseStarted(phase components.Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
}

// DayEnded closes the running phase and drops days older than the window.
func (p *PerfCollector) DayEnded(int) {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	p.days = append(p.days, dayTiming{total: now.Sub(p.dayStart), phases: p.current})
	if over := len(p.days) - p.window; over > 0 {
		p.days = slices.Delete(p.days, 0, over)
	}
}

// closePhase charges the running phase up to now.
func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgDayDuration time.Duration
	MinDayDuration time.Duration
	MaxDayDuration time.Duration
	DaysPerSecond  float64

	// Average duration of each phase and its share of the average day
	PhaseAvg map[components.Phase]time.Duration
	PhasePct map[components.Phase]float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats summarises the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[components.Phase]time.Duration),
		PhasePct:      make(map[components.Phase]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if len(p.days) == 0 {
		return s
	}

	totals := make([]float64, len(p.days))
	for i, d := range p.days {
		totals[i] = float64(d.total)
	}
	avg := stat.Mean(totals, nil)
	s.AvgDayDuration = time.Duration(avg)
	s.MinDayDuration = time.Duration(floats.Min(totals))
	s.MaxDayDuration = time.Duration(floats.Max(totals))
	if avg > 0 {
		s.DaysPerSecond = float64(time.Second) / avg
	}

	column := make([]float64, len(p.days))
	for _, phase := range components.DayPhases() {
		timed := false
		for i, d := range p.days {
			dur, ok := d.phases[phase]
			column[i] = float64(dur)
			timed = timed || ok
		}
		if !timed {
			continue
		}
		mean := stat.Mean(column, nil)
		s.PhaseAvg[phase] = time.Duration(mean)
		if avg > 0 {
			s.PhasePct[phase] = mean / avg * 100
		}
	}
	return s
}

// LogStats logs the window at Info.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_day_us", s.AvgDayDuration.Microseconds()),
		slog.Int64("min_day_us", s.MinDayDuration.Microseconds()),
		slog.Int64("max_day_us", s.MaxDayDuration.Microseconds()),
		slog.Float64("days_per_sec", s.DaysPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range components.DayPhases() {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(string(phase)+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	Day               int     `csv:"day"`
	AvgDayUS          int64   `csv:"avg_day_us"`
	MinDayUS          int64   `csv:"min_day_us"`
	MaxDayUS          int64   `csv:"max_day_us"`
	DaysPerSec        float64 `csv:"days_per_sec"`
	FPS               float64 `csv:"fps"`
	WeatherPct        float64 `csv:"weather_pct"`
	PhotosynthesisPct float64 `csv:"photosynthesis_pct"`
	HuntingPct        float64 `csv:"hunting_pct"`
	ForagingPct       float64 `csv:"foraging_pct"`
	MetabolismPct     float64 `csv:"metabolism_pct"`
}

// ToCSV flattens s into a perf.csv row for day.
func (s PerfStats) ToCSV(day int) PerfStatsCSV {
	return PerfStatsCSV{
		Day:               day,
		AvgDayUS:          s.AvgDayDuration.Microseconds(),
		MinDayUS:          s.MinDayDuration.Microseconds(),
		MaxDayUS:          s.MaxDayDuration.Microseconds(),
		DaysPerSec:        s.DaysPerSecond,
		FPS:               s.FPS,
		WeatherPct:        s.PhasePct[components.PhaseWeather],
		PhotosynthesisPct: s.PhasePct[components.PhasePhotosynthesis],
		HuntingPct:        s.PhasePct[components.PhaseHunting],
		ForagingPct:       s.PhasePct[components.PhaseForaging],
		MetabolismPct:     s.PhasePct[components.PhaseMetabolism],
	}
}
