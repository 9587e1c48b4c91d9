// Package game wires an environment to telemetry, experiment output and the
// raylib viewer.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/environment"
	"github.com/pthm-cable/ecosim/organisms"
	"github.com/pthm-cable/ecosim/telemetry"
	"github.com/pthm-cable/ecosim/ui"
)

// Options configures a new game.
type Options struct {
	Seed          int64                   // RNG seed (0 = time-based)
	LogStats      bool                    // Log each stats window via slog
	OutputDir     string                  // Directory for CSV output (empty = disabled)
	Headless      bool                    // Run without graphics
	DaysPerUpdate int                     // Days simulated per UpdateHeadless call
	Population    []config.OrganismConfig // Overrides the configured seed population when non-nil
	Rand          organisms.Rand          // Overrides the seeded source
	Config        *config.Config          // Overrides the global configuration when non-nil
}

// Game holds the complete simulation state.
type Game struct {
	env    *environment.Environment
	cfg    *config.Config
	logger *slog.Logger

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.DayStats)

	// State
	headless      bool
	paused        bool
	collapsed     bool
	daysPerUpdate int
	daysPerSec    float32
	dayAccum      float32

	// UI
	hud       *ui.HUD
	roster    *ui.Roster
	inspector *ui.Inspector
	controls  *ui.ControlsPanel
	feed      *ui.EventFeed
	perfPanel *ui.PerfPanel
	overlays  *ui.OverlayRegistry

	// Window dimensions
	width, height int32
}

// NewGameWithOptions creates a game from opts.Config, or the global
// configuration when that is nil.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	logger := slog.Default()

	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindowDays)
	perfCollector := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	envOpts := environment.OptionsFromConfig(cfg)
	envOpts.Seed = opts.Seed
	envOpts.Rand = opts.Rand
	envOpts.Logger = logger
	envOpts.Observer = environment.Observers(collector, perfCollector)
	env := environment.NewWithOptions(envOpts)

	population := cfg.Population
	if opts.Population != nil {
		population = opts.Population
	}
	if err := env.Populate(population); err != nil {
		env.Close()
		return nil, fmt.Errorf("populating environment: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		env.Close()
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	daysPerUpdate := opts.DaysPerUpdate
	if daysPerUpdate < 1 {
		daysPerUpdate = 1
	}

	g := &Game{
		env:           env,
		cfg:           cfg,
		logger:        logger,
		collector:     collector,
		perfCollector: perfCollector,
		outputManager: om,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		daysPerUpdate: daysPerUpdate,
		daysPerSec:    1,
		width:         int32(cfg.Screen.Width),
		height:        int32(cfg.Screen.Height),
	}

	if !opts.Headless {
		g.initUI()
	}

	logger.Info("game created",
		"environment", env.Name(),
		"weather", string(env.Weather()),
		"organisms", env.Len(),
		"headless", opts.Headless,
		"output_dir", om.Dir(),
	)
	return g, nil
}

// initUI lays out the viewer panels.
func (g *Game) initUI() {
	const (
		margin     = 10
		rightWidth = 300
	)
	leftWidth := g.width - rightWidth - margin*3

	g.hud = ui.NewHUD()
	g.overlays = ui.NewOverlayRegistry()
	g.roster = ui.NewRoster(margin, 125, leftWidth, g.height-125-40)

	rx := g.width - rightWidth - margin
	g.controls = ui.NewControlsPanel(rx, margin, rightWidth, g.cfg.Menu.MaxDays)
	g.inspector = ui.NewInspector(rx, margin+g.controls.Height()+margin, rightWidth)
	g.feed = ui.NewEventFeed(rx, g.height-260, rightWidth, 12)
	g.perfPanel = ui.NewPerfPanel(rx+margin, g.height-250)
}

// Environment returns the simulated environment.
func (g *Game) Environment() *environment.Environment { return g.env }

// Day returns the current day.
func (g *Game) Day() int { return g.env.Day() }

// Paused reports whether the viewer is paused.
func (g *Game) Paused() bool { return g.paused }

// SetStatsCallback registers fn to receive every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.DayStats)) {
	g.statsCallback = fn
}

// Extinct reports whether any census kind has died out.
func (g *Game) Extinct() bool {
	return g.env.Census().Extinct()
}

// Unload releases the environment and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.env.Close()
}
