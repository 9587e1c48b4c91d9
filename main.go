package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxDays := flag.Int("max-days", 0, "Stop after N days (0 = unlimited, headless stops at extinction)")
	daysPerUpdate := flag.Int("days-per-update", 1, "Simulated days per headless update call")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:          rngSeed,
		LogStats:      *logStats,
		OutputDir:     *outputDir,
		Headless:      *headless,
		DaysPerUpdate: *daysPerUpdate,
	}

	if *headless {
		// Headless mode - no raylib needed
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_days", *maxDays,
			"days_per_update", *daysPerUpdate,
		)

		for {
			g.UpdateHeadless()

			if *maxDays > 0 && g.Day() >= *maxDays {
				slog.Info("max days reached", "day", g.Day())
				return
			}
			if *maxDays == 0 && g.Extinct() {
				slog.Info("extinction reached", "day", g.Day(), "population", g.Environment().PopulationCount())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Ecosystem Simulation")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxDays > 0 && g.Day() >= *maxDays {
			break
		}
	}
}
