// Command menu runs the ecosystem from an interactive text menu.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/environment"
	"github.com/pthm-cable/ecosim/menu"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	verbose := flag.Bool("v", false, "Log simulation details to stderr")
	flag.Parse()

	// stdout belongs to the menu; logs go to stderr.
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := environment.OptionsFromConfig(cfg)
	opts.Seed = *seed
	env := environment.NewWithOptions(opts)
	defer env.Close()

	if err := env.Populate(cfg.Population); err != nil {
		slog.Error("failed to populate environment", "error", err)
		os.Exit(1)
	}

	if err := menu.New(env, cfg.Menu, os.Stdin, os.Stdout).Run(); err != nil {
		slog.Error("menu stopped", "error", err)
		os.Exit(1)
	}
}
