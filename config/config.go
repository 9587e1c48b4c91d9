// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/ecosim/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Environment EnvironmentConfig `yaml:"environment"`
	Metabolism  MetabolismConfig  `yaml:"metabolism"`
	Population  []OrganismConfig  `yaml:"population"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Menu        MenuConfig        `yaml:"menu"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// EnvironmentConfig holds the starting state of the environment.
type EnvironmentConfig struct {
	Name                string  `yaml:"name"`
	Weather             string  `yaml:"weather"`
	WeatherChangeChance float64 `yaml:"weather_change_chance"` // Per-day chance of resampling weather
}

// MetabolismConfig holds the baseline daily energy costs.
type MetabolismConfig struct {
	PlantCost       float64 `yaml:"plant_cost"`
	AnimalBaseCost  float64 `yaml:"animal_base_cost"`
	AnimalSpeedCost float64 `yaml:"animal_speed_cost"` // Multiplied by the animal's speed
}

// OrganismConfig describes one seed organism.
// Only the fields relevant to Kind are read.
type OrganismConfig struct {
	ID                string  `yaml:"id"`
	Kind              string  `yaml:"kind"`
	Species           string  `yaml:"species"`
	Energy            float64 `yaml:"energy"`
	GrowthRate        float64 `yaml:"growth_rate,omitempty"`
	Speed             float64 `yaml:"speed,omitempty"`
	Preference        string  `yaml:"preference,omitempty"`
	HuntingEfficiency float64 `yaml:"hunting_efficiency,omitempty"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowDays int `yaml:"stats_window_days"`
	PerfWindow      int `yaml:"perf_window"`
}

// MenuConfig holds the catalogues offered by the interactive menu.
type MenuConfig struct {
	PlantSpecies        []string  `yaml:"plant_species"`
	HerbivoreSpecies    []string  `yaml:"herbivore_species"`
	CarnivoreSpecies    []string  `yaml:"carnivore_species"`
	GrowthRates         []float64 `yaml:"growth_rates"`
	HerbivoreSpeeds     []float64 `yaml:"herbivore_speeds"`
	CarnivoreSpeeds     []float64 `yaml:"carnivore_speeds"`
	PlantPreferences    []string  `yaml:"plant_preferences"`
	HuntingEfficiencies []float64 `yaml:"hunting_efficiencies"`
	MinEnergy           float64   `yaml:"min_energy"`
	MaxEnergy           float64   `yaml:"max_energy"`
	MaxDays             int       `yaml:"max_days"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Weather components.Weather // Environment.Weather, Sunny if unrecognised
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file.
		// Lists such as population are replaced, not appended to.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	w, ok := components.ParseWeather(c.Environment.Weather)
	if !ok {
		w = components.Sunny
	}
	c.Derived.Weather = w

	if c.Telemetry.StatsWindowDays < 1 {
		c.Telemetry.StatsWindowDays = 1
	}
	if c.Menu.MaxDays < 1 {
		c.Menu.MaxDays = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
