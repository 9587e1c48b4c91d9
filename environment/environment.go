// Package environment owns a collection of organisms and advances them through
// discrete daily ticks.
package environment

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/organisms"
	"github.com/pthm-cable/ecosim/registry"
)

// Metabolism holds the baseline daily energy costs.
type Metabolism struct {
	PlantCost       float64
	AnimalBaseCost  float64
	AnimalSpeedCost float64 // multiplied by the animal's speed
}

// DefaultMetabolism returns plants 1, animals 2 + speed × 0.1.
func DefaultMetabolism() Metabolism {
	return Metabolism{PlantCost: 1, AnimalBaseCost: 2, AnimalSpeedCost: 0.1}
}

// AnimalCost returns the daily cost for an animal of the given speed.
func (m Metabolism) AnimalCost(speed float64) float64 {
	return m.AnimalBaseCost + speed*m.AnimalSpeedCost
}

// DefaultWeatherChangeChance is the per-day chance of resampling the weather.
const DefaultWeatherChangeChance = 0.3

// Options configures a new environment.
type Options struct {
	Name                string
	Weather             components.Weather
	Seed                int64          // Used when Rand is nil (0 = time-based)
	Rand                organisms.Rand // Source for weather changes and hunts
	Observer            Observer
	Logger              *slog.Logger
	Metabolism          Metabolism
	WeatherChangeChance float64
}

// DefaultOptions returns options with the standard daily rules.
func DefaultOptions(name string, weather components.Weather) Options {
	return Options{
		Name:                name,
		Weather:             weather,
		Metabolism:          DefaultMetabolism(),
		WeatherChangeChance: DefaultWeatherChangeChance,
	}
}

// OptionsFromConfig builds options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Name:    cfg.Environment.Name,
		Weather: cfg.Derived.Weather,
		Metabolism: Metabolism{
			PlantCost:       cfg.Metabolism.PlantCost,
			AnimalBaseCost:  cfg.Metabolism.AnimalBaseCost,
			AnimalSpeedCost: cfg.Metabolism.AnimalSpeedCost,
		},
		WeatherChangeChance: cfg.Environment.WeatherChangeChance,
	}
}

// Environment exclusively owns the organisms added to it.
type Environment struct {
	name      string
	weather   components.Weather
	organisms []organisms.Organism
	day       int
	nextID    int

	rng        organisms.Rand
	observer   Observer
	logger     *slog.Logger
	metabolism Metabolism
	weatherP   float64

	registry *registry.Registry
}

// New creates an environment with the standard daily rules.
// An invalid initial weather falls back to sunny.
func New(name string, weather components.Weather) *Environment {
	return NewWithOptions(DefaultOptions(name, weather))
}

// NewWithOptions creates an environment from explicit options.
func NewWithOptions(opts Options) *Environment {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	weather := opts.Weather
	if !weather.Valid() {
		weather = components.Sunny
	}

	return &Environment{
		name:       opts.Name,
		weather:    weather,
		nextID:     1,
		rng:        rng,
		observer:   observer,
		logger:     logger,
		metabolism: opts.Metabolism,
		weatherP:   opts.WeatherChangeChance,
		registry:   registry.New(),
	}
}

func (e *Environment) Name() string { return e.name }

func (e *Environment) Weather() components.Weather { return e.weather }

// SetWeather changes the weather. Values outside the enumeration are ignored.
func (e *Environment) SetWeather(w components.Weather) {
	if w.Valid() {
		e.weather = w
	}
}

// Day returns the number of simulated days.
func (e *Environment) Day() int { return e.day }

// Registry exposes the lifecycle registry of owned organisms.
func (e *Environment) Registry() *registry.Registry { return e.registry }

// Organisms returns a copy of the owned organisms in insertion order.
func (e *Environment) Organisms() []organisms.Organism {
	out := make([]organisms.Organism, len(e.organisms))
	copy(out, e.organisms)
	return out
}

// Len returns the number of owned organisms, living or dead.
func (e *Environment) Len() int { return len(e.organisms) }

// OrganismsByKind returns the owned organisms of one kind, living or dead.
func (e *Environment) OrganismsByKind(kind components.Kind) []organisms.Organism {
	var out []organisms.Organism
	for _, o := range e.organisms {
		if o.Kind() == kind {
			out = append(out, o)
		}
	}
	return out
}

// NextID returns the next value of the identifier sequence, starting at 1.
func (e *Environment) NextID() int {
	id := e.nextID
	e.nextID++
	return id
}

// NextOrganismID returns a fresh identifier such as "P004" for kind.
func (e *Environment) NextOrganismID(kind components.Kind) string {
	return fmt.Sprintf("%s%03d", kind.Prefix(), e.NextID())
}

// AddOrganism appends o. It returns false if o is nil or an organism with the
// same identifier is already present.
func (e *Environment) AddOrganism(o organisms.Organism) bool {
	if o == nil {
		return false
	}
	for _, existing := range e.organisms {
		if existing.ID() == o.ID() {
			return false
		}
	}
	e.organisms = append(e.organisms, o)
	e.registry.Register(o.ID(), o.Kind(), e.day)
	return true
}

// RemoveOrganism removes the first organism with id and reports whether one
// was found.
func (e *Environment) RemoveOrganism(id string) bool {
	for i, o := range e.organisms {
		if o.ID() == id {
			e.organisms = slices.Delete(e.organisms, i, i+1)
			e.registry.Release(id)
			return true
		}
	}
	return false
}

// FindOrganismByID returns the organism with id, or a *organisms.NotFoundError.
func (e *Environment) FindOrganismByID(id string) (organisms.Organism, error) {
	for _, o := range e.organisms {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, &organisms.NotFoundError{ID: id}
}

// Close releases every owned organism from the registry and drops them.
// The environment stays usable but empty.
func (e *Environment) Close() {
	e.registry.Close()
	e.organisms = nil
}
