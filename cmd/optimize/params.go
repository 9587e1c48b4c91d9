// Package main provides CMA-ES optimization for ecosystem parameters.
package main

import (
	"slices"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Metabolism
			{Name: "plant_cost", Path: "metabolism.plant_cost", Min: 0.2, Max: 3.0, Default: 1.0},
			{Name: "animal_base_cost", Path: "metabolism.animal_base_cost", Min: 0.5, Max: 5.0, Default: 2.0},
			{Name: "animal_speed_cost", Path: "metabolism.animal_speed_cost", Min: 0.0, Max: 0.5, Default: 0.1},
			// Environment
			{Name: "weather_change_chance", Path: "environment.weather_change_chance", Min: 0.0, Max: 1.0, Default: 0.3},
			// Seed population
			{Name: "plant_growth_scale", Path: "population[plant].growth_rate", Min: 0.25, Max: 3.0, Default: 1.0},
			{Name: "herbivore_speed", Path: "population[herbivore].speed", Min: 1.0, Max: 10.0, Default: 3.0},
			{Name: "carnivore_speed", Path: "population[carnivore].speed", Min: 1.0, Max: 10.0, Default: 5.0},
			{Name: "hunting_efficiency", Path: "population[carnivore].hunting_efficiency", Min: 0.05, Max: 1.0, Default: 0.7},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Plant growth rates are scaled; animal traits are overwritten for every
// seed organism of the matching kind.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	cfg.Metabolism.PlantCost = clamped[0]
	cfg.Metabolism.AnimalBaseCost = clamped[1]
	cfg.Metabolism.AnimalSpeedCost = clamped[2]
	cfg.Environment.WeatherChangeChance = clamped[3]

	growthScale := clamped[4]
	for i := range cfg.Population {
		oc := &cfg.Population[i]
		kind, ok := components.ParseKind(oc.Kind)
		if !ok {
			continue
		}
		switch kind {
		case components.KindPlant:
			oc.GrowthRate *= growthScale
		case components.KindHerbivore:
			oc.Speed = clamped[5]
		case components.KindCarnivore:
			oc.Speed = clamped[6]
			oc.HuntingEfficiency = clamped[7]
		}
	}
}

// ExtractFromConfig extracts current parameter values from a Config struct.
// Animal traits are read from the first seed organism of each kind; the
// growth scale is always 1 relative to the config's own rates.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	v := pv.DefaultVector()
	v[0] = cfg.Metabolism.PlantCost
	v[1] = cfg.Metabolism.AnimalBaseCost
	v[2] = cfg.Metabolism.AnimalSpeedCost
	v[3] = cfg.Environment.WeatherChangeChance
	v[4] = 1.0

	var herbivoreSeen, carnivoreSeen bool
	for _, oc := range cfg.Population {
		kind, ok := components.ParseKind(oc.Kind)
		if !ok {
			continue
		}
		switch {
		case kind == components.KindHerbivore && !herbivoreSeen:
			v[5] = oc.Speed
			herbivoreSeen = true
		case kind == components.KindCarnivore && !carnivoreSeen:
			v[6] = oc.Speed
			v[7] = oc.HuntingEfficiency
			carnivoreSeen = true
		}
	}
	return v
}

// copyConfig returns a copy of cfg whose seed population can be modified
// independently.
func copyConfig(cfg *config.Config) *config.Config {
	c := *cfg
	c.Population = slices.Clone(cfg.Population)
	return &c
}
