package environment

import (
	"fmt"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

// SimulateDay advances the environment by one day and returns the new day
// counter. Phases run in a fixed order:
//
//  1. increment the day counter
//  2. resample the weather with the configured chance
//  3. living plants photosynthesize
//  4. living carnivores hunt the herbivores alive when the phase began
//  5. herbivores still alive forage among the plants
//  6. every living organism pays its baseline metabolic cost
//
// A panic while updating one organism is recovered, logged and reported to the
// observer; the rest of the tick still runs.
func (e *Environment) SimulateDay() int {
	e.day++
	e.observer.DayStarted(e.day, e.weather)

	aliveBefore := e.living()

	e.observer.PhaseStarted(components.PhaseWeather)
	e.updateWeather()

	e.observer.PhaseStarted(components.PhasePhotosynthesis)
	e.updatePhotosynthesis()

	e.observer.PhaseStarted(components.PhaseHunting)
	e.updateHunting()

	e.observer.PhaseStarted(components.PhaseForaging)
	e.updateForaging()

	e.observer.PhaseStarted(components.PhaseMetabolism)
	e.updateMetabolism()

	for _, o := range aliveBefore {
		if !o.Alive() {
			e.observer.Died(o)
		}
	}

	e.observer.DayEnded(e.day)
	e.logger.Debug("day simulated",
		"environment", e.name,
		"day", e.day,
		"weather", string(e.weather),
		"organisms", len(e.organisms),
	)
	return e.day
}

// updateWeather resamples the weather uniformly with probability weatherP.
func (e *Environment) updateWeather() {
	if e.rng.Float64() < e.weatherP {
		options := components.AllWeather()
		e.weather = options[e.rng.Intn(len(options))]
	}
}

// updatePhotosynthesis lets every living plant gain energy from the weather.
func (e *Environment) updatePhotosynthesis() {
	for _, o := range e.organisms {
		p, ok := o.(organisms.Photosynthesizer)
		if !ok || !p.Alive() {
			continue
		}
		e.isolate(components.PhasePhotosynthesis, o, func() {
			yield := p.Photosynthesize(e.weather)
			e.observer.Photosynthesized(p, yield)
		})
	}
}

// updateHunting runs one hunt per living carnivore against the herbivores
// alive at the start of the phase.
func (e *Environment) updateHunting() {
	prey := e.livingOfKind(components.KindHerbivore)
	for _, o := range e.livingOfKind(components.KindCarnivore) {
		e.hunt(components.PhaseHunting, o, prey)
	}
}

// updateForaging runs one forage per herbivore that survived the hunt.
func (e *Environment) updateForaging() {
	plants := e.OrganismsByKind(components.KindPlant)
	for _, o := range e.livingOfKind(components.KindHerbivore) {
		e.hunt(components.PhaseForaging, o, plants)
	}
}

func (e *Environment) hunt(phase components.Phase, o organisms.Organism, candidates []organisms.Organism) {
	a, ok := o.(organisms.Animal)
	if !ok || !a.Alive() {
		return
	}
	e.isolate(phase, o, func() {
		before := a.Energy()
		success := a.Hunt(candidates, e.rng)
		gained := 0.0
		if success {
			gained = a.Energy() - before
		}
		e.observer.Hunted(a, success, gained)
	})
}

// updateMetabolism charges every living organism its baseline cost.
// Plain organisms have no metabolism.
func (e *Environment) updateMetabolism() {
	for _, o := range e.organisms {
		if !o.Alive() {
			continue
		}
		var cost float64
		switch o.Kind() {
		case components.KindPlant:
			cost = e.metabolism.PlantCost
		case components.KindHerbivore, components.KindCarnivore:
			a, ok := o.(organisms.Animal)
			if !ok {
				continue
			}
			cost = e.metabolism.AnimalCost(a.Speed())
		default:
			continue
		}
		e.isolate(components.PhaseMetabolism, o, func() {
			o.ConsumeEnergy(cost)
		})
	}
}

// isolate runs fn and converts a panic into a logged, observed failure.
func (e *Environment) isolate(phase components.Phase, o organisms.Organism, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: organism %s: %v", phase, o.ID(), r)
			e.logger.Warn("organism update failed",
				"phase", string(phase),
				"id", o.ID(),
				"error", err,
			)
			e.observer.Failed(phase, o, err)
		}
	}()
	fn()
}

func (e *Environment) living() []organisms.Organism {
	var out []organisms.Organism
	for _, o := range e.organisms {
		if o.Alive() {
			out = append(out, o)
		}
	}
	return out
}

func (e *Environment) livingOfKind(kind components.Kind) []organisms.Organism {
	var out []organisms.Organism
	for _, o := range e.organisms {
		if o.Kind() == kind && o.Alive() {
			out = append(out, o)
		}
	}
	return out
}
