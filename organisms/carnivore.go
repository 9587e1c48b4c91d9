package organisms

import (
	"fmt"
	"math"

	"github.com/pthm-cable/ecosim/components"
)

const (
	huntGainFraction = 0.7  // share of the prey's energy gained on a kill
	huntGainCap      = 50.0 // upper bound on energy gained from one hunt
	encounterGainCap = 40.0 // upper bound on energy gained from one encounter
	failedHuntCost   = 5.0  // energy spent on a missed hunt
)

// Carnivore hunts living herbivores.
type Carnivore struct {
	AnimalTraits
	efficiency float64
}

// NewCarnivore creates a carnivore. efficiency is a fraction in [0, 1].
func NewCarnivore(id, species string, energy float64, alive bool, speed, efficiency float64) (*Carnivore, error) {
	a, err := newAnimalTraits(id, species, energy, alive, speed, components.DietCarnivore)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(efficiency) || efficiency < 0 || efficiency > 1 {
		return nil, invalid("hunting efficiency", fmt.Sprintf("must be within [0, 1], got %v", efficiency))
	}
	return &Carnivore{AnimalTraits: a, efficiency: efficiency}, nil
}

func (c *Carnivore) Kind() components.Kind { return components.KindCarnivore }

func (c *Carnivore) HuntingEfficiency() float64 { return c.efficiency }

// HuntChance returns efficiency × speed / (prey speed + 1). The value is not
// clamped; anything at or above 1 always succeeds.
func (c *Carnivore) HuntChance(prey Animal) float64 {
	return c.efficiency * (c.Speed() / (prey.Speed() + 1))
}

// Hunt picks one living herbivore uniformly at random and attempts a kill.
// A kill gains min(0.7 × prey energy, 50) and zeroes the prey; a miss costs 5.
func (c *Carnivore) Hunt(candidates []Organism, rng Rand) bool {
	if !c.Alive() {
		return false
	}
	prey := livingAnimals(candidates, components.KindHerbivore)
	if len(prey) == 0 {
		return false
	}

	target := prey[rng.Intn(len(prey))]
	if rng.Float64() <= c.HuntChance(target) {
		gain := math.Min(target.Energy()*huntGainFraction, huntGainCap)
		c.SetEnergy(c.Energy() + gain)
		target.SetEnergy(0)
		c.fed()
		return true
	}

	c.ConsumeEnergy(failedHuntCost)
	return false
}

// Interact attacks a living herbivore, succeeding with probability equal to
// the hunting efficiency. Success gains min(40, prey energy) and kills it.
func (c *Carnivore) Interact(other Organism, rng Rand) bool {
	if other == nil || other.Kind() != components.KindHerbivore || !other.Alive() || !c.Alive() {
		return false
	}
	if rng.Float64() > c.efficiency {
		return false
	}
	gain := math.Min(encounterGainCap, other.Energy())
	c.SetEnergy(c.Energy() + gain)
	other.SetEnergy(0)
	c.fed()
	return true
}

func (c *Carnivore) Summary() string {
	return fmt.Sprintf("%s | Hunting Efficiency: %.2f", c.AnimalTraits.Summary(), c.efficiency)
}
