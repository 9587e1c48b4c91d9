package organisms

import (
	"fmt"

	"github.com/pthm-cable/ecosim/components"
)

const (
	// photosynthesisBase scales growth rate × weather factor into energy.
	photosynthesisBase = 10.0
	// grazeCap bounds the energy a plant gives up to a herbivore per encounter.
	grazeCap = 25.0
)

// Photosynthesizer is an organism that gains energy from the weather.
type Photosynthesizer interface {
	Organism
	Photosynthesize(weather components.Weather) float64
}

// Plant produces energy through photosynthesis.
type Plant struct {
	Base
	growthRate float64
}

// NewPlant creates a plant. growthRate is a positive fraction, typically 0.1-0.5.
func NewPlant(id, species string, energy float64, alive bool, growthRate float64) (*Plant, error) {
	b, err := newBase(id, species, energy, alive)
	if err != nil {
		return nil, err
	}
	if !(growthRate > 0) {
		return nil, invalid("growth rate", fmt.Sprintf("must be positive, got %v", growthRate))
	}
	return &Plant{Base: b, growthRate: growthRate}, nil
}

func (p *Plant) Kind() components.Kind { return components.KindPlant }

func (p *Plant) GrowthRate() float64 { return p.growthRate }

// Photosynthesize adds 10 × growth rate × weather factor to the plant's energy
// and returns the yield. Unrecognised weather uses a factor of 0.5.
func (p *Plant) Photosynthesize(weather components.Weather) float64 {
	yield := photosynthesisBase * p.growthRate * weather.Factor()
	p.SetEnergy(p.Energy() + yield)
	return yield
}

// Interact feeds a living herbivore up to 25 energy from a living plant.
func (p *Plant) Interact(other Organism, _ Rand) bool {
	if other == nil || other.Kind() != components.KindHerbivore || !other.Alive() || !p.Alive() {
		return false
	}
	transfer(p, other, grazeCap)
	return true
}

func (p *Plant) Summary() string {
	return fmt.Sprintf("%s | Growth Rate: %s", p.Base.Summary(), formatNumber(p.growthRate))
}
