package organisms

import (
	"fmt"

	"github.com/pthm-cable/ecosim/components"
)

// Animal is an organism that moves and feeds on other organisms.
type Animal interface {
	Organism
	Speed() float64
	Diet() components.Diet
	// Feedings counts successful feeding events.
	Feedings() int
	// Hunt picks prey from candidates and reports whether it fed.
	Hunt(candidates []Organism, rng Rand) bool
}

// AnimalTraits holds the state shared by herbivores and carnivores.
type AnimalTraits struct {
	Base
	speed    float64
	diet     components.Diet
	feedings int
}

func newAnimalTraits(id, species string, energy float64, alive bool, speed float64, diet components.Diet) (AnimalTraits, error) {
	b, err := newBase(id, species, energy, alive)
	if err != nil {
		return AnimalTraits{}, err
	}
	if !(speed > 0) {
		return AnimalTraits{}, invalid("speed", fmt.Sprintf("must be positive, got %v", speed))
	}
	return AnimalTraits{Base: b, speed: speed, diet: diet}, nil
}

func (a *AnimalTraits) Speed() float64 { return a.speed }

func (a *AnimalTraits) Diet() components.Diet { return a.diet }

func (a *AnimalTraits) Feedings() int { return a.feedings }

// Hunt does nothing for an unspecialised animal.
func (a *AnimalTraits) Hunt([]Organism, Rand) bool {
	return false
}

func (a *AnimalTraits) Summary() string {
	return fmt.Sprintf("%s | Speed: %s | Diet: %s", a.Base.Summary(), formatNumber(a.speed), a.diet)
}

func (a *AnimalTraits) animal() *AnimalTraits { return a }

func (a *AnimalTraits) fed() {
	a.feedings++
}

// living returns the living candidates of the given kind.
func living(candidates []Organism, kind components.Kind) []Organism {
	var out []Organism
	for _, c := range candidates {
		if c != nil && c.Kind() == kind && c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// livingAnimals returns the shared animal state of the living candidates of
// the given kind.
func livingAnimals(candidates []Organism, kind components.Kind) []*AnimalTraits {
	var out []*AnimalTraits
	for _, c := range candidates {
		if c == nil || c.Kind() != kind || !c.Alive() {
			continue
		}
		if a := c.animal(); a != nil {
			out = append(out, a)
		}
	}
	return out
}
