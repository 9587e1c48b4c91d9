// Package organisms implements the organism hierarchy: a plain organism, plants,
// and the two animal variants that feed on them.
//
// The variant set is closed. Organism carries an unexported method so that only
// the types in this package satisfy it, and every pairwise rule is dispatched on
// Kind rather than on concrete types.
package organisms

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pthm-cable/ecosim/components"
)

// Rand is the source of randomness used by hunting and foraging.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Organism is the capability set shared by every variant.
type Organism interface {
	ID() string
	Species() string
	Kind() components.Kind
	Energy() float64
	// SetEnergy clamps to zero. Reaching zero kills the organism permanently.
	SetEnergy(v float64)
	Alive() bool
	// ConsumeEnergy reduces energy by amount and reports whether the organism
	// is still alive.
	ConsumeEnergy(amount float64) bool
	// Interact applies the pairwise feeding rule between the receiver and
	// other, reporting whether anything happened.
	Interact(other Organism, rng Rand) bool
	// Summary renders a one-line status.
	Summary() string

	base() *Base
	// animal returns the shared animal state, or nil for plants and plain
	// organisms.
	animal() *AnimalTraits
}

// Base is the plain organism. Variants embed it.
type Base struct {
	id      string
	species string
	energy  float64
	alive   bool
}

// NewOrganism creates a plain organism with no specialised behaviour.
func NewOrganism(id, species string, energy float64, alive bool) (*Base, error) {
	b, err := newBase(id, species, energy, alive)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func newBase(id, species string, energy float64, alive bool) (Base, error) {
	if id == "" {
		return Base{}, invalid("id", "organism ID must be a non-empty string")
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return Base{}, invalid("energy", "must be a finite number")
	}
	if energy < 0 {
		return Base{}, invalid("energy", fmt.Sprintf("must not be negative, got %v", energy))
	}
	return Base{
		id:      id,
		species: species,
		energy:  energy,
		alive:   alive && energy > 0,
	}, nil
}

func (b *Base) ID() string { return b.id }
func (b *Base) Species() string { return b.species }
func (b *Base) Kind() components.Kind { return components.KindOrganism }
func (b *Base) Energy() float64 { return b.energy }
func (b *Base) Alive() bool { return b.alive }
func (b *Base) base() *Base { return b }
func (b *Base) animal() *AnimalTraits { return nil }

// SetEnergy stores max(0, v). Death is terminal: a dead organism may hold
// energy again but never becomes alive.
func (b *Base) SetEnergy(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	b.energy = v
	if b.energy <= 0 {
		b.alive = false
	}
}

func (b *Base) ConsumeEnergy(amount float64) bool {
	b.SetEnergy(b.energy - amount)
	return b.alive
}

// Interact has no effect for a plain organism.
func (b *Base) Interact(Organism, Rand) bool {
	return false
}

func (b *Base) Summary() string {
	status := "Alive"
	if !b.alive {
		status = "Dead"
	}
	return fmt.Sprintf("%s | %s | Energy: %s | Status: %s", b.id, b.species, formatNumber(b.energy), status)
}

// transfer moves min(limit, from's energy) from one organism to another and
// returns the amount moved.
func transfer(from, to Organism, limit float64) float64 {
	amount := math.Min(limit, from.Energy())
	to.SetEnergy(to.Energy() + amount)
	from.SetEnergy(from.Energy() - amount)
	return amount
}

// formatNumber renders v without trailing zeros ("50", "2.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
