package organisms

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/ecosim/components"
)

// forageCap bounds the energy a herbivore takes from one plant per feeding.
const forageCap = 25.0

// Herbivore forages living plants, preferring one species.
type Herbivore struct {
	AnimalTraits
	preference string
}

// NewHerbivore creates a herbivore. preference is matched case-insensitively
// against plant species names.
func NewHerbivore(id, species string, energy float64, alive bool, speed float64, preference string) (*Herbivore, error) {
	a, err := newAnimalTraits(id, species, energy, alive, speed, components.DietHerbivore)
	if err != nil {
		return nil, err
	}
	return &Herbivore{AnimalTraits: a, preference: preference}, nil
}

func (h *Herbivore) Kind() components.Kind { return components.KindHerbivore }

func (h *Herbivore) Preference() string { return h.preference }

// Hunt forages one living plant among candidates. Plants of the preferred
// species are chosen first; the pick within the chosen pool is uniform.
func (h *Herbivore) Hunt(candidates []Organism, rng Rand) bool {
	if !h.Alive() {
		return false
	}
	plants := living(candidates, components.KindPlant)
	if len(plants) == 0 {
		return false
	}

	pool := plants
	if preferred := h.preferred(plants); len(preferred) > 0 {
		pool = preferred
	}
	target := pool[rng.Intn(len(pool))]

	transfer(target, h, forageCap)
	h.fed()
	return true
}

func (h *Herbivore) preferred(plants []Organism) []Organism {
	var out []Organism
	for _, p := range plants {
		if strings.EqualFold(p.Species(), h.preference) {
			out = append(out, p)
		}
	}
	return out
}

// Interact eats up to 25 energy from a living plant.
func (h *Herbivore) Interact(other Organism, _ Rand) bool {
	if other == nil || other.Kind() != components.KindPlant || !other.Alive() || !h.Alive() {
		return false
	}
	transfer(other, h, forageCap)
	h.fed()
	return true
}

func (h *Herbivore) Summary() string {
	return fmt.Sprintf("%s | Preference: %s", h.AnimalTraits.Summary(), h.preference)
}
