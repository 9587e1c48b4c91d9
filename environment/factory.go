package environment

import (
	"fmt"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/organisms"
)

// NewOrganism builds a living organism from its configuration entry.
func NewOrganism(oc config.OrganismConfig) (organisms.Organism, error) {
	kind, ok := components.ParseKind(oc.Kind)
	if !ok {
		return nil, &organisms.InputError{Field: "kind", Reason: fmt.Sprintf("unknown kind %q", oc.Kind)}
	}
	var (
		o   organisms.Organism
		err error
	)
	switch kind {
	case components.KindPlant:
		o, err = asOrganism(organisms.NewPlant(oc.ID, oc.Species, oc.Energy, true, oc.GrowthRate))
	case components.KindHerbivore:
		o, err = asOrganism(organisms.NewHerbivore(oc.ID, oc.Species, oc.Energy, true, oc.Speed, oc.Preference))
	case components.KindCarnivore:
		o, err = asOrganism(organisms.NewCarnivore(oc.ID, oc.Species, oc.Energy, true, oc.Speed, oc.HuntingEfficiency))
	default:
		o, err = asOrganism(organisms.NewOrganism(oc.ID, oc.Species, oc.Energy, true))
	}
	return o, err
}

// asOrganism keeps a failed constructor from yielding a typed nil interface.
func asOrganism[T organisms.Organism](o T, err error) (organisms.Organism, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Populate adds one organism per entry. It stops at the first invalid or
// duplicate entry; organisms added before it stay in the environment.
func (e *Environment) Populate(entries []config.OrganismConfig) error {
	for i, oc := range entries {
		o, err := NewOrganism(oc)
		if err != nil {
			return fmt.Errorf("population[%d]: %w", i, err)
		}
		if !e.AddOrganism(o) {
			return fmt.Errorf("population[%d]: duplicate organism id %q", i, oc.ID)
		}
	}
	e.logger.Info("environment populated",
		"environment", e.name,
		"organisms", len(e.organisms),
	)
	return nil
}
