package menu

import (
	"fmt"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/environment"
)

// addOrganism walks the user through creating one organism.
func (m *Menu) addOrganism() error {
	m.printf("\nSelect organism type:\n")
	kinds := components.CensusKinds()
	for i, k := range kinds {
		m.printf("%d. %s\n", i+1, k)
	}
	idx, err := m.choose(fmt.Sprintf("Enter choice (1-%d): ", len(kinds)), len(kinds), "organism type")
	if err != nil {
		return err
	}
	kind := kinds[idx]

	oc := config.OrganismConfig{Kind: kind.String()}

	species := m.speciesFor(kind)
	if oc.Species, err = m.pickString("species", species); err != nil {
		return err
	}

	oc.Energy, err = m.readFloat(fmt.Sprintf("Enter energy level (%g-%g): ", m.cfg.MinEnergy, m.cfg.MaxEnergy))
	if err != nil {
		return err
	}
	if oc.Energy < m.cfg.MinEnergy || oc.Energy > m.cfg.MaxEnergy {
		return invalidf("energy", "must be between %g and %g", m.cfg.MinEnergy, m.cfg.MaxEnergy)
	}

	switch kind {
	case components.KindPlant:
		if oc.GrowthRate, err = m.pickFloat("growth rate", m.cfg.GrowthRates); err != nil {
			return err
		}
	case components.KindHerbivore:
		if oc.Speed, err = m.pickFloat("speed", m.cfg.HerbivoreSpeeds); err != nil {
			return err
		}
		if oc.Preference, err = m.pickString("plant preference", m.cfg.PlantPreferences); err != nil {
			return err
		}
	case components.KindCarnivore:
		if oc.Speed, err = m.pickFloat("speed", m.cfg.CarnivoreSpeeds); err != nil {
			return err
		}
		if oc.HuntingEfficiency, err = m.pickFloat("hunting efficiency", m.cfg.HuntingEfficiencies); err != nil {
			return err
		}
	}

	oc.ID = m.freshID(kind)
	o, err := environment.NewOrganism(oc)
	if err != nil {
		return err
	}
	if !m.env.AddOrganism(o) {
		m.printf("Organism with ID %s already exists.\n", oc.ID)
		return nil
	}
	m.logger.Info("organism added", "id", oc.ID, "kind", kind.String(), "species", oc.Species)
	m.printf("%s '%s' added successfully.\n", kind, oc.ID)
	return nil
}

// freshID draws ids from the environment sequence until one is unused.
func (m *Menu) freshID(kind components.Kind) string {
	for {
		id := m.env.NextOrganismID(kind)
		if _, err := m.env.FindOrganismByID(id); err != nil {
			return id
		}
	}
}

func (m *Menu) speciesFor(kind components.Kind) []string {
	switch kind {
	case components.KindPlant:
		return m.cfg.PlantSpecies
	case components.KindHerbivore:
		return m.cfg.HerbivoreSpecies
	default:
		return m.cfg.CarnivoreSpecies
	}
}

// choose reads a 1-based selection and returns it 0-based.
func (m *Menu) choose(prompt string, n int, what string) (int, error) {
	if n == 0 {
		return 0, invalidf(what, "no options configured")
	}
	c, err := m.readInt(prompt)
	if err != nil {
		return 0, err
	}
	if c < 1 || c > n {
		return 0, invalidf(what, "selection %d out of range", c)
	}
	return c - 1, nil
}

func (m *Menu) pickString(what string, options []string) (string, error) {
	m.printf("\nSelect %s:\n", what)
	for i, opt := range options {
		m.printf("%d. %s\n", i+1, opt)
	}
	idx, err := m.choose(fmt.Sprintf("Enter choice (1-%d): ", len(options)), len(options), what)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

func (m *Menu) pickFloat(what string, options []float64) (float64, error) {
	m.printf("\nSelect %s:\n", what)
	for i, opt := range options {
		m.printf("%d. %g\n", i+1, opt)
	}
	idx, err := m.choose(fmt.Sprintf("Enter choice (1-%d): ", len(options)), len(options), what)
	if err != nil {
		return 0, err
	}
	return options[idx], nil
}
