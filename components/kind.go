// Package components defines the closed value types shared across the simulation.
package components

// Kind identifies the concrete organism variant.
type Kind uint8

const (
	KindOrganism Kind = iota // Plain organism with no specialised behaviour
	KindPlant
	KindHerbivore
	KindCarnivore
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Prefix returns the letter used for sequential organism ids ("P001").
func (k Kind) Prefix() string {
	switch k {
	case KindPlant:
		return "P"
	case KindHerbivore:
		return "H"
	case KindCarnivore:
		return "C"
	default:
		return "O"
	}
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"Organism", "Plant", "Herbivore", "Carnivore"}
}

// CensusKinds returns the kinds reported in population counts.
func CensusKinds() []Kind {
	return []Kind{KindPlant, KindHerbivore, KindCarnivore}
}

// ParseKind resolves a display name or lowercase name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "Organism", "organism":
		return KindOrganism, true
	case "Plant", "plant":
		return KindPlant, true
	case "Herbivore", "herbivore":
		return KindHerbivore, true
	case "Carnivore", "carnivore":
		return KindCarnivore, true
	}
	return KindOrganism, false
}

// Diet classifies what an animal eats.
type Diet string

const (
	DietHerbivore Diet = "herbivore"
	DietCarnivore Diet = "carnivore"
)
