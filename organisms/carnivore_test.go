package organisms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
)

func TestNewCarnivore(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)

	assert.Equal(t, 5.0, c.Speed())
	assert.Equal(t, 0.7, c.HuntingEfficiency())
	assert.Equal(t, components.DietCarnivore, c.Diet())
	assert.Equal(t, components.KindCarnivore, c.Kind())
}

func TestNewCarnivore_RejectsEfficiencyOutOfRange(t *testing.T) {
	for _, eff := range []float64{-0.1, 1.5} {
		_, err := NewCarnivore("C001", "Wolf", 80, true, 5, eff)
		assert.True(t, errors.Is(err, ErrInvalidInput), "efficiency %v", eff)
	}
}

func TestHuntChance_Formula(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")

	// 0.7 × (5 / (3 + 1))
	assert.InDelta(t, 0.875, c.HuntChance(h), 1e-12)
}

func TestCarnivoreHunt_SuccessAtThreshold(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")

	// A draw equal to the chance still succeeds.
	rng := &scriptedRand{floats: []float64{c.HuntChance(h)}}
	require.True(t, c.Hunt([]Organism{h}, rng))

	// min(0.7 × 70, 50) = 49
	assert.InDelta(t, 129.0, c.Energy(), 1e-9)
	assert.Equal(t, 0.0, h.Energy())
	assert.False(t, h.Alive())
	assert.Equal(t, 1, c.Feedings())
}

func TestCarnivoreHunt_GainCapped(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Deer", 100, 1, "oak")

	require.True(t, c.Hunt([]Organism{h}, &scriptedRand{floats: []float64{0.1}}))
	assert.InDelta(t, 130.0, c.Energy(), 1e-9)
}

func TestCarnivoreHunt_MissCostsEnergy(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")

	rng := &scriptedRand{floats: []float64{0.876}}
	assert.False(t, c.Hunt([]Organism{h}, rng))
	assert.Equal(t, 75.0, c.Energy())
	assert.Equal(t, 70.0, h.Energy())
	assert.True(t, h.Alive())
	assert.Equal(t, 0, c.Feedings())
}

func TestCarnivoreHunt_MissCanKill(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 4, 1, 0.1)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 9, "grass")

	assert.False(t, c.Hunt([]Organism{h}, &scriptedRand{floats: []float64{0.99}}))
	assert.Equal(t, 0.0, c.Energy())
	assert.False(t, c.Alive())
}

func TestCarnivoreHunt_PicksAmongLivingHerbivores(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	dead, err := NewHerbivore("H000", "Dead Rabbit", 0, false, 3, "grass")
	require.NoError(t, err)
	first := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")
	second := mustHerbivore(t, "H002", "Deer", 60, 3, "oak")
	plant := mustPlant(t, "P001", "Grass", 50, 0.3)

	rng := &scriptedRand{ints: []int{1}, floats: []float64{0}}
	require.True(t, c.Hunt([]Organism{dead, plant, first, second}, rng))

	assert.True(t, first.Alive())
	assert.False(t, second.Alive())
	assert.Equal(t, 50.0, plant.Energy())
}

func TestCarnivoreHunt_NoPrey(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	deadHerb, err := NewHerbivore("H002", "Dead Rabbit", 0, false, 3, "grass")
	require.NoError(t, err)

	rng := &scriptedRand{}
	assert.False(t, c.Hunt(nil, rng))
	assert.False(t, c.Hunt([]Organism{mustPlant(t, "P003", "Plant", 50, 0.3)}, rng))
	assert.False(t, c.Hunt([]Organism{deadHerb}, rng))
	assert.Equal(t, 80.0, c.Energy(), "no prey means no failed-attempt cost")
}

func TestCarnivoreHunt_DeadCarnivore(t *testing.T) {
	c, err := NewCarnivore("C002", "Dead Wolf", 0, false, 5, 0.7)
	require.NoError(t, err)
	h := mustHerbivore(t, "H003", "Live Rabbit", 70, 3, "grass")

	assert.False(t, c.Hunt([]Organism{h}, &scriptedRand{}))
	assert.True(t, h.Alive())
}

func TestCarnivoreInteract(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")

	require.True(t, c.Interact(h, &scriptedRand{floats: []float64{0.7}}))
	assert.Equal(t, 120.0, c.Energy())
	assert.False(t, h.Alive())
	assert.Equal(t, 1, c.Feedings())
}

func TestCarnivoreInteract_Miss(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	h := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")

	assert.False(t, c.Interact(h, &scriptedRand{floats: []float64{0.71}}))
	assert.Equal(t, 80.0, c.Energy(), "a missed encounter costs nothing")
	assert.True(t, h.Alive())
}

func TestCarnivoreInteract_IgnoresPlants(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	p := mustPlant(t, "P001", "Oak", 100, 0.2)

	assert.False(t, c.Interact(p, &scriptedRand{}))
	assert.Equal(t, 100.0, p.Energy())
}

func TestLivingAnimals_FiltersByKindAndLife(t *testing.T) {
	wolf := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	rabbit := mustHerbivore(t, "H001", "Rabbit", 70, 3, "grass")
	dead, err := NewHerbivore("H002", "Dead Rabbit", 0, false, 3, "grass")
	require.NoError(t, err)
	plant := mustPlant(t, "P001", "Grass", 50, 0.3)
	plain, err := NewOrganism("O001", "Moss", 10, true)
	require.NoError(t, err)

	assert.Nil(t, plant.animal())
	assert.Nil(t, plain.animal())

	got := livingAnimals([]Organism{wolf, nil, dead, plant, plain, rabbit}, components.KindHerbivore)
	require.Len(t, got, 1)
	assert.Same(t, &rabbit.AnimalTraits, got[0])
	assert.Equal(t, 3.0, got[0].Speed())
}

func TestCarnivoreHunt_IgnoresOtherCarnivores(t *testing.T) {
	c := mustCarnivore(t, "C001", "Wolf", 80, 5, 0.7)
	rival := mustCarnivore(t, "C002", "Fox", 60, 4, 0.5)

	assert.False(t, c.Hunt([]Organism{rival}, &scriptedRand{}))
	assert.Equal(t, 60.0, rival.Energy())
	assert.Equal(t, 80.0, c.Energy())
}
