package environment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

func TestNew_InvalidWeatherFallsBack(t *testing.T) {
	env := New("Forest", components.Weather("foggy"))
	assert.Equal(t, components.Sunny, env.Weather())
	assert.Equal(t, "Forest", env.Name())
	assert.Equal(t, 0, env.Day())
}

func TestSetWeather(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)

	env.SetWeather(components.Rainy)
	assert.Equal(t, components.Rainy, env.Weather())

	env.SetWeather(components.Weather("snowy"))
	assert.Equal(t, components.Rainy, env.Weather(), "invalid weather is ignored")
}

func TestAddOrganism_RejectsDuplicateID(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)

	require.True(t, env.AddOrganism(mustPlant(t, "P001", 50, 0.2)))
	before := env.PopulationCount()

	assert.False(t, env.AddOrganism(mustPlant(t, "P001", 80, 0.3)))
	assert.Equal(t, 1, env.Len())
	assert.Equal(t, before, env.PopulationCount())
	assert.False(t, env.AddOrganism(nil))
}

func TestRemoveOrganism(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	env.AddOrganism(mustPlant(t, "P001", 50, 0.2))
	env.AddOrganism(mustPlant(t, "P002", 50, 0.2))

	assert.True(t, env.RemoveOrganism("P001"))
	assert.False(t, env.RemoveOrganism("P001"))
	require.Equal(t, 1, env.Len())
	assert.Equal(t, "P002", env.Organisms()[0].ID())
	assert.False(t, env.Registry().Tracked("P001"))
}

func TestRemoveOrganism_ClearsVacatedSlot(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	env.AddOrganism(mustPlant(t, "P001", 50, 0.2))
	env.AddOrganism(mustPlant(t, "P002", 50, 0.2))
	env.AddOrganism(mustPlant(t, "P003", 50, 0.2))

	require.True(t, env.RemoveOrganism("P002"))
	require.Equal(t, 2, env.Len())

	tail := env.organisms[:3]
	assert.Equal(t, "P001", tail[0].ID())
	assert.Equal(t, "P003", tail[1].ID())
	assert.Nil(t, tail[2], "removed organism must not stay reachable")
}

func TestFindOrganismByID(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	p := mustPlant(t, "P001", 50, 0.2)
	env.AddOrganism(p)

	found, err := env.FindOrganismByID("P001")
	require.NoError(t, err)
	assert.Same(t, p, found)

	_, err = env.FindOrganismByID("X999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, organisms.ErrOrganismNotFound))
	assert.Equal(t, "organism with ID X999 not found", err.Error())
}

func TestOrganisms_ReturnsCopy(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	env.AddOrganism(mustPlant(t, "P001", 50, 0.2))

	list := env.Organisms()
	list[0] = nil
	assert.NotNil(t, env.Organisms()[0])
}

func TestNextOrganismID(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)

	assert.Equal(t, "P001", env.NextOrganismID(components.KindPlant))
	assert.Equal(t, "H002", env.NextOrganismID(components.KindHerbivore))
	assert.Equal(t, "C003", env.NextOrganismID(components.KindCarnivore))
	assert.Equal(t, 4, env.NextID())
}

func TestPopulationCount(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	env.AddOrganism(mustPlant(t, "P001", 50, 0.2))
	env.AddOrganism(mustPlant(t, "P002", 50, 0.2))
	env.AddOrganism(mustHerbivore(t, "H001", 70, 3))
	dead := mustCarnivore(t, "C001", 80, 5, 0.7)
	dead.SetEnergy(0)
	env.AddOrganism(dead)
	plain, err := organisms.NewOrganism("O001", "Fungus", 10, true)
	require.NoError(t, err)
	env.AddOrganism(plain)

	assert.Equal(t, map[string]int{"Plant": 2, "Herbivore": 1, "Carnivore": 0}, env.PopulationCount())

	census := env.Census()
	assert.Equal(t, 5, census.Total)
	assert.Equal(t, 4, census.Alive)
	assert.Equal(t, 1, census.Dead)
	assert.True(t, census.Extinct())
}

func TestRegistryTracksOwnership(t *testing.T) {
	env := newTestEnv(&scriptedRand{}, nil)
	env.AddOrganism(mustPlant(t, "P001", 50, 0.2))
	env.AddOrganism(mustHerbivore(t, "H001", 70, 3))

	lc, ok := env.Registry().Lookup("H001")
	require.True(t, ok)
	assert.Equal(t, components.KindHerbivore, lc.Kind)
	assert.Equal(t, 2, env.Registry().Live())

	env.Close()
	assert.Equal(t, 0, env.Registry().Live())
	assert.Equal(t, 0, env.Len())
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := newTestEnv(&scriptedRand{}, nil)
	b := newTestEnv(&scriptedRand{}, nil)
	a.AddOrganism(mustPlant(t, "P001", 50, 0.2))

	assert.Equal(t, 1, a.Registry().Live())
	assert.Equal(t, 0, b.Registry().Live())
}
