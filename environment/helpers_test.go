package environment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

// scriptedRand replays fixed draws. Once a script runs out it keeps returning
// the last value (or 0).
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

// recorder captures observer events in order.
type recorder struct {
	NopObserver
	phases []components.Phase
	died   []string
	failed []string
	hunts  []bool
	yields []float64
	days   []int
}

func (r *recorder) PhaseStarted(p components.Phase) { r.phases = append(r.phases, p) }
func (r *recorder) Died(o organisms.Organism)        { r.died = append(r.died, o.ID()) }
func (r *recorder) DayEnded(day int)                 { r.days = append(r.days, day) }

func (r *recorder) Failed(_ components.Phase, o organisms.Organism, _ error) {
	r.failed = append(r.failed, o.ID())
}

func (r *recorder) Hunted(_ organisms.Animal, success bool, _ float64) {
	r.hunts = append(r.hunts, success)
}

func (r *recorder) Photosynthesized(_ organisms.Organism, yield float64) {
	r.yields = append(r.yields, yield)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv returns a sunny environment whose weather never changes.
func newTestEnv(rng organisms.Rand, obs Observer) *Environment {
	opts := DefaultOptions("Test", components.Sunny)
	opts.Rand = rng
	opts.Observer = obs
	opts.Logger = quietLogger()
	opts.WeatherChangeChance = 0
	return NewWithOptions(opts)
}

func mustPlant(t *testing.T, id string, energy, growth float64) *organisms.Plant {
	t.Helper()
	p, err := organisms.NewPlant(id, "Grass", energy, true, growth)
	require.NoError(t, err)
	return p
}

func mustHerbivore(t *testing.T, id string, energy, speed float64) *organisms.Herbivore {
	t.Helper()
	h, err := organisms.NewHerbivore(id, "Rabbit", energy, true, speed, "grass")
	require.NoError(t, err)
	return h
}

func mustCarnivore(t *testing.T, id string, energy, speed, eff float64) *organisms.Carnivore {
	t.Helper()
	c, err := organisms.NewCarnivore(id, "Wolf", energy, true, speed, eff)
	require.NoError(t, err)
	return c
}
