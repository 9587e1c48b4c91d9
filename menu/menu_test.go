package menu

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/environment"
)

// run feeds input lines to a menu over the seed forest and returns the
// transcript and the environment.
func run(t *testing.T, lines ...string) (string, *environment.Environment) {
	t.Helper()
	var out bytes.Buffer
	m := newMenu(t, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, m.Run())
	return out.String(), m.env
}

// newMenu builds a menu over the seed forest reading from r.
func newMenu(t *testing.T, r io.Reader, w io.Writer) *Menu {
	t.Helper()
	cfg, err := config.Defaults()
	require.NoError(t, err)

	opts := environment.OptionsFromConfig(cfg)
	opts.Seed = 1
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	env := environment.NewWithOptions(opts)
	require.NoError(t, env.Populate(cfg.Population))
	t.Cleanup(env.Close)

	m := New(env, cfg.Menu, r, w)
	m.logger = opts.Logger
	return m
}

func TestRun_StatusAndExit(t *testing.T) {
	out, _ := run(t, "0")

	assert.Contains(t, out, "===== ECOSYSTEM SIMULATION =====")
	assert.Contains(t, out, "Environment: Forest Ecosystem")
	assert.Contains(t, out, "Weather: sunny")
	assert.Contains(t, out, "Total Organisms: 5")
	assert.Contains(t, out, "  Plant: 3\n  Herbivore: 1\n  Carnivore: 1\n")
	assert.Contains(t, out, "Simulation Day: 0")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the Ecosystem Simulation.\n"))
}

func TestRun_EndOfInput(t *testing.T) {
	out, _ := run(t)
	assert.NotContains(t, out, "Thank you")
}

func TestRun_AddPlant(t *testing.T) {
	// Plant, Fern, energy 50, growth rate 0.2, then list and exit.
	out, env := run(t, "1", "1", "4", "50", "2", "4", "0")

	assert.Contains(t, out, "Plant 'P004' added successfully.")
	assert.Contains(t, out, "P004 | Fern | Energy: 50 | Status: Alive | Growth Rate: 0.2")
	assert.Equal(t, 6, env.Len())
}

func TestRun_AddHerbivore(t *testing.T) {
	// Herbivore, Deer, energy 60, speed 3, prefers Grass.
	out, env := run(t, "1", "2", "2", "60", "3", "1", "0")

	assert.Contains(t, out, "Herbivore 'H002' added successfully.")
	o, err := env.FindOrganismByID("H002")
	require.NoError(t, err)
	assert.Equal(t, "Deer", o.Species())
	assert.Equal(t, 60.0, o.Energy())
}

func TestRun_AddCarnivore(t *testing.T) {
	// Carnivore, Lynx, energy 90, speed 7, efficiency 0.5.
	out, _ := run(t, "1", "3", "5", "90", "5", "3", "4", "0")

	assert.Contains(t, out, "Carnivore 'C002' added successfully.")
	assert.Contains(t, out, "C002 | Lynx | Energy: 90 | Status: Alive | Speed: 7 | Diet: carnivore | Hunting Efficiency: 0.50")
}

func TestRun_AddRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"type", []string{"1", "4", "0"}, "Error adding organism: invalid organism type: selection 4 out of range"},
		{"species", []string{"1", "1", "9", "0"}, "Error adding organism: invalid species: selection 9 out of range"},
		{"energy", []string{"1", "1", "1", "500", "0"}, "Error adding organism: invalid energy: must be between 10 and 100"},
		{"not a number", []string{"1", "1", "1", "lots", "0"}, `Error adding organism: invalid number: "lots" is not a number`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, env := run(t, tt.lines...)
			assert.Contains(t, out, tt.want)
			assert.Equal(t, 5, env.Len())
		})
	}
}

func TestRun_SimulateOneDay(t *testing.T) {
	out, env := run(t, "2", "0")

	assert.Contains(t, out, "Day 1 simulated successfully.")
	assert.Contains(t, out, "Living organisms: ")
	assert.Contains(t, out, "Dead organisms: ")
	assert.Equal(t, 1, env.Day())
}

func TestRun_SimulateMultipleDays(t *testing.T) {
	out, env := run(t, "3", "5", "0")

	assert.Contains(t, out, "5 days simulated successfully.")
	assert.Contains(t, out, "Current day: 5")
	assert.Equal(t, 5, env.Day())
}

func TestRun_SimulateMultipleDaysOutOfRange(t *testing.T) {
	out, env := run(t, "3", "11", "0")

	assert.Contains(t, out, "Error during simulation: invalid days: must be between 1 and 10")
	assert.Equal(t, 0, env.Day())
}

func TestRun_InvalidChoice(t *testing.T) {
	out, _ := run(t, "9", "abc", "0")

	assert.Contains(t, out, "Invalid choice. Please enter a number between 0 and 4.")
	assert.Contains(t, out, `An error occurred: invalid number: "abc" is not a whole number`)
}

func TestRun_LineTooLongEndsSession(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Repeat("1", 70000) + "\n0\n")
	m := newMenu(t, in, &out)

	err := m.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Equal(t, 1, strings.Count(out.String(), "===== ECOSYSTEM SIMULATION ====="))
	assert.NotContains(t, out.String(), "An error occurred")
}

func TestRun_ReadFailureDuringPromptEndsSession(t *testing.T) {
	readErr := errors.New("stdin closed")
	var out bytes.Buffer
	in := io.MultiReader(strings.NewReader("3\n"), iotest.ErrReader(readErr))
	m := newMenu(t, in, &out)

	err := m.Run()
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 0, m.env.Day())
	assert.NotContains(t, out.String(), "Error during simulation")
}

func TestRun_ReadFailureWhileAddingEndsSession(t *testing.T) {
	readErr := errors.New("stdin closed")
	in := io.MultiReader(strings.NewReader("1\n1\n"), iotest.ErrReader(readErr))
	m := newMenu(t, in, io.Discard)

	assert.ErrorIs(t, m.Run(), readErr)
	assert.Equal(t, 5, m.env.Len())
}
