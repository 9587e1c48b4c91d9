// Package menu implements the line-based interactive front end: add
// organisms through guided prompts, simulate days and list the population.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/environment"
	"github.com/pthm-cable/ecosim/organisms"
)

// Menu choices.
const (
	ChoiceExit = iota
	ChoiceAdd
	ChoiceSimulateDay
	ChoiceSimulateDays
	ChoiceList
)

// Menu drives an environment from line-oriented input.
type Menu struct {
	env    *environment.Environment
	cfg    config.MenuConfig
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a menu reading choices from r and writing prompts to w.
func New(env *environment.Environment, cfg config.MenuConfig, r io.Reader, w io.Writer) *Menu {
	return &Menu{
		env:    env,
		cfg:    cfg,
		in:     bufio.NewScanner(r),
		out:    w,
		logger: slog.Default(),
	}
}

// errEOF signals that input ran out.
var errEOF = errors.New("end of input")

// Run loops until the user exits or input ends. A read failure other than
// end of input ends the loop and is returned; bad entries are reported and
// the loop continues.
func (m *Menu) Run() error {
	for {
		m.printStatus()

		choice, err := m.readInt("\nEnter your choice (0-4): ")
		if err != nil {
			if done, err := stop(err); done {
				return err
			}
			m.printf("An error occurred: %v\n", err)
			continue
		}

		switch choice {
		case ChoiceAdd:
			if err := m.addOrganism(); err != nil {
				if done, err := stop(err); done {
					return err
				}
				m.printf("Error adding organism: %v\n", err)
			}
		case ChoiceSimulateDay:
			m.simulate(1)
			m.printf("Day %d simulated successfully.\n", m.env.Day())
			m.printLiving()
		case ChoiceSimulateDays:
			days, err := m.readInt(fmt.Sprintf("Enter number of days to simulate (1-%d): ", m.cfg.MaxDays))
			if err == nil && (days < 1 || days > m.cfg.MaxDays) {
				err = invalidf("days", "must be between 1 and %d", m.cfg.MaxDays)
			}
			if err != nil {
				if done, err := stop(err); done {
					return err
				}
				m.printf("Error during simulation: %v\n", err)
				continue
			}
			m.simulate(days)
			m.printf("%d days simulated successfully.\n", days)
			m.printf("Current day: %d\n", m.env.Day())
			m.printLiving()
		case ChoiceList:
			m.printf("\nAll Organisms:\n")
			for _, o := range m.env.Organisms() {
				m.printf("%s\n", o.Summary())
			}
		case ChoiceExit:
			m.printf("Thank you for using the Ecosystem Simulation.\n")
			return nil
		default:
			m.printf("Invalid choice. Please enter a number between 0 and 4.\n")
		}
	}
}

// stop reports whether err ends the session and what Run returns for it.
// Only *organisms.InputError keeps the loop going; a failed scanner never
// reads again.
func stop(err error) (bool, error) {
	var inputErr *organisms.InputError
	switch {
	case errors.As(err, &inputErr):
		return false, nil
	case errors.Is(err, errEOF):
		return true, nil
	default:
		return true, fmt.Errorf("reading input: %w", err)
	}
}

func (m *Menu) simulate(days int) {
	for i := 0; i < days; i++ {
		m.env.SimulateDay()
	}
	m.logger.Debug("menu simulated days", "days", days, "day", m.env.Day())
}

func (m *Menu) printStatus() {
	m.printf("\n===== ECOSYSTEM SIMULATION =====\n")
	m.printf("Environment: %s\n", m.env.Name())
	m.printf("Weather: %s\n", m.env.Weather())
	m.printf("Total Organisms: %d\n", m.env.Len())

	m.printf("\nPopulation Breakdown:\n")
	counts := m.env.PopulationCount()
	for _, k := range components.CensusKinds() {
		m.printf("  %s: %d\n", k, counts[k.String()])
	}

	m.printf("\nSimulation Day: %d\n", m.env.Day())

	m.printf("\nMenu:\n")
	m.printf("1. Add Organism to Environment\n")
	m.printf("2. Simulate One Day\n")
	m.printf("3. Simulate Multiple Days\n")
	m.printf("4. Display All Organisms\n")
	m.printf("0. Exit\n")
}

func (m *Menu) printLiving() {
	census := m.env.Census()
	m.printf("Living organisms: %d\n", census.Alive)
	m.printf("Dead organisms: %d\n", census.Dead)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// readLine prompts and returns the next trimmed input line.
func (m *Menu) readLine(prompt string) (string, error) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, invalidf("number", "%q is not a whole number", line)
	}
	return n, nil
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, invalidf("number", "%q is not a number", line)
	}
	return f, nil
}

func invalidf(field, format string, args ...any) error {
	return &organisms.InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
