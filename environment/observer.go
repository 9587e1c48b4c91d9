package environment

import (
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

// Observer receives events as a day is simulated.
type Observer interface {
	DayStarted(day int, weather components.Weather)
	PhaseStarted(phase components.Phase)
	Photosynthesized(plant organisms.Organism, yield float64)
	// Hunted reports one hunt or forage attempt and the energy it gained.
	Hunted(hunter organisms.Animal, success bool, gained float64)
	Died(o organisms.Organism)
	// Failed reports an organism whose update panicked and was skipped.
	Failed(phase components.Phase, o organisms.Organism, err error)
	DayEnded(day int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) DayStarted(int, components.Weather) {}
func (NopObserver) PhaseStarted(components.Phase) {}
func (NopObserver) Photosynthesized(organisms.Organism, float64) {}
func (NopObserver) Hunted(organisms.Animal, bool, float64) {}
func (NopObserver) Died(organisms.Organism) {}
func (NopObserver) Failed(components.Phase, organisms.Organism, error) {}
func (NopObserver) DayEnded(int) {}

// Observers fans events out to each non-nil observer in order.
func Observers(obs ...Observer) Observer {
	var fan multiObserver
	for _, o := range obs {
		if o != nil {
			fan = append(fan, o)
		}
	}
	return fan
}

type multiObserver []Observer

func (m multiObserver) DayStarted(day int, w components.Weather) {
	for _, o := range m {
		o.DayStarted(day, w)
	}
}

func (m multiObserver) PhaseStarted(p components.Phase) {
	for _, o := range m {
		o.PhaseStarted(p)
	}
}

func (m multiObserver) Photosynthesized(plant organisms.Organism, yield float64) {
	for _, o := range m {
		o.Photosynthesized(plant, yield)
	}
}

func (m multiObserver) Hunted(hunter organisms.Animal, success bool, gained float64) {
	for _, o := range m {
		o.Hunted(hunter, success, gained)
	}
}

func (m multiObserver) Died(org organisms.Organism) {
	for _, o := range m {
		o.Died(org)
	}
}

func (m multiObserver) Failed(phase components.Phase, org organisms.Organism, err error) {
	for _, o := range m {
		o.Failed(phase, org, err)
	}
}

func (m multiObserver) DayEnded(day int) {
	for _, o := range m {
		o.DayEnded(day)
	}
}
