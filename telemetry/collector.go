package telemetry

import (
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

// recentCap bounds the event feed kept for display.
const recentCap = 64

// Collector accumulates events within windows of whole days and produces
// DayStats. It satisfies environment.Observer.
type Collector struct {
	windowDays int

	// Current window tracking
	windowStartDay int
	day            int

	// Event counters for current window
	photosynthesisYield float64
	huntsAttempted      int
	kills               int
	huntGain            float64
	foragesAttempted    int
	forages             int
	forageGain          float64
	deaths              map[components.Kind]int
	failures            int

	recent []Event
}

// NewCollector creates a collector that flushes every windowDays days.
func NewCollector(windowDays int) *Collector {
	if windowDays < 1 {
		windowDays = 1
	}
	return &Collector{
		windowDays: windowDays,
		deaths:     make(map[components.Kind]int),
	}
}

// DayStarted records the start of a simulated day.
func (c *Collector) DayStarted(day int, _ components.Weather) {
	c.day = day
}

// PhaseStarted is a no-op; phase timing lives in PerfCollector.
func (c *Collector) PhaseStarted(components.Phase) {}

// Photosynthesized records a plant's daily yield.
func (c *Collector) Photosynthesized(plant organisms.Organism, yield float64) {
	c.photosynthesisYield += yield
	c.push(NewPhotosynthesisEvent(c.day, plant.ID(), yield))
}

// Hunted records a carnivore hunt or a herbivore forage.
func (c *Collector) Hunted(hunter organisms.Animal, success bool, gained float64) {
	switch hunter.Kind() {
	case components.KindCarnivore:
		c.huntsAttempted++
		if success {
			c.kills++
			c.huntGain += gained
		}
		c.push(NewHuntEvent(c.day, hunter.ID(), success, gained))
	case components.KindHerbivore:
		c.foragesAttempted++
		if success {
			c.forages++
			c.forageGain += gained
			c.push(NewForageEvent(c.day, hunter.ID(), gained))
		}
	}
}

// Died records a death.
func (c *Collector) Died(o organisms.Organism) {
	c.deaths[o.Kind()]++
	c.push(NewDeathEvent(c.day, o.ID(), o.Kind()))
}

// Failed records an organism update that panicked.
func (c *Collector) Failed(_ components.Phase, o organisms.Organism, err error) {
	c.failures++
	c.push(NewFailureEvent(c.day, o.ID(), o.Kind(), err))
}

// DayEnded is a no-op; the caller decides when to flush.
func (c *Collector) DayEnded(int) {}

func (c *Collector) push(e Event) {
	if len(c.recent) == recentCap {
		copy(c.recent, c.recent[1:])
		c.recent = c.recent[:recentCap-1]
	}
	c.recent = append(c.recent, e)
}

// Recent returns up to n of the latest events, oldest first.
func (c *Collector) Recent(n int) []Event {
	if n <= 0 || n > len(c.recent) {
		n = len(c.recent)
	}
	out := make([]Event, n)
	copy(out, c.recent[len(c.recent)-n:])
	return out
}

// ShouldFlush returns true if enough days have passed to flush the window.
func (c *Collector) ShouldFlush(currentDay int) bool {
	return currentDay-c.windowStartDay >= c.windowDays
}

// Flush produces a DayStats and resets counters for the next window.
// sample is the population as it stands at currentDay.
func (c *Collector) Flush(currentDay int, weather components.Weather, sample Sample) DayStats {
	var killRate, forageRate float64
	if c.huntsAttempted > 0 {
		killRate = float64(c.kills) / float64(c.huntsAttempted)
	}
	if c.foragesAttempted > 0 {
		forageRate = float64(c.forages) / float64(c.foragesAttempted)
	}

	plantMean, plantP10, plantP50, plantP90 := ComputeEnergyStats(sample.Energies[components.KindPlant])
	herbMean, herbP10, herbP50, herbP90 := ComputeEnergyStats(sample.Energies[components.KindHerbivore])
	carnMean, carnP10, carnP50, carnP90 := ComputeEnergyStats(sample.Energies[components.KindCarnivore])

	stats := DayStats{
		WindowStartDay: c.windowStartDay,
		Day:            currentDay,
		Weather:        string(weather),

		Plants:     sample.Living[components.KindPlant],
		Herbivores: sample.Living[components.KindHerbivore],
		Carnivores: sample.Living[components.KindCarnivore],
		Dead:       sample.Dead,

		PlantDeaths:     c.deaths[components.KindPlant],
		HerbivoreDeaths: c.deaths[components.KindHerbivore],
		CarnivoreDeaths: c.deaths[components.KindCarnivore],
		Failures:        c.failures,

		PhotosynthesisYield: c.photosynthesisYield,
		HuntsAttempted:      c.huntsAttempted,
		Kills:               c.kills,
		KillRate:            killRate,
		HuntGain:            c.huntGain,
		ForagesAttempted:    c.foragesAttempted,
		Forages:             c.forages,
		ForageRate:          forageRate,
		ForageGain:          c.forageGain,

		PlantEnergyMean: plantMean,
		PlantEnergyP10:  plantP10,
		PlantEnergyP50:  plantP50,
		PlantEnergyP90:  plantP90,

		HerbivoreEnergyMean: herbMean,
		HerbivoreEnergyP10:  herbP10,
		HerbivoreEnergyP50:  herbP50,
		HerbivoreEnergyP90:  herbP90,

		CarnivoreEnergyMean: carnMean,
		CarnivoreEnergyP10:  carnP10,
		CarnivoreEnergyP50:  carnP50,
		CarnivoreEnergyP90:  carnP90,

		TotalEnergy: sample.TotalEnergy,
	}

	// Reset for next window
	c.windowStartDay = currentDay
	c.photosynthesisYield = 0
	c.huntsAttempted = 0
	c.kills = 0
	c.huntGain = 0
	c.foragesAttempted = 0
	c.forages = 0
	c.forageGain = 0
	c.deaths = make(map[components.Kind]int)
	c.failures = 0

	return stats
}

// WindowDays returns the number of days per window.
func (c *Collector) WindowDays() int {
	return c.windowDays
}

// Sample is a point-in-time view of a population.
type Sample struct {
	Living      map[components.Kind]int
	Energies    map[components.Kind][]float64 // living members only
	Dead        int
	TotalEnergy float64 // living members only
}

// SampleOrganisms builds a Sample from a population.
func SampleOrganisms(orgs []organisms.Organism) Sample {
	s := Sample{
		Living:   make(map[components.Kind]int),
		Energies: make(map[components.Kind][]float64),
	}
	for _, o := range orgs {
		if !o.Alive() {
			s.Dead++
			continue
		}
		s.Living[o.Kind()]++
		s.Energies[o.Kind()] = append(s.Energies[o.Kind()], o.Energy())
		s.TotalEnergy += o.Energy()
	}
	return s
}
