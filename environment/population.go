package environment

import "github.com/pthm-cable/ecosim/components"

// Census summarises the owned population.
type Census struct {
	Total  int
	Alive  int
	Dead   int
	Living map[components.Kind]int // Living members per census kind
}

// Census counts every owned organism. Living always has an entry for each
// census kind, zero or not.
func (e *Environment) Census() Census {
	c := Census{Living: make(map[components.Kind]int)}
	for _, k := range components.CensusKinds() {
		c.Living[k] = 0
	}
	for _, o := range e.organisms {
		c.Total++
		if !o.Alive() {
			c.Dead++
			continue
		}
		c.Alive++
		if _, ok := c.Living[o.Kind()]; ok {
			c.Living[o.Kind()]++
		}
	}
	return c
}

// PopulationCount returns the living members keyed "Plant", "Herbivore" and
// "Carnivore". Plain organisms are not counted.
func (e *Environment) PopulationCount() map[string]int {
	census := e.Census()
	out := make(map[string]int, len(census.Living))
	for k, n := range census.Living {
		out[k.String()] = n
	}
	return out
}

// Extinct reports whether any census kind has no living members.
func (c Census) Extinct() bool {
	for _, n := range c.Living {
		if n == 0 {
			return true
		}
	}
	return false
}
