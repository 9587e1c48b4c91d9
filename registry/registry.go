// Package registry tracks the lifecycle of organisms owned by an environment.
//
// Each tracked organism is mirrored as an entity in an ark world carrying a
// Lifecycle component. Counts are state of the registry instance, so two
// environments never share a tally.
package registry

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/components"
)

// Registry holds one entity per tracked organism id.
type Registry struct {
	world  *ecs.World
	mapper *ecs.Map1[components.Lifecycle]
	filter *ecs.Filter1[components.Lifecycle]
	byID   map[string]ecs.Entity
}

// New creates an empty registry.
func New() *Registry {
	world := ecs.NewWorld()
	return &Registry{
		world:  world,
		mapper: ecs.NewMap1[components.Lifecycle](world),
		filter: ecs.NewFilter1[components.Lifecycle](world),
		byID:   make(map[string]ecs.Entity),
	}
}

// Register starts tracking id. It returns false if id is already tracked.
func (r *Registry) Register(id string, kind components.Kind, day int) bool {
	if _, ok := r.byID[id]; ok {
		return false
	}
	lc := components.Lifecycle{ID: id, Kind: kind, Day: day}
	r.byID[id] = r.mapper.NewEntity(&lc)
	return true
}

// Release stops tracking id and reports whether it was tracked.
func (r *Registry) Release(id string) bool {
	e, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	if r.world.Alive(e) {
		r.world.RemoveEntity(e)
	}
	return true
}

// Tracked reports whether id is registered.
func (r *Registry) Tracked(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the lifecycle record for id.
func (r *Registry) Lookup(id string) (components.Lifecycle, bool) {
	e, ok := r.byID[id]
	if !ok || !r.world.Alive(e) {
		return components.Lifecycle{}, false
	}
	return *r.mapper.Get(e), true
}

// Live returns the number of tracked organisms.
func (r *Registry) Live() int {
	return len(r.byID)
}

// LiveByKind counts tracked organisms per kind.
func (r *Registry) LiveByKind() map[components.Kind]int {
	counts := make(map[components.Kind]int, len(components.KindNames()))
	query := r.filter.Query()
	for query.Next() {
		lc := query.Get()
		counts[lc.Kind]++
	}
	return counts
}

// Close releases every tracked organism.
func (r *Registry) Close() {
	for id := range r.byID {
		r.Release(id)
	}
}
