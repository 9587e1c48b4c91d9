// Package telemetry provides ecosystem health tracking and experiment output.
package telemetry

import (
	"github.com/pthm-cable/ecosim/components"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventPhotosynthesis EventType = iota
	EventHunt
	EventKill
	EventForage
	EventDeath
	EventFailure
)

var eventNames = [...]string{"photosynthesis", "hunt", "kill", "forage", "death", "failure"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Day      int
	EntityID string
	Kind     components.Kind

	// Optional fields depending on event type
	Amount float64 // energy gained
	Detail string  // failure message
}

// NewPhotosynthesisEvent creates a photosynthesis event.
func NewPhotosynthesisEvent(day int, plantID string, yield float64) Event {
	return Event{
		Type:     EventPhotosynthesis,
		Day:      day,
		EntityID: plantID,
		Kind:     components.KindPlant,
		Amount:   yield,
	}
}

// NewHuntEvent creates a hunt event. A successful hunt is recorded as a kill.
func NewHuntEvent(day int, hunterID string, success bool, gained float64) Event {
	t := EventHunt
	if success {
		t = EventKill
	}
	return Event{
		Type:     t,
		Day:      day,
		EntityID: hunterID,
		Kind:     components.KindCarnivore,
		Amount:   gained,
	}
}

// NewForageEvent creates a foraging event (herbivore grazing a plant).
func NewForageEvent(day int, herbivoreID string, gained float64) Event {
	return Event{
		Type:     EventForage,
		Day:      day,
		EntityID: herbivoreID,
		Kind:     components.KindHerbivore,
		Amount:   gained,
	}
}

// NewDeathEvent creates a death event.
func NewDeathEvent(day int, id string, kind components.Kind) Event {
	return Event{
		Type:     EventDeath,
		Day:      day,
		EntityID: id,
		Kind:     kind,
	}
}

// NewFailureEvent creates an event for an organism update that panicked.
func NewFailureEvent(day int, id string, kind components.Kind, err error) Event {
	return Event{
		Type:     EventFailure,
		Day:      day,
		EntityID: id,
		Kind:     kind,
		Detail:   err.Error(),
	}
}
