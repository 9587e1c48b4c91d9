package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/telemetry"
)

// FormatEvent renders one telemetry event as a feed line.
func FormatEvent(e telemetry.Event) string {
	switch e.Type {
	case telemetry.EventPhotosynthesis:
		return fmt.Sprintf("day %d  %s grew +%.1f", e.Day, e.EntityID, e.Amount)
	case telemetry.EventKill:
		return fmt.Sprintf("day %d  %s made a kill +%.1f", e.Day, e.EntityID, e.Amount)
	case telemetry.EventHunt:
		return fmt.Sprintf("day %d  %s missed its prey", e.Day, e.EntityID)
	case telemetry.EventForage:
		return fmt.Sprintf("day %d  %s grazed +%.1f", e.Day, e.EntityID, e.Amount)
	case telemetry.EventDeath:
		return fmt.Sprintf("day %d  %s (%s) died", e.Day, e.EntityID, e.Kind)
	case telemetry.EventFailure:
		return fmt.Sprintf("day %d  %s update failed: %s", e.Day, e.EntityID, e.Detail)
	}
	return fmt.Sprintf("day %d  %s %s", e.Day, e.EntityID, e.Type)
}

// EventFeed renders the most recent telemetry events.
type EventFeed struct {
	renderer *Renderer
	x, y     int32
	width    int32
	lines    int
}

// NewEventFeed creates a feed showing up to lines events.
func NewEventFeed(x, y, width int32, lines int) *EventFeed {
	return &EventFeed{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		lines:    lines,
	}
}

// Lines returns the number of events the feed shows.
func (f *EventFeed) Lines() int { return f.lines }

// Draw renders events, newest last.
func (f *EventFeed) Draw(events []telemetry.Event) {
	r := f.renderer
	padding := r.Theme.Padding
	height := int32(f.lines)*r.Theme.LineHeight + padding*2 + 20
	r.DrawPanel(f.x, f.y, f.width, height)

	y := f.y + padding
	rl.DrawText("Events", f.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	y += 20

	if len(events) > f.lines {
		events = events[len(events)-f.lines:]
	}
	for _, e := range events {
		color := r.Theme.LabelColor
		switch e.Type {
		case telemetry.EventDeath, telemetry.EventFailure:
			color = r.Theme.BarFillLow
		case telemetry.EventKill:
			color = r.Theme.BarFillMedium
		}
		rl.DrawText(FormatEvent(e), f.x+padding, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}
