package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/components"
)

// Speed limits for the days-per-second slider.
const (
	MinDaysPerSec = 0.5
	MaxDaysPerSec = 20
)

// Action is a request raised by the controls panel during one frame.
type Action struct {
	TogglePause bool
	StepDays    int                // Days to simulate immediately (0 = none)
	Weather     components.Weather // Weather to force ("" = unchanged)
	DaysPerSec  float32            // New run speed
}

// ControlsPanel renders the simulation buttons.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	stepMany int
}

// NewControlsPanel creates a controls panel. stepMany is the day count of
// the multi-day button.
func NewControlsPanel(x, y, width int32, stepMany int) *ControlsPanel {
	if stepMany < 1 {
		stepMany = 1
	}
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		stepMany: stepMany,
	}
}

// Height returns the panel height.
func (c *ControlsPanel) Height() int32 {
	return 170
}

// Draw renders the panel and returns the actions clicked this frame.
func (c *ControlsPanel) Draw(paused bool, daysPerSec float32) Action {
	r := c.renderer
	padding := float32(r.Theme.Padding)
	r.DrawPanel(c.x, c.y, c.width, c.Height())

	act := Action{DaysPerSec: daysPerSec}
	x := float32(c.x) + padding
	y := float32(c.y) + padding
	inner := float32(c.width) - padding*2
	half := (inner - padding) / 2

	rl.DrawText("Controls", int32(x), int32(y), r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	y += 20

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 26}, toggleText(paused, "Resume", "Pause")) {
		act.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: x + half + padding, Y: y, Width: half, Height: 26}, "Simulate Day") {
		act.StepDays = 1
	}
	y += 34

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: inner, Height: 26}, fmt.Sprintf("Simulate %d Days", c.stepMany)) {
		act.StepDays = c.stepMany
	}
	y += 34

	third := (inner - padding*2) / 3
	for i, w := range components.AllWeather() {
		bx := x + float32(i)*(third+padding)
		if gui.Button(rl.Rectangle{X: bx, Y: y, Width: third, Height: 22}, string(w)) {
			act.Weather = w
		}
	}
	y += 30

	act.DaysPerSec = gui.SliderBar(
		rl.Rectangle{X: x + 40, Y: y, Width: inner - 80, Height: 18},
		"Slow", "Fast",
		daysPerSec, MinDaysPerSec, MaxDaysPerSec,
	)

	return act
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
