package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/ui"
)

// controlsLegend is shown along the bottom edge of the window.
const controlsLegend = "SPACE pause | N step | 1/2/3 weather | < > speed | L list | I inspector | E events | P perf | F11 fullscreen"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.step()
	}

	// Weather override
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(key) {
			g.env.SetWeather(components.AllWeather()[i])
		}
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.setDaysPerSec(g.daysPerSec / 2)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.setDaysPerSec(g.daysPerSec * 2)
	}

	for _, key := range g.overlays.Keys() {
		if rl.IsKeyPressed(key) {
			g.overlays.HandleKeyPress(key)
		}
	}

	if g.overlays.IsEnabled(ui.OverlayRoster) {
		g.roster.HandleInput(g.env.Organisms())
	}
}

// handleResize checks for window resize and re-lays out the panels.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.width = int32(rl.GetScreenWidth())
	g.height = int32(rl.GetScreenHeight())

	selected := g.roster.Selected()
	g.initUI()
	g.roster.Select(selected)
}

// applyAction carries out a controls panel request.
func (g *Game) applyAction(act ui.Action) {
	if act.TogglePause {
		g.paused = !g.paused
	}
	if act.Weather != "" {
		g.env.SetWeather(act.Weather)
	}
	for i := 0; i < act.StepDays; i++ {
		g.step()
	}
	g.setDaysPerSec(act.DaysPerSec)
}

func (g *Game) setDaysPerSec(v float32) {
	if v < ui.MinDaysPerSec {
		v = ui.MinDaysPerSec
	}
	if v > ui.MaxDaysPerSec {
		v = ui.MaxDaysPerSec
	}
	g.daysPerSec = v
}
