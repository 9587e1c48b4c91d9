package game

import rl "github.com/gen2brain/raylib-go/raylib"

// maxDaysPerFrame bounds catch-up after a slow frame.
const maxDaysPerFrame = 20

// step advances the environment one day and flushes telemetry when due.
func (g *Game) step() {
	g.env.SimulateDay()
	g.flushTelemetry()
}

// UpdateHeadless runs DaysPerUpdate days without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.daysPerUpdate; i++ {
		g.step()
	}
}

// Update processes input and advances the simulation at the chosen speed.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.handleInput()

	if g.paused {
		return
	}

	g.dayAccum += rl.GetFrameTime() * g.daysPerSec
	days := 0
	for g.dayAccum >= 1 && days < maxDaysPerFrame {
		g.step()
		g.dayAccum--
		days++
	}
	if days == maxDaysPerFrame {
		g.dayAccum = 0
	}
}
