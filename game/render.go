package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
	"github.com/pthm-cable/ecosim/ui"
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ui.DefaultTheme().Background)

	census := g.env.Census()
	g.hud.Draw(ui.HUDData{
		Title:      g.env.Name(),
		Weather:    g.env.Weather(),
		Day:        g.env.Day(),
		Plants:     census.Living[components.KindPlant],
		Herbivores: census.Living[components.KindHerbivore],
		Carnivores: census.Living[components.KindCarnivore],
		Dead:       census.Dead,
		DaysPerSec: g.daysPerSec,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
	})

	if g.overlays.IsEnabled(ui.OverlayRoster) {
		g.roster.Draw(g.env.Organisms())
	}

	act := g.controls.Draw(g.paused, g.daysPerSec)

	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.inspector.Draw(g.selectedOrganism())
	}
	if g.overlays.IsEnabled(ui.OverlayEvents) {
		g.feed.Draw(g.collector.Recent(g.feed.Lines()))
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}

	g.hud.DrawControls(g.width, g.height, controlsLegend)
	rl.EndDrawing()

	g.applyAction(act)
}

// selectedOrganism returns the organism picked in the roster, if any.
func (g *Game) selectedOrganism() organisms.Organism {
	id := g.roster.Selected()
	if id == "" {
		return nil
	}
	o, err := g.env.FindOrganismByID(id)
	if err != nil {
		return nil
	}
	return o
}
