package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/camera"
	"github.com/pthm-cable/ecosim/organisms"
)

// Roster lists every organism with an energy bar and lets the user pick one.
type Roster struct {
	renderer *Renderer
	viewport *camera.Viewport
	x, y     int32
	width    int32
	height   int32
	rowH     int32
	selected string
}

// NewRoster creates a roster panel.
func NewRoster(x, y, width, height int32) *Roster {
	r := NewRenderer()
	rowH := r.Theme.LineHeight + 4
	return &Roster{
		renderer: r,
		viewport: camera.New(float32(height-r.Theme.Padding*2-rowH), 0),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
		rowH:     rowH,
	}
}

// Selected returns the id of the selected organism ("" if none).
func (p *Roster) Selected() string { return p.selected }

// Select marks id as selected.
func (p *Roster) Select(id string) { p.selected = id }

// listTop returns the screen y of the first row.
func (p *Roster) listTop() int32 {
	return p.y + p.renderer.Theme.Padding + p.rowH
}

// RowAt maps a screen position to a row index, or -1 if it misses the list.
func (p *Roster) RowAt(mx, my float32, rows int) int {
	if mx < float32(p.x) || mx >= float32(p.x+p.width) {
		return -1
	}
	top := float32(p.listTop())
	if my < top || my >= top+p.viewport.Height {
		return -1
	}
	idx := int(p.viewport.ScreenToContent(my-top)) / int(p.rowH)
	if idx < 0 || idx >= rows {
		return -1
	}
	return idx
}

// HandleInput scrolls with the mouse wheel and selects on click.
// It returns true if the click landed on a row.
func (p *Roster) HandleInput(list []organisms.Organism) bool {
	p.viewport.SetContentHeight(float32(int32(len(list)) * p.rowH))

	mouse := rl.GetMousePosition()
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && p.RowAt(mouse.X, mouse.Y, len(list)) >= 0 {
		p.viewport.Scroll(wheel)
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return false
	}
	idx := p.RowAt(mouse.X, mouse.Y, len(list))
	if idx < 0 {
		return false
	}
	p.selected = list[idx].ID()
	return true
}

// Draw renders the roster.
func (p *Roster) Draw(list []organisms.Organism) {
	r := p.renderer
	padding := r.Theme.Padding
	p.viewport.SetContentHeight(float32(int32(len(list)) * p.rowH))

	r.DrawPanel(p.x, p.y, p.width, p.height)
	rl.DrawText(fmt.Sprintf("Organisms (%d)", len(list)), p.x+padding, p.y+padding, r.Theme.HeaderFontSize, r.Theme.SectionHeader)

	maxEnergy := float32(0)
	for _, o := range list {
		if e := float32(o.Energy()); e > maxEnergy {
			maxEnergy = e
		}
	}

	top := p.listTop()
	barX := p.x + padding + 190
	barW := p.width - padding*2 - 190 - 50
	for i, o := range list {
		contentY := float32(int32(i) * p.rowH)
		if !p.viewport.IsVisible(contentY, float32(p.rowH)) {
			continue
		}
		rowY := top + int32(p.viewport.ContentToScreen(contentY))
		if rowY < top || rowY+p.rowH > top+int32(p.viewport.Height) {
			continue
		}

		if o.ID() == p.selected {
			rl.DrawRectangle(p.x+2, rowY-2, p.width-4, p.rowH, r.Theme.Highlight)
		}

		rl.DrawRectangle(p.x+padding, rowY+2, 10, 10, KindColor(o.Kind()))
		nameColor := r.Theme.ValueColor
		if !o.Alive() {
			nameColor = rl.DarkGray
		}
		rl.DrawText(o.ID(), p.x+padding+16, rowY, r.Theme.FontSize, nameColor)
		rl.DrawText(o.Species(), p.x+padding+60, rowY, r.Theme.FontSize, nameColor)

		r.DrawEnergyBar(barX, rowY+1, float32(o.Energy()), maxEnergy, barW)
		rl.DrawText(fmt.Sprintf("%.1f", o.Energy()), barX+barW+5, rowY, r.Theme.FontSize, nameColor)
	}
}
