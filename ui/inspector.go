package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/organisms"
)

// asOrganism extracts the organism from descriptor data.
func asOrganism(data any) (organisms.Organism, bool) {
	o, ok := data.(organisms.Organism)
	return o, ok && o != nil
}

func hasOrganism(data any) bool {
	_, ok := asOrganism(data)
	return ok
}

func isKind(kind components.Kind) func(any) bool {
	return func(data any) bool {
		o, ok := asOrganism(data)
		return ok && o.Kind() == kind
	}
}

func isAnimal(data any) bool {
	o, ok := asOrganism(data)
	if !ok {
		return false
	}
	_, ok = o.(organisms.Animal)
	return ok
}

// organismText adapts an organism accessor to a descriptor text getter.
func organismText(fn func(organisms.Organism) string) func(any) string {
	return func(data any) string {
		o, ok := asOrganism(data)
		if !ok {
			return ""
		}
		return fn(o)
	}
}

// organismValue adapts an organism accessor to a descriptor value getter.
func organismValue(fn func(organisms.Organism) float64) func(any) float32 {
	return func(data any) float32 {
		o, ok := asOrganism(data)
		if !ok {
			return 0
		}
		return float32(fn(o))
	}
}

// animalText adapts an animal accessor to a descriptor text getter.
func animalText(fn func(organisms.Animal) string) func(any) string {
	return organismText(func(o organisms.Organism) string {
		a, ok := o.(organisms.Animal)
		if !ok {
			return ""
		}
		return fn(a)
	})
}

type (
	grower     interface{ GrowthRate() float64 }
	grazer     interface{ Preference() string }
	efficiency interface{ HuntingEfficiency() float64 }
)

// InspectorSections describes the organism inspector layout.
func InspectorSections() []SectionDescriptor {
	return []SectionDescriptor{
		{
			ID:      "identity",
			Title:   "Organism",
			Visible: hasOrganism,
			Fields: []FieldDescriptor{
				{ID: "id", Label: "ID", TextGetter: organismText(organisms.Organism.ID)},
				{ID: "species", Label: "Species", TextGetter: organismText(organisms.Organism.Species)},
				{ID: "kind", Label: "Kind", TextGetter: organismText(func(o organisms.Organism) string {
					return o.Kind().String()
				})},
				{ID: "energy", Label: "Energy", Format: "%.1f", Getter: organismValue(organisms.Organism.Energy)},
				{ID: "status", Label: "Status", TextGetter: organismText(statusText)},
			},
		},
		{
			ID:      "plant",
			Title:   "Photosynthesis",
			Visible: isKind(components.KindPlant),
			Fields: []FieldDescriptor{
				{ID: "growth_rate", Label: "Growth Rate", Format: "%.2f", Getter: organismValue(func(o organisms.Organism) float64 {
					if g, ok := o.(grower); ok {
						return g.GrowthRate()
					}
					return 0
				})},
			},
		},
		{
			ID:      "animal",
			Title:   "Movement & Diet",
			Visible: isAnimal,
			Fields: []FieldDescriptor{
				{ID: "speed", Label: "Speed", TextGetter: animalText(func(a organisms.Animal) string {
					return fmt.Sprintf("%.1f", a.Speed())
				})},
				{ID: "diet", Label: "Diet", TextGetter: animalText(func(a organisms.Animal) string {
					return string(a.Diet())
				})},
				{ID: "feedings", Label: "Feedings", TextGetter: animalText(func(a organisms.Animal) string {
					return fmt.Sprintf("%d", a.Feedings())
				})},
				{ID: "preference", Label: "Preference", Visible: isKind(components.KindHerbivore), TextGetter: organismText(func(o organisms.Organism) string {
					if g, ok := o.(grazer); ok {
						return g.Preference()
					}
					return ""
				})},
				{ID: "efficiency", Label: "Efficiency", Widget: WidgetBar, Visible: isKind(components.KindCarnivore), Getter: organismValue(func(o organisms.Organism) float64 {
					if e, ok := o.(efficiency); ok {
						return e.HuntingEfficiency()
					}
					return 0
				})},
			},
		},
	}
}

// statusText renders the alive flag the way summaries do.
func statusText(o organisms.Organism) string {
	if o.Alive() {
		return "Alive"
	}
	return "Dead"
}

// Inspector renders the selected organism's details.
type Inspector struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		sections: InspectorSections(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for o, or a hint when nothing is selected.
func (ins *Inspector) Draw(o organisms.Organism) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	lines := int32(1)
	for _, sd := range ins.sections {
		if fields := VisibleFields(sd, o); fields != nil {
			lines += int32(len(fields)) + 1
		}
	}
	panelHeight := lines*r.Theme.LineHeight + padding*2 + 20
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	x := ins.x + padding
	y := ins.y + padding
	if o == nil {
		rl.DrawText("Click an organism to inspect it", x, y, r.Theme.FontSize, r.Theme.LabelColor)
		return ins.y + panelHeight
	}

	// Kind swatch beside the header.
	rl.DrawRectangle(ins.x+ins.width-padding-12, y+1, 12, 12, KindColor(o.Kind()))

	for _, sd := range ins.sections {
		y = r.DrawSection(x, y, sd, o, ins.width-padding*2)
	}
	return ins.y + panelHeight
}
