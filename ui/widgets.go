package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a progress bar for [0, 1] values.
func (r *Renderer) DrawBar(x, y int32, label string, value float32, width int32) int32 {
	value = clamp01(value)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fillWidth := int32(float32(barWidth) * value)
	rl.DrawRectangle(barX, y+2, fillWidth, r.Theme.BarHeight, r.Theme.BarFill)

	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// DrawEnergyBar draws an unlabeled energy bar with color thresholds.
func (r *Renderer) DrawEnergyBar(x, y int32, current, max float32, width int32) {
	ratio := EnergyRatio(current, max)

	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)
	fillWidth := int32(float32(width) * ratio)
	rl.DrawRectangle(x, y, fillWidth, r.Theme.BarHeight, r.energyColor(ratio))
}

// energyColor picks the bar color for a [0, 1] energy ratio.
func (r *Renderer) energyColor(ratio float32) rl.Color {
	switch EnergyBand(ratio) {
	case BandLow:
		return r.Theme.BarFillLow
	case BandMedium:
		return r.Theme.BarFillMedium
	default:
		return r.Theme.BarFillHigh
	}
}

// Band classifies an energy ratio for coloring.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// EnergyBand returns the color band for a [0, 1] ratio.
func EnergyBand(ratio float32) Band {
	switch {
	case ratio < 0.3:
		return BandLow
	case ratio < 0.6:
		return BandMedium
	default:
		return BandHigh
	}
}

// EnergyRatio returns current/max clamped to [0, 1]. Zero max yields 0.
func EnergyRatio(current, max float32) float32 {
	if max <= 0 {
		return 0
	}
	return clamp01(current / max)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DrawSpacer adds vertical space and returns new Y.
func (r *Renderer) DrawSpacer(y int32, amount int32) int32 {
	return y + amount
}

// FieldText returns the text a field renders for data.
func FieldText(fd FieldDescriptor, data any) string {
	if fd.TextGetter != nil {
		return fd.TextGetter(data)
	}
	if fd.Getter != nil {
		format := fd.Format
		if format == "" {
			format = "%g"
		}
		return fmt.Sprintf(format, fd.Getter(data))
	}
	return ""
}

// DrawField renders a field based on its descriptor.
func (r *Renderer) DrawField(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	switch fd.Widget {
	case WidgetText:
		return r.DrawLabelValue(x, y, fd.Label, FieldText(fd, data))

	case WidgetBar:
		value := float32(0)
		if fd.Getter != nil {
			value = fd.Getter(data)
		}
		return r.DrawBar(x, y, fd.Label, value, width)

	case WidgetSpacer:
		return r.DrawSpacer(y, 6)
	}

	return y
}

// VisibleFields returns the fields of sd that apply to data, or nil if the
// whole section is hidden.
func VisibleFields(sd SectionDescriptor, data any) []FieldDescriptor {
	if sd.Visible != nil && !sd.Visible(data) {
		return nil
	}
	var out []FieldDescriptor
	for _, fd := range sd.Fields {
		if fd.Visible != nil && !fd.Visible(data) {
			continue
		}
		out = append(out, fd)
	}
	return out
}

// DrawSection renders a section with header and fields.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	fields := VisibleFields(sd, data)
	if fields == nil {
		return y
	}

	if sd.Title != "" {
		y = r.DrawSectionHeader(x, y, sd.Title)
	}
	for _, fd := range fields {
		y = r.DrawField(x, y, fd, data, width)
	}

	return y + 4 // Small gap after section
}
