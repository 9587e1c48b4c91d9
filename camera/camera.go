// Package camera provides a vertical viewport for scrolling panel content.
package camera

// Viewport controls which slice of a tall content area is visible.
type Viewport struct {
	// Offset is the content coordinate shown at the top of the viewport.
	Offset float32

	// Height of the visible area in screen pixels.
	Height float32

	// ContentHeight is the full height of the scrolled content.
	ContentHeight float32

	// ScrollStep is the distance moved per wheel notch.
	ScrollStep float32
}

// New creates a viewport scrolled to the top.
func New(height, contentHeight float32) *Viewport {
	return &Viewport{
		Height:        height,
		ContentHeight: contentHeight,
		ScrollStep:    24,
	}
}

// MaxOffset returns the largest offset that still fills the viewport.
func (v *Viewport) MaxOffset() float32 {
	m := v.ContentHeight - v.Height
	if m < 0 {
		return 0
	}
	return m
}

// SetContentHeight updates the content size and re-clamps the offset.
func (v *Viewport) SetContentHeight(h float32) {
	v.ContentHeight = h
	v.clamp()
}

// Scroll moves the viewport by wheel notches. Positive notches scroll up,
// matching the sign of a mouse wheel.
func (v *Viewport) Scroll(notches float32) {
	v.Offset -= notches * v.ScrollStep
	v.clamp()
}

// ScrollTo positions the viewport so that content y is at the top.
func (v *Viewport) ScrollTo(y float32) {
	v.Offset = y
	v.clamp()
}

// EnsureVisible scrolls the minimum distance needed to show [y, y+h).
func (v *Viewport) EnsureVisible(y, h float32) {
	if y < v.Offset {
		v.Offset = y
	} else if y+h > v.Offset+v.Height {
		v.Offset = y + h - v.Height
	}
	v.clamp()
}

// ContentToScreen converts a content y coordinate to a viewport-relative one.
func (v *Viewport) ContentToScreen(y float32) float32 {
	return y - v.Offset
}

// ScreenToContent converts a viewport-relative y coordinate to content space.
func (v *Viewport) ScreenToContent(y float32) float32 {
	return y + v.Offset
}

// IsVisible reports whether any part of [y, y+h) is inside the viewport.
func (v *Viewport) IsVisible(y, h float32) bool {
	return y+h > v.Offset && y < v.Offset+v.Height
}

func (v *Viewport) clamp() {
	if v.Offset > v.MaxOffset() {
		v.Offset = v.MaxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
