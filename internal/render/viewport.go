package render

import (
	"math"

	"github.com/stardrift/stardrift/internal/game"
)

// Display geometry. The window may be any size the OS grants, but the
// drawable surface is always locked to the 4:3 design ratio.
const (
	aspectRatio  = 4.0 / 3.0
	monitorUsage = 0.9 // initial window takes 90% of the binding dimension
	BaseFontSize = 36  // HUD glyph size in logical units
)

// Viewport owns the window dimensions and the derived scale factor.
// Width/height always satisfy the 4:3 invariant; scale is width divided
// by the 800-unit logical width, exactly.
type Viewport struct {
	Width  int
	Height int
	scale  float64
}

// NewViewport creates a viewport at the given size, corrected to 4:3.
func NewViewport(w, h int) *Viewport {
	v := &Viewport{}
	v.Resize(w, h)
	return v
}

// FitMonitor picks the largest 4:3 window occupying 90% of whichever
// monitor dimension binds first.
func FitMonitor(monitorW, monitorH int) (int, int) {
	if monitorW <= 0 || monitorH <= 0 {
		return int(game.LogicalWidth), int(game.LogicalHeight)
	}
	mw := float64(monitorW)
	mh := float64(monitorH)
	if mw/mh > aspectRatio {
		h := mh * monitorUsage
		return int(h * aspectRatio), int(h)
	}
	w := mw * monitorUsage
	return int(w), int(w / aspectRatio)
}

// Resize applies a requested size, correcting it to 4:3: when the request
// is too wide the height is recomputed (width wins), when too tall the
// width is recomputed (height wins). Returns the corrected dimensions.
func (v *Viewport) Resize(w, h int) (int, int) {
	fw := float64(w)
	fh := float64(h)
	if fw <= 0 || fh <= 0 {
		fw, fh = game.LogicalWidth, game.LogicalHeight
	}

	switch ratio := fw / fh; {
	case ratio > aspectRatio:
		fh = fw / aspectRatio
	case ratio < aspectRatio:
		fw = fh * aspectRatio
	}

	v.Width = int(fw)
	v.Height = int(fh)
	v.scale = float64(v.Width) / game.LogicalWidth
	return v.Width, v.Height
}

// Scale returns the device-pixels-per-logical-unit factor.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// FontSize returns the HUD glyph pixel size for the current scale.
func (v *Viewport) FontSize() int {
	return int(math.Round(BaseFontSize * v.scale))
}
