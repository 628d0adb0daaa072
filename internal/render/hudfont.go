package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphWidth  = 7  // basicfont.Face7x13 advance
	glyphHeight = 13 // basicfont.Face7x13 cell height
	atlasCols   = 16
	firstGlyph  = 32
	lastGlyph   = 126
)

// HUDFont is an ASCII glyph atlas for HUD text. The atlas is rasterized
// once per construction at the basicfont's native size and drawn scaled
// to the requested pixel size, so it is rebuilt whenever the viewport
// scale changes.
type HUDFont struct {
	size   int // target glyph pixel height
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

// NewHUDFont rasterizes the atlas for the given glyph pixel size.
func NewHUDFont(sizePx int) *HUDFont {
	if sizePx < 1 {
		sizePx = 1
	}

	count := lastGlyph - firstGlyph + 1
	rows := (count + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*glyphWidth, rows*glyphHeight))
	face := basicfont.Face7x13

	for code := firstGlyph; code <= lastGlyph; code++ {
		i := code - firstGlyph
		cx := (i % atlasCols) * glyphWidth
		cy := (i / atlasCols) * glyphHeight
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(cx, cy+11), // baseline sits 11px into the 13px cell
		}
		d.DrawString(string(rune(code)))
	}

	atlas := ebiten.NewImageFromImage(img)
	f := &HUDFont{size: sizePx}
	for i := range f.glyphs {
		cx := (i % atlasCols) * glyphWidth
		cy := (i / atlasCols) * glyphHeight
		rect := image.Rect(cx, cy, cx+glyphWidth, cy+glyphHeight)
		f.glyphs[i] = atlas.SubImage(rect).(*ebiten.Image)
	}
	return f
}

// Size returns the glyph pixel height the font was built for.
func (f *HUDFont) Size() int {
	return f.size
}

// LineHeight returns the vertical advance between HUD lines.
func (f *HUDFont) LineHeight() int {
	return f.size + f.size/4
}

// Draw renders s at device pixel (x, y), top-left anchored. Characters
// outside the printable ASCII range render as '?'.
func (f *HUDFont) Draw(screen *ebiten.Image, x, y int, s string, clr color.Color) {
	scale := float64(f.size) / glyphHeight
	advance := float64(glyphWidth) * scale

	px := float64(x)
	for _, ch := range s {
		if ch < firstGlyph || ch > lastGlyph {
			ch = '?'
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(px, float64(y))
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(f.glyphs[ch-firstGlyph], &op)
		px += advance
	}
}
