package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stardrift/stardrift/internal/game"
)

// Ship and projectile display geometry, in logical units.
const (
	playerWidth  = 15.0
	playerHeight = 20.0
	hullStroke   = 1.5

	gunLength = 10.0

	// Projectiles draw smaller than their hit geometry: short and thick
	// reads better at speed than the true pill shape.
	projLengthFactor = 0.5
	projWidthFactor  = 1.5

	starInnerRatio = 0.4

	hudMarginX = 10
	hudMarginY = 10
)

// gunMounts are the ship-relative mount points, left then right, matching
// the session's gun placement.
var gunMounts = [2]point{{7.5, 10.0}, {-7.5, 10.0}}

type point struct {
	X, Y float64
}

// Scene draws one frame snapshot to the screen. It owns no simulation
// state; only the white fill pixel and the scale-matched HUD font persist
// across calls.
type Scene struct {
	vp         *Viewport
	font       *HUDFont
	whitePixel *ebiten.Image
}

// NewScene creates a renderer bound to the viewport.
func NewScene(vp *Viewport) *Scene {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Scene{vp: vp, whitePixel: white}
}

// Draw renders the frame back-to-front: clear, stars, gun mounts, ship
// body, projectiles, HUD.
func (s *Scene) Draw(screen *ebiten.Image, f *game.Frame) {
	f.Normalize()

	// The font follows the viewport scale; a resize makes a new one.
	if s.font == nil || s.font.Size() != s.vp.FontSize() {
		s.font = NewHUDFont(s.vp.FontSize())
	}

	scale := s.vp.Scale()
	camX := f.CameraX * scale
	camY := f.CameraY * scale

	screen.Fill(BackgroundColor)

	for _, st := range f.Stars {
		s.drawStar(screen, st, scale, camX, camY)
	}

	px := f.PlayerX*scale - camX
	py := f.PlayerY*scale - camY

	s.drawGun(screen, px, py, f.PlayerRotation, gunMounts[0], f.LeftGunAngle, scale)
	s.drawGun(screen, px, py, f.PlayerRotation, gunMounts[1], f.RightGunAngle, scale)

	verts := shipVertices(px, py, f.PlayerRotation, scale)
	s.fillPolygon(screen, verts[:], HullFillColor)
	strokeW := float32(math.Round(hullStroke * scale))
	if strokeW < 1 {
		strokeW = 1
	}
	strokePolygon(screen, verts[:], strokeW, PlayerColor)

	for _, p := range f.Projectiles {
		drawProjectile(screen, p, scale, camX, camY)
	}

	s.drawHUD(screen, f)
}

func (s *Scene) drawStar(screen *ebiten.Image, st game.StarData, scale, camX, camY float64) {
	sx := st.X*scale - camX
	sy := st.Y*scale - camY
	size := st.Size * scale
	clr := twinkleShade(StarPalette[st.Color], st.Twinkle)

	switch st.Shape {
	case game.ShapeFourPoint:
		s.fillPolygon(screen, starPolygon(sx, sy, size, 4), clr)
	case game.ShapeSixPoint:
		s.fillPolygon(screen, starPolygon(sx, sy, size, 6), clr)
	default:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size), clr, true)
	}
}

// gunSegment computes one barrel line: the mount point rotates with the
// hull, the barrel extends along the gun's own aim angle.
func gunSegment(px, py, rotation float64, mount point, aimAngle, scale float64) (x0, y0, x1, y1 float64) {
	x0, y0 = rotatePoint(mount.X*scale, mount.Y*scale, rotation)
	x0 += px
	y0 += py

	sin, cos := math.Sincos(aimAngle)
	x1 = x0 + cos*gunLength*scale
	y1 = y0 + sin*gunLength*scale
	return x0, y0, x1, y1
}

func (s *Scene) drawGun(screen *ebiten.Image, px, py, rotation float64, mount point, aimAngle, scale float64) {
	x0, y0, x1, y1 := gunSegment(px, py, rotation, mount, aimAngle, scale)
	w := float32(math.Round(hullStroke * scale))
	if w < 1 {
		w = 1
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), w, PlayerColor, true)
}

func drawProjectile(screen *ebiten.Image, p game.ProjectileData, scale, camX, camY float64) {
	cx := p.X*scale - camX
	cy := p.Y*scale - camY

	half := p.Length * projLengthFactor * scale / 2
	sin, cos := math.Sincos(p.Rotation)

	w := float32(p.Width * projWidthFactor * scale)
	if w < 1 {
		w = 1
	}
	clr := color.RGBA{p.Color.R, p.Color.G, p.Color.B, 255}
	vector.StrokeLine(screen,
		float32(cx-cos*half), float32(cy-sin*half),
		float32(cx+cos*half), float32(cy+sin*half),
		w, clr, true)
}

// drawHUD writes the telemetry block at a fixed screen anchor, outside
// the world transform.
func (s *Scene) drawHUD(screen *ebiten.Image, f *game.Frame) {
	lines := []string{
		fmt.Sprintf("Pos: (%.1f, %.1f)", f.PlayerX, f.PlayerY),
		fmt.Sprintf("Cam: (%.1f, %.1f)", f.CameraX, f.CameraY),
		fmt.Sprintf("Spool L:%3.0f%%  R:%3.0f%%", f.LeftGunSpool*100, f.RightGunSpool*100),
		"WASD/Arrows: Move  ESC: Quit",
	}
	for i, line := range lines {
		s.font.Draw(screen, hudMarginX, hudMarginY+i*s.font.LineHeight(), line, HUDTextColor)
	}
}

// fillPolygon fills an arbitrary (possibly concave) polygon by
// triangulating a vector path over the 1x1 white pixel.
func (s *Scene) fillPolygon(screen *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, s.whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func strokePolygon(screen *ebiten.Image, pts []point, width float32, clr color.Color) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// twinkleShade scales each channel by 0.5 + 0.5*twinkle, so a star dims
// to half brightness at the bottom of its twinkle cycle.
func twinkleShade(base color.RGBA, twinkle float64) color.RGBA {
	m := 0.5 + 0.5*twinkle
	return color.RGBA{
		R: uint8(float64(base.R) * m),
		G: uint8(float64(base.G) * m),
		B: uint8(float64(base.B) * m),
		A: base.A,
	}
}

// starPolygon generates the vertex loop for a pointed star: spokes outer
// vertices at the full radius, alternating with inner vertices at 40%,
// rotated so a spoke never points straight up.
func starPolygon(cx, cy, size float64, spokes int) []point {
	step := 2 * math.Pi / float64(spokes)
	pts := make([]point, 0, spokes*2)
	for i := 0; i < spokes; i++ {
		angle := float64(i)*step - step/2
		sin, cos := math.Sincos(angle)
		pts = append(pts, point{cx + cos*size, cy + sin*size})
		sin, cos = math.Sincos(angle + step/2)
		pts = append(pts, point{cx + cos*size*starInnerRatio, cy + sin*size*starInnerRatio})
	}
	return pts
}

// shipVertices returns the hull triangle, rotated and translated to
// screen space: tip first, then the rear corners.
func shipVertices(cx, cy, rotation, scale float64) [3]point {
	w := (playerWidth / 2) * scale
	h := (playerHeight / 2) * scale
	base := [3]point{{0, -h}, {w, h}, {-w, h}}

	var out [3]point
	for i, p := range base {
		x, y := rotatePoint(p.X, p.Y, rotation)
		out[i] = point{cx + x, cy + y}
	}
	return out
}

func rotatePoint(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
