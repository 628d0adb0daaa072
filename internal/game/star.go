package game

import (
	"math"
	"math/rand/v2"
)

// Star field tuning.
const (
	starCount         = 125
	starParallaxScale = 0.25 // fraction of camera delta applied at depth 1.0
)

// Star is one background star: world position, parallax depth, and the
// randomized visuals the renderer needs.
type Star struct {
	X, Y  float64
	Depth float64 // 0.1..1.0, closer stars drift more with the camera

	Shape      StarShape
	Color      StarColor
	Size       float64 // logical radius
	Brightness float64 // 0.5..1.0 base, before twinkle

	TwinklePhase float64
	TwinkleSpeed float64
}

// randomVisuals fills in the randomized appearance shared by all spawn
// paths. Sizes are weighted small: 70% in 0.3..2.0, 30% in 2.0..5.0.
func randomVisuals(rng *rand.Rand, s *Star) {
	if rng.Float64() < 0.7 {
		s.Size = 0.3 + rng.Float64()*1.7
	} else {
		s.Size = 2.0 + rng.Float64()*3.0
	}
	s.Depth = 0.1 + rng.Float64()*0.9
	s.Shape = StarShape(rng.IntN(3))
	s.Color = StarColor(rng.IntN(int(numStarColors)))
	s.Brightness = 0.5 + rng.Float64()*0.5
	s.TwinklePhase = rng.Float64() * 2 * math.Pi
	s.TwinkleSpeed = 0.5 + rng.Float64()*1.5
}

// NewStarInArea spawns a star uniformly inside the given world rectangle.
func NewStarInArea(rng *rand.Rand, x0, x1, y0, y1 float64) Star {
	var s Star
	s.X = x0 + rng.Float64()*(x1-x0)
	s.Y = y0 + rng.Float64()*(y1-y0)
	randomVisuals(rng, &s)
	return s
}

// NewStarAtEdge spawns a star 200-300 units beyond a random screen edge,
// far enough out to avoid pop-in but close enough to drift into view.
func NewStarAtEdge(rng *rand.Rand, camX, camY float64) Star {
	var s Star
	margin := 200.0 + rng.Float64()*100.0
	switch rng.IntN(4) {
	case 0: // above
		s.X = camX - 100 + rng.Float64()*1000
		s.Y = camY - margin
	case 1: // below
		s.X = camX - 100 + rng.Float64()*1000
		s.Y = camY + LogicalHeight + margin
	case 2: // left
		s.X = camX - margin
		s.Y = camY - 100 + rng.Float64()*800
	default: // right
		s.X = camX + LogicalWidth + margin
		s.Y = camY - 100 + rng.Float64()*800
	}
	randomVisuals(rng, &s)
	return s
}

// Advance evolves the twinkle phase by dt seconds.
func (s *Star) Advance(dt float64) {
	s.TwinklePhase += s.TwinkleSpeed * dt
}

// TwinkleLevel returns the current twinkle value in [0, 1].
func (s *Star) TwinkleLevel() float64 {
	return s.Brightness * (math.Sin(s.TwinklePhase) + 1) / 2
}

// offscreen reports whether the star has drifted far enough outside the
// view that it should respawn at an approaching edge.
func (s *Star) offscreen(camX, camY float64) bool {
	sx := s.X - camX
	sy := s.Y - camY
	return sx < -200 || sx > LogicalWidth+200 || sy < -200 || sy > LogicalHeight+200
}
