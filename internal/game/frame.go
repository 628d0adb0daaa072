package game

import "math"

// Logical design resolution. Every coordinate in a Frame lives in this
// fixed 800×600 space; the renderer scales it to the actual window.
const (
	LogicalWidth  = 800.0
	LogicalHeight = 600.0
)

// PointingUp is the default heading used when a frame carries no rotation.
const PointingUp = -math.Pi / 2

// StarShape selects the polygon used to draw a star.
type StarShape uint8

const (
	ShapeCircle StarShape = iota
	ShapeFourPoint // ✦
	ShapeSixPoint  // ✶
)

// StarColor is a categorical palette tag. The renderer owns the RGB table.
type StarColor uint8

const (
	StarWhite StarColor = iota
	StarLightBlue
	StarCyan
	StarLightPurple
	StarPink
	StarPaleYellow

	numStarColors
)

// RGB is a plain color triple for projectile tints.
type RGB struct {
	R, G, B uint8
}

// StarData is the per-star slice of a frame: world position, logical
// radius, palette tag, shape, and a twinkle phase in [0, 1].
type StarData struct {
	X, Y    float64
	Size    float64
	Color   StarColor
	Shape   StarShape
	Twinkle float64
}

// ProjectileData is the per-projectile slice of a frame. Length and Width
// are the logical hit geometry; the renderer shrinks them for display.
type ProjectileData struct {
	X, Y     float64
	Length   float64
	Width    float64
	Rotation float64
	Color    RGB
}

// Frame is the scene snapshot handed to the renderer once per tick. It is
// value data: the renderer owns it for one frame, nothing aliases across
// ticks.
type Frame struct {
	PlayerX, PlayerY float64
	PlayerRotation   float64 // NaN when the session has no heading yet
	CameraX, CameraY float64

	LeftGunAngle  float64
	RightGunAngle float64
	LeftGunSpool  float64 // 0..1 readiness, HUD only
	RightGunSpool float64

	Stars       []StarData
	Projectiles []ProjectileData
}

// Normalize applies the documented defaults in place: a missing rotation
// becomes "pointing up" and absent lists become empty. Called once at the
// boundary so every later access site can assume a complete frame.
func (f *Frame) Normalize() {
	if math.IsNaN(f.PlayerRotation) {
		f.PlayerRotation = PointingUp
	}
	if f.Stars == nil {
		f.Stars = []StarData{}
	}
	if f.Projectiles == nil {
		f.Projectiles = []ProjectileData{}
	}
}
