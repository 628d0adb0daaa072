package game

// Camera follow tuning. Smoothing rises with ship speed so the view leads
// less at low speed and keeps up at high speed.
const (
	camMinSpeed      = 1000.0
	camMaxSpeed      = 10000.0
	camMinSmoothing  = 0.4
	camMaxSmoothing  = 0.8
	camSnapSmoothing = 0.9 // control mode: near-instant catch-up
)

// Camera keeps the player centered with speed-adaptive smoothing.
type Camera struct {
	X, Y         float64
	prevX, prevY float64
}

// NewCamera starts centered on the given world position.
func NewCamera(centerX, centerY float64) *Camera {
	x := centerX - LogicalWidth/2
	y := centerY - LogicalHeight/2
	return &Camera{X: x, Y: y, prevX: x, prevY: y}
}

// Follow moves the camera toward centering (px, py) and returns the
// camera's movement since the previous tick, which drives star parallax.
func (c *Camera) Follow(px, py, speed float64, controlMode bool) (dx, dy float64) {
	targetX := px - LogicalWidth/2
	targetY := py - LogicalHeight/2

	var smoothing float64
	switch {
	case controlMode:
		smoothing = camSnapSmoothing
	case speed < camMinSpeed:
		smoothing = camMinSmoothing
	case speed > camMaxSpeed:
		smoothing = camMaxSmoothing
	default:
		t := (speed - camMinSpeed) / (camMaxSpeed - camMinSpeed)
		smoothing = camMinSmoothing + t*(camMaxSmoothing-camMinSmoothing)
	}

	// Report the previous tick's movement, then advance.
	dx = c.X - c.prevX
	dy = c.Y - c.prevY
	c.prevX = c.X
	c.prevY = c.Y

	c.X += (targetX - c.X) * smoothing
	c.Y += (targetY - c.Y) * smoothing
	return dx, dy
}
