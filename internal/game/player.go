package game

import "math"

// Ship movement tuning.
const (
	shipTopSpeed    = 400.0  // px/s, straight or diagonal
	shipAccel       = 2000.0 // px/s² toward the input direction
	shipFriction    = 3.0    // velocity shed per second when coasting
	brakeFriction   = 8.0    // control mode: hard braking
	shipTurnRate    = 4.0    // rad/s hull turn toward travel direction
	boostFactor     = 2.0    // boost mode top-speed multiplier
	precisionFactor = 0.5    // alt mode top-speed multiplier
	turnMinSpeed    = 20.0   // below this the hull holds its heading
)

// Ship is the player state component stored in the ECS world. Movement
// intent is re-asserted every tick by the input layer and cleared before
// each command drain.
type Ship struct {
	X, Y   float64
	VX, VY float64
	Facing float64 // travel heading, world radians

	InputDX, InputDY float64

	AltMode     bool // precision flight
	BoostMode   bool
	ControlMode bool // hard brake + camera snap

	AimAngle float64 // world angle toward the mouse target
	HasAim   bool
}

// NewShip returns a ship at the origin pointing up.
func NewShip() Ship {
	return Ship{Facing: PointingUp}
}

// Rotation is the hull's visual rotation: zero renders the triangle
// pointing up, so the travel heading carries a +π/2 offset.
func (s *Ship) Rotation() float64 {
	return s.Facing + math.Pi/2
}

// TopSpeed applies the active mode multipliers.
func (s *Ship) TopSpeed() float64 {
	top := shipTopSpeed
	if s.BoostMode {
		top *= boostFactor
	}
	if s.AltMode {
		top *= precisionFactor
	}
	return top
}

// Integrate advances ship physics by dt: thrust along the input
// direction, friction when coasting, top-speed clamp, and a smooth hull
// turn toward the travel direction.
func (s *Ship) Integrate(dt float64) {
	if s.InputDX != 0 || s.InputDY != 0 {
		s.VX += s.InputDX * shipAccel * dt
		s.VY += s.InputDY * shipAccel * dt
	} else {
		friction := shipFriction
		if s.ControlMode {
			friction = brakeFriction
		}
		decay := 1 - friction*dt
		if decay < 0 {
			decay = 0
		}
		s.VX *= decay
		s.VY *= decay
	}

	speed := math.Hypot(s.VX, s.VY)
	if top := s.TopSpeed(); speed > top {
		s.VX *= top / speed
		s.VY *= top / speed
		speed = top
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt

	if speed > turnMinSpeed {
		travel := math.Atan2(s.VY, s.VX)
		diff := angleDiff(s.Facing, travel)
		step := shipTurnRate * dt
		if math.Abs(diff) <= step {
			s.Facing = travel
		} else if diff > 0 {
			s.Facing = normalizeAngle(s.Facing + step)
		} else {
			s.Facing = normalizeAngle(s.Facing - step)
		}
	}
}
