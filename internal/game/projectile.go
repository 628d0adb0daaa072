package game

import "math"

// ProjectileKind distinguishes the two bullet types.
type ProjectileKind uint8

const (
	// KindAutofire is the fast, straight, short-lived stream bullet.
	KindAutofire ProjectileKind = iota
	// KindTracking is the heavier homing bullet fired on release.
	KindTracking
)

// Projectile is one live bullet. Tracking bullets scan for a target on an
// interval and steer toward it; autofire bullets fly straight until they
// expire.
type Projectile struct {
	X, Y   float64
	VX, VY float64

	Kind   ProjectileKind
	Size   float64 // hit-geometry width
	Length float64 // hit-geometry length

	age      float64
	lifetime float64

	targetID   int // -1 when unassigned
	scanning   bool
	scanTimer  float64
	scanRadius float64

	cfg ProjectileConfig
}

// targetRef is an entity a tracking bullet can home on.
type targetRef struct {
	X, Y float64
	ID   int
}

// NewTrackingProjectile spawns a homing bullet. The shooter's velocity is
// inherited so bullets don't lag a moving ship.
func NewTrackingProjectile(x, y, angle float64, cfg ProjectileConfig, shooterVX, shooterVY float64) Projectile {
	sin, cos := math.Sincos(angle)
	return Projectile{
		X: x, Y: y,
		VX:         cos*cfg.TrackingSpeed + shooterVX,
		VY:         sin*cfg.TrackingSpeed + shooterVY,
		Kind:       KindTracking,
		Size:       cfg.TrackingSize,
		Length:     cfg.TrackingLength,
		lifetime:   cfg.TrackingLifetime,
		targetID:   -1,
		scanning:   true,
		scanTimer:  cfg.TrackingScanInterval,
		scanRadius: cfg.TrackingScanRadius,
		cfg:        cfg,
	}
}

// NewAutofireProjectile spawns a straight-flying stream bullet.
func NewAutofireProjectile(x, y, angle float64, cfg ProjectileConfig, shooterVX, shooterVY float64) Projectile {
	sin, cos := math.Sincos(angle)
	return Projectile{
		X: x, Y: y,
		VX:       cos*cfg.AutofireSpeed + shooterVX,
		VY:       sin*cfg.AutofireSpeed + shooterVY,
		Kind:     KindAutofire,
		Size:     cfg.AutofireSize,
		Length:   cfg.AutofireLength,
		lifetime: cfg.AutofireLifetime,
		targetID: -1,
		cfg:      cfg,
	}
}

// Advance integrates one tick of flight and, for tracking bullets, the
// scan/steer cycle against the given potential targets.
func (p *Projectile) Advance(dt float64, targets []targetRef) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.age += dt

	if p.Kind != KindTracking {
		return
	}

	if p.targetID >= 0 && !p.scanning {
		// Target may have despawned; fall back to scanning.
		found := false
		for _, t := range targets {
			if t.ID == p.targetID {
				found = true
				break
			}
		}
		p.scanning = !found
	}

	if p.scanning {
		p.scanTimer -= dt
		if p.scanTimer <= 0 {
			p.scanTimer = p.cfg.TrackingScanInterval
			if id, ok := p.nearestTarget(targets); ok {
				p.targetID = id
				p.scanning = false
			}
		}
		return
	}

	for _, t := range targets {
		if t.ID == p.targetID {
			p.steerToward(t.X, t.Y, dt)
			break
		}
	}
}

func (p *Projectile) nearestTarget(targets []targetRef) (int, bool) {
	best := -1
	bestDist := p.scanRadius
	for _, t := range targets {
		d := math.Hypot(t.X-p.X, t.Y-p.Y)
		if d < bestDist {
			bestDist = d
			best = t.ID
		}
	}
	return best, best >= 0
}

// steerToward rotates the velocity vector toward the target at the
// configured steering rate. The speed magnitude is preserved.
func (p *Projectile) steerToward(tx, ty, dt float64) {
	speed := math.Hypot(p.VX, p.VY)
	if speed < 1 {
		return
	}
	dx := tx - p.X
	dy := ty - p.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}

	// Sign of the perpendicular dot product picks the turn direction.
	perpX := -p.VY / speed
	perpY := p.VX / speed
	turn := perpX*dx/dist + perpY*dy/dist

	steer := p.cfg.SteeringStrength * dt
	if turn < 0 {
		steer = -steer
	}
	sin, cos := math.Sincos(steer)
	p.VX, p.VY = p.VX*cos-p.VY*sin, p.VX*sin+p.VY*cos
}

// Expired reports whether the bullet has outlived its lifetime.
func (p *Projectile) Expired() bool {
	return p.age >= p.lifetime
}

// Rotation returns the flight direction, or 0 when nearly stationary.
func (p *Projectile) Rotation() float64 {
	if math.Abs(p.VX) < 0.01 && math.Abs(p.VY) < 0.01 {
		return 0
	}
	return math.Atan2(p.VY, p.VX)
}

// TintColor returns the display color for the bullet kind.
func (p *Projectile) TintColor() RGB {
	if p.Kind == KindTracking {
		return p.cfg.TrackingColor
	}
	return p.cfg.AutofireColor
}
