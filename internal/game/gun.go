package game

import (
	"math"
	"math/rand/v2"
)

// FireSector says which gun(s) answer a fire request, based on where the
// aim point sits relative to the hull.
type FireSector uint8

const (
	SectorLeft FireSector = iota
	SectorRight
	SectorBoth
)

// fireSector classifies the aim angle relative to the ship's facing.
// Both guns fire within ±15° of dead ahead and beyond ±165° (astern);
// otherwise only the gun on the aim side fires.
func fireSector(aimAngle, facing float64) FireSector {
	rel := normalizeAngle(aimAngle - facing)
	switch {
	case math.Abs(rel) <= frontOverlap || math.Abs(rel) >= rearOverlap:
		return SectorBoth
	case rel > 0:
		return SectorLeft
	default:
		return SectorRight
	}
}

// Gun is one mount on the hull. Its aim angle chases the mouse target
// independently of the hull heading, constrained to a ±100° arc around a
// base direction that rotates with the ship; the dead zone opposite the
// arc keeps the gun from sweeping through the hull.
type Gun struct {
	OffsetX, OffsetY float64 // mount point, ship-relative logical units
	Angle            float64 // current aim, world radians

	targetAngle    float64
	hasTarget      bool
	baseAngle      float64 // natural rest direction, ship-relative
	arcHalfWidth   float64
	arcMin, arcMax float64 // world-space arc bounds, updated per tick

	recoil       float64
	lastShotTime float64
	Spool        float64 // 0..1, drives autofire cadence and the HUD
	spooling     bool

	cfg GunConfig
}

// NewGun creates a gun at the given ship-relative mount point. The rest
// direction leans 45° outboard from the mount bearing so the two guns
// cover opposite flanks.
func NewGun(offsetX, offsetY float64, cfg GunConfig) *Gun {
	base := math.Atan2(offsetY, offsetX)
	if offsetX < 0 {
		base = normalizeAngle(base + math.Pi/4)
	} else {
		base = normalizeAngle(base - math.Pi/4)
	}
	g := &Gun{
		OffsetX:      offsetX,
		OffsetY:      offsetY,
		Angle:        base,
		baseAngle:    base,
		arcHalfWidth: 100.0 * math.Pi / 180.0,
		lastShotTime: math.Inf(-1),
		cfg:          cfg,
	}
	g.updateArc(0)
	return g
}

// SetTarget points the gun's tracking at a world-space angle.
func (g *Gun) SetTarget(angle float64) {
	g.targetAngle = angle
	g.hasTarget = true
}

// Advance runs one tick of recoil decay, spool-down, and target tracking.
// shipRotation is the hull's visual rotation, which anchors the arc.
func (g *Gun) Advance(shipRotation, dt float64) {
	if g.recoil > 0 {
		g.recoil = math.Max(0, g.recoil-g.cfg.RecoilDecayRate*dt)
	}

	// Spool winds down unless SpoolUp ran this tick.
	if g.Spool > 0 && !g.spooling {
		g.Spool = math.Max(0, g.Spool-dt/g.cfg.SpoolDownTime)
	}
	g.spooling = false

	g.updateArc(shipRotation)

	if !g.hasTarget {
		return
	}
	g.rotateToward(g.targetAngle, g.cfg.RotationSpeed*dt)
}

// SpoolUp raises the spool level toward 100% while a fire control is held.
func (g *Gun) SpoolUp(dt float64) {
	g.spooling = true
	g.Spool = math.Min(1, g.Spool+dt/g.cfg.SpoolUpTime)
}

// ReadyToFire checks the spool-scaled cooldown and, when ready, records
// the shot time. Cooldown runs from CooldownMax at 0% spool down to
// CooldownMin at 100%.
func (g *Gun) ReadyToFire(now float64) bool {
	cooldown := g.cfg.AutofireCooldownMax - (g.cfg.AutofireCooldownMax-g.cfg.AutofireCooldownMin)*g.Spool
	if now-g.lastShotTime < cooldown {
		return false
	}
	g.lastShotTime = now
	return true
}

// AddRecoil accumulates a random kick, capped at the stack limit.
func (g *Gun) AddRecoil(rng *rand.Rand, amount float64) {
	kick := (rng.Float64() - 0.5) * g.cfg.RecoilRandomMax
	g.recoil = math.Min(g.recoil+math.Abs(kick), g.cfg.RecoilStackLimit*amount)
}

// FiringAngle returns the aim angle with recoil jitter applied.
func (g *Gun) FiringAngle(rng *rand.Rand) float64 {
	return g.Angle + (rng.Float64()-0.5)*g.recoil*g.cfg.RecoilAngleScale
}

// MountPoint returns the gun's world position given the ship's center and
// visual rotation.
func (g *Gun) MountPoint(shipX, shipY, shipRotation float64) (float64, float64) {
	sin, cos := math.Sincos(shipRotation)
	return shipX + g.OffsetX*cos - g.OffsetY*sin,
		shipY + g.OffsetX*sin + g.OffsetY*cos
}

func (g *Gun) updateArc(shipRotation float64) {
	center := normalizeAngle(g.baseAngle + shipRotation)
	g.arcMin = normalizeAngle(center - g.arcHalfWidth)
	g.arcMax = normalizeAngle(center + g.arcHalfWidth)
}

// angleValid reports whether a world angle lies inside the current arc,
// handling wraparound at ±π.
func (g *Gun) angleValid(angle float64) bool {
	if g.arcMin < g.arcMax {
		return angle >= g.arcMin && angle <= g.arcMax
	}
	return angle >= g.arcMin || angle <= g.arcMax
}

func (g *Gun) snapToNearestEdge() {
	if math.Abs(angleDiff(g.Angle, g.arcMin)) < math.Abs(angleDiff(g.Angle, g.arcMax)) {
		g.Angle = g.arcMin
	} else {
		g.Angle = g.arcMax
	}
}

// rotateToward steps the aim toward target without crossing the dead
// zone. If the direct path would leave the arc, the gun turns the other
// way; an unreachable target parks the gun at the nearest arc edge.
func (g *Gun) rotateToward(target, maxStep float64) {
	diff := angleDiff(g.Angle, target)
	step := math.Max(-maxStep, math.Min(maxStep, diff))
	candidate := normalizeAngle(g.Angle + step)

	if g.angleValid(candidate) {
		g.Angle = candidate
		if math.Abs(angleDiff(g.Angle, target)) < 0.01 && !g.angleValid(target) {
			g.snapToNearestEdge()
		}
		return
	}

	dir := -1.0
	if diff < 0 {
		dir = 1.0
	}
	g.Angle = normalizeAngle(g.Angle + dir*maxStep)
	if !g.angleValid(g.Angle) {
		g.snapToNearestEdge()
	}
}

// normalizeAngle wraps an angle to [-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleDiff returns the shortest signed rotation from one angle to another.
func angleDiff(from, to float64) float64 {
	return normalizeAngle(to - from)
}
