package game

import "math"

// GunConfig tunes gun rotation, recoil, and autofire spool behavior.
type GunConfig struct {
	RotationSpeed float64 // rad/s, matches ship turn rate

	RecoilDecayRate      float64 // recoil units shed per second
	RecoilRandomMax      float64 // max random kick per shot, radians
	RecoilStackLimit     float64 // multiplier capping accumulated recoil
	RecoilAngleScale     float64 // accumulated recoil → aim jitter
	AutofireCooldownMax  float64 // seconds between shots at 0% spool
	AutofireCooldownMin  float64 // seconds between shots at 100% spool
	SpoolUpTime          float64 // seconds from 0% to 100%
	SpoolDownTime        float64 // seconds from 100% back to 0%
	TrackingShotCooldown float64 // min seconds between tracking shots
}

// DefaultGunConfig returns the stock gun tuning.
func DefaultGunConfig() GunConfig {
	return GunConfig{
		RotationSpeed:        4.0,
		RecoilDecayRate:      2.0,
		RecoilRandomMax:      0.5,
		RecoilStackLimit:     5.0,
		RecoilAngleScale:     0.2,
		AutofireCooldownMax:  0.5,
		AutofireCooldownMin:  0.1,
		SpoolUpTime:          2.0,
		SpoolDownTime:        2.0,
		TrackingShotCooldown: 0.5,
	}
}

// ProjectileConfig tunes both projectile kinds.
type ProjectileConfig struct {
	TrackingSpeed        float64
	TrackingSize         float64
	TrackingLength       float64
	TrackingLifetime     float64
	TrackingScanInterval float64
	TrackingScanRadius   float64
	TrackingColor        RGB
	TrackingRecoil       float64

	AutofireSpeed    float64
	AutofireSize     float64
	AutofireLength   float64
	AutofireLifetime float64
	AutofireColor    RGB
	AutofireRecoil   float64

	SteeringStrength float64 // rad/s applied while homing
}

// DefaultProjectileConfig returns the stock projectile tuning.
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		TrackingSpeed:        800.0,
		TrackingSize:         6.0,
		TrackingLength:       12.0,
		TrackingLifetime:     5.0,
		TrackingScanInterval: 0.1,
		TrackingScanRadius:   200.0,
		TrackingColor:        RGB{100, 150, 255},
		TrackingRecoil:       0.05,

		AutofireSpeed:    1000.0,
		AutofireSize:     3.0,
		AutofireLength:   6.0,
		AutofireLifetime: 2.0,
		AutofireColor:    RGB{255, 200, 50},
		AutofireRecoil:   0.03,

		SteeringStrength: 10.0,
	}
}

// Gun mount geometry and fire-sector tuning.
const (
	leftGunOffsetX  = 7.5
	leftGunOffsetY  = 10.0
	rightGunOffsetX = -7.5
	rightGunOffsetY = 10.0

	// Overlap half-angles where both guns fire: dead ahead and dead astern.
	frontOverlap = 15.0 * math.Pi / 180.0
	rearOverlap  = 165.0 * math.Pi / 180.0
)
