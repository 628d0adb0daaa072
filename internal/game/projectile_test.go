package game

import (
	"math"
	"testing"
)

func TestAutofireFliesStraight(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewAutofireProjectile(0, 0, 0, cfg, 0, 0)

	p.Advance(0.1, nil)
	if math.Abs(p.X-cfg.AutofireSpeed*0.1) > 1e-9 || p.Y != 0 {
		t.Fatalf("after 0.1s: pos = (%v, %v), want (%v, 0)", p.X, p.Y, cfg.AutofireSpeed*0.1)
	}
	if p.Expired() {
		t.Fatal("bullet expired immediately")
	}

	p.Advance(cfg.AutofireLifetime, nil)
	if !p.Expired() {
		t.Fatal("bullet should expire past its lifetime")
	}
}

func TestAutofireInheritsShooterVelocity(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewAutofireProjectile(0, 0, 0, cfg, 100, -50)

	if p.VX != cfg.AutofireSpeed+100 || p.VY != -50 {
		t.Fatalf("velocity = (%v, %v), want (%v, -50)", p.VX, p.VY, cfg.AutofireSpeed+100)
	}
}

func TestTrackingAcquiresAndSteers(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewTrackingProjectile(0, 0, 0, cfg, 0, 0)
	targets := []targetRef{{X: 150, Y: 80, ID: 1}}

	// First tick burns the scan interval and acquires.
	p.Advance(cfg.TrackingScanInterval, targets)
	if p.scanning || p.targetID != 1 {
		t.Fatalf("target not acquired: scanning=%v id=%d", p.scanning, p.targetID)
	}

	speedBefore := math.Hypot(p.VX, p.VY)
	p.Advance(0.05, targets)

	// Target sits below the flight line; steering must bend the path down.
	if p.VY <= 0 {
		t.Fatalf("VY = %v, want > 0 (steering toward target)", p.VY)
	}
	speedAfter := math.Hypot(p.VX, p.VY)
	if math.Abs(speedAfter-speedBefore) > 1e-6 {
		t.Fatalf("steering changed speed: %v -> %v", speedBefore, speedAfter)
	}
}

func TestTrackingIgnoresTargetsOutsideScanRadius(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewTrackingProjectile(0, 0, 0, cfg, 0, 0)
	far := []targetRef{{X: cfg.TrackingScanRadius * 10, Y: 0, ID: 1}}

	p.Advance(cfg.TrackingScanInterval, far)
	if p.targetID != -1 {
		t.Fatalf("acquired target %d beyond scan radius", p.targetID)
	}
}

func TestProjectileRotationFollowsVelocity(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewAutofireProjectile(0, 0, math.Pi/2, cfg, 0, 0)
	if got := p.Rotation(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("Rotation = %v, want %v", got, math.Pi/2)
	}
}
