package game

import (
	"math"
	"testing"
)

func TestNormalizeDefaultsRotation(t *testing.T) {
	f := &Frame{PlayerRotation: math.NaN()}
	f.Normalize()
	if f.PlayerRotation != PointingUp {
		t.Fatalf("rotation = %v, want %v", f.PlayerRotation, PointingUp)
	}
	if f.Stars == nil || f.Projectiles == nil {
		t.Fatal("Normalize left nil slices")
	}
}

func TestNormalizeKeepsExplicitRotation(t *testing.T) {
	f := &Frame{PlayerRotation: 1.25}
	f.Normalize()
	if f.PlayerRotation != 1.25 {
		t.Fatalf("rotation = %v, want 1.25", f.PlayerRotation)
	}
}
