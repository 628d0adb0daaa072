package render

import (
	"math"
	"testing"
)

func TestResizeWidthWinsWhenTooWide(t *testing.T) {
	v := NewViewport(800, 600)
	w, h := v.Resize(1000, 500)
	if w != 1000 || h != 750 {
		t.Fatalf("Resize(1000, 500) = (%d, %d), want (1000, 750)", w, h)
	}
}

func TestResizeHeightWinsWhenTooTall(t *testing.T) {
	v := NewViewport(800, 600)
	w, h := v.Resize(400, 600)
	if w != 800 || h != 600 {
		t.Fatalf("Resize(400, 600) = (%d, %d), want (800, 600)", w, h)
	}
}

func TestResizeKeepsExactFit(t *testing.T) {
	v := NewViewport(800, 600)
	w, h := v.Resize(1600, 1200)
	if w != 1600 || h != 1200 {
		t.Fatalf("Resize(1600, 1200) = (%d, %d), want unchanged", w, h)
	}
}

func TestScaleIsWidthOverLogicalWidth(t *testing.T) {
	v := NewViewport(1000, 500)
	if got := v.Scale(); got != float64(v.Width)/800.0 {
		t.Fatalf("Scale = %v, want width/800 = %v", got, float64(v.Width)/800.0)
	}
	if math.Abs(v.Scale()-1.25) > 1e-12 {
		t.Fatalf("Scale = %v, want 1.25", v.Scale())
	}
}

func TestFitMonitorLandscape(t *testing.T) {
	// Height binds: 90% of 900 = 810, width follows at 4:3.
	w, h := FitMonitor(2000, 900)
	if w != 1080 || h != 810 {
		t.Fatalf("FitMonitor(2000, 900) = (%d, %d), want (1080, 810)", w, h)
	}
}

func TestFitMonitorPortrait(t *testing.T) {
	// Width binds: 90% of 800 = 720, height follows at 4:3.
	w, h := FitMonitor(800, 1000)
	if w != 720 || h != 540 {
		t.Fatalf("FitMonitor(800, 1000) = (%d, %d), want (720, 540)", w, h)
	}
}

func TestFitMonitorFallback(t *testing.T) {
	w, h := FitMonitor(0, 0)
	if w != 800 || h != 600 {
		t.Fatalf("FitMonitor(0, 0) = (%d, %d), want (800, 600)", w, h)
	}
}

func TestFontSizeTracksScale(t *testing.T) {
	v := NewViewport(800, 600)
	if got := v.FontSize(); got != BaseFontSize {
		t.Fatalf("FontSize at scale 1 = %d, want %d", got, BaseFontSize)
	}
	v.Resize(1600, 1200)
	if got := v.FontSize(); got != BaseFontSize*2 {
		t.Fatalf("FontSize at scale 2 = %d, want %d", got, BaseFontSize*2)
	}
}
