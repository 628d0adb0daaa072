package input

import (
	"fmt"
	"reflect"
	"testing"
)

// recorder captures engine calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) SendCommand(name string) { r.calls = append(r.calls, name) }
func (r *recorder) SetMouseTarget(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("mouse %.1f %.1f", x, y))
}
func (r *recorder) SetAltMode(on bool)     { r.calls = append(r.calls, fmt.Sprintf("alt %v", on)) }
func (r *recorder) SetBoostMode(on bool)   { r.calls = append(r.calls, fmt.Sprintf("boost %v", on)) }
func (r *recorder) SetControlMode(on bool) { r.calls = append(r.calls, fmt.Sprintf("control %v", on)) }
func (r *recorder) StartAutofire()         { r.calls = append(r.calls, "start_autofire") }
func (r *recorder) StopAutofire()          { r.calls = append(r.calls, "stop_autofire") }
func (r *recorder) StartShootingTracking() { r.calls = append(r.calls, "start_shooting_tracking") }
func (r *recorder) StopShootingTracking()  { r.calls = append(r.calls, "stop_shooting_tracking") }

func TestHeldKeySendsEveryTick(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	for i := 0; i < 3; i++ {
		tr.Tick(Sample{Up: true}, 1.0)
	}

	want := []string{"move_up", "move_up", "move_up"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestFirePressReleaseSequence(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{SpacePressed: true}, 1.0)
	tr.Tick(Sample{SpaceReleased: true}, 1.0)

	want := []string{
		"start_autofire",
		"stop_autofire",
		"start_shooting_tracking",
		"stop_shooting_tracking",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestSameTickPressReleaseStillFiresFullSequence(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{SpacePressed: true, SpaceReleased: true}, 1.0)

	want := []string{
		"start_autofire",
		"stop_autofire",
		"start_shooting_tracking",
		"stop_shooting_tracking",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestBothFireSourcesShareOneFlag(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{SpacePressed: true}, 1.0)
	// Mouse press while space is held: no second start.
	tr.Tick(Sample{MousePressed: true}, 1.0)
	if got := len(rec.calls); got != 1 {
		t.Fatalf("calls after second source press = %v, want just the start", rec.calls)
	}

	// Space release stops fire even though the mouse is still down.
	tr.Tick(Sample{SpaceReleased: true}, 1.0)
	want := []string{
		"start_autofire",
		"stop_autofire",
		"start_shooting_tracking",
		"stop_shooting_tracking",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	// The later mouse release finds the flag already clear.
	tr.Tick(Sample{MouseReleased: true}, 1.0)
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("stale release produced calls: %v", rec.calls)
	}
}

func TestModifierVariantsShareState(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{AltPressed: true, AltHeld: true}, 1.0)
	// Second physical variant goes down: the modifier is already on.
	tr.Tick(Sample{AltPressed: true, AltHeld: true}, 1.0)
	// One variant up, the other still held: stays on.
	tr.Tick(Sample{AltReleased: true, AltHeld: true}, 1.0)
	// Last variant up: off.
	tr.Tick(Sample{AltReleased: true}, 1.0)

	want := []string{"alt true", "alt false"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestAllModifiersMapIndependently(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{BoostPressed: true, BoostHeld: true, ControlPressed: true, ControlHeld: true}, 1.0)
	tr.Tick(Sample{BoostReleased: true, ControlHeld: true}, 1.0)

	want := []string{"boost true", "control true", "boost false"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestMouseTargetDividesByScale(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{MouseMoved: true, MouseX: 400, MouseY: 300}, 2.0)

	want := []string{"mouse 200.0 150.0"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestStationaryMouseSendsNothing(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{MouseX: 400, MouseY: 300}, 2.0)
	if len(rec.calls) != 0 {
		t.Fatalf("stationary cursor produced calls: %v", rec.calls)
	}
}

func TestQuitSuppressesAllCommands(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	quit := tr.Tick(Sample{Quit: true, Up: true, SpacePressed: true, MouseMoved: true}, 1.0)
	if !quit {
		t.Fatal("Tick should report quit")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("quitting tick sent commands: %v", rec.calls)
	}
}

func TestDiagonalSendsBothDirections(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Tick(Sample{Up: true, Right: true}, 1.0)

	want := []string{"move_up", "move_right"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}
