package input

// Engine is the command surface the input layer drives. The simulation's
// Session satisfies it; tests substitute a recorder.
type Engine interface {
	SendCommand(name string)
	SetMouseTarget(x, y float64)
	SetAltMode(on bool)
	SetBoostMode(on bool)
	SetControlMode(on bool)
	StartAutofire()
	StopAutofire()
	StartShootingTracking()
	StopShootingTracking()
}

// Sample is one tick's worth of raw device state, already reduced to
// edges and levels by the poller.
type Sample struct {
	Quit bool

	// Movement keys are level-triggered: true while held.
	Up, Down, Left, Right bool

	// Modifier edges, per physical variant. Left and right variants of
	// the same modifier report independently.
	AltPressed, AltReleased         bool
	BoostPressed, BoostReleased     bool
	ControlPressed, ControlReleased bool
	AltHeld, BoostHeld, ControlHeld bool

	// Fire control edges from both sources.
	SpacePressed, SpaceReleased bool
	MousePressed, MouseReleased bool

	// Cursor state in device pixels.
	MouseX, MouseY float64
	MouseMoved     bool
}

// Tracker converts per-tick samples into engine commands. It remembers
// modifier levels so that pressing the second physical variant of an
// already-active modifier does not re-send the enable.
type Tracker struct {
	engine Engine

	altOn     bool
	boostOn   bool
	controlOn bool
	firing    bool
}

// NewTracker wires a tracker to its engine.
func NewTracker(engine Engine) *Tracker {
	return &Tracker{engine: engine}
}

// Tick translates one sample into commands. scale converts device pixels
// to logical units for the mouse target. Returns true when the player
// asked to quit; a quitting tick sends nothing to the engine.
func (t *Tracker) Tick(s Sample, scale float64) bool {
	if s.Quit {
		return true
	}

	t.applyModifiers(s)
	t.applyFire(s)

	if s.MouseMoved && scale > 0 {
		t.engine.SetMouseTarget(s.MouseX/scale, s.MouseY/scale)
	}

	if s.Up {
		t.engine.SendCommand("move_up")
	}
	if s.Down {
		t.engine.SendCommand("move_down")
	}
	if s.Left {
		t.engine.SendCommand("move_left")
	}
	if s.Right {
		t.engine.SendCommand("move_right")
	}
	return false
}

func (t *Tracker) applyModifiers(s Sample) {
	// Press edges only fire the enable when the modifier was off: the
	// other physical variant may already hold it down.
	if s.AltPressed && !t.altOn {
		t.altOn = true
		t.engine.SetAltMode(true)
	}
	if s.AltReleased && t.altOn && !s.AltHeld {
		t.altOn = false
		t.engine.SetAltMode(false)
	}

	if s.BoostPressed && !t.boostOn {
		t.boostOn = true
		t.engine.SetBoostMode(true)
	}
	if s.BoostReleased && t.boostOn && !s.BoostHeld {
		t.boostOn = false
		t.engine.SetBoostMode(false)
	}

	if s.ControlPressed && !t.controlOn {
		t.controlOn = true
		t.engine.SetControlMode(true)
	}
	if s.ControlReleased && t.controlOn && !s.ControlHeld {
		t.controlOn = false
		t.engine.SetControlMode(false)
	}
}

// applyFire handles both fire sources against one shared firing flag.
// Press edges run before release edges so that a press and release landing
// in the same tick still produce the full start/stop sequence.
func (t *Tracker) applyFire(s Sample) {
	if (s.SpacePressed || s.MousePressed) && !t.firing {
		t.firing = true
		t.engine.StartAutofire()
	}
	if (s.SpaceReleased || s.MouseReleased) && t.firing {
		t.firing = false
		t.engine.StopAutofire()
		t.engine.StartShootingTracking()
		t.engine.StopShootingTracking()
	}
}
