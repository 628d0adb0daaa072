package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Modifier key variants. Either physical key activates the modifier.
var (
	altKeys     = [2]ebiten.Key{ebiten.KeyAltLeft, ebiten.KeyAltRight}
	boostKeys   = [2]ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	controlKeys = [2]ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight}
)

// Poller reads device state once per tick and reduces it to a Sample.
// It tracks the previous cursor position to detect motion, since the
// platform only exposes absolute coordinates.
type Poller struct {
	lastMouseX int
	lastMouseY int
	primed     bool
}

// NewPoller creates a poller. The first tick never reports mouse motion;
// there is no previous position to compare against.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll gathers the current tick's input state.
func (p *Poller) Poll() Sample {
	var s Sample

	s.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	s.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	s.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	s.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	s.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	s.AltPressed, s.AltReleased, s.AltHeld = pollModifier(altKeys)
	s.BoostPressed, s.BoostReleased, s.BoostHeld = pollModifier(boostKeys)
	s.ControlPressed, s.ControlReleased, s.ControlHeld = pollModifier(controlKeys)

	s.SpacePressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.SpaceReleased = inpututil.IsKeyJustReleased(ebiten.KeySpace)
	s.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.MouseReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	mx, my := ebiten.CursorPosition()
	s.MouseX = float64(mx)
	s.MouseY = float64(my)
	if p.primed && (mx != p.lastMouseX || my != p.lastMouseY) {
		s.MouseMoved = true
	}
	p.lastMouseX, p.lastMouseY = mx, my
	p.primed = true

	return s
}

// pollModifier merges the two physical variants of a modifier into
// press/release edges and a held level.
func pollModifier(keys [2]ebiten.Key) (pressed, released, held bool) {
	for _, k := range keys {
		pressed = pressed || inpututil.IsKeyJustPressed(k)
		released = released || inpututil.IsKeyJustReleased(k)
		held = held || ebiten.IsKeyPressed(k)
	}
	return pressed, released, held
}
