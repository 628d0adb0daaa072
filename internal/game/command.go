package game

// commandKind discriminates buffered session commands.
type commandKind uint8

const (
	cmdMoveUp commandKind = iota
	cmdMoveDown
	cmdMoveLeft
	cmdMoveRight
	cmdAltMode
	cmdBoostMode
	cmdControlMode
	cmdMouseTarget
	cmdStartAutofire
	cmdStopAutofire
	cmdStartTracking
	cmdStopTracking
)

// command is one buffered input, applied in order at the next Update.
// MouseTarget captures the camera offset at issue time so the aim angle
// is computed against the view the player actually saw.
type command struct {
	kind       commandKind
	on         bool    // mode commands
	x, y       float64 // mouse target, logical screen coords
	camX, camY float64 // camera offset when the target was set
}
