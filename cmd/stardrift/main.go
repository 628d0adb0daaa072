package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stardrift/stardrift/internal/game"
	"github.com/stardrift/stardrift/internal/input"
	"github.com/stardrift/stardrift/internal/render"
)

const (
	title = "Stardrift"

	// Variable-rate ticks: the simulation advances by measured wall time,
	// clamped so a stalled frame cannot teleport the ship.
	maxTickSeconds = 0.1
)

// Game is the Ebitengine game struct. It owns the window, rendering, and
// input; all gameplay state lives in the session.
type Game struct {
	viewport *render.Viewport
	scene    *render.Scene
	poller   *input.Poller
	tracker  *input.Tracker
	session  *game.Session

	lastTick time.Time
}

func NewGame(w, h int) *Game {
	session := game.NewSession(uint64(time.Now().UnixNano()))
	viewport := render.NewViewport(w, h)
	return &Game{
		viewport: viewport,
		scene:    render.NewScene(viewport),
		poller:   input.NewPoller(),
		tracker:  input.NewTracker(session),
		session:  session,
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
		if dt > maxTickSeconds {
			dt = maxTickSeconds
		}
	}
	g.lastTick = now

	if g.tracker.Tick(g.poller.Poll(), g.viewport.Scale()) {
		return ebiten.Termination
	}

	g.session.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.session.Frame())
}

// Layout locks the drawable surface to 4:3 whatever window size the OS
// grants.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.Resize(outsideWidth, outsideHeight)
}

func main() {
	mw, mh := ebiten.Monitor().Size()
	w, h := render.FitMonitor(mw, mh)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(w, h)); err != nil {
		log.Fatal(err)
	}
}
