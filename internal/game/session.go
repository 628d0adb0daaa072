package game

import (
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

const (
	projectileCap = 100
	autofireDelay = 0.5 // seconds a fire control is held before the stream opens

	playerTargetID = 999
)

// Session is the simulation. It owns all gameplay state and exposes the
// command/query surface the client drives: buffered commands are drained
// once per Update, in order, then physics, guns, projectiles, camera,
// and the star field advance by dt.
type Session struct {
	world   *ecs.World
	ship    ecs.Entity
	shipMap *ecs.Map[Ship]

	leftGun  *Gun
	rightGun *Gun

	stars       *Pool[Star]
	projectiles *Pool[Projectile]
	camera      *Camera
	rng         *rand.Rand

	commands []command
	now      float64

	autofiring       bool
	autofireStart    float64
	wasAutofiring    bool // suppresses the release shot after a real burst
	lastTrackingShot float64

	gunCfg  GunConfig
	projCfg ProjectileConfig
}

// NewSession creates a fresh simulation. The seed drives star generation
// and recoil jitter; a fixed seed gives a deterministic session.
func NewSession(seed uint64) *Session {
	s := &Session{
		world:   ecs.NewWorld(256),
		rng:     rand.New(rand.NewPCG(seed, seed>>16|3)),
		gunCfg:  DefaultGunConfig(),
		projCfg: DefaultProjectileConfig(),
		stars:   NewPool[Star](starCount),
		camera:  NewCamera(0, 0),
	}
	s.projectiles = NewPool[Projectile](projectileCap)
	s.lastTrackingShot = math.Inf(-1)

	s.shipMap = ecs.NewMap[Ship](s.world)
	ship := NewShip()
	s.ship = s.shipMap.NewEntity(&ship)

	s.leftGun = NewGun(leftGunOffsetX, leftGunOffsetY, s.gunCfg)
	s.rightGun = NewGun(rightGunOffsetX, rightGunOffsetY, s.gunCfg)

	// Seed stars well past the visible area so there is sky to discover.
	for i := 0; i < starCount; i++ {
		s.stars.Alloc(NewStarInArea(s.rng, -400, 1200, -400, 1200))
	}
	return s
}

func (s *Session) push(c command) {
	s.commands = append(s.commands, c)
}

// SendCommand asserts a directional intent for the current tick. Unknown
// names are ignored.
func (s *Session) SendCommand(name string) {
	switch name {
	case "move_up":
		s.push(command{kind: cmdMoveUp})
	case "move_down":
		s.push(command{kind: cmdMoveDown})
	case "move_left":
		s.push(command{kind: cmdMoveLeft})
	case "move_right":
		s.push(command{kind: cmdMoveRight})
	}
}

// SetMouseTarget updates the aim target from logical screen coordinates.
// The current camera offset is captured with the command so the aim angle
// is resolved against the view the player saw when they moved the mouse.
func (s *Session) SetMouseTarget(x, y float64) {
	s.push(command{kind: cmdMouseTarget, x: x, y: y, camX: s.camera.X, camY: s.camera.Y})
}

// SetAltMode toggles precision flight.
func (s *Session) SetAltMode(on bool) {
	s.push(command{kind: cmdAltMode, on: on})
}

// SetBoostMode toggles boost.
func (s *Session) SetBoostMode(on bool) {
	s.push(command{kind: cmdBoostMode, on: on})
}

// SetControlMode toggles hard braking and camera snap.
func (s *Session) SetControlMode(on bool) {
	s.push(command{kind: cmdControlMode, on: on})
}

// StartAutofire opens continuous fire (after the hold delay).
func (s *Session) StartAutofire() {
	s.push(command{kind: cmdStartAutofire})
}

// StopAutofire closes continuous fire.
func (s *Session) StopAutofire() {
	s.push(command{kind: cmdStopAutofire})
}

// StartShootingTracking fires the discrete release shot, unless a real
// autofire burst just ended or the tracking cooldown is still running.
func (s *Session) StartShootingTracking() {
	s.push(command{kind: cmdStartTracking})
}

// StopShootingTracking completes the tracking pulse. It carries no state
// of its own; the pair exists so a press-release always fires exactly one
// shot.
func (s *Session) StopShootingTracking() {
	s.push(command{kind: cmdStopTracking})
}

// Update advances the simulation by dt seconds.
func (s *Session) Update(dt float64) {
	ship := s.shipMap.Get(s.ship)

	// Movement intent is per-tick; it only persists while keys are held.
	ship.InputDX, ship.InputDY = 0, 0

	for _, c := range s.commands {
		s.apply(ship, c)
	}
	s.commands = s.commands[:0]

	if mag := math.Hypot(ship.InputDX, ship.InputDY); mag > 0.01 {
		ship.InputDX /= mag
		ship.InputDY /= mag
	}

	s.now += dt

	if ship.HasAim {
		s.leftGun.SetTarget(ship.AimAngle)
		s.rightGun.SetTarget(ship.AimAngle)
	}

	// Fire before movement so spawn points use the pre-movement position.
	if s.autofiring {
		s.leftGun.SpoolUp(dt)
		s.rightGun.SpoolUp(dt)
		if s.now-s.autofireStart >= autofireDelay {
			s.wasAutofiring = true
			s.fireStream(ship)
		}
	}

	s.leftGun.Advance(ship.Rotation(), dt)
	s.rightGun.Advance(ship.Rotation(), dt)

	ship.Integrate(dt)

	// The player is the only homing candidate so far; tracking bullets
	// scan it and curve back toward the ship.
	targets := []targetRef{{X: ship.X, Y: ship.Y, ID: playerTargetID}}

	var expired []int
	s.projectiles.Each(func(i int, p *Projectile) {
		p.Advance(dt, targets)
		if p.Expired() {
			expired = append(expired, i)
		}
	})
	for _, i := range expired {
		s.projectiles.Release(i)
	}

	camDX, camDY := s.camera.Follow(ship.X, ship.Y, math.Hypot(ship.VX, ship.VY), ship.ControlMode)

	var gone []int
	s.stars.Each(func(i int, st *Star) {
		st.X += camDX * st.Depth * starParallaxScale
		st.Y += camDY * st.Depth * starParallaxScale
		st.Advance(dt)
		if st.offscreen(s.camera.X, s.camera.Y) {
			gone = append(gone, i)
		}
	})
	for _, i := range gone {
		s.stars.Release(i)
		s.stars.Alloc(NewStarAtEdge(s.rng, s.camera.X, s.camera.Y))
	}
}

func (s *Session) apply(ship *Ship, c command) {
	switch c.kind {
	case cmdMoveUp:
		ship.InputDY = -1
	case cmdMoveDown:
		ship.InputDY = 1
	case cmdMoveLeft:
		ship.InputDX = -1
	case cmdMoveRight:
		ship.InputDX = 1
	case cmdAltMode:
		ship.AltMode = c.on
	case cmdBoostMode:
		ship.BoostMode = c.on
	case cmdControlMode:
		ship.ControlMode = c.on
	case cmdMouseTarget:
		worldX := c.x + c.camX
		worldY := c.y + c.camY
		ship.AimAngle = math.Atan2(worldY-ship.Y, worldX-ship.X)
		ship.HasAim = true
	case cmdStartAutofire:
		s.autofiring = true
		s.autofireStart = s.now
	case cmdStopAutofire:
		s.autofiring = false
		// wasAutofiring stays set; the tracking command consumes it.
	case cmdStartTracking:
		s.fireTrackingShot(ship)
	case cmdStopTracking:
		// Pulse terminator, nothing to do.
	}
}

// fireTrackingShot handles the discrete release shot. A brief click fires
// one volley; a release after a real autofire burst does not.
func (s *Session) fireTrackingShot(ship *Ship) {
	if s.wasAutofiring {
		s.wasAutofiring = false
		return
	}
	if s.now-s.lastTrackingShot < s.gunCfg.TrackingShotCooldown {
		return
	}
	s.lastTrackingShot = s.now

	aim := ship.Facing
	if ship.HasAim {
		aim = ship.AimAngle
	}
	sector := fireSector(aim, ship.Facing)
	if sector == SectorLeft || sector == SectorBoth {
		s.spawnTracking(ship, s.leftGun)
	}
	if sector == SectorRight || sector == SectorBoth {
		s.spawnTracking(ship, s.rightGun)
	}
}

func (s *Session) spawnTracking(ship *Ship, g *Gun) {
	x, y := g.MountPoint(ship.X, ship.Y, ship.Rotation())
	p := NewTrackingProjectile(x, y, g.FiringAngle(s.rng), s.projCfg, ship.VX, ship.VY)
	if s.projectiles.Alloc(p) >= 0 {
		g.AddRecoil(s.rng, s.projCfg.TrackingRecoil)
	}
}

// fireStream emits autofire bullets from whichever guns cover the aim
// sector and are off cooldown.
func (s *Session) fireStream(ship *Ship) {
	aim := ship.Facing
	if ship.HasAim {
		aim = ship.AimAngle
	}
	sector := fireSector(aim, ship.Facing)
	if (sector == SectorLeft || sector == SectorBoth) && s.leftGun.ReadyToFire(s.now) {
		s.spawnAutofire(ship, s.leftGun)
	}
	if (sector == SectorRight || sector == SectorBoth) && s.rightGun.ReadyToFire(s.now) {
		s.spawnAutofire(ship, s.rightGun)
	}
}

func (s *Session) spawnAutofire(ship *Ship, g *Gun) {
	x, y := g.MountPoint(ship.X, ship.Y, ship.Rotation())
	p := NewAutofireProjectile(x, y, g.FiringAngle(s.rng), s.projCfg, ship.VX, ship.VY)
	if s.projectiles.Alloc(p) >= 0 {
		g.AddRecoil(s.rng, s.projCfg.AutofireRecoil)
	}
}

// Frame builds the per-tick scene snapshot. The returned value owns its
// slices; nothing aliases session state across ticks.
func (s *Session) Frame() *Frame {
	ship := s.shipMap.Get(s.ship)

	f := &Frame{
		PlayerX:        ship.X,
		PlayerY:        ship.Y,
		PlayerRotation: ship.Rotation(),
		CameraX:        s.camera.X,
		CameraY:        s.camera.Y,
		LeftGunAngle:   s.leftGun.Angle,
		RightGunAngle:  s.rightGun.Angle,
		LeftGunSpool:   s.leftGun.Spool,
		RightGunSpool:  s.rightGun.Spool,
		Stars:          make([]StarData, 0, s.stars.Len()),
		Projectiles:    make([]ProjectileData, 0, s.projectiles.Len()),
	}

	s.stars.Each(func(_ int, st *Star) {
		f.Stars = append(f.Stars, StarData{
			X: st.X, Y: st.Y,
			Size:    st.Size,
			Color:   st.Color,
			Shape:   st.Shape,
			Twinkle: st.TwinkleLevel(),
		})
	})

	s.projectiles.Each(func(_ int, p *Projectile) {
		f.Projectiles = append(f.Projectiles, ProjectileData{
			X: p.X, Y: p.Y,
			Length:   p.Length,
			Width:    p.Size,
			Rotation: p.Rotation(),
			Color:    p.TintColor(),
		})
	})

	return f
}
