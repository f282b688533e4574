// Package viewer is a debug window for a running simulation: coloured
// rectangles for terrain and entities, keyboard and gamepad control of the
// player.
package viewer

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/overworld/fx"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/sim"
	"github.com/automoto/overworld/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const followSmoothing = 0.15

type Options struct {
	Width, Height int
	Title         string
	Bindings      Bindings
	Logger        *log.Logger
	// OnEvents sees every step's events, for counters and saving.
	OnEvents func([]systems.Event)
}

// Game implements ebiten.Game around one simulation. Ebiten calls Update at
// the simulation's tick rate.
type Game struct {
	sim      *sim.Simulation
	controls *Controls
	effects  *fx.Effects
	logger   *log.Logger
	onEvents func([]systems.Event)

	width, height int
	title         string
	tickRate      int
	ticks         int64
	camera        gamemath.Vec
	debug         bool
}

func New(s *sim.Simulation, opts Options) *Game {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 960, 720
	}
	if opts.Bindings.Actions == nil {
		opts.Bindings = DefaultBindings()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Title == "" {
		opts.Title = "overworld"
	}

	g := &Game{
		sim:      s,
		controls: NewControls(opts.Bindings),
		effects:  fx.New(s.Config()),
		logger:   opts.Logger,
		onEvents: opts.OnEvents,
		width:    opts.Width,
		height:   opts.Height,
		title:    opts.Title,
		tickRate: s.Config().World.TickRate,
	}
	g.camera = g.cameraTarget()
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(g.tickRate)
	g.logger.Info("viewer opened", "width", g.width, "height", g.height, "tps", g.tickRate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	g.controls.Poll()
	if g.controls.JustPressed(ActionQuit) {
		return ebiten.Termination
	}
	if g.controls.JustPressed(ActionDebug) {
		g.debug = !g.debug
		g.logger.Debug("debug overlay toggled", "on", g.debug)
	}

	intent := g.controls.Intent(g.sim.Inventory())
	dt := 1 / float64(g.tickRate)
	g.ticks++
	events := g.sim.Step(dt, g.ticks*1000/int64(g.tickRate), intent)

	g.effects.Apply(events)
	g.effects.Update(dt)
	if g.onEvents != nil {
		g.onEvents(events)
	}

	g.follow()
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// follow eases the camera toward the player, keeping the level on screen.
func (g *Game) follow() {
	target := g.cameraTarget()
	g.camera.X += (target.X - g.camera.X) * followSmoothing
	g.camera.Y += (target.Y - g.camera.Y) * followSmoothing
}

func (g *Game) cameraTarget() gamemath.Vec {
	_, bounds := g.sim.Level()
	return clampCamera(g.sim.Player().Position, bounds, float64(g.width), float64(g.height))
}

// clampCamera keeps a view of w by h centred on target inside bounds. A
// level smaller than the view is centred.
func clampCamera(target gamemath.Vec, bounds gamemath.Rect, w, h float64) gamemath.Vec {
	clampAxis := func(v, lo, size, view float64) float64 {
		if size <= view {
			return lo + size/2
		}
		return math.Max(lo+view/2, math.Min(lo+size-view/2, v))
	}
	return gamemath.Vec{
		X: clampAxis(target.X, bounds.X, bounds.W, w),
		Y: clampAxis(target.Y, bounds.Y, bounds.H, h),
	}
}
