package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/systems/factory"
	"github.com/yohamta/donburi"
)

type harness struct {
	w donburi.World
	c *config.Config
	f *Frame
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c := config.Default()
	w := donburi.NewWorld()
	space := factory.CreateSpace(w, 4096, 4096, c.World.SpaceCell)
	return &harness{
		w: w,
		c: c,
		f: &Frame{
			Dt:     1.0 / 60,
			Config: c,
			Rand:   rand.New(rand.NewSource(7)),
			Broad:  NewBroadphase(w, components.Space.Get(space)),
		},
	}
}

// at moves the clock and clears the frame's output.
func (h *harness) at(now int64) *Frame {
	h.f.Now = now
	h.f.Commands = nil
	h.f.Events = nil
	return h.f
}

// spawnPlayer places the player with its hitbox centred on center.
func (h *harness) spawnPlayer(center gamemath.Vec) *donburi.Entry {
	half := h.c.Player.SpriteSize / 2
	return factory.CreatePlayer(h.w, h.c, gamemath.Vec{X: center.X - half, Y: center.Y - half})
}

// spawnEnemy places an enemy with its hitbox centred on center.
func (h *harness) spawnEnemy(name string, center gamemath.Vec) *donburi.Entry {
	typ, _, _ := h.c.EnemyType(name)
	half := typ.SpriteSize / 2
	return factory.CreateEnemy(h.w, h.c, gamemath.Vec{X: center.X - half, Y: center.Y - half}, name, h.f.Now)
}

func (h *harness) wall(index int, r gamemath.Rect) {
	factory.CreateObstacle(h.w, index, r, config.TerrainSolid)
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func commandsOf(cmds []Command, kind CommandKind) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func center(e *donburi.Entry) gamemath.Vec {
	return components.Object.Get(e).Center()
}
