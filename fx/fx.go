// Package fx keeps the cosmetic state a renderer layers over the simulation:
// fading remains of defeated enemies, bomb flashes and the player's damage
// flicker. It only reads step events and never feeds back into the world.
package fx

import (
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Durations in seconds.
const (
	deathFade     = 0.4
	explosionTime = 0.3
	flickerHalf   = 0.08
)

type GhostKind int

const (
	GhostEnemy GhostKind = iota
	GhostExplosion
)

// Ghost is a leftover drawn after its entity is gone.
type Ghost struct {
	Kind     GhostKind
	Name     string
	Position gamemath.Vec
	Alpha    float64
	Scale    float64
}

type ghost struct {
	Ghost
	fade *gween.Tween
	grow *gween.Tween
}

// Effects is advanced once per rendered frame.
type Effects struct {
	ghosts []*ghost

	flicker     *gween.Sequence
	flickerLeft float64
	playerAlpha float64
	invincible  float64 // seconds of flicker per hit
}

func New(c *config.Config) *Effects {
	flicker := gween.NewSequence()
	flicker.Add(
		gween.New(1, 0.25, flickerHalf, ease.Linear),
		gween.New(0.25, 1, flickerHalf, ease.Linear),
	)
	return &Effects{
		flicker:     flicker,
		playerAlpha: 1,
		invincible:  float64(c.Player.InvincibilityDuration) / 1000,
	}
}

// Apply starts the effects the events of one step ask for.
func (fx *Effects) Apply(events []systems.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case systems.EventEnemyDied:
			fx.ghosts = append(fx.ghosts, &ghost{
				Ghost: Ghost{Kind: GhostEnemy, Name: ev.Name, Position: ev.Position, Alpha: 1, Scale: 1},
				fade:  gween.New(1, 0, deathFade, ease.OutQuad),
			})
		case systems.EventExploded:
			fx.ghosts = append(fx.ghosts, &ghost{
				Ghost: Ghost{Kind: GhostExplosion, Name: ev.Name, Position: ev.Position, Alpha: 1, Scale: 0.2},
				fade:  gween.New(1, 0, explosionTime, ease.InQuad),
				grow:  gween.New(0.2, 1, explosionTime, ease.OutCubic),
			})
		case systems.EventPlayerDamaged:
			fx.flicker.Reset()
			fx.flickerLeft = fx.invincible
		case systems.EventPlayerDied:
			fx.flickerLeft = 0
			fx.playerAlpha = 1
		}
	}
}

// Update advances every running effect by dt seconds and drops the finished
// ones.
func (fx *Effects) Update(dt float64) {
	step := float32(dt)

	live := fx.ghosts[:0]
	for _, g := range fx.ghosts {
		alpha, done := g.fade.Update(step)
		g.Alpha = float64(alpha)
		if g.grow != nil {
			scale, _ := g.grow.Update(step)
			g.Scale = float64(scale)
		}
		if !done {
			live = append(live, g)
		}
	}
	clear(fx.ghosts[len(live):])
	fx.ghosts = live

	if fx.flickerLeft <= 0 {
		return
	}
	fx.flickerLeft -= dt
	if fx.flickerLeft <= 0 {
		fx.playerAlpha = 1
		return
	}
	alpha, _, finished := fx.flicker.Update(step)
	fx.playerAlpha = float64(alpha)
	if finished {
		fx.flicker.Reset()
	}
}

// Ghosts returns the live ghosts, oldest first.
func (fx *Effects) Ghosts() []Ghost {
	out := make([]Ghost, len(fx.ghosts))
	for i, g := range fx.ghosts {
		out[i] = g.Ghost
	}
	return out
}

// PlayerAlpha is the opacity to draw the player with.
func (fx *Effects) PlayerAlpha() float64 { return fx.playerAlpha }

// Flickering reports whether the damage flicker is running.
func (fx *Effects) Flickering() bool { return fx.flickerLeft > 0 }
