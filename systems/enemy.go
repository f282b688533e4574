package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// target is what every enemy steers against during one tick.
type target struct {
	pos   gamemath.Vec
	alive bool
}

// offset returns the unit direction and distance from an enemy centre to the
// target. A missing or dead target is infinitely far away.
func (t target) offset(from gamemath.Vec) (gamemath.Vec, float64) {
	if !t.alive {
		return gamemath.Vec{}, math.Inf(1)
	}
	return gamemath.DirectionTo(from, t.pos)
}

func playerTarget(w donburi.World) target {
	e, ok := tags.Player.First(w)
	if !ok || components.Player.Get(e).Dead {
		return target{}
	}
	return target{pos: components.Object.Get(e).Center(), alive: true}
}

// UpdateEnemies runs the behaviour machine of every live enemy in spawn order.
func UpdateEnemies(w donburi.World, f *Frame) {
	t := playerTarget(w)

	for _, e := range Snapshot(w, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		enemy.AttackReady = false

		if state.CurrentState == cfg.StateStunned {
			// Intent stays frozen; only knockback moves a stunned enemy.
			if f.Now-enemy.StunStart < enemy.StunDuration {
				continue
			}
			if enemy.Alerted {
				state.Set(cfg.StateChase, f.Now)
			} else {
				state.Set(cfg.StatePatrol, f.Now)
			}
		}

		runBehavior(e, enemy, state, t, f)

		if enemy.CanShoot {
			updateShooting(e, enemy, t, f)
		}
	}
}

// UpdateEnemyMovement integrates intent and knockback for every live enemy.
func UpdateEnemyMovement(w donburi.World, f *Frame) {
	for _, e := range Snapshot(w, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		kb := components.Knockback.Get(e)
		stunned := components.State.Get(e).CurrentState == cfg.StateStunned

		// Intent longer than one is capped to full speed, so a jump impulse
		// only sets how long the enemy runs before slowing down.
		var delta gamemath.Vec
		if !stunned {
			delta = enemy.Intent.ClampLen(1).Scale(enemy.Speed * f.Dt)
		}
		delta = delta.Add(kb.Velocity)

		if stunned {
			moveObject(f, obj, delta)
		} else {
			MoveEnemy(f, obj, enemy, delta)
		}

		kb.Velocity = gamemath.DecayKnockback(kb.Velocity, f.Config.Combat.KnockbackResistance, f.Config.Combat.KnockbackThreshold)

		body := components.Body.Get(e)
		body.Facing = gamemath.FacingFor(enemy.Intent, body.Facing)
	}
}

// updateShooting is the ranged overlay. It runs alongside whatever state the
// behaviour left the enemy in.
func updateShooting(e *donburi.Entry, enemy *components.EnemyData, t target, f *Frame) {
	center := components.Object.Get(e).Center()
	dir, dist := t.offset(center)
	if dist >= f.Config.Tiles(f.Config.Enemy.ShootRangeTiles) || f.Now < enemy.NextShot {
		return
	}
	enemy.NextShot = f.Now + f.Config.Enemy.ShootCooldown
	enemy.Intent = gamemath.Vec{}

	if dir.IsZero() {
		dir = components.Body.Get(e).Facing.Vec()
	}
	f.Push(Command{
		Kind:       CommandSpawnProjectile,
		Owner:      e.Entity(),
		Position:   center,
		Direction:  dir,
		Projectile: cfg.ProjectileRock,
		Side:       cfg.SideEnemy,
	})
}

// alert flags the enemy and starts the chase.
func alert(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, f *Frame) {
	enemy.Alerted = true
	state.Set(cfg.StateChase, f.Now)
	f.Emit(Event{
		Kind:     EventEnemyAlerted,
		Entity:   e.Entity(),
		Position: components.Object.Get(e).Center(),
		Name:     enemy.TypeName,
	})
}

func randomBetween(f *Frame, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + f.Rand.Int63n(hi-lo+1)
}
