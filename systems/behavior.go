package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

// runBehavior dispatches on the enemy's behaviour. Every behaviour either runs
// the core patrol/chase/attack machine or layers its own intent on top of it.
func runBehavior(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, t target, f *Frame) {
	lose := f.Config.Tiles(f.Config.Enemy.LoseInterestTiles)

	switch enemy.Behavior {
	case cfg.BehaviorPatrol, cfg.BehaviorWander, cfg.BehaviorChase, cfg.BehaviorShoot:
		updateCoreStates(e, enemy, state, t, f, lose)
	case cfg.BehaviorFly:
		updateCoreStates(e, enemy, state, t, f, lose)
		if state.CurrentState == cfg.StateChase {
			jitterIntent(enemy, f)
		}
	case cfg.BehaviorCharge:
		updateCharge(e, enemy, state, t, f)
	case cfg.BehaviorJump:
		updateJump(e, enemy, state, t, f)
	case cfg.BehaviorAwaken:
		updateAwaken(e, enemy, state, t, f)
	case cfg.BehaviorElectric:
		enemy.Speed = f.Config.Enemy.ElectricSpeed
		updateCoreStates(e, enemy, state, t, f, lose)
	default:
		updateCoreStates(e, enemy, state, t, f, lose)
	}
}

func updateCoreStates(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, t target, f *Frame, lose float64) {
	c := &f.Config.Enemy
	dir, dist := t.offset(components.Object.Get(e).Center())
	attackRange := f.Config.Tiles(c.AttackRangeTiles)

	switch state.CurrentState {
	case cfg.StatePatrol:
		if !enemy.Alerted && f.Now >= enemy.NextAction {
			rollPatrolIntent(enemy, f)
		}
		if dist < f.Config.Tiles(c.SightTiles) {
			alert(e, enemy, state, f)
		}

	case cfg.StateChase:
		switch {
		case dist < attackRange:
			enemy.Intent = gamemath.Vec{}
			state.Set(cfg.StateAttack, f.Now)
		case dist > lose:
			enemy.Alerted = false
			enemy.Intent = gamemath.Vec{}
			enemy.NextAction = f.Now
			state.Set(cfg.StatePatrol, f.Now)
		default:
			enemy.Intent = dir
		}

	case cfg.StateAttack:
		enemy.Intent = gamemath.Vec{}
		if dist > attackRange*c.AttackLeash {
			state.Set(cfg.StateChase, f.Now)
			return
		}
		if f.Now >= enemy.NextAttack {
			enemy.NextAttack = f.Now + c.AttackCooldown
			enemy.AttackReady = true
			f.Emit(Event{
				Kind:     EventEnemyAttackReady,
				Entity:   e.Entity(),
				Position: components.Object.Get(e).Center(),
				Name:     enemy.TypeName,
			})
		}

	case cfg.StateStunned, cfg.StateDying:
		// Handled before dispatch.
	}
}

// rollPatrolIntent picks a new wander direction from the eight neighbours or
// standing still, and schedules the next roll.
func rollPatrolIntent(enemy *components.EnemyData, f *Frame) {
	v := gamemath.Vec{
		X: float64(f.Rand.Intn(3) - 1),
		Y: float64(f.Rand.Intn(3) - 1),
	}
	enemy.Intent, _ = v.Normalize()
	enemy.NextAction = f.Now + randomBetween(f, f.Config.Enemy.PatrolMin, f.Config.Enemy.PatrolMax)
}

func jitterIntent(enemy *components.EnemyData, f *Frame) {
	j := f.Config.Enemy.FlyJitter
	v := enemy.Intent.Add(gamemath.Vec{
		X: (f.Rand.Float64()*2 - 1) * j,
		Y: (f.Rand.Float64()*2 - 1) * j,
	})
	if n, ok := v.Normalize(); ok {
		enemy.Intent = n
	}
}

// updateCharge dashes along one axis when the player stands in a corridor
// aligned with the enemy. Outside the corridor it patrols at base speed.
func updateCharge(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, t target, f *Frame) {
	c := &f.Config.Enemy
	center := components.Object.Get(e).Center()
	_, dist := t.offset(center)

	if dist < f.Config.Tiles(c.ChargeRangeTiles) {
		d := t.pos.Sub(center)
		corridor := f.Config.Tiles(c.ChargeCorridorTiles)
		var dash gamemath.Vec
		switch {
		case math.Abs(d.Y) < corridor && math.Abs(d.X) > corridor:
			dash = gamemath.Vec{X: sign(d.X)}
		case math.Abs(d.X) < corridor && math.Abs(d.Y) > corridor:
			dash = gamemath.Vec{Y: sign(d.Y)}
		}
		if !dash.IsZero() {
			enemy.Intent = dash
			enemy.Speed = c.ChargeSpeed
			state.Set(cfg.StateChase, f.Now)
			return
		}
	}

	enemy.Speed = enemy.BaseSpeed
	state.Set(cfg.StatePatrol, f.Now)
	if f.Now >= enemy.NextAction {
		rollPatrolIntent(enemy, f)
	}
}

// updateJump moves in discrete impulses. Between jumps the impulse decays.
func updateJump(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, t target, f *Frame) {
	c := &f.Config.Enemy
	if f.Now < enemy.NextAction {
		enemy.Intent = enemy.Intent.Scale(c.JumpDecay)
		return
	}
	enemy.NextAction = f.Now + randomBetween(f, c.JumpMin, c.JumpMax)

	dir, dist := t.offset(components.Object.Get(e).Center())
	if dist < f.Config.Tiles(c.JumpRangeTiles) {
		enemy.Intent = dir.Scale(c.JumpImpulse)
		state.Set(cfg.StateChase, f.Now)
		return
	}
	enemy.Intent = gamemath.Vec{
		X: (f.Rand.Float64()*2 - 1) * c.JumpScatter,
		Y: (f.Rand.Float64()*2 - 1) * c.JumpScatter,
	}
	state.Set(cfg.StatePatrol, f.Now)
}

// updateAwaken keeps the enemy inert until the player comes close. Once
// awake it never loses interest.
func updateAwaken(e *donburi.Entry, enemy *components.EnemyData, state *components.StateData, t target, f *Frame) {
	if !enemy.Alerted {
		enemy.Intent = gamemath.Vec{}
		_, dist := t.offset(components.Object.Get(e).Center())
		if dist >= f.Config.Tiles(f.Config.Enemy.AwakenTiles) {
			return
		}
		alert(e, enemy, state, f)
	}
	updateCoreStates(e, enemy, state, t, f, math.Inf(1))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
