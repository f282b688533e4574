package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

// updateBoomerang steers a thrown boomerang: outbound along its throw for
// half its lifetime, then homing back to the thrower. It reports false once
// the boomerang has been caught or lost its owner.
func updateBoomerang(w donburi.World, e *donburi.Entry, p *components.ProjectileData, f *Frame) bool {
	b := components.Boomerang.Get(e)
	if !w.Valid(b.Owner) || w.Entry(b.Owner).HasComponent(components.Death) {
		retireProjectile(e, f)
		return false
	}

	elapsed := f.Now - p.Spawned
	switch b.State {
	case components.BoomerangOutbound:
		if elapsed >= p.Lifetime/2 {
			SwitchToInbound(b)
		}
	case components.BoomerangInbound:
		// Safety cap for a return path blocked forever.
		if elapsed >= 2*p.Lifetime {
			retireProjectile(e, f)
			return false
		}
	}

	if b.State == components.BoomerangInbound {
		ownerPos := components.Object.Get(w.Entry(b.Owner)).Center()
		if gamemath.Caught(p.Position, ownerPos, f.Config.Projectile.BoomerangCatchRadius) {
			catchBoomerang(e, b, f)
			return false
		}
		p.Velocity = gamemath.Homing(p.Position, ownerPos, f.Config.Projectile.BoomerangReturnSpeed)
	}
	return true
}

// SwitchToInbound turns the boomerang around. The hit set is kept so each
// enemy is struck at most once per throw.
func SwitchToInbound(b *components.BoomerangData) {
	if b.State == components.BoomerangInbound {
		return
	}
	b.State = components.BoomerangInbound
}

func catchBoomerang(e *donburi.Entry, b *components.BoomerangData, f *Frame) {
	pos := components.Projectile.Get(e).Position
	retireProjectile(e, f)
	f.Emit(Event{Kind: EventBoomerangCaught, Entity: b.Owner, Position: pos})
}

// boomerangHit strikes every overlapping enemy not yet hit this throw. A
// zero-damage hit still stuns.
func boomerangHit(e *donburi.Entry, p *components.ProjectileData, targets []*donburi.Entry, f *Frame) {
	b := components.Boomerang.Get(e)
	for _, enemy := range targets {
		if _, alreadyHit := b.HitEnemies[enemy.Entity()]; alreadyHit {
			continue
		}
		b.HitEnemies[enemy.Entity()] = struct{}{}
		QueueDamage(enemy, components.Hit{
			Amount:    p.Damage,
			Source:    p.Position,
			Knockback: f.Config.Enemy.Knockback,
		})
	}
}
