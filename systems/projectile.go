package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles advances every in-flight projectile, checking obstacles
// and targets after each sub-step so nothing tunnels.
func UpdateProjectiles(w donburi.World, f *Frame) {
	for _, e := range Snapshot(w, tags.Projectile) {
		p := components.Projectile.Get(e)
		if p.Retired {
			continue
		}

		if e.HasComponent(components.Boomerang) {
			if !updateBoomerang(w, e, p, f) {
				continue
			}
		} else if f.Now-p.Spawned >= p.Lifetime {
			expireProjectile(e, p, f)
			continue
		}

		advanceProjectile(e, p, f)
		// Apply this projectile's hits before the next one queries.
		UpdateCombat(w, f)
	}
}

func expireProjectile(e *donburi.Entry, p *components.ProjectileData, f *Frame) {
	if p.Kind.OnHit() == cfg.HitExplode {
		detonate(e, p, donburi.Null, f)
		return
	}
	retireProjectile(e, f)
}

func advanceProjectile(e *donburi.Entry, p *components.ProjectileData, f *Frame) {
	obj := components.Object.Get(e)
	travel := p.Velocity.Scale(f.Dt)

	steps := int(math.Ceil(travel.Len() / f.Config.World.MaxStep))
	if steps < 1 {
		// Stationary projectiles still check what they sit on.
		steps = 1
	}
	step := travel.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		p.Position = p.Position.Add(step)
		r := gamemath.RectFromCenter(p.Position, obj.W, obj.H)
		obj.MoveTo(r)

		if len(f.Broad.Obstacles(r)) > 0 {
			if p.Kind.OnHit() == cfg.HitExplode {
				detonate(e, p, donburi.Null, f)
			} else {
				retireProjectile(e, f)
			}
			return
		}

		if hitTargets(e, p, r, f) {
			return
		}
	}
}

// hitTargets handles contact with the opposing side and reports whether the
// projectile is done.
func hitTargets(e *donburi.Entry, p *components.ProjectileData, r gamemath.Rect, f *Frame) bool {
	targetTag, knockback := tags.ResolvEnemy, f.Config.Enemy.Knockback
	if p.Side == cfg.SideEnemy {
		targetTag, knockback = tags.ResolvPlayer, f.Config.Player.Knockback
	}
	targets := f.Broad.Overlapping(r, targetTag)
	if len(targets) == 0 {
		return false
	}

	switch p.Kind.OnHit() {
	case cfg.HitPassThrough:
		if p.Side == cfg.SidePlayer && e.HasComponent(components.Boomerang) {
			boomerangHit(e, p, targets, f)
		}
		return false
	case cfg.HitExplode:
		first := targets[0]
		QueueDamage(first, components.Hit{Amount: p.Damage, Source: p.Position, Knockback: knockback})
		detonate(e, p, first.Entity(), f)
		return true
	default:
		QueueDamage(targets[0], components.Hit{Amount: p.Damage, Source: p.Position, Knockback: knockback})
		retireProjectile(e, f)
		return true
	}
}

// detonate retires a bomb and asks the orchestrator to run the explosion.
func detonate(e *donburi.Entry, p *components.ProjectileData, struck donburi.Entity, f *Frame) {
	retireProjectile(e, f)
	f.Push(Command{
		Kind:     CommandExplode,
		Owner:    e.Entity(),
		Position: p.Position,
		Damage:   p.Damage,
		Side:     p.Side,
		Exclude:  struck,
	})
}

// retireProjectile marks p for the end-of-step sweep and takes it out of
// every query at once.
func retireProjectile(e *donburi.Entry, f *Frame) {
	p := components.Projectile.Get(e)
	if p.Retired {
		return
	}
	p.Retired = true
	if obj := components.Object.Get(e); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	f.Emit(Event{
		Kind:     EventProjectileRetired,
		Entity:   e.Entity(),
		Position: p.Position,
		Name:     p.Kind.String(),
	})
}

// Explode is the bomb hook. It always reports the blast; area damage is
// applied only when enabled, sparing the entity the bomb struck directly.
func Explode(w donburi.World, f *Frame, at gamemath.Vec, damage int, exclude donburi.Entity) {
	f.Emit(Event{Kind: EventExploded, Position: at, Amount: damage, Name: cfg.ProjectileBomb.String()})
	if !f.Config.Combat.BombAreaDamage {
		return
	}

	radius := f.Config.Tiles(f.Config.Combat.BombRadiusTiles)
	area := gamemath.RectFromCenter(at, radius*2, radius*2)

	for _, enemy := range f.Broad.Overlapping(area, tags.ResolvEnemy) {
		if enemy.Entity() == exclude {
			continue
		}
		if components.Object.Get(enemy).Center().Dist(at) > radius {
			continue
		}
		QueueDamage(enemy, components.Hit{Amount: damage, Source: at, Knockback: f.Config.Enemy.Knockback})
	}
	for _, player := range f.Broad.Overlapping(area, tags.ResolvPlayer) {
		if components.Object.Get(player).Center().Dist(at) > radius {
			continue
		}
		QueueDamage(player, components.Hit{Amount: damage / 2, Source: at, Knockback: f.Config.Player.Knockback})
	}
	UpdateCombat(w, f)
}
