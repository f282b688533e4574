package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// AttackRect places a sword swing against the owner's sprite bounds: a
// reach-by-width strip on the facing side, or a square centred on the owner
// for a spin.
func AttackRect(f *Frame, owner *donburi.Entry, spin bool) gamemath.Rect {
	c := &f.Config.Combat
	body := components.Body.Get(owner)
	sprite := body.SpriteRect(components.Object.Get(owner).Rect())
	center := sprite.Center()

	if spin {
		size := f.Config.Tiles(c.SpinSizeTiles)
		return gamemath.RectFromCenter(center, size, size)
	}

	reach := f.Config.Tiles(c.SwordReachTiles)
	width := f.Config.Tiles(c.SwordWidthTiles)
	switch body.Facing {
	case gamemath.Up:
		return gamemath.Rect{X: center.X - width/2, Y: sprite.Top() - reach, W: width, H: reach}
	case gamemath.Left:
		return gamemath.Rect{X: sprite.Left() - reach, Y: center.Y - width/2, W: reach, H: width}
	case gamemath.Right:
		return gamemath.Rect{X: sprite.Right(), Y: center.Y - width/2, W: reach, H: width}
	default:
		return gamemath.Rect{X: center.X - width/2, Y: sprite.Bottom(), W: width, H: reach}
	}
}

// UpdateCombatHitboxes follows every live swing to its owner's current
// position and facing, then damages the enemies it overlaps.
func UpdateCombatHitboxes(w donburi.World, f *Frame) {
	for _, e := range Snapshot(w, tags.Hitbox) {
		hitbox := components.Hitbox.Get(e)
		if !w.Valid(hitbox.OwnerEntity) {
			retireHitbox(w, e, f)
			continue
		}
		owner := w.Entry(hitbox.OwnerEntity)
		if owner.HasComponent(components.Death) {
			retireHitbox(w, e, f)
			continue
		}

		r := AttackRect(f, owner, hitbox.Spin)
		obj := components.Object.Get(e)
		obj.W, obj.H = r.W, r.H
		obj.MoveTo(r)

		source := components.Object.Get(owner).Center()
		for _, enemy := range f.Broad.Overlapping(r, tags.ResolvEnemy) {
			if !f.Config.Combat.RehitWhileActive {
				if hitbox.HitEntities[enemy.Entity()] {
					continue
				}
				hitbox.HitEntities[enemy.Entity()] = true
			}
			QueueDamage(enemy, components.Hit{
				Amount:    hitbox.Damage,
				Source:    source,
				Knockback: f.Config.Enemy.Knockback,
			})
		}
	}
	UpdateCombat(w, f)
}

// RetireExpiredHitboxes removes every swing whose duration has elapsed.
func RetireExpiredHitboxes(w donburi.World, f *Frame) {
	for _, e := range Snapshot(w, tags.Hitbox) {
		if f.Now >= components.Hitbox.Get(e).Expires {
			retireHitbox(w, e, f)
		}
	}
}

func retireHitbox(w donburi.World, e *donburi.Entry, f *Frame) {
	hitbox := components.Hitbox.Get(e)
	if w.Valid(hitbox.OwnerEntity) {
		owner := w.Entry(hitbox.OwnerEntity)
		if owner.HasComponent(components.Player) {
			player := components.Player.Get(owner)
			if player.ActiveAttack == e.Entity() {
				player.ActiveAttack = donburi.Null
			}
		}
	}
	if obj := components.Object.Get(e); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(e.Entity())
}
