package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile launches a projectile centred on pos along dir. A zero
// direction leaves it stationary.
func CreateProjectile(w donburi.World, c *cfg.Config, pos, dir gamemath.Vec, kind cfg.ProjectileKind, side cfg.Side, owner donburi.Entity, now int64) *donburi.Entry {
	pt := c.ProjectileType(kind)

	var projectile *donburi.Entry
	if kind == cfg.ProjectileBoomerang {
		projectile = archetypes.Projectile.Spawn(w, components.Boomerang)
		components.Boomerang.SetValue(projectile, components.BoomerangData{
			Owner:      owner,
			State:      components.BoomerangOutbound,
			HitEnemies: make(map[donburi.Entity]struct{}),
		})
	} else {
		projectile = archetypes.Projectile.Spawn(w)
	}

	r := gamemath.RectFromCenter(pos, pt.Width, pt.Height)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvProjectile)
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	obj.Data = projectile.Entity()

	unit, _ := dir.Normalize()
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Kind:     kind,
		Side:     side,
		Damage:   pt.Damage,
		Position: pos,
		Velocity: unit.Scale(pt.Speed),
		Spawned:  now,
		Lifetime: pt.Lifetime,
	})
	components.Serial.SetValue(projectile, components.SerialData{Value: nextSerial(w)})

	addToSpace(w, obj)

	return projectile
}
