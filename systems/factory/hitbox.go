package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateHitbox spawns a sword swing owned by owner that lasts duration ms.
func CreateHitbox(w donburi.World, owner donburi.Entity, r gamemath.Rect, damage int, spin bool, now, duration int64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvHitbox)
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	obj.Data = hitbox.Entity()

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity: owner,
		Damage:      damage,
		Spin:        spin,
		Expires:     now + duration,
		HitEntities: make(map[donburi.Entity]bool),
	})
	components.Serial.SetValue(hitbox, components.SerialData{Value: nextSerial(w)})

	addToSpace(w, obj)

	return hitbox
}
