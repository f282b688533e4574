package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateDrop places a pickup of the given table row centred on center.
func CreateDrop(w donburi.World, c *config.Config, center gamemath.Vec, d config.DropTypeConfig, now int64) *donburi.Entry {
	drop := archetypes.Drop.Spawn(w)

	size := c.Drops.Size
	obj := resolv.NewObject(center.X-size/2, center.Y-size/2, size, size, tags.ResolvDrop)
	components.Object.SetValue(drop, components.ObjectData{Object: obj})
	obj.Data = drop.Entity()

	effect, _ := config.ParseDropEffect(d.Effect)
	components.Drop.SetValue(drop, components.DropData{
		Name:     d.Name,
		Effect:   effect,
		Value:    d.Value,
		Spawned:  now,
		Lifetime: c.Drops.Lifetime,
	})
	components.Serial.SetValue(drop, components.SerialData{Value: nextSerial(w)})

	addToSpace(w, obj)

	return drop
}
