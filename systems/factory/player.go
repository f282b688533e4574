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

// CreatePlayer spawns the player with its sprite's top-left corner at pos.
func CreatePlayer(w donburi.World, c *cfg.Config, pos gamemath.Vec) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	inset := c.Player.HitboxInset
	sprite := gamemath.Rect{X: pos.X, Y: pos.Y, W: c.Player.SpriteSize, H: c.Player.SpriteSize}
	hitbox := sprite.Inflate(-inset, -inset)

	obj := resolv.NewObject(hitbox.X, hitbox.Y, hitbox.W, hitbox.H)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player.Entity()

	owned := make(map[cfg.Item]bool, len(c.Player.StartingItems))
	for _, name := range c.Player.StartingItems {
		if item := cfg.ParseItem(name); item != cfg.ItemNone {
			owned[item] = true
		}
	}
	components.Player.SetValue(player, components.PlayerData{
		Equipped:        cfg.ParseItem(c.Player.StartingEquipped),
		Owned:           owned,
		Bombs:           c.Player.StartingBombs,
		Arrows:          c.Player.StartingArrows,
		ActiveAttack:    donburi.Null,
		ActiveBoomerang: donburi.Null,
	})
	components.Body.SetValue(player, components.BodyData{
		Facing: gamemath.Down,
		InsetW: inset,
		InsetH: inset,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: gamemath.ClampInt(c.Player.Health, 0, c.Player.MaxHealth),
		Max:     c.Player.MaxHealth,
	})
	components.Magic.SetValue(player, components.MagicData{
		Current: gamemath.ClampInt(c.Player.Magic, 0, c.Player.MaxMagic),
		Max:     c.Player.MaxMagic,
	})
	components.Serial.SetValue(player, components.SerialData{Value: nextSerial(w)})

	addToSpace(w, obj)

	return player
}
