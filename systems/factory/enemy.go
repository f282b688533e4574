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

// CreateEnemy spawns an enemy of the named archetype with its sprite's
// top-left corner at pos. Unknown names fall back to the default archetype.
func CreateEnemy(w donburi.World, c *cfg.Config, pos gamemath.Vec, enemyTypeName string, now int64) *donburi.Entry {
	enemyType, resolved, _ := c.EnemyType(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(w)

	inset := enemyType.HitboxInset
	sprite := gamemath.Rect{X: pos.X, Y: pos.Y, W: enemyType.SpriteSize, H: enemyType.SpriteSize}
	hitbox := sprite.Inflate(-inset, -inset)

	// Create collision object
	obj := resolv.NewObject(hitbox.X, hitbox.Y, hitbox.W, hitbox.H)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy.Entity()

	behavior, _ := cfg.ParseBehavior(enemyType.Behavior)
	enemyData := components.EnemyData{
		TypeName:   resolved,
		Behavior:   behavior,
		CanShoot:   enemyType.CanShoot,
		Damage:     enemyType.Damage,
		BaseSpeed:  enemyType.Speed,
		Speed:      enemyType.Speed,
		NextAction: now,
		NextAttack: now,
		NextShot:   now,
	}

	initial := cfg.StatePatrol
	if behavior == cfg.BehaviorChase {
		// Hunters start alerted.
		enemyData.Alerted = true
		initial = cfg.StateChase
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.State.SetValue(enemy, components.StateData{
		CurrentState: initial,
		Since:        now,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Facing: gamemath.Down,
		InsetW: inset,
		InsetH: inset,
	})

	// Set health from config
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Serial.SetValue(enemy, components.SerialData{Value: nextSerial(w)})

	addToSpace(w, obj)

	return enemy
}
