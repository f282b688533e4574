package archetypes

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Object,
		components.Body,
		components.Health,
		components.Magic,
		components.Knockback,
		components.Serial,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Body,
		components.Health,
		components.State,
		components.Knockback,
		components.Serial,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
		components.Serial,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Serial,
	)
	Drop = newArchetype(
		tags.Drop,
		components.Drop,
		components.Object,
		components.Serial,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	// Copy so callers appending extras never share the base slice.
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(append(all, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
