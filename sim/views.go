package sim

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// Views are read-only copies handed to rendering and HUD collaborators.

type PlayerView struct {
	Position gamemath.Vec // hitbox centre
	Hitbox   gamemath.Rect
	Sprite   gamemath.Rect
	Facing   gamemath.Direction

	Health, MaxHealth int
	Magic, MaxMagic   int

	Equipped      config.Item
	Bombs, Arrows int

	Running    bool
	Charging   bool
	Invincible bool
	Dead       bool
}

type EnemyView struct {
	Entity     donburi.Entity
	Archetype  string
	Behavior   config.Behavior
	State      config.StateID
	StateSince int64 // clock reading when State was entered
	Alerted    bool

	Position gamemath.Vec
	Hitbox   gamemath.Rect
	Sprite   gamemath.Rect
	Facing   gamemath.Direction

	Health, MaxHealth int
}

type ProjectileView struct {
	Entity   donburi.Entity
	Kind     config.ProjectileKind
	Side     config.Side
	Position gamemath.Vec
	Hitbox   gamemath.Rect
}

type DropView struct {
	Entity   donburi.Entity
	Name     string
	Effect   config.DropEffect
	Value    int
	Position gamemath.Vec
	Hitbox   gamemath.Rect
	Expires  int64
}

type AttackView struct {
	Hitbox gamemath.Rect
	Damage int
	Spin   bool
}

type ObstacleView struct {
	Rect    gamemath.Rect
	Terrain config.Terrain
}

// Player returns the player's current state.
func (s *Simulation) Player() PlayerView {
	e, ok := s.playerEntry()
	if !ok {
		return PlayerView{Dead: true}
	}
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	hp := components.Health.Get(e)
	mp := components.Magic.Get(e)
	hitbox := components.Object.Get(e).Rect()

	return PlayerView{
		Position:   hitbox.Center(),
		Hitbox:     hitbox,
		Sprite:     body.SpriteRect(hitbox),
		Facing:     body.Facing,
		Health:     hp.Current,
		MaxHealth:  hp.Max,
		Magic:      mp.Current,
		MaxMagic:   mp.Max,
		Equipped:   player.Equipped,
		Bombs:      player.Bombs,
		Arrows:     player.Arrows,
		Running:    player.Running,
		Charging:   player.Charging,
		Invincible: player.Invincible,
		Dead:       player.Dead,
	}
}

// Enemies returns every live enemy in spawn order.
func (s *Simulation) Enemies() []EnemyView {
	entries := systems.Snapshot(s.world, tags.Enemy)
	out := make([]EnemyView, 0, len(entries))
	for _, e := range entries {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		body := components.Body.Get(e)
		hp := components.Health.Get(e)
		hitbox := components.Object.Get(e).Rect()
		out = append(out, EnemyView{
			Entity:     e.Entity(),
			Archetype:  enemy.TypeName,
			Behavior:   enemy.Behavior,
			State:      state.CurrentState,
			StateSince: state.Since,
			Alerted:    enemy.Alerted,
			Position:   hitbox.Center(),
			Hitbox:     hitbox,
			Sprite:     body.SpriteRect(hitbox),
			Facing:     body.Facing,
			Health:     hp.Current,
			MaxHealth:  hp.Max,
		})
	}
	return out
}

// Projectiles returns every in-flight projectile in spawn order.
func (s *Simulation) Projectiles() []ProjectileView {
	var out []ProjectileView
	for _, e := range systems.Snapshot(s.world, tags.Projectile) {
		p := components.Projectile.Get(e)
		if p.Retired {
			continue
		}
		out = append(out, ProjectileView{
			Entity:   e.Entity(),
			Kind:     p.Kind,
			Side:     p.Side,
			Position: p.Position,
			Hitbox:   components.Object.Get(e).Rect(),
		})
	}
	return out
}

// Drops returns the uncollected pickups in spawn order.
func (s *Simulation) Drops() []DropView {
	var out []DropView
	for _, e := range systems.Snapshot(s.world, tags.Drop) {
		d := components.Drop.Get(e)
		obj := components.Object.Get(e)
		out = append(out, DropView{
			Entity:   e.Entity(),
			Name:     d.Name,
			Effect:   d.Effect,
			Value:    d.Value,
			Position: obj.Center(),
			Hitbox:   obj.Rect(),
			Expires:  d.Spawned + d.Lifetime,
		})
	}
	return out
}

// Attack returns the player's live sword swing, if any.
func (s *Simulation) Attack() (AttackView, bool) {
	e, ok := s.playerEntry()
	if !ok {
		return AttackView{}, false
	}
	active := components.Player.Get(e).ActiveAttack
	if !s.world.Valid(active) {
		return AttackView{}, false
	}
	hb := s.world.Entry(active)
	h := components.Hitbox.Get(hb)
	return AttackView{
		Hitbox: components.Object.Get(hb).Rect(),
		Damage: h.Damage,
		Spin:   h.Spin,
	}, true
}

// Obstacles returns the level geometry in index order.
func (s *Simulation) Obstacles() []ObstacleView {
	var entries []*donburi.Entry
	tags.Obstacle.Each(s.world, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	out := make([]ObstacleView, len(entries))
	for _, e := range entries {
		o := components.Obstacle.Get(e)
		out[o.Index] = ObstacleView{
			Rect:    components.Object.Get(e).Rect(),
			Terrain: o.Terrain,
		}
	}
	return out
}

// Level returns the level's name and world bounds.
func (s *Simulation) Level() (name string, bounds gamemath.Rect) {
	e, ok := components.Level.First(s.world)
	if !ok {
		return "", gamemath.Rect{}
	}
	level := components.Level.Get(e)
	return level.Name, level.Bounds
}
