// Package sim owns one running world: the player, enemies, projectiles and
// static obstacles of a level, advanced one frame at a time by Step.
package sim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Simulation is the orchestrator. It is not safe for concurrent use; one
// goroutine drives Step.
type Simulation struct {
	world  donburi.World
	config *config.Config
	rng    *rand.Rand
	logger *log.Logger
	broad  *systems.Broadphase
	player donburi.Entity
	now    int64

	// pending holds events raised between steps; the next Step returns them.
	pending []systems.Event
}

// Option customises a Simulation.
type Option func(*Simulation)

// WithConfig replaces the process-wide configuration.
func WithConfig(c *config.Config) Option {
	return func(s *Simulation) { s.config = c }
}

// WithLogger sets the logger used for spawn, death and level messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithSeed fixes the random source so runs replay exactly.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

// New builds a simulation for level. A nil level gives an empty field the
// size of the configured world.
func New(level *leveldata.CollisionData, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		world:  donburi.NewWorld(),
		config: config.C,
		rng:    rand.New(rand.NewSource(1)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config: %w", err)
	}
	if level == nil {
		level = &leveldata.CollisionData{Name: "empty"}
	}

	c := s.config
	width := max(level.MapWidth, c.Tiles(float64(c.World.WidthTiles)))
	height := max(level.MapHeight, c.Tiles(float64(c.World.HeightTiles)))

	spaceEntry := factory.CreateSpace(s.world, int(width), int(height), c.World.SpaceCell)
	s.broad = systems.NewBroadphase(s.world, components.Space.Get(spaceEntry))
	factory.CreateLevel(s.world, level.Name, gamemath.Rect{W: width, H: height})

	for i, o := range level.Obstacles {
		r := gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
		factory.CreateObstacle(s.world, i, r, config.ParseTerrain(o.Terrain))
	}

	spawn := level.PlayerSpawn(c.World.TileSize)
	s.player = factory.CreatePlayer(s.world, c, gamemath.Vec{X: spawn.X, Y: spawn.Y}).Entity()

	for _, es := range level.EnemySpawns {
		s.SpawnEnemy(gamemath.Vec{X: es.X, Y: es.Y}, es.Archetype)
	}

	s.logger.Info("level loaded",
		"name", level.Name,
		"obstacles", len(level.Obstacles),
		"enemies", len(level.EnemySpawns))
	return s, nil
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() *config.Config { return s.config }

// Now returns the clock reading of the last step.
func (s *Simulation) Now() int64 { return s.now }

// SpawnEnemy places an enemy with its sprite's top-left corner at pos.
// Unknown archetypes fall back to the default one.
func (s *Simulation) SpawnEnemy(pos gamemath.Vec, archetype string) donburi.Entity {
	if _, _, ok := s.config.EnemyType(archetype); !ok {
		s.logger.Warn("unknown enemy archetype, using default", "archetype", archetype, "default", s.config.Enemy.DefaultType)
	}
	e := factory.CreateEnemy(s.world, s.config, pos, archetype, s.now)
	s.pending = append(s.pending, systems.Event{
		Kind:     systems.EventEnemySpawned,
		Entity:   e.Entity(),
		Position: pos,
		Name:     components.Enemy.Get(e).TypeName,
	})
	return e.Entity()
}

// ClearEnemies removes every enemy and forgets every reference to them.
func (s *Simulation) ClearEnemies() {
	enemies := systems.Snapshot(s.world, tags.Enemy)
	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			enemies = append(enemies, e)
		}
	})

	for _, e := range enemies {
		s.forget(e.Entity())
		systems.RemoveEntity(s.world, e)
	}
	s.logger.Debug("enemies cleared", "count", len(enemies))
}

// forget drops e from the per-attack and per-throw hit sets.
func (s *Simulation) forget(e donburi.Entity) {
	components.Hitbox.Each(s.world, func(h *donburi.Entry) {
		delete(components.Hitbox.Get(h).HitEntities, e)
	})
	components.Boomerang.Each(s.world, func(b *donburi.Entry) {
		delete(components.Boomerang.Get(b).HitEnemies, e)
	})
}

// SpawnProjectile launches a player-side projectile centred on pos.
func (s *Simulation) SpawnProjectile(pos, dir gamemath.Vec, kind config.ProjectileKind) donburi.Entity {
	e := s.launch(pos, dir, kind, config.SidePlayer, s.player)
	return e.Entity()
}

func (s *Simulation) launch(pos, dir gamemath.Vec, kind config.ProjectileKind, side config.Side, owner donburi.Entity) *donburi.Entry {
	e := factory.CreateProjectile(s.world, s.config, pos, dir, kind, side, owner, s.now)
	if kind == config.ProjectileBoomerang && owner == s.player && s.world.Valid(owner) {
		components.Player.Get(s.world.Entry(owner)).ActiveBoomerang = e.Entity()
	}
	return e
}

// Heal restores up to amount health to the player.
func (s *Simulation) Heal(amount int) {
	if e, ok := s.playerEntry(); ok && !components.Player.Get(e).Dead {
		components.Health.Get(e).Add(amount)
	}
}

// RestoreMagic refills up to amount magic.
func (s *Simulation) RestoreMagic(amount int) {
	if e, ok := s.playerEntry(); ok {
		components.Magic.Get(e).Add(amount)
	}
}

func (s *Simulation) playerEntry() (*donburi.Entry, bool) {
	if !s.world.Valid(s.player) {
		return nil, false
	}
	return s.world.Entry(s.player), true
}
