package sim

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newMeadow(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	level, err := leveldata.ParseASCII("meadow", leveldata.Meadow, config.C.World.TileSize)
	require.NoError(t, err)
	s, err := New(level, opts...)
	require.NoError(t, err)
	return s
}

func newEmpty(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	s, err := New(nil, opts...)
	require.NoError(t, err)
	return s
}

func hasEvent(events []systems.Event, kind systems.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestSpawnsReportedOnFirstStep(t *testing.T) {
	s := newMeadow(t)

	spawned := 0
	for _, ev := range s.Step(dt, 16, PlayerIntent{}) {
		if ev.Kind == systems.EventEnemySpawned {
			spawned++
		}
	}
	assert.Equal(t, 10, spawned)
	assert.False(t, hasEvent(s.Step(dt, 32, PlayerIntent{}), systems.EventEnemySpawned))
}

func TestNewLoadsLevel(t *testing.T) {
	s := newMeadow(t)

	assert.Len(t, s.Enemies(), 10)
	assert.NotEmpty(t, s.Obstacles())

	name, bounds := s.Level()
	assert.Equal(t, "meadow", name)
	assert.Equal(t, 64*48.0, bounds.W)

	p := s.Player()
	assert.Equal(t, gamemath.Vec{X: 3*48 + 24, Y: 8*48 + 24}, p.Position)
	assert.Equal(t, 6, p.Health)
	assert.Equal(t, 20, p.MaxHealth)
	assert.Equal(t, config.ItemBoomerang, p.Equipped)
	assert.Equal(t, 48.0, p.Sprite.W)
	assert.Equal(t, 40.0, p.Hitbox.W)
}

func TestObstaclesKeepLevelOrder(t *testing.T) {
	level := &leveldata.CollisionData{
		Name: "row",
		Obstacles: []leveldata.ObstacleRect{
			{X: 0, Y: 0, W: 48, H: 48, Terrain: "solid"},
			{X: 48, Y: 0, W: 48, H: 48, Terrain: "water"},
			{X: 96, Y: 0, W: 48, H: 48, Terrain: "pit"},
		},
	}
	s, err := New(level)
	require.NoError(t, err)

	obs := s.Obstacles()
	require.Len(t, obs, 3)
	assert.Equal(t, config.TerrainSolid, obs[0].Terrain)
	assert.Equal(t, config.TerrainWater, obs[1].Terrain)
	assert.Equal(t, config.TerrainPit, obs[2].Terrain)
	assert.Equal(t, 96.0, obs[2].Rect.X)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	c := config.Default()
	c.World.MaxStep = 0

	_, err := New(nil, WithConfig(c))

	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestUnknownArchetypeFallsBack(t *testing.T) {
	s := newEmpty(t)

	s.SpawnEnemy(gamemath.Vec{X: 600, Y: 600}, "dragon")

	enemies := s.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, config.SoldierGreen, enemies[0].Archetype)
	assert.Equal(t, 4, enemies[0].Health)
}

func TestClearEnemiesLeavesNothingBehind(t *testing.T) {
	s := newEmpty(t)
	for i := 0; i < 3; i++ {
		s.SpawnEnemy(gamemath.Vec{X: 600 + float64(i)*100, Y: 600}, config.Moblin)
	}
	require.Len(t, s.Enemies(), 3)

	s.ClearEnemies()

	assert.Empty(t, s.Enemies())
	everywhere := gamemath.Rect{W: 4096, H: 4096}
	assert.Empty(t, s.broad.Overlapping(everywhere, tags.ResolvEnemy))

	// Still steps cleanly afterwards.
	events := Advance(s, 10, 60, nil)
	assert.False(t, hasEvent(events, systems.EventPlayerDamaged))
}

func TestHealAndRestoreMagicClamp(t *testing.T) {
	s := newEmpty(t)

	s.Heal(100)
	s.RestoreMagic(1000)
	p := s.Player()
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.Equal(t, p.MaxMagic, p.Magic)

	s.RestoreMagic(-1000)
	assert.Equal(t, 0, s.Player().Magic)
}

func TestBombExplodesThroughStep(t *testing.T) {
	s := newEmpty(t)
	s.SpawnProjectile(gamemath.Vec{X: 1000, Y: 1000}, gamemath.Vec{}, config.ProjectileBomb)

	events := s.Step(dt, 2999, PlayerIntent{})
	assert.False(t, hasEvent(events, systems.EventExploded))
	assert.Len(t, s.Projectiles(), 1)

	events = s.Step(dt, 3000, PlayerIntent{})
	assert.True(t, hasEvent(events, systems.EventExploded))
	assert.Empty(t, s.Projectiles())
}

func TestSwordKillRemovesEnemy(t *testing.T) {
	c := config.Default()
	c.Combat.SwordDamage = 4
	s := newEmpty(t, WithConfig(c))
	// Directly below the player, inside the downward swing.
	s.SpawnEnemy(gamemath.Vec{X: 48, Y: 100}, config.SoldierGreen)

	events := s.Step(dt, 16, PlayerIntent{Attack: true})

	assert.True(t, hasEvent(events, systems.EventAttackStarted))
	assert.True(t, hasEvent(events, systems.EventEnemyDied))
	assert.Empty(t, s.Enemies())

	attack, ok := s.Attack()
	require.True(t, ok)
	assert.Equal(t, 4, attack.Damage)
	assert.False(t, attack.Spin)

	s.Step(dt, 16+c.Player.AttackDuration, PlayerIntent{})
	_, ok = s.Attack()
	assert.False(t, ok)
}

func TestSwordHitRecordsStunTime(t *testing.T) {
	s := newEmpty(t)
	s.SpawnEnemy(gamemath.Vec{X: 48, Y: 100}, config.SoldierGreen)

	s.Step(dt, 16, PlayerIntent{Attack: true})

	enemies := s.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, config.StateStunned, enemies[0].State)
	assert.Equal(t, int64(16), enemies[0].StateSince)
	assert.Equal(t, 2, enemies[0].Health)
}

// killWithDrop sets up a one-hit sword kill on an enemy just below the
// player, with a table that always drops row.
func killWithDrop(t *testing.T, row config.DropTypeConfig) (*Simulation, []systems.Event) {
	t.Helper()
	c := config.Default()
	c.Combat.SwordDamage = 4
	c.Drops.Table = []config.DropTypeConfig{row}
	s := newEmpty(t, WithConfig(c))
	s.SpawnEnemy(gamemath.Vec{X: 48, Y: 100}, config.SoldierGreen)
	return s, s.Step(dt, 16, PlayerIntent{Attack: true})
}

func TestEnemyDropPickedUp(t *testing.T) {
	s, events := killWithDrop(t, config.DropTypeConfig{Name: "arrow", Effect: "arrows", Value: 3, Chance: 1})
	startArrows := s.Player().Arrows

	require.True(t, hasEvent(events, systems.EventEnemyDied))
	require.True(t, hasEvent(events, systems.EventDropSpawned))
	drops := s.Drops()
	require.Len(t, drops, 1)
	assert.Equal(t, "arrow", drops[0].Name)
	assert.Equal(t, config.DropArrows, drops[0].Effect)
	assert.Equal(t, int64(16)+s.Config().Drops.Lifetime, drops[0].Expires)

	walk := IntentFunc(func() PlayerIntent { return PlayerIntent{MoveY: 1} })
	events = Advance(s, 60, 60, walk)

	assert.True(t, hasEvent(events, systems.EventDropCollected))
	assert.Empty(t, s.Drops())
	assert.Equal(t, startArrows+3, s.Player().Arrows)
}

func TestHeartDropHeals(t *testing.T) {
	s, _ := killWithDrop(t, config.DropTypeConfig{Name: "heart", Effect: "health", Value: 2, Chance: 1})
	e, ok := s.playerEntry()
	require.True(t, ok)
	components.Health.Get(e).Current = 1

	walk := IntentFunc(func() PlayerIntent { return PlayerIntent{MoveY: 1} })
	Advance(s, 60, 60, walk)

	assert.Equal(t, 3, s.Player().Health)
}

func TestEnemyDropExpires(t *testing.T) {
	s, _ := killWithDrop(t, config.DropTypeConfig{Name: "heart", Effect: "health", Value: 2, Chance: 1})
	require.Len(t, s.Drops(), 1)
	lifetime := s.Config().Drops.Lifetime

	s.Step(dt, 16+lifetime-1, PlayerIntent{})
	assert.Len(t, s.Drops(), 1)

	events := s.Step(dt, 16+lifetime, PlayerIntent{})
	assert.Empty(t, s.Drops())
	assert.False(t, hasEvent(events, systems.EventDropCollected))
}

func TestEmptyDropTableLeavesNothing(t *testing.T) {
	s, events := killWithDrop(t, config.DropTypeConfig{Name: "heart", Effect: "health", Value: 2})
	assert.True(t, hasEvent(events, systems.EventEnemyDied))
	assert.False(t, hasEvent(events, systems.EventDropSpawned))
	assert.Empty(t, s.Drops())
}

func TestPlayerDiesFromContact(t *testing.T) {
	c := config.Default()
	c.Player.Health = 1
	s := newEmpty(t, WithConfig(c))
	s.SpawnEnemy(gamemath.Vec{X: 60, Y: 48}, config.SoldierGreen)

	events := s.Step(dt, 16, PlayerIntent{})

	assert.True(t, hasEvent(events, systems.EventPlayerDied))
	p := s.Player()
	assert.True(t, p.Dead)
	assert.Equal(t, 0, p.Health)

	events = Advance(s, 5, 60, IntentFunc(func() PlayerIntent { return PlayerIntent{Attack: true} }))
	assert.False(t, hasEvent(events, systems.EventAttackStarted))
}

func TestBoomerangThrownAndCaught(t *testing.T) {
	s := newEmpty(t)

	events := s.Step(dt, 16, PlayerIntent{UseItem: true})
	require.True(t, hasEvent(events, systems.EventProjectileSpawned))
	require.Len(t, s.Projectiles(), 1)
	assert.Equal(t, config.ProjectileBoomerang, s.Projectiles()[0].Kind)

	// A second throw is refused while the first is out.
	events = Advance(s, 30, 60, IntentFunc(func() PlayerIntent { return PlayerIntent{UseItem: true} }))
	assert.False(t, hasEvent(events, systems.EventProjectileSpawned))

	events = Advance(s, 200, 60, nil)
	assert.True(t, hasEvent(events, systems.EventBoomerangCaught))
	assert.Empty(t, s.Projectiles())

	events = s.Step(dt, s.Now()+16, PlayerIntent{UseItem: true})
	assert.True(t, hasEvent(events, systems.EventProjectileSpawned))
}

func TestSameSeedReplaysExactly(t *testing.T) {
	a := newMeadow(t, WithSeed(99))
	b := newMeadow(t, WithSeed(99))

	walk := IntentFunc(func() PlayerIntent { return PlayerIntent{MoveX: 1} })
	Advance(a, 300, 60, walk)
	Advance(b, 300, 60, walk)

	assert.Equal(t, a.Enemies(), b.Enemies())
	assert.Equal(t, a.Player(), b.Player())
}

func TestAdvanceMovesClock(t *testing.T) {
	s := newEmpty(t)

	Advance(s, 60, 60, nil)
	assert.Equal(t, int64(1000), s.Now())

	Advance(s, 300, 60, nil)
	assert.Equal(t, int64(6000), s.Now())

	// Rates that do not divide a second still land on whole seconds.
	Advance(s, 7, 7, nil)
	assert.Equal(t, int64(7000), s.Now())
}

func TestGameLoopTicksUntilStopped(t *testing.T) {
	s := newEmpty(t)
	var ticks atomic.Int64
	loop := NewGameLoop(s, 200, nil, func([]systems.Event) { ticks.Add(1) })

	go loop.Run()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	loop.Stop()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
	assert.Positive(t, s.Now())
}
