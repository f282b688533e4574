package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitStunsThenResumesPatrol(t *testing.T) {
	h := newHarness(t)
	e := h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 500, Y: 500})

	QueueDamage(e, components.Hit{Amount: 2, Source: gamemath.Vec{X: 400, Y: 500}, Knockback: 10})
	UpdateCombat(h.w, h.at(0))

	assert.Equal(t, 2, components.Health.Get(e).Current)
	assert.Equal(t, config.StateStunned, components.State.Get(e).CurrentState)

	UpdateEnemies(h.w, h.at(499))
	assert.Equal(t, config.StateStunned, components.State.Get(e).CurrentState)

	UpdateEnemies(h.w, h.at(500))
	assert.Equal(t, config.StatePatrol, components.State.Get(e).CurrentState)
}

func TestHitStunsThenResumesChaseWhenAlerted(t *testing.T) {
	h := newHarness(t)
	h.spawnPlayer(gamemath.Vec{X: 500 + 10*48, Y: 500})
	e := h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 500, Y: 500})
	components.Enemy.Get(e).Alerted = true

	QueueDamage(e, components.Hit{Amount: 2, Source: gamemath.Vec{X: 400, Y: 500}, Knockback: 10})
	UpdateCombat(h.w, h.at(0))
	require.Equal(t, 2, components.Health.Get(e).Current)

	UpdateEnemies(h.w, h.at(500))
	assert.Equal(t, config.StateChase, components.State.Get(e).CurrentState)
	assert.True(t, components.Enemy.Get(e).Alerted)
}

func TestStunnedEnemyOnlyMovesByKnockback(t *testing.T) {
	h := newHarness(t)
	e := h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 500, Y: 500})
	enemy := components.Enemy.Get(e)
	enemy.Intent = gamemath.Vec{X: 1}
	components.State.Get(e).Set(config.StateStunned, 0)
	enemy.StunDuration = 500

	start := center(e)
	UpdateEnemyMovement(h.w, h.at(100))
	assert.Equal(t, start, center(e))

	components.Knockback.Get(e).Velocity = gamemath.Vec{X: 0, Y: 10}
	UpdateEnemyMovement(h.w, h.at(116))
	assert.InDelta(t, start.Y+10, center(e).Y, 1e-9)
	assert.Equal(t, start.X, center(e).X)
	assert.Equal(t, gamemath.Vec{X: 1}, enemy.Intent)
	assert.InDelta(t, 9.0, components.Knockback.Get(e).Velocity.Y, 1e-9)
}

func TestKnockbackPushesAwayFromSource(t *testing.T) {
	h := newHarness(t)
	e := h.spawnEnemy(config.Moblin, gamemath.Vec{X: 500, Y: 500})

	QueueDamage(e, components.Hit{Amount: 1, Source: gamemath.Vec{X: 500, Y: 400}, Knockback: 10})
	UpdateCombat(h.w, h.at(0))

	assert.Equal(t, gamemath.Vec{X: 0, Y: 10}, components.Knockback.Get(e).Velocity)
}

func TestLethalHitClampsAndRemovesFromQueries(t *testing.T) {
	h := newHarness(t)
	e := h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 500, Y: 500})
	box := components.Object.Get(e).Rect()

	QueueDamage(e, components.Hit{Amount: 3, Source: gamemath.Vec{X: 400, Y: 500}})
	QueueDamage(e, components.Hit{Amount: 30, Source: gamemath.Vec{X: 400, Y: 500}})
	f := h.at(0)
	UpdateCombat(h.w, f)

	assert.Equal(t, 0, components.Health.Get(e).Current)
	assert.True(t, e.HasComponent(components.Death))
	assert.Equal(t, config.StateDying, components.State.Get(e).CurrentState)
	assert.Empty(t, h.f.Broad.Overlapping(box, tags.ResolvEnemy))
	assert.Len(t, eventsOf(f.Events, EventEnemyDied), 1)

	UpdateDeaths(h.w, f)
	assert.False(t, h.w.Valid(e.Entity()))
}

func TestHealthNeverExceedsMax(t *testing.T) {
	h := newHarness(t)
	e := h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 500, Y: 500})

	QueueDamage(e, components.Hit{Amount: -10})
	UpdateCombat(h.w, h.at(0))

	hp := components.Health.Get(e)
	assert.Equal(t, hp.Max, hp.Current)
}

func TestContactDamageRespectsInvincibility(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	h.spawnEnemy(config.SoldierGreen, gamemath.Vec{X: 510, Y: 500})
	hp := components.Health.Get(p)
	startHealth := hp.Current

	damaged := 0
	for now := int64(0); now <= 1200; now += 16 {
		f := h.at(now)
		UpdatePlayer(h.w, f)
		UpdateContactDamage(h.w, f)
		damaged += len(eventsOf(f.Events, EventPlayerDamaged))
		if now < 1000 {
			require.Equal(t, startHealth-2, hp.Current, "at %d", now)
		}
	}

	assert.Equal(t, 2, damaged)
	assert.Equal(t, startHealth-4, hp.Current)
}

func TestPlayerDeath(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	components.Health.Get(p).Current = 1

	QueueDamage(p, components.Hit{Amount: 2, Source: gamemath.Vec{X: 400, Y: 500}, Knockback: 20})
	f := h.at(0)
	UpdateCombat(h.w, f)

	player := components.Player.Get(p)
	assert.True(t, player.Dead)
	assert.Equal(t, 0, components.Health.Get(p).Current)
	assert.Len(t, eventsOf(f.Events, EventPlayerDied), 1)

	UpdateDeaths(h.w, f)
	assert.True(t, h.w.Valid(p.Entity()), "the player entity is kept")
}

func TestAttackRectFollowsFacing(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	body := components.Body.Get(p)
	sprite := body.SpriteRect(components.Object.Get(p).Rect())

	body.Facing = gamemath.Right
	r := AttackRect(h.f, p, false)
	assert.Equal(t, gamemath.Rect{X: sprite.Right(), Y: 500 - 48, W: 48, H: 96}, r)

	body.Facing = gamemath.Up
	r = AttackRect(h.f, p, false)
	assert.Equal(t, gamemath.Rect{X: 500 - 48, Y: sprite.Top() - 48, W: 96, H: 48}, r)

	r = AttackRect(h.f, p, true)
	assert.Equal(t, gamemath.Vec{X: 500, Y: 500}, r.Center())
	assert.Equal(t, 120.0, r.W)
}

func TestAttackHitsOncePerSwing(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	e := h.spawnEnemy(config.SoldierBlue, gamemath.Vec{X: 500, Y: 560})
	components.Body.Get(p).Facing = gamemath.Down

	f := h.at(0)
	factory.CreateHitbox(h.w, p.Entity(), AttackRect(f, p, false), 2, false, 0, 200)

	UpdateCombatHitboxes(h.w, f)
	UpdateCombatHitboxes(h.w, h.at(16))

	assert.Equal(t, 4, components.Health.Get(e).Current)
}

func TestAttackRehitsWhenEnabled(t *testing.T) {
	h := newHarness(t)
	h.c.Combat.RehitWhileActive = true
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	e := h.spawnEnemy(config.SoldierBlue, gamemath.Vec{X: 500, Y: 560})
	components.Body.Get(p).Facing = gamemath.Down

	f := h.at(0)
	factory.CreateHitbox(h.w, p.Entity(), AttackRect(f, p, false), 2, false, 0, 200)

	UpdateCombatHitboxes(h.w, f)
	UpdateCombatHitboxes(h.w, h.at(16))

	assert.Equal(t, 2, components.Health.Get(e).Current)
}

func TestExpiredHitboxIsRetired(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	hb := factory.CreateHitbox(h.w, p.Entity(), AttackRect(h.at(0), p, false), 2, false, 0, 200)
	components.Player.Get(p).ActiveAttack = hb.Entity()

	RetireExpiredHitboxes(h.w, h.at(199))
	assert.True(t, h.w.Valid(hb.Entity()))

	RetireExpiredHitboxes(h.w, h.at(200))
	assert.False(t, h.w.Valid(hb.Entity()))
	assert.False(t, h.w.Valid(components.Player.Get(p).ActiveAttack))
}
