package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func press(p *donburi.Entry, in components.InputData) {
	components.Input.SetValue(p, in)
}

func TestPlayerMovesAndFaces(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	press(p, components.InputData{MoveX: 1, MoveY: 1})
	h.f.Dt = 0.1

	f := h.at(0)
	UpdatePlayer(h.w, f)
	UpdatePlayerMovement(h.w, f)

	player := components.Player.Get(p)
	assert.InDelta(t, 1.0, player.Motion.Len(), 1e-9)
	assert.Equal(t, gamemath.Right, components.Body.Get(p).Facing)
	step := h.c.Player.Speed * 0.1 / 1.4142135623730951
	assert.InDelta(t, 500+step, center(p).X, 1e-6)
	assert.InDelta(t, 500+step, center(p).Y, 1e-6)
}

func TestRunNeedsBoots(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	player := components.Player.Get(p)
	press(p, components.InputData{MoveX: 1, Run: true})

	UpdatePlayer(h.w, h.at(0))
	assert.False(t, player.Running)

	player.Owned[config.ItemBoots] = true
	UpdatePlayer(h.w, h.at(16))
	assert.True(t, player.Running)

	h.f.Dt = 0.1
	UpdatePlayerMovement(h.w, h.f)
	assert.InDelta(t, 500+h.c.Player.Speed*h.c.Player.RunMultiplier*0.1, center(p).X, 1e-6)
}

func TestAttackIsGatedByCooldown(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	press(p, components.InputData{Attack: true, MoveX: 1})

	f := h.at(0)
	UpdatePlayer(h.w, f)
	cmds := commandsOf(f.Commands, CommandSpawnAttack)
	require.Len(t, cmds, 1)
	assert.Equal(t, h.c.Combat.SwordDamage, cmds[0].Damage)
	assert.False(t, cmds[0].Spin)
	assert.True(t, components.Player.Get(p).Attacking)

	f = h.at(100)
	UpdatePlayer(h.w, f)
	assert.Empty(t, commandsOf(f.Commands, CommandSpawnAttack))
	assert.True(t, components.Player.Get(p).Motion.IsZero(), "no walking mid-swing")

	f = h.at(h.c.Player.AttackCooldown)
	UpdatePlayer(h.w, f)
	assert.Len(t, commandsOf(f.Commands, CommandSpawnAttack), 1)
}

func TestSpinAttackAfterCharge(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})

	press(p, components.InputData{AttackHeld: true})
	UpdatePlayer(h.w, h.at(0))
	assert.True(t, components.Player.Get(p).Charging)

	press(p, components.InputData{})
	f := h.at(999)
	UpdatePlayer(h.w, f)
	assert.Empty(t, f.Commands, "released too early")

	press(p, components.InputData{AttackHeld: true})
	UpdatePlayer(h.w, h.at(2000))
	press(p, components.InputData{})
	f = h.at(3000)
	UpdatePlayer(h.w, f)

	cmds := commandsOf(f.Commands, CommandSpawnAttack)
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Spin)
	assert.Equal(t, h.c.Combat.SpinDamage, cmds[0].Damage)
	assert.False(t, components.Player.Get(p).Charging)
}

func TestUseItemLaunchesEquippedProjectile(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	player := components.Player.Get(p)
	press(p, components.InputData{Equip: config.ItemBombs, UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)

	cmds := commandsOf(f.Commands, CommandSpawnProjectile)
	require.Len(t, cmds, 1)
	assert.Equal(t, config.ProjectileBomb, cmds[0].Projectile)
	assert.Equal(t, config.SidePlayer, cmds[0].Side)
	assert.Equal(t, gamemath.Vec{X: 500, Y: 500}, cmds[0].Position)
	assert.Equal(t, gamemath.Down.Vec(), cmds[0].Direction)
	assert.Equal(t, h.c.Player.StartingBombs-1, player.Bombs)

	f = h.at(100)
	UpdatePlayer(h.w, f)
	assert.Empty(t, f.Commands, "item cooldown")

	f = h.at(h.c.Player.ItemCooldown)
	UpdatePlayer(h.w, f)
	assert.Len(t, f.Commands, 1)
}

func TestUseItemNeedsAmmo(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	components.Player.Get(p).Arrows = 0
	press(p, components.InputData{Equip: config.ItemBow, UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)

	assert.Empty(t, f.Commands)
	assert.Equal(t, config.ItemBow, components.Player.Get(p).Equipped)
}

func TestEquipIgnoresUnownedItem(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	press(p, components.InputData{Equip: config.ItemFireRod, UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)

	player := components.Player.Get(p)
	assert.Equal(t, config.ItemBoomerang, player.Equipped)
	assert.Len(t, commandsOf(f.Commands, CommandSpawnProjectile), 1)
}

func TestMagicCostIsPaid(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	components.Player.Get(p).Owned[config.ItemFireRod] = true
	magic := components.Magic.Get(p)
	magic.Current = 5
	press(p, components.InputData{Equip: config.ItemFireRod, UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)
	require.Len(t, f.Commands, 1)
	assert.Equal(t, config.ProjectileFire, f.Commands[0].Projectile)
	assert.Equal(t, 1, magic.Current)

	f = h.at(1000)
	UpdatePlayer(h.w, f)
	assert.Empty(t, f.Commands, "not enough magic")
	assert.Equal(t, 1, magic.Current)
}

func TestOnlyOneBoomerangInFlight(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	player := components.Player.Get(p)
	press(p, components.InputData{UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)
	cmds := commandsOf(f.Commands, CommandSpawnProjectile)
	require.Len(t, cmds, 1)
	b := h.shoot(cmds[0].Position, cmds[0].Direction, cmds[0].Projectile, cmds[0].Side, p.Entity())
	player.ActiveBoomerang = b.Entity()

	f = h.at(1000)
	UpdatePlayer(h.w, f)
	assert.Empty(t, f.Commands)

	RemoveEntity(h.w, b)
	f = h.at(2000)
	UpdatePlayer(h.w, f)
	assert.Len(t, f.Commands, 1)
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	components.Player.Get(p).Dead = true
	press(p, components.InputData{MoveX: 1, Attack: true, UseItem: true})

	f := h.at(0)
	UpdatePlayer(h.w, f)
	UpdatePlayerMovement(h.w, f)

	assert.Empty(t, f.Commands)
	assert.Equal(t, gamemath.Vec{X: 500, Y: 500}, center(p))
}

func TestPlayerKnockbackDecays(t *testing.T) {
	h := newHarness(t)
	p := h.spawnPlayer(gamemath.Vec{X: 500, Y: 500})
	components.Knockback.Get(p).Velocity = gamemath.Vec{X: 10}

	f := h.at(0)
	UpdatePlayer(h.w, f)
	UpdatePlayerMovement(h.w, f)

	assert.InDelta(t, 510, center(p).X, 1e-9)
	assert.InDelta(t, 9, components.Knockback.Get(p).Velocity.X, 1e-9)
}
