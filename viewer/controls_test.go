package viewer

import (
	"testing"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/sim"
	"github.com/stretchr/testify/assert"
)

func TestIntentFromHeldKeys(t *testing.T) {
	c := NewControls(DefaultBindings())
	c.current[ActionMoveLeft] = true
	c.current[ActionMoveDown] = true
	c.current[ActionRun] = true

	intent := c.Intent(sim.Inventory{})

	assert.Equal(t, -1.0, intent.MoveX)
	assert.Equal(t, 1.0, intent.MoveY)
	assert.True(t, intent.Run)
	assert.False(t, intent.Attack)
}

func TestOpposingKeysCancel(t *testing.T) {
	c := NewControls(DefaultBindings())
	c.current[ActionMoveLeft] = true
	c.current[ActionMoveRight] = true

	assert.Zero(t, c.Intent(sim.Inventory{}).MoveX)
}

func TestAttackIsEdgeTriggered(t *testing.T) {
	c := NewControls(DefaultBindings())
	c.current[ActionAttack] = true

	first := c.Intent(sim.Inventory{})
	assert.True(t, first.Attack)
	assert.True(t, first.AttackHeld)

	c.previous = c.current
	held := c.Intent(sim.Inventory{})
	assert.False(t, held.Attack)
	assert.True(t, held.AttackHeld)
}

func TestStickOverridesDpad(t *testing.T) {
	c := NewControls(DefaultBindings())
	c.current[ActionMoveRight] = true
	c.stickX = -0.5

	assert.Equal(t, -0.5, c.Intent(sim.Inventory{}).MoveX)
}

func TestNextItemCycles(t *testing.T) {
	inv := sim.Inventory{
		Owned:    []config.Item{config.ItemBombs, config.ItemBow, config.ItemBoomerang, config.ItemBoots},
		Equipped: config.ItemBow,
	}
	assert.Equal(t, config.ItemBoomerang, NextItem(inv))

	inv.Equipped = config.ItemBoomerang
	assert.Equal(t, config.ItemBombs, NextItem(inv), "boots are skipped and the list wraps")

	inv.Equipped = config.ItemNone
	assert.Equal(t, config.ItemBombs, NextItem(inv))

	assert.Equal(t, config.ItemNone, NextItem(sim.Inventory{Owned: []config.Item{config.ItemBoots}}))
}

func TestNextItemPressEquips(t *testing.T) {
	c := NewControls(DefaultBindings())
	c.current[ActionNextItem] = true

	intent := c.Intent(sim.Inventory{Owned: []config.Item{config.ItemBow, config.ItemBoomerang}, Equipped: config.ItemBow})

	assert.Equal(t, config.ItemBoomerang, intent.Equip)
}

func TestClampCamera(t *testing.T) {
	bounds := gamemath.Rect{W: 2000, H: 1000}

	assert.Equal(t, gamemath.Vec{X: 480, Y: 360}, clampCamera(gamemath.Vec{X: 10, Y: 10}, bounds, 960, 720))
	assert.Equal(t, gamemath.Vec{X: 1520, Y: 640}, clampCamera(gamemath.Vec{X: 1990, Y: 990}, bounds, 960, 720))
	assert.Equal(t, gamemath.Vec{X: 700, Y: 500}, clampCamera(gamemath.Vec{X: 700, Y: 500}, bounds, 960, 720))

	small := gamemath.Rect{W: 400, H: 300}
	assert.Equal(t, gamemath.Vec{X: 200, Y: 150}, clampCamera(gamemath.Vec{X: 10, Y: 10}, small, 960, 720))
}
