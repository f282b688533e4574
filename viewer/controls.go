package viewer

import (
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Controls turns polled device state into one PlayerIntent per tick.
type Controls struct {
	bindings Bindings
	current  [ActionCount]bool
	previous [ActionCount]bool
	stickX   float64
	stickY   float64

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewControls(b Bindings) *Controls {
	return &Controls{bindings: b}
}

// Poll reads the keyboard and every standard-layout gamepad. Call it once
// per tick before Intent.
func (c *Controls) Poll() {
	c.previous = c.current
	c.current = [ActionCount]bool{}
	c.stickX, c.stickY = 0, 0

	c.gamepadIDs = ebiten.AppendGamepadIDs(c.gamepadIDs[:0])

	for action, binding := range c.bindings.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.current[action] = true
			}
		}
		for _, id := range c.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					c.current[action] = true
				}
			}
		}
	}

	deadzone := c.bindings.AnalogDeadzone
	for _, id := range c.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone {
			c.stickX = h
		}
		if v < -deadzone || v > deadzone {
			c.stickY = v
		}
	}
}

func (c *Controls) Pressed(a Action) bool     { return c.current[a] }
func (c *Controls) JustPressed(a Action) bool { return c.current[a] && !c.previous[a] }

// Intent builds the tick's intent. inv picks the item a NextItem press
// equips.
func (c *Controls) Intent(inv sim.Inventory) sim.PlayerIntent {
	intent := sim.PlayerIntent{
		MoveX:      axis(c.current[ActionMoveLeft], c.current[ActionMoveRight]),
		MoveY:      axis(c.current[ActionMoveUp], c.current[ActionMoveDown]),
		Attack:     c.JustPressed(ActionAttack),
		AttackHeld: c.Pressed(ActionAttack),
		UseItem:    c.JustPressed(ActionUseItem),
		Run:        c.Pressed(ActionRun),
	}
	// The stick wins over the d-pad when deflected.
	if c.stickX != 0 {
		intent.MoveX = c.stickX
	}
	if c.stickY != 0 {
		intent.MoveY = c.stickY
	}
	if c.JustPressed(ActionNextItem) {
		intent.Equip = NextItem(inv)
	}
	return intent
}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

// NextItem returns the owned item after the equipped one, wrapping around.
// Items that launch nothing are skipped.
func NextItem(inv sim.Inventory) config.Item {
	var usable []config.Item
	for _, item := range inv.Owned {
		if _, ok := item.Projectile(); ok {
			usable = append(usable, item)
		}
	}
	if len(usable) == 0 {
		return config.ItemNone
	}
	for i, item := range usable {
		if item == inv.Equipped {
			return usable[(i+1)%len(usable)]
		}
	}
	return usable[0]
}
