package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the player's cooldowns and turns the tick's input
// into motion intent plus attack and item commands.
func UpdatePlayer(w donburi.World, f *Frame) {
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	in := components.Input.Get(e)
	c := f.Config.Player

	updatePlayerCooldowns(player, f)

	player.Motion = gamemath.Vec{}
	if player.Dead {
		player.Running = false
		player.Charging = false
		return
	}

	if in.Equip != cfg.ItemNone && player.Has(in.Equip) {
		player.Equipped = in.Equip
	}
	player.Running = in.Run && (!c.RunRequiresBoots || player.Has(cfg.ItemBoots))

	body := components.Body.Get(e)
	if !player.Attacking {
		player.Motion = gamemath.Vec{X: in.MoveX, Y: in.MoveY}.ClampLen(1)
		// Horizontal input wins the facing, as it is read last.
		switch {
		case in.MoveX < 0:
			body.Facing = gamemath.Left
		case in.MoveX > 0:
			body.Facing = gamemath.Right
		case in.MoveY < 0:
			body.Facing = gamemath.Up
		case in.MoveY > 0:
			body.Facing = gamemath.Down
		}
	}

	if in.Attack && !player.Attacking {
		startAttack(e, player, f, false)
	}

	// Holding the sword charges a spin; releasing after the charge time
	// performs it.
	if in.AttackHeld {
		if !player.Attacking && !player.Charging {
			player.Charging = true
			player.ChargeStart = f.Now
		}
	} else if player.Charging {
		if f.Now-player.ChargeStart >= c.SpinChargeTime {
			startAttack(e, player, f, true)
		}
		player.Charging = false
	}

	if in.UseItem && !player.ItemLocked {
		useItem(w, e, player, f)
	}
}

func updatePlayerCooldowns(player *components.PlayerData, f *Frame) {
	c := f.Config.Player
	if player.Attacking && f.Now-player.AttackTime >= c.AttackCooldown {
		player.Attacking = false
	}
	if player.ItemLocked && f.Now-player.ItemUseTime >= c.ItemCooldown {
		player.ItemLocked = false
	}
	if player.Invincible && f.Now-player.InvincibleTime >= c.InvincibilityDuration {
		player.Invincible = false
	}
}

func startAttack(e *donburi.Entry, player *components.PlayerData, f *Frame, spin bool) {
	player.Attacking = true
	player.AttackTime = f.Now

	damage := f.Config.Combat.SwordDamage
	if spin {
		damage = f.Config.Combat.SpinDamage
	}
	f.Push(Command{
		Kind:   CommandSpawnAttack,
		Owner:  e.Entity(),
		Spin:   spin,
		Damage: damage,
	})
}

// useItem fires the equipped item if the player owns it and can pay for it
// in ammo or magic.
func useItem(w donburi.World, e *donburi.Entry, player *components.PlayerData, f *Frame) {
	item := player.Equipped
	kind, launches := item.Projectile()
	if !launches || !player.Has(item) {
		return
	}

	magic := components.Magic.Get(e)
	cost := f.Config.Items.MagicCost[item.String()]
	if magic.Current < cost {
		return
	}

	switch item {
	case cfg.ItemBombs:
		if player.Bombs <= 0 {
			return
		}
		player.Bombs--
	case cfg.ItemBow:
		if player.Arrows <= 0 {
			return
		}
		player.Arrows--
	case cfg.ItemBoomerang:
		if w.Valid(player.ActiveBoomerang) {
			return
		}
	}

	magic.Add(-cost)
	player.ItemLocked = true
	player.ItemUseTime = f.Now

	f.Push(Command{
		Kind:       CommandSpawnProjectile,
		Owner:      e.Entity(),
		Position:   components.Object.Get(e).Center(),
		Direction:  components.Body.Get(e).Facing.Vec(),
		Projectile: kind,
		Side:       cfg.SidePlayer,
	})
}

// UpdatePlayerMovement moves the player by its motion intent plus any
// knockback, then decays the knockback.
func UpdatePlayerMovement(w donburi.World, f *Frame) {
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	kb := components.Knockback.Get(e)

	speed := f.Config.Player.Speed
	if player.Running {
		speed *= f.Config.Player.RunMultiplier
	}
	delta := player.Motion.Scale(speed * f.Dt).Add(kb.Velocity)

	MovePlayer(f, components.Object.Get(e), delta)
	kb.Velocity = gamemath.DecayKnockback(kb.Velocity, f.Config.Combat.KnockbackResistance, f.Config.Combat.KnockbackThreshold)
}
