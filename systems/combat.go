package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// QueueDamage records a hit against e. Hits are applied by UpdateCombat.
func QueueDamage(e *donburi.Entry, hit components.Hit) {
	if e.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(e)
		ev.Hits = append(ev.Hits, hit)
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Hits: []components.Hit{hit}})
}

// UpdateCombat drains queued damage, keeps health within [0, max] and moves
// depleted entities into their dying state. It runs after every phase that
// can queue hits so a kill takes effect before the next phase queries.
func UpdateCombat(w donburi.World, f *Frame) {
	var pending []*donburi.Entry
	components.DamageEvent.Each(w, func(e *donburi.Entry) {
		pending = append(pending, e)
	})
	sortBySerial(pending)

	for _, e := range pending {
		hits := components.DamageEvent.Get(e).Hits
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		for _, hit := range hits {
			if e.HasComponent(components.Death) {
				break
			}
			if e.HasComponent(tags.Player) {
				applyHitToPlayer(e, f, hit)
			} else if e.HasComponent(tags.Enemy) {
				applyHitToEnemy(e, f, hit)
			}
		}
	}
}

func applyHitToEnemy(e *donburi.Entry, f *Frame, hit components.Hit) {
	enemy := components.Enemy.Get(e)
	hp := components.Health.Get(e)
	obj := components.Object.Get(e)

	hp.Add(-hit.Amount)
	components.Knockback.Get(e).Velocity = gamemath.Knockback(hit.Source, obj.Center(), hit.Knockback)

	// Stun freezes the intent in place; the alert flag survives so recovery
	// knows where to go.
	enemy.StunStart = f.Now
	enemy.StunDuration = f.Config.Enemy.StunDuration
	enemy.AttackReady = false
	components.State.Get(e).Set(cfg.StateStunned, f.Now)

	f.Emit(Event{Kind: EventEnemyDamaged, Entity: e.Entity(), Position: obj.Center(), Amount: hit.Amount, Name: enemy.TypeName})

	if hp.Depleted() {
		kill(e, f)
		f.Emit(Event{Kind: EventEnemyDied, Entity: e.Entity(), Position: obj.Center(), Name: enemy.TypeName})
		if d, ok := RollDrop(f); ok {
			f.Push(Command{Kind: CommandSpawnDrop, Position: obj.Center(), Drop: d})
		}
	}
}

func applyHitToPlayer(e *donburi.Entry, f *Frame, hit components.Hit) {
	player := components.Player.Get(e)
	if player.Invincible || player.Dead {
		return
	}
	hp := components.Health.Get(e)
	obj := components.Object.Get(e)

	hp.Add(-hit.Amount)
	components.Knockback.Get(e).Velocity = gamemath.Knockback(hit.Source, obj.Center(), hit.Knockback)
	player.Invincible = true
	player.InvincibleTime = f.Now
	player.Charging = false

	f.Emit(Event{Kind: EventPlayerDamaged, Entity: e.Entity(), Position: obj.Center(), Amount: hit.Amount})

	if hp.Depleted() {
		player.Dead = true
		kill(e, f)
		f.Emit(Event{Kind: EventPlayerDied, Entity: e.Entity(), Position: obj.Center()})
	}
}

// kill moves an entity into its terminal state and pulls its hitbox out of
// the space at once, so later queries in the same step never see it.
func kill(e *donburi.Entry, f *Frame) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{At: f.Now})
	if e.HasComponent(components.State) {
		components.State.Get(e).Set(cfg.StateDying, f.Now)
	}
	if e.HasComponent(components.Object) {
		f.Broad.Space().Remove(components.Object.Get(e).Object)
	}
}

// UpdateContactDamage checks every live enemy against the player. While the
// player is invincible nothing is queued at all.
func UpdateContactDamage(w donburi.World, f *Frame) {
	playerEntry, ok := tags.Player.First(w)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Invincible {
		return
	}

	box := components.Object.Get(playerEntry).Rect()
	touching := f.Broad.Overlapping(box, tags.ResolvEnemy)
	if len(touching) == 0 {
		return
	}
	// The first contact starts invincibility; any further ones would be ignored.
	first := touching[0]
	QueueDamage(playerEntry, components.Hit{
		Amount:    components.Enemy.Get(first).Damage,
		Source:    components.Object.Get(first).Center(),
		Knockback: f.Config.Player.Knockback,
	})
	UpdateCombat(w, f)
}
