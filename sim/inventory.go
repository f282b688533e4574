package sim

import (
	"sort"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
)

// Inventory is the part of the player that outlives a level.
type Inventory struct {
	Health   int
	Magic    int
	Equipped config.Item
	Owned    []config.Item
	Bombs    int
	Arrows   int
}

// Inventory returns the player's items and vitals. Owned is sorted.
func (s *Simulation) Inventory() Inventory {
	e, ok := s.playerEntry()
	if !ok {
		return Inventory{}
	}
	player := components.Player.Get(e)

	owned := make([]config.Item, 0, len(player.Owned))
	for item, has := range player.Owned {
		if has {
			owned = append(owned, item)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i] < owned[j] })

	return Inventory{
		Health:   components.Health.Get(e).Current,
		Magic:    components.Magic.Get(e).Current,
		Equipped: player.Equipped,
		Owned:    owned,
		Bombs:    player.Bombs,
		Arrows:   player.Arrows,
	}
}

// SetInventory replaces the player's items and vitals, clamping vitals to
// their maxima. An equipped item the player does not own is ignored. A dead
// player is left alone.
func (s *Simulation) SetInventory(inv Inventory) {
	e, ok := s.playerEntry()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	if player.Dead {
		return
	}

	player.Owned = make(map[config.Item]bool, len(inv.Owned))
	for _, item := range inv.Owned {
		if item != config.ItemNone {
			player.Owned[item] = true
		}
	}
	if player.Has(inv.Equipped) {
		player.Equipped = inv.Equipped
	}
	player.Bombs = max(inv.Bombs, 0)
	player.Arrows = max(inv.Arrows, 0)

	hp := components.Health.Get(e)
	hp.Add(inv.Health - hp.Current)
	if hp.Current < 1 {
		hp.Current = 1
	}
	mp := components.Magic.Get(e)
	mp.Add(inv.Magic - mp.Current)
}
