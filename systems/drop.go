package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// RollDrop draws once against the drop table. Rows are tried in order and
// whatever chance is left over means nothing drops.
func RollDrop(f *Frame) (cfg.DropTypeConfig, bool) {
	table := f.Config.Drops.Table
	if len(table) == 0 {
		return cfg.DropTypeConfig{}, false
	}
	roll := f.Rand.Float64()
	acc := 0.0
	for _, d := range table {
		acc += d.Chance
		if roll < acc {
			return d, true
		}
	}
	return cfg.DropTypeConfig{}, false
}

// UpdateDrops expires old pickups and hands any the player touches over to
// it. A dead player collects nothing.
func UpdateDrops(w donburi.World, f *Frame) {
	for _, e := range Snapshot(w, tags.Drop) {
		if components.Drop.Get(e).Expired(f.Now) {
			kill(e, f)
		}
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok || playerEntry.HasComponent(components.Death) || components.Player.Get(playerEntry).Dead {
		return
	}
	box := components.Object.Get(playerEntry).Rect()
	for _, e := range f.Broad.Overlapping(box, tags.ResolvDrop) {
		d := components.Drop.Get(e)
		collect(playerEntry, d)
		kill(e, f)
		f.Emit(Event{
			Kind:     EventDropCollected,
			Entity:   e.Entity(),
			Position: components.Object.Get(e).Center(),
			Amount:   d.Value,
			Name:     d.Name,
		})
	}
}

func collect(player *donburi.Entry, d *components.DropData) {
	switch d.Effect {
	case cfg.DropHealth:
		components.Health.Get(player).Add(d.Value)
	case cfg.DropMagic:
		components.Magic.Get(player).Add(d.Value)
	case cfg.DropBombs:
		components.Player.Get(player).Bombs += d.Value
	case cfg.DropArrows:
		components.Player.Get(player).Arrows += d.Value
	}
}
