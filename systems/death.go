package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
)

// UpdateDeaths sweeps dying entities and retired projectiles out of the
// world. The player entity stays, flagged dead, so its final state remains
// readable.
func UpdateDeaths(w donburi.World, f *Frame) {
	var doomed []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(tags.Player) {
			doomed = append(doomed, e)
		}
	})
	components.Projectile.Each(w, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Retired {
			doomed = append(doomed, e)
		}
	})
	sortBySerial(doomed)

	for _, e := range doomed {
		RemoveEntity(w, e)
	}
	if len(doomed) > 0 && f.Logger != nil {
		f.Logger.Debug("swept entities", "count", len(doomed), "now", f.Now)
	}
}

// RemoveEntity takes e out of the space and the world.
func RemoveEntity(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
