package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, name string, bounds gamemath.Rect) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Bounds: bounds,
	})
	return level
}

// nextSerial hands out spawn-order serials from the level entry. A world
// without a level gets an unnamed one.
func nextSerial(w donburi.World) uint64 {
	entry, ok := components.Level.First(w)
	if !ok {
		entry = CreateLevel(w, "", gamemath.Rect{})
	}
	level := components.Level.Get(entry)
	level.NextSerial++
	return level.NextSerial
}
