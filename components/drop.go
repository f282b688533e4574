package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

// DropData is an item left behind by a defeated enemy.
type DropData struct {
	Name     string
	Effect   cfg.DropEffect
	Value    int
	Spawned  int64
	Lifetime int64
}

// Expired reports whether the drop has outlived its lifetime at now.
func (d *DropData) Expired(now int64) bool {
	return now-d.Spawned >= d.Lifetime
}

var Drop = donburi.NewComponentType[DropData]()
