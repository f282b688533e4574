package components

import (
	"github.com/yohamta/donburi"
)

// HitboxData is a player sword swing. Its position is derived from the
// owner each tick.
type HitboxData struct {
	OwnerEntity donburi.Entity
	Damage      int
	Spin        bool
	Expires     int64
	HitEntities map[donburi.Entity]bool // Entities already hit by this swing
}

var Hitbox = donburi.NewComponentType[HitboxData]()
