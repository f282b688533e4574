package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Motion   gamemath.Vec // movement intent chosen this tick, unit length at most
	Running  bool
	Charging bool
	Dead     bool

	Attacking  bool
	ItemLocked bool
	Invincible bool

	// Timers, all absolute milliseconds
	AttackTime     int64
	ChargeStart    int64
	ItemUseTime    int64
	InvincibleTime int64

	ActiveAttack    donburi.Entity
	ActiveBoomerang donburi.Entity

	Equipped cfg.Item
	Owned    map[cfg.Item]bool
	Bombs    int
	Arrows   int
}

// Has reports whether the player owns item.
func (p *PlayerData) Has(item cfg.Item) bool {
	return p.Owned[item]
}

var Player = donburi.NewComponentType[PlayerData]()
