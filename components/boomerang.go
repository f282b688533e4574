package components

import (
	"github.com/yohamta/donburi"
)

type BoomerangState int

const (
	BoomerangOutbound BoomerangState = iota
	BoomerangInbound
)

type BoomerangData struct {
	Owner      donburi.Entity
	State      BoomerangState
	HitEnemies map[donburi.Entity]struct{}
}

var Boomerang = donburi.NewComponentType[BoomerangData]()
