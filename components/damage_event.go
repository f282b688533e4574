package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Hit is one queued damage application.
type Hit struct {
	Amount    int
	Source    gamemath.Vec
	Knockback float64
}

type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
