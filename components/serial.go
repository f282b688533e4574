package components

import "github.com/yohamta/donburi"

// SerialData orders entities by spawn so every pass is deterministic.
type SerialData struct {
	Value uint64
}

var Serial = donburi.NewComponentType[SerialData]()
