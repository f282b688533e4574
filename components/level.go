package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name       string
	Bounds     gamemath.Rect
	NextSerial uint64
}

var Level = donburi.NewComponentType[LevelData]()
