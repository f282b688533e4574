package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Index   int
	Terrain cfg.Terrain
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
