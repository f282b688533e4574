package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateObstacle adds one static blocking rect. index fixes the order in
// which overlapping obstacles are resolved.
func CreateObstacle(w donburi.World, index int, r gamemath.Rect, terrain cfg.Terrain) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, terrain.String())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = obstacle.Entity() // Link for O(1) lookup

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Index:   index,
		Terrain: terrain,
	})
	addToSpace(w, obj)

	return obstacle
}
