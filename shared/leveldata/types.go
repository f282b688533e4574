// Package leveldata parses level geometry and spawn markers into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

var (
	// ErrNoLevels is returned when a levels directory holds no maps.
	ErrNoLevels = errors.New("no levels found")
	// ErrUnknownTile is returned for a map character outside the legend.
	ErrUnknownTile = errors.New("unknown tile")
)

// CollisionData holds everything the simulation needs from one level, in
// world units.
type CollisionData struct {
	Name         string
	Obstacles    []ObstacleRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
	MapWidth     float64
	MapHeight    float64
}

// ObstacleRect is one impassable tile.
type ObstacleRect struct {
	X, Y, W, H float64
	Terrain    string // "solid", "water", "pit"
}

// SpawnPoint is a player spawn location: the sprite's top-left corner.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places one enemy of the named archetype.
type EnemySpawn struct {
	X, Y      float64
	Archetype string
}

// PlayerSpawn returns the first player spawn, or the map origin plus one
// tile when the level defines none.
func (d *CollisionData) PlayerSpawn(tileSize float64) SpawnPoint {
	if len(d.PlayerSpawns) == 0 {
		return SpawnPoint{X: tileSize, Y: tileSize}
	}
	return d.PlayerSpawns[0]
}
