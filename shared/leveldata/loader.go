package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	ObstacleLayer    = "obstacles"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemyGroup       = "Enemies"
)

// LoadCollisionData parses a TMX file into obstacles and spawns. Map pixels
// are multiplied by scale to get world units. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string, scale float64) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth) * scale
	tileH := float64(levelMap.TileHeight) * scale
	data := &CollisionData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  float64(levelMap.Width) * tileW,
		MapHeight: float64(levelMap.Height) * tileH,
	}

	// Every tile on the obstacle layer blocks; its tileset may tag a terrain.
	for _, layer := range levelMap.Layers {
		if layer.Name != ObstacleLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				terrain := "solid"
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if t := tilesetTile.Properties.GetString("terrain"); t != "" {
						terrain = t
					}
				}

				data.Obstacles = append(data.Obstacles, ObstacleRect{
					X:       float64(x) * tileW,
					Y:       float64(y) * tileH,
					W:       tileW,
					H:       tileH,
					Terrain: terrain,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.PlayerSpawns = append(data.PlayerSpawns, SpawnPoint{
					X:     o.X * scale,
					Y:     o.Y * scale,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case EnemyGroup:
			for _, o := range og.Objects {
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:         o.X * scale,
					Y:         o.Y * scale,
					Archetype: o.Properties.GetString("archetype"),
				})
			}
		}
	}

	sort.SliceStable(data.PlayerSpawns, func(i, j int) bool {
		return data.PlayerSpawns[i].Index < data.PlayerSpawns[j].Index
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, scale float64) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path, scale)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
