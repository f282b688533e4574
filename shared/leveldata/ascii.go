package leveldata

import "fmt"

// ASCII map legend. Every solid character becomes one obstacle tile; spawn
// markers stand on walkable ground.
var asciiTerrain = map[rune]string{
	'#': "solid", // wall
	'~': "water",
	'T': "solid", // tree
	'R': "solid", // rock
	'B': "solid", // bush
	'_': "pit",
}

var asciiEnemies = map[rune]string{
	'g': "soldier_green",
	'b': "soldier_blue",
	'o': "octorok",
	'm': "moblin",
	'k': "keese",
	's': "stalfos",
	'r': "rope",
	't': "tektite",
	'a': "armos",
	'z': "buzzblob",
}

// ParseASCII builds a level from rows of legend characters. '.' and 'P' are
// walkable, '@' marks the player spawn and lowercase letters place enemies.
// Short rows are padded with walkable ground.
func ParseASCII(name string, rows []string, tileSize float64) (*CollisionData, error) {
	data := &CollisionData{Name: name}

	width := 0
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			px, py := float64(x)*tileSize, float64(y)*tileSize
			switch {
			case ch == '.' || ch == 'P' || ch == ' ':
			case ch == '@':
				data.PlayerSpawns = append(data.PlayerSpawns, SpawnPoint{X: px, Y: py, Index: len(data.PlayerSpawns)})
			case asciiTerrain[ch] != "":
				data.Obstacles = append(data.Obstacles, ObstacleRect{X: px, Y: py, W: tileSize, H: tileSize, Terrain: asciiTerrain[ch]})
			case asciiEnemies[ch] != "":
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{X: px, Y: py, Archetype: asciiEnemies[ch]})
			default:
				return nil, fmt.Errorf("%w %q at row %d col %d", ErrUnknownTile, ch, y, x)
			}
			x++
		}
		width = max(width, x)
	}

	data.MapWidth = float64(width) * tileSize
	data.MapHeight = float64(len(rows)) * tileSize
	return data, nil
}

// Meadow is the built-in test field used when no level file is given.
var Meadow = []string{
	"##############################",
	"#............................#",
	"#..TTT....RR.........TTT.....#",
	"#..TTT...............TTT..o..#",
	"#.........b..................#",
	"#.....PPPPPPPPPPPPPPPPPP.....#",
	"#.....P....~~~~~~~.....P..g..#",
	"#.....P....~~~~~~~.....P.....#",
	"#..@..P................P.....#",
	"#.....P...RR....BBB....P..k..#",
	"#.....PPPPPPPPPPPPPPPPPP.....#",
	"#..............r.............#",
	"#..TTT.......a........TTT.t..#",
	"#..TTT................TTT....#",
	"#....s.......____.......z..m.#",
	"##############################",
}
