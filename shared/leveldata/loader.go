package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupPlatforms = "platforms"
	GroupPipes     = "pipes"
	GroupBlocks    = "blocks"
	GroupCoins     = "coins"
	GroupPlayer    = "player"
	GroupEnemies   = "enemies"
)

// LoadLayout parses a TMX file into a validated Layout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
//
// Every object in the platforms, pipes and blocks groups is a rectangle. A
// coin object's box is the circle's bounds. Spawn objects only use x and y.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupPlatforms:
				layout.Platforms = append(layout.Platforms, Solid{Rect: r, Kind: collision.KindPlatform})
			case GroupPipes:
				layout.Platforms = append(layout.Platforms, Solid{Rect: r, Kind: collision.KindPipe})
			case GroupBlocks:
				layout.Blocks = append(layout.Blocks, r)
			case GroupCoins:
				layout.Coins = append(layout.Coins, Coin{X: o.X + o.Width/2, Y: o.Y + o.Height/2, R: o.Width / 2})
			case GroupPlayer:
				if layout.PlayerSpawn == nil {
					layout.PlayerSpawn = &SpawnPoint{X: o.X, Y: o.Y}
				}
			case GroupEnemies:
				layout.EnemySpawns = append(layout.EnemySpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		}
	}

	// Keep enemy order stable regardless of editor object order
	sort.SliceStable(layout.EnemySpawns, func(i, j int) bool {
		return layout.EnemySpawns[i].X < layout.EnemySpawns[j].X
	})

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
