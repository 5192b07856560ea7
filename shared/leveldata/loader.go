package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/rocketeer/config"
	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX arena.
const (
	GroupWalls         = "Walls"
	GroupDestructibles = "Destructibles"
	GroupPlayerSpawn   = "PlayerSpawn"
)

// LoadArena parses a TMX file into an arena. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, defaultHeight float64) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	box := func(o *tiled.Object) Box {
		height := o.Properties.GetFloat("height")
		if height <= 0 {
			height = defaultHeight
		}
		return Box{
			Name:   o.Name,
			X:      o.X / tileW,
			Z:      o.Y / tileH,
			Width:  o.Width / tileW,
			Depth:  o.Height / tileH,
			Height: height,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, box(o))
			}
		case GroupDestructibles:
			for _, o := range og.Objects {
				arena.Destructibles = append(arena.Destructibles, box(o))
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				arena.SpawnPoints = append(arena.SpawnPoints, SpawnPoint{
					X:     o.X / tileW,
					Z:     o.Y / tileH,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sortSpawns(arena.SpawnPoints)
	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string, defaultHeight float64) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path, defaultHeight)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// DefaultArena builds a walled square arena with rows of crates in front of
// a single spawn point.
func DefaultArena(c cfg.ArenaConfig) *Arena {
	const thickness = 1.0

	arena := &Arena{
		Name:  "default",
		Width: c.Width,
		Depth: c.Depth,
		Walls: []Box{
			{Name: "south", X: 0, Z: 0, Width: c.Width, Depth: thickness, Height: c.WallHeight},
			{Name: "north", X: 0, Z: c.Depth - thickness, Width: c.Width, Depth: thickness, Height: c.WallHeight},
			{Name: "west", X: 0, Z: thickness, Width: thickness, Depth: c.Depth - 2*thickness, Height: c.WallHeight},
			{Name: "east", X: c.Width - thickness, Z: thickness, Width: thickness, Depth: c.Depth - 2*thickness, Height: c.WallHeight},
		},
		SpawnPoints: []SpawnPoint{{X: c.SpawnX, Z: c.SpawnZ}},
	}

	// Crate rows start a few metres ahead of the spawn, centred on it
	perSide := int(c.Width / c.CrateSpacing)
	for row := 0; row < c.CrateRows; row++ {
		z := c.SpawnZ + c.CrateSpacing*float64(row+2)
		if z+c.CrateSize > c.Depth-thickness {
			break
		}
		for k := -perSide; k <= perSide; k++ {
			x := c.SpawnX + c.CrateSpacing*float64(k) - c.CrateSize/2
			if x < thickness || x+c.CrateSize > c.Width-thickness {
				continue
			}
			arena.Destructibles = append(arena.Destructibles, Box{
				Name:   fmt.Sprintf("crate-%d-%d", row, k+perSide),
				X:      x,
				Z:      z,
				Width:  c.CrateSize,
				Depth:  c.CrateSize,
				Height: c.CrateHeight,
			})
		}
	}
	return arena
}

// sortSpawns orders spawns by index, then left-to-right for consistent assignment.
func sortSpawns(spawns []SpawnPoint) {
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].Index != spawns[j].Index {
			return spawns[i].Index < spawns[j].Index
		}
		return spawns[i].X < spawns[j].X
	})
}
