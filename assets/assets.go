package assets

import (
	"embed"

	"github.com/automoto/rocketeer/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory of the embedded arenas.
const LevelsDir = "levels"

// LoadArenas loads every embedded arena.
func LoadArenas(defaultHeight float64) (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(assetFS, LevelsDir, defaultHeight)
}

// LoadArena loads a single embedded arena by stem name.
func LoadArena(name string, defaultHeight float64) (*leveldata.Arena, error) {
	return leveldata.LoadArena(assetFS, LevelsDir+"/"+name+".tmx", defaultHeight)
}
