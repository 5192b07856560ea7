// Package leveldata provides arena layouts parsed from Tiled TMX files.
// It is pure data: one map tile is one metre, the map's X/Y axes are the
// world's X/Z axes.
package leveldata

// Arena holds everything the scene needs to build an arena.
type Arena struct {
	Name          string
	Width         float64 // X extent in metres
	Depth         float64 // Z extent in metres
	Walls         []Box
	Destructibles []Box
	SpawnPoints   []SpawnPoint
}

// Box is a floor-standing block. X/Z are its minimum corner.
type Box struct {
	Name         string
	X, Z         float64
	Width, Depth float64
	Height       float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Z  float64
	Yaw   float64 // degrees
	Index int
}
