package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Now is the start time of the current tick.
type ClockData struct {
	Tick      int
	Now       float64
	DeltaTime float64
}

var Clock = donburi.NewComponentType[ClockData]()
