package systems

import (
	"github.com/automoto/rocketeer/components"
	"github.com/yohamta/donburi/ecs"
)

// GetClock returns the scene clock. Every scene creates one before adding systems.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World))
}

// AdvanceClock moves the clock to the start of the next tick. Must run last.
func AdvanceClock(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	clock.Tick++
	clock.Now += clock.DeltaTime
}
