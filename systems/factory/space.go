package factory

import (
	"github.com/automoto/rocketeer/archetypes"
	"github.com/automoto/rocketeer/components"
	"github.com/automoto/rocketeer/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase space for an arena footprint in metres.
func CreateSpace(ecs *ecs.ECS, width, depth float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, physics.NewSpace(width, depth, cellSize))
	return space
}

func spaceOf(ecs *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(ecs.World))
}

// CreateClock creates the scene clock.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}
