package systems

import (
	"github.com/automoto/rocketeer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OutOfBoundsHandler is implemented by behaviors that clean up after their
// entity leaves the arena.
type OutOfBoundsHandler interface {
	OnOutOfBounds(e *donburi.Entry)
}

// UpdateBehaviors calls OnTick on every entity behavior. Entities spawned
// during the pass first tick on the next one.
func UpdateBehaviors(ecs *ecs.ECS) {
	dt := GetClock(ecs).DeltaTime

	var entries []*donburi.Entry
	components.Behavior.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		components.Behavior.Get(e).Behavior.OnTick(e, dt)
	}
}

func behaviorOf(e *donburi.Entry) components.EntityBehavior {
	if !e.Valid() || !e.HasComponent(components.Behavior) {
		return nil
	}
	return components.Behavior.Get(e).Behavior
}
