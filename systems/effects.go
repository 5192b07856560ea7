package systems

import (
	"github.com/automoto/rocketeer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectsSystem advances missile trails and impact effects, destroying
// impacts whose tween has finished.
type EffectsSystem struct {
	Sim Simulation
}

func (s *EffectsSystem) Update(ecs *ecs.ECS) {
	dt := GetClock(ecs).DeltaTime

	components.Trail.Each(ecs.World, func(e *donburi.Entry) {
		components.Trail.Get(e).Emit(dt)
	})

	var toDestroy []*donburi.Entry
	components.ImpactEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.ImpactEffect.Get(e)
		if fx.Tween == nil {
			toDestroy = append(toDestroy, e)
			return
		}
		radius, finished := fx.Tween.Update(float32(dt))
		fx.Radius = float64(radius)
		if finished {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		s.Sim.DestroyEntity(e)
	}
}
