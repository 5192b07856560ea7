package components

import "github.com/yohamta/donburi"

// EntityBehavior is the per-entity update contract driven by the scene.
type EntityBehavior interface {
	OnCreate(e *donburi.Entry)
	OnTick(e *donburi.Entry, dt float64)
	OnCollision(e, other *donburi.Entry)
}

type BehaviorData struct {
	Behavior EntityBehavior
}

var Behavior = donburi.NewComponentType[BehaviorData]()
