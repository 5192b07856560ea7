package archetypes

import (
	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Prefab,
		components.Player,
		components.PlayerInput,
		components.Transform,
		components.Object,
		components.Character,
		components.Camera,
		components.Behavior,
	)
	Missile = newArchetype(
		tags.Missile,
		components.Prefab,
		components.Missile,
		components.Transform,
		components.Object,
		components.Rigidbody,
		components.Trail,
		components.Behavior,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Prefab,
		components.Transform,
		components.Object,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Prefab,
		components.Transform,
		components.Object,
		components.Destructible,
	)
	ImpactEffect = newArchetype(
		tags.ImpactEffect,
		components.Prefab,
		components.Transform,
		components.ImpactEffect,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
