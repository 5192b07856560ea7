package factory

import (
	"github.com/automoto/rocketeer/archetypes"
	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMissile spawns a pending missile centred on position and facing
// along rotation. It stays at rest until launched.
func CreateMissile(ecs *ecs.ECS, position mgl64.Vec3, rotation mgl64.Quat, c cfg.MissileConfig, behavior components.EntityBehavior) *donburi.Entry {
	m := archetypes.Missile.Spawn(ecs)

	size := mgl64.Vec3{c.Size, c.Size, c.Size}
	collider := physics.NewCollider(spaceOf(ecs), physics.BoundsAt(position, size), cfg.LayerProjectile, m)
	components.Object.SetValue(m, components.ObjectData{Collider: collider})

	components.Prefab.SetValue(m, components.PrefabData{Kind: components.PrefabMissile})
	components.Transform.SetValue(m, components.TransformData{
		Position: position,
		Rotation: rotation,
	})
	components.Rigidbody.SetValue(m, components.RigidbodyData{
		Mass:       c.Mass,
		UseGravity: c.UseGravity,
	})
	components.Missile.SetValue(m, components.MissileData{
		State:        components.MissilePending,
		Speed:        c.Speed,
		Enabled:      true,
		ImpactEffect: c.ImpactEffect,
	})
	components.Trail.SetValue(m, components.TrailData{Rate: c.TrailRate})
	components.Behavior.SetValue(m, components.BehaviorData{Behavior: behavior})

	return m
}
