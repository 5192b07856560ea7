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

// CreateWall creates a static, indestructible box.
func CreateWall(ecs *ecs.ECS, b physics.Bounds) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	collider := physics.NewCollider(spaceOf(ecs), b, cfg.LayerStatic, wall)
	components.Object.SetValue(wall, components.ObjectData{Collider: collider})
	components.Prefab.SetValue(wall, components.PrefabData{Kind: components.PrefabWall})
	components.Transform.SetValue(wall, components.TransformData{
		Position: b.Center(),
		Rotation: mgl64.QuatIdent(),
	})

	return wall
}

// CreateCrate creates a destructible obstacle. Crates sit on the default layer
// so characters are blocked by them and missiles destroy them.
func CreateCrate(ecs *ecs.ECS, b physics.Bounds, name string) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)

	collider := physics.NewCollider(spaceOf(ecs), b, cfg.LayerDefault, crate)
	components.Object.SetValue(crate, components.ObjectData{Collider: collider})
	components.Prefab.SetValue(crate, components.PrefabData{Kind: components.PrefabCrate})
	components.Transform.SetValue(crate, components.TransformData{
		Position: b.Center(),
		Rotation: mgl64.QuatIdent(),
	})
	components.Destructible.SetValue(crate, components.DestructibleData{Name: name})

	return crate
}
