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

// CreatePlayer spawns a player standing with its feet at feet. Static and
// default layer colliders block its movement.
func CreatePlayer(ecs *ecs.ECS, feet mgl64.Vec3, rotation mgl64.Quat, c cfg.PlayerConfig, skin float64, behavior components.EntityBehavior) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	bounds := physics.FootBounds(feet, c.CollisionWidth, c.CollisionHeight)
	collider := physics.NewCollider(spaceOf(ecs), bounds, cfg.LayerCharacter, player)
	components.Object.SetValue(player, components.ObjectData{Collider: collider})

	mover := physics.NewCharacterMover(collider, 0, skin, cfg.LayerStatic.String(), cfg.LayerDefault.String())
	components.Character.SetValue(player, components.CharacterData{Mover: mover})

	components.Prefab.SetValue(player, components.PrefabData{Kind: components.PrefabPlayer})
	components.Transform.SetValue(player, components.TransformData{
		Position: mover.Feet(),
		Rotation: rotation,
	})
	components.Player.SetValue(player, components.PlayerData{
		CanMove:  true,
		CanShoot: true,
	})
	components.Camera.SetValue(player, components.CameraData{
		Offset:        c.CameraOffset.Vec(),
		MuzzleOffset:  c.MuzzleOffset.Vec(),
		LocalRotation: mgl64.QuatIdent(),
	})
	components.Behavior.SetValue(player, components.BehaviorData{Behavior: behavior})

	return player
}
