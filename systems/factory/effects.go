package factory

import (
	"github.com/automoto/rocketeer/archetypes"
	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateImpactEffect spawns an explosion whose radius eases out from zero to
// the configured radius over its lifetime.
func CreateImpactEffect(ecs *ecs.ECS, position mgl64.Vec3, c cfg.ImpactConfig) *donburi.Entry {
	fx := archetypes.ImpactEffect.Spawn(ecs)

	components.Prefab.SetValue(fx, components.PrefabData{Kind: components.PrefabImpactEffect})
	components.Transform.SetValue(fx, components.TransformData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	})
	components.ImpactEffect.SetValue(fx, components.ImpactEffectData{
		Tween: gween.New(0, float32(c.Radius), float32(c.Duration), ease.OutQuad),
	})

	return fx
}
