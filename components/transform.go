package components

import (
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position and orientation.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward returns the entity's forward axis in world space.
func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(gamemath.Forward)
}

var Transform = donburi.NewComponentType[TransformData]()
