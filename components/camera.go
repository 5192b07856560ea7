package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person camera attached to a player. Its rotation is
// local to the player's body and only ever pitches.
type CameraData struct {
	Offset        mgl64.Vec3 // relative to the player's feet
	MuzzleOffset  mgl64.Vec3 // relative to the camera
	LocalRotation mgl64.Quat
}

var Camera = donburi.NewComponentType[CameraData]()
