package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AccumulatePitch applies a vertical look delta and clamps the result to
// [-limit, limit] degrees. Looking up (positive lookY) lowers the pitch.
func AccumulatePitch(pitch, lookY, sensitivity, limit float64) float64 {
	pitch += -lookY * sensitivity
	return mgl64.Clamp(pitch, -limit, limit)
}

// YawDelta returns the yaw increment in degrees for a horizontal look delta.
func YawDelta(lookX, sensitivity float64) float64 {
	return lookX * sensitivity
}

// PitchRotation is the camera's local rotation for a pitch in degrees.
func PitchRotation(pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(pitch), Right)
}

// YawRotation is a rotation about the up axis in degrees.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
}

// Turn applies an incremental yaw to an orientation.
func Turn(orientation mgl64.Quat, yawDelta float64) mgl64.Quat {
	return orientation.Mul(YawRotation(yawDelta)).Normalize()
}

// MuzzleTransform composes the body, camera and muzzle offsets into the world
// position and orientation of the weapon muzzle.
func MuzzleTransform(bodyPos mgl64.Vec3, body mgl64.Quat, cameraOffset mgl64.Vec3, pitch float64, muzzleOffset mgl64.Vec3) (mgl64.Vec3, mgl64.Quat) {
	camera := PitchRotation(pitch)
	local := cameraOffset.Add(camera.Rotate(muzzleOffset))
	pos := bodyPos.Add(body.Rotate(local))
	return pos, body.Mul(camera).Normalize()
}

// WrapDegrees maps an angle to (-180, 180].
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
