package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Up, Forward and Right are the world axes. Forward is +Z, matching the
// camera convention used for aiming.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// MoveSpeed picks the running or walking speed.
func MoveSpeed(walking, running float64, isRunning bool) float64 {
	if isRunning {
		return running
	}
	return walking
}

// HorizontalVelocity returns the planar velocity for the given movement axes.
// moveY drives the forward axis and moveX the right axis of the orientation.
func HorizontalVelocity(orientation mgl64.Quat, moveX, moveY, speed float64) mgl64.Vec3 {
	forward := orientation.Rotate(Forward)
	right := orientation.Rotate(Right)
	return forward.Mul(speed * moveY).Add(right.Mul(speed * moveX))
}

// IntegrateVertical advances a vertical velocity by one tick of gravity when
// airborne. A grounded body keeps its velocity.
func IntegrateVertical(vy, gravity, dt float64, grounded bool) float64 {
	if grounded {
		return vy
	}
	return vy - gravity*dt
}

// Impulse returns the velocity change an impulse applies to a body of mass.
func Impulse(direction mgl64.Vec3, magnitude, mass float64) mgl64.Vec3 {
	if mass <= 0 {
		return mgl64.Vec3{}
	}
	return direction.Mul(magnitude / mass)
}

// ClampAxis limits an input axis to [-1, 1].
func ClampAxis(v float64) float64 {
	return mgl64.Clamp(v, -1, 1)
}
