package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RigidbodyData is a dynamic body integrated by the physics system.
type RigidbodyData struct {
	Velocity   mgl64.Vec3
	Mass       float64
	UseGravity bool
	Impulses   int // number of impulses applied over the body's lifetime
}

var Rigidbody = donburi.NewComponentType[RigidbodyData]()
