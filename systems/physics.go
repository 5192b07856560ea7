package systems

import (
	"math"

	"github.com/automoto/rocketeer/components"
	"github.com/automoto/rocketeer/physics"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type collisionPair struct {
	a, b *donburi.Entry
}

// PhysicsSystem integrates rigid bodies and dispatches their collisions.
type PhysicsSystem struct {
	Matrix      *physics.LayerMatrix
	Gravity     float64
	MaxSubSteps int
	Bounds      physics.Bounds // bodies whose centre leaves this box are culled
}

// Update moves every rigid body, then dispatches collisions and culls escaped
// bodies. Dispatch is deferred until every body has moved so callbacks may
// destroy entities freely; pairs with a destroyed party are skipped.
func (s *PhysicsSystem) Update(ecs *ecs.ECS) {
	dt := GetClock(ecs).DeltaTime

	var bodies []*donburi.Entry
	components.Rigidbody.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, e)
	})

	var pairs []collisionPair
	var escaped []*donburi.Entry
	for _, e := range bodies {
		if other := s.integrate(e, dt); other != nil {
			pairs = append(pairs, collisionPair{a: e, b: other})
			continue
		}
		if !s.Bounds.Contains(components.Transform.Get(e).Position) {
			escaped = append(escaped, e)
		}
	}

	for _, p := range pairs {
		if !p.a.Valid() || !p.b.Valid() {
			continue
		}
		if b := behaviorOf(p.a); b != nil {
			b.OnCollision(p.a, p.b)
		}
		if !p.a.Valid() || !p.b.Valid() {
			continue
		}
		if b := behaviorOf(p.b); b != nil {
			b.OnCollision(p.b, p.a)
		}
	}

	for _, e := range escaped {
		if !e.Valid() {
			continue
		}
		if h, ok := behaviorOf(e).(OutOfBoundsHandler); ok {
			h.OnOutOfBounds(e)
		}
	}
}

// integrate advances one body by dt and returns the first entity it touched.
func (s *PhysicsSystem) integrate(e *donburi.Entry, dt float64) *donburi.Entry {
	body := components.Rigidbody.Get(e)
	transform := components.Transform.Get(e)
	obj := components.Object.Get(e)

	if body.UseGravity {
		body.Velocity = body.Velocity.Sub(gamemath.Up.Mul(s.Gravity * dt))
	}

	size := obj.Bounds().Size()
	move := body.Velocity.Mul(dt)
	steps := s.subSteps(move, size)
	step := move.Mul(1 / float64(steps))

	for i := 0; i < steps; i++ {
		transform.Position = transform.Position.Add(step)
		obj.SetBounds(physics.BoundsAt(transform.Position, size))

		for _, hit := range obj.Overlapping(s.Matrix) {
			if other, ok := hit.Owner.(*donburi.Entry); ok && other != e {
				return other
			}
		}
	}
	return nil
}

// subSteps keeps each step within half the body's smallest extent.
func (s *PhysicsSystem) subSteps(move, size mgl64.Vec3) int {
	limit := math.Min(size.X(), math.Min(size.Y(), size.Z())) / 2
	if limit <= 0 {
		return 1
	}
	n := int(math.Ceil(move.Len() / limit))
	if n < 1 {
		n = 1
	}
	if s.MaxSubSteps > 0 && n > s.MaxSubSteps {
		n = s.MaxSubSteps
	}
	return n
}
