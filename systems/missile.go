package systems

import (
	"log"

	"github.com/automoto/rocketeer/broadcast"
	"github.com/automoto/rocketeer/components"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MissileController is the behavior of a single missile. It waits on the fire
// channel for its launch, then flies until its first collision.
type MissileController struct {
	sim     Simulation
	channel *broadcast.Channel
	entry   *donburi.Entry
}

func NewMissileController(sim Simulation, channel *broadcast.Channel) *MissileController {
	return &MissileController{
		sim:     sim,
		channel: channel,
	}
}

func (mc *MissileController) OnCreate(e *donburi.Entry) {
	mc.entry = e
	missile := components.Missile.Get(e)
	missile.State = components.MissilePending
	missile.Subscription = mc.channel.Subscribe(mc.onFired)
}

// OnTick is a no-op; flight is integrated by the physics system.
func (mc *MissileController) OnTick(_ *donburi.Entry, _ float64) {}

// SetEnabled toggles whether a pending missile accepts its launch.
func (mc *MissileController) SetEnabled(enabled bool) {
	if mc.entry == nil || !mc.entry.Valid() {
		return
	}
	components.Missile.Get(mc.entry).Enabled = enabled
}

func (mc *MissileController) onFired() {
	e := mc.entry
	if e == nil || !e.Valid() {
		return
	}
	missile := components.Missile.Get(e)
	if missile.State != components.MissilePending || missile.Notified {
		return
	}
	missile.Notified = true
	if !missile.Enabled {
		return
	}

	transform := components.Transform.Get(e)
	body := components.Rigidbody.Get(e)
	body.Velocity = body.Velocity.Add(gamemath.Impulse(transform.Forward(), missile.Speed, body.Mass))
	body.Impulses++

	components.Trail.Get(e).Active = true
	missile.State = components.MissileFlying
}

func (mc *MissileController) OnCollision(e, other *donburi.Entry) {
	missile := components.Missile.Get(e)
	if missile.State == components.MissileDestroyed {
		return
	}

	if mc.sim.IsDestructible(other) {
		if missile.ImpactEffect {
			at := components.Transform.Get(e).Position
			if other.HasComponent(components.Transform) {
				at = components.Transform.Get(other).Position
			}
			mc.sim.CreateEntity(components.PrefabImpactEffect, at, mgl64.QuatIdent())
		}
		log.Printf("[missile] destroyed %s", describe(other))
		mc.sim.DestroyEntity(other)
	}

	mc.expire(e)
}

func (mc *MissileController) OnOutOfBounds(e *donburi.Entry) {
	mc.expire(e)
}

func (mc *MissileController) expire(e *donburi.Entry) {
	missile := components.Missile.Get(e)
	missile.State = components.MissileDestroyed
	mc.channel.Unsubscribe(missile.Subscription)
	mc.sim.DestroyEntity(e)
}

func describe(e *donburi.Entry) string {
	if e.HasComponent(components.Destructible) {
		if name := components.Destructible.Get(e).Name; name != "" {
			return name
		}
	}
	if e.HasComponent(components.Prefab) {
		return components.Prefab.Get(e).Kind.String()
	}
	return "entity"
}
