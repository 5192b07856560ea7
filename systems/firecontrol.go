package systems

import (
	"log"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/yohamta/donburi"
)

// updateFireControl handles reload before fire so both in one tick re-arm
// and shoot.
func (pc *PlayerController) updateFireControl(e *donburi.Entry) {
	if GetPlayerAction(e, cfg.ActionReload).JustPressed {
		pc.Reload(e)
	}
	if GetPlayerAction(e, cfg.ActionFire).JustPressed {
		pc.Fire(e)
	}
}

// Reload re-arms the weapon. It reports false when the weapon was already armed.
func (pc *PlayerController) Reload(e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.FireState() == components.FireArmed {
		return false
	}
	player.CanShoot = true
	player.Reloads++
	return true
}

// Fire locks movement, spawns a missile at the muzzle and notifies every
// subscribed missile. A fire command while reloading is ignored and returns nil.
func (pc *PlayerController) Fire(e *donburi.Entry) *donburi.Entry {
	player := components.Player.Get(e)
	if player.FireState() != components.FireArmed {
		return nil
	}
	player.CanShoot = false
	player.ShotsFired++
	shot := player.ShotsFired

	pc.lockMovement(e)

	pos, rot := pc.Muzzle(e)
	missile := pc.sim.CreateEntity(components.PrefabMissile, pos, rot)

	pc.channel.Publish()

	log.Printf("[fire] shot %d at t=%.3f from (%.2f, %.2f, %.2f)",
		shot, pc.sim.Now(), pos.X(), pos.Y(), pos.Z())
	return missile
}

// lockMovement disables movement until every pending lock has expired.
func (pc *PlayerController) lockMovement(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.MovementLocks++
	player.CanMove = false

	pc.sim.After(pc.cfg.ShootMovementDelay, func() {
		if !e.Valid() {
			return
		}
		player := components.Player.Get(e)
		player.MovementLocks--
		if player.MovementLocks <= 0 {
			player.MovementLocks = 0
			player.CanMove = true
		}
	})
}
