package components

import (
	"github.com/yohamta/donburi"
)

// FireState is the readiness of the fire-control state machine.
type FireState int

const (
	FireArmed FireState = iota
	FireReloading
)

func (s FireState) String() string {
	if s == FireArmed {
		return "armed"
	}
	return "reloading"
}

type PlayerData struct {
	CanMove       bool    // cleared while a post-fire movement lock is pending
	MovementLocks int     // pending post-fire locks
	CanShoot      bool    // fire-ready
	VerticalSpeed float64 // current vertical velocity component
	Yaw           float64 // accumulated body yaw, degrees
	Pitch         float64 // camera pitch, degrees

	ShotsFired int
	Reloads    int
}

// FireState derives the fire-control state from the fire-ready flag.
func (p *PlayerData) FireState() FireState {
	if p.CanShoot {
		return FireArmed
	}
	return FireReloading
}

var Player = donburi.NewComponentType[PlayerData]()
