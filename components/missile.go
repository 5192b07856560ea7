package components

import (
	"github.com/automoto/rocketeer/broadcast"
	"github.com/yohamta/donburi"
)

// MissileState is the lifecycle stage of a missile.
type MissileState int

const (
	MissilePending MissileState = iota
	MissileFlying
	MissileDestroyed
)

func (s MissileState) String() string {
	switch s {
	case MissilePending:
		return "pending"
	case MissileFlying:
		return "flying"
	default:
		return "destroyed"
	}
}

type MissileData struct {
	State        MissileState
	Speed        float64 // launch impulse magnitude
	Enabled      bool
	Notified     bool // the launch notification has been consumed
	Subscription broadcast.Subscription
	ImpactEffect bool
}

var Missile = donburi.NewComponentType[MissileData]()
