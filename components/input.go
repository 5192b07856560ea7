package components

import (
	cfg "github.com/automoto/rocketeer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores the current and previous tick's input for a player.
// JustPressed/JustReleased are computed on demand by comparing ticks.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
	Axes          [cfg.AxisCount]float64
}

// Action returns the temporal state of id.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
