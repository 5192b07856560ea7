package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRun
	ActionJump
	ActionFire
	ActionReload
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a continuous input axis
type AxisID int

const (
	AxisMoveX AxisID = iota // strafe, "Horizontal"
	AxisMoveY               // forward/back, "Vertical"
	AxisLookX               // yaw, "Mouse X"
	AxisLookY               // pitch, "Mouse Y"
	AxisCount
)

var actionNames = map[string]ActionID{
	"run":    ActionRun,
	"jump":   ActionJump,
	"fire":   ActionFire,
	"reload": ActionReload,
}

// ActionByName resolves a script action name.
func ActionByName(name string) (ActionID, bool) {
	id, ok := actionNames[name]
	return id, ok
}
