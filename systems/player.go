package systems

import (
	"github.com/automoto/rocketeer/broadcast"
	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerController drives a first-person character: locomotion, aim and the
// fire-control state machine.
type PlayerController struct {
	sim     Simulation
	channel *broadcast.Channel
	cfg     cfg.PlayerConfig
}

func NewPlayerController(sim Simulation, channel *broadcast.Channel, config cfg.PlayerConfig) *PlayerController {
	return &PlayerController{
		sim:     sim,
		channel: channel,
		cfg:     config,
	}
}

func (pc *PlayerController) OnCreate(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.CanMove = true
	player.CanShoot = true

	components.Camera.Get(e).LocalRotation = gamemath.PitchRotation(player.Pitch)
}

func (pc *PlayerController) OnTick(e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)

	pc.updateLocomotion(e, dt)
	if player.CanMove || pc.cfg.LookDuringLock {
		pc.updateAim(e)
	}
	pc.updateFireControl(e)
}

// OnCollision is a no-op; the mover already resolves character contacts.
func (pc *PlayerController) OnCollision(_, _ *donburi.Entry) {}

func (pc *PlayerController) updateLocomotion(e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	input := components.PlayerInput.Get(e)
	transform := components.Transform.Get(e)
	mover := components.Character.Get(e).Mover

	var velocity mgl64.Vec3
	if player.CanMove {
		speed := gamemath.MoveSpeed(pc.cfg.WalkingSpeed, pc.cfg.RunningSpeed, input.Action(cfg.ActionRun).Pressed)
		velocity = gamemath.HorizontalVelocity(transform.Rotation, input.Axes[cfg.AxisMoveX], input.Axes[cfg.AxisMoveY], speed)
	}

	grounded := mover.IsGrounded()
	if GetPlayerAction(e, cfg.ActionJump).JustPressed && player.CanMove && grounded {
		player.VerticalSpeed = pc.cfg.JumpSpeed
	}
	player.VerticalSpeed = gamemath.IntegrateVertical(player.VerticalSpeed, pc.cfg.Gravity, dt, grounded)
	velocity[1] = player.VerticalSpeed

	mover.Move(velocity.Mul(dt))
	transform.Position = mover.Feet()

	// Landed
	if mover.IsGrounded() && player.VerticalSpeed < 0 {
		player.VerticalSpeed = 0
	}
}

func (pc *PlayerController) updateAim(e *donburi.Entry) {
	player := components.Player.Get(e)
	input := components.PlayerInput.Get(e)
	transform := components.Transform.Get(e)
	camera := components.Camera.Get(e)

	player.Pitch = gamemath.AccumulatePitch(player.Pitch, input.Axes[cfg.AxisLookY], pc.cfg.LookSensitivity, pc.cfg.LookPitchLimit)
	camera.LocalRotation = gamemath.PitchRotation(player.Pitch)

	yaw := gamemath.YawDelta(input.Axes[cfg.AxisLookX], pc.cfg.LookSensitivity)
	player.Yaw += yaw
	transform.Rotation = gamemath.Turn(transform.Rotation, yaw)
}

// Muzzle returns the world position and orientation of the weapon muzzle.
func (pc *PlayerController) Muzzle(e *donburi.Entry) (mgl64.Vec3, mgl64.Quat) {
	player := components.Player.Get(e)
	transform := components.Transform.Get(e)
	camera := components.Camera.Get(e)
	return gamemath.MuzzleTransform(transform.Position, transform.Rotation, camera.Offset, player.Pitch, camera.MuzzleOffset)
}
