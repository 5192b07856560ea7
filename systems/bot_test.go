package systems

import (
	"math"
	"testing"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/physics"
	"github.com/automoto/rocketeer/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func TestYawTowards(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
		want   float64
	}{
		{"ahead", mgl64.Vec3{0, 0, 5}, 0},
		{"right", mgl64.Vec3{5, 0, 0}, 90},
		{"left", mgl64.Vec3{-5, 0, 0}, -90},
		{"behind", mgl64.Vec3{0, 0, -5}, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yawTowards(mgl64.Vec3{}, tt.target); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("yawTowards() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBotTurnsTowardTarget(t *testing.T) {
	sim := newFakeSim()
	player := sim.ecs.World.Entry(sim.ecs.World.Create(components.Player, components.Transform))
	components.Player.Get(player).CanShoot = true
	components.Player.Get(player).CanMove = true
	factory.CreateCrate(sim.ecs, physics.FootBounds(mgl64.Vec3{10, 0, 0}, 1, 2), "crate")

	bot := NewBotInput(cfg.BotDifficultyNormal, 2)
	bot.Bind(sim.ecs.World, player)

	frame := bot.Poll(0)
	if frame.Axes[cfg.AxisLookX] != 1 {
		t.Errorf("expected a full right turn, got %v", frame.Axes[cfg.AxisLookX])
	}
	if frame.Actions[cfg.ActionFire] {
		t.Error("must not fire before lining up")
	}

	components.Player.Get(player).Yaw = 90
	frame = bot.Poll(1)
	if !frame.Actions[cfg.ActionFire] {
		t.Error("expected fire once lined up")
	}
	if frame = bot.Poll(2); frame.Actions[cfg.ActionFire] {
		t.Error("fire must be released after one tick")
	}
}

func TestBotIdlesWithoutTargets(t *testing.T) {
	sim := newFakeSim()
	player := sim.ecs.World.Entry(sim.ecs.World.Create(components.Player, components.Transform))

	bot := NewBotInput(cfg.BotDifficultyHard, 2)
	if frame := bot.Poll(0); frame != (InputFrame{}) {
		t.Error("unbound bot should idle")
	}
	bot.Bind(sim.ecs.World, player)
	if frame := bot.Poll(0); frame != (InputFrame{}) {
		t.Error("bot without targets should idle")
	}
}
