package systems

import (
	"strings"
	"testing"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
frames:
  - from: 0
    to: 9
    actions: [run]
    move: {x: 0.5, y: 1}
  - from: 5
    actions: [fire]
    move: {x: 1}
`))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	if script.Len() != 10 {
		t.Errorf("expected length 10, got %d", script.Len())
	}

	tests := []struct {
		tick  int
		run   bool
		fire  bool
		moveX float64
		moveY float64
	}{
		{0, true, false, 0.5, 1},
		{5, true, true, 1, 1}, // overlapping axes are summed then clamped
		{9, true, false, 0.5, 1},
		{10, false, false, 0, 0},
	}
	for _, tt := range tests {
		frame := script.Poll(tt.tick)
		if frame.Actions[cfg.ActionRun] != tt.run || frame.Actions[cfg.ActionFire] != tt.fire {
			t.Errorf("tick %d: run=%v fire=%v, want run=%v fire=%v",
				tt.tick, frame.Actions[cfg.ActionRun], frame.Actions[cfg.ActionFire], tt.run, tt.fire)
		}
		if frame.Axes[cfg.AxisMoveX] != tt.moveX || frame.Axes[cfg.AxisMoveY] != tt.moveY {
			t.Errorf("tick %d: move=(%v, %v), want (%v, %v)",
				tt.tick, frame.Axes[cfg.AxisMoveX], frame.Axes[cfg.AxisMoveY], tt.moveX, tt.moveY)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown action", "frames:\n  - from: 0\n    actions: [crouch]\n", "unknown action"},
		{"reversed range", "frames:\n  - from: 5\n    to: 2\n", "invalid tick range"},
		{"bad yaml", "frames: {", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestInputSystemEdgeDetection(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	player := e.World.Entry(e.World.Create(components.PlayerInput))

	src := &StaticInput{}
	sys := &InputSystem{Source: src}

	src.Hold(cfg.ActionFire, true)
	src.SetAxis(cfg.AxisLookY, 3)
	sys.Update(e)

	fire := GetPlayerAction(player, cfg.ActionFire)
	if !fire.Pressed || !fire.JustPressed {
		t.Errorf("expected fire just pressed, got %+v", fire)
	}
	if got := components.PlayerInput.Get(player).Axes[cfg.AxisLookY]; got != 1 {
		t.Errorf("expected look axis clamped to 1, got %v", got)
	}

	sys.Update(e)
	fire = GetPlayerAction(player, cfg.ActionFire)
	if !fire.Pressed || fire.JustPressed {
		t.Errorf("held fire should not be just pressed, got %+v", fire)
	}

	src.Hold(cfg.ActionFire, false)
	sys.Update(e)
	fire = GetPlayerAction(player, cfg.ActionFire)
	if fire.Pressed || !fire.JustReleased {
		t.Errorf("expected fire just released, got %+v", fire)
	}
}
