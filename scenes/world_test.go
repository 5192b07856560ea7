package scenes

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/shared/leveldata"
	"github.com/automoto/rocketeer/systems"
	"github.com/automoto/rocketeer/tags"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

func openArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name:        "open",
		Width:       32,
		Depth:       32,
		SpawnPoints: []leveldata.SpawnPoint{{X: 16, Z: 4}},
	}
}

func newTestScene(t *testing.T, arena *leveldata.Arena, tune func(*cfg.Tuning)) (*Scene, *systems.StaticInput) {
	t.Helper()
	tuning := cfg.Default()
	if tune != nil {
		tune(&tuning)
	}
	input := &systems.StaticInput{}
	s, err := NewScene(Options{Tuning: tuning, Arena: arena, Input: input})
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	return s, input
}

// tap holds an action for a single tick.
func tap(s *Scene, input *systems.StaticInput, id cfg.ActionID) {
	input.Hold(id, true)
	s.Step(dt)
	input.Hold(id, false)
}

func playerData(s *Scene) *components.PlayerData {
	return components.Player.Get(s.Player())
}

func countOf[T any](s *Scene, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(s.World(), func(*donburi.Entry) { n++ })
	return n
}

func TestNewSceneFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		opts   func(*Options)
		target error
	}{
		{"no input", func(o *Options) { o.Input = nil }, ErrNoInput},
		{"no arena", func(o *Options) { o.Arena = nil }, ErrNoArena},
		{"no spawn", func(o *Options) { o.Arena.SpawnPoints = nil }, ErrNoPlayerSpawn},
		{"no camera", func(o *Options) { o.Tuning.Player.CameraOffset = cfg.Vec3{} }, ErrNoCamera},
		{"no missile", func(o *Options) { o.Tuning.Missile.Size = 0 }, ErrNoMissile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Tuning: cfg.Default(), Arena: openArena(), Input: &systems.StaticInput{}}
			tt.opts(&opts)
			_, err := NewScene(opts)
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestMovementLockTiming(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	// Fire on tick 0 with 0.1s delay at 60Hz: locked through tick 5
	tap(s, input, cfg.ActionFire)
	for tick := 1; tick <= 5; tick++ {
		if playerData(s).CanMove {
			t.Fatalf("movement re-enabled early, after tick %d", tick-1)
		}
		s.Step(dt)
	}
	if playerData(s).CanMove {
		t.Fatal("movement should still be disabled after tick 5")
	}

	s.Step(dt) // tick 6
	if !playerData(s).CanMove {
		t.Error("movement should be enabled from tick 6")
	}
}

func TestLockedPlayerDoesNotWalk(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)
	input.SetAxis(cfg.AxisMoveY, 1)

	tap(s, input, cfg.ActionFire)
	lockedAt := components.Transform.Get(s.Player()).Position
	for i := 0; i < 5; i++ {
		s.Step(dt)
	}
	if pos := components.Transform.Get(s.Player()).Position; pos != lockedAt {
		t.Errorf("player moved while locked: %v -> %v", lockedAt, pos)
	}

	s.Step(dt)
	if pos := components.Transform.Get(s.Player()).Position; pos.Z() <= lockedAt.Z() {
		t.Errorf("player should walk again once unlocked, z stayed at %v", pos.Z())
	}
}

func TestOverlappingLocksStack(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionFire)   // tick 0, expires at 0.1
	tap(s, input, cfg.ActionReload) // tick 1
	tap(s, input, cfg.ActionFire)   // tick 2, expires at 2/60 + 0.1

	for s.Tick() <= 7 {
		s.Step(dt)
		if playerData(s).CanMove {
			t.Fatalf("movement enabled on tick %d before the second lock expired", s.Tick()-1)
		}
	}

	s.Step(dt) // tick 8
	if !playerData(s).CanMove {
		t.Error("movement should be enabled once every lock expired")
	}
}

func TestRapidFireSpawnsOneMissile(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	for i := 0; i < 10; i++ {
		tap(s, input, cfg.ActionFire)
		s.Step(dt)
	}

	if shots := playerData(s).ShotsFired; shots != 1 {
		t.Errorf("expected 1 shot without reloading, got %d", shots)
	}
	if n := s.Channel().Published(); n != 1 {
		t.Errorf("expected 1 fire notification, got %d", n)
	}
	if playerData(s).FireState() != components.FireReloading {
		t.Error("weapon should be reloading")
	}
}

func TestReloadWhileArmedIsNoop(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionReload)
	if p := playerData(s); p.Reloads != 0 || !p.CanShoot {
		t.Errorf("reload while armed changed state: reloads=%d canShoot=%v", p.Reloads, p.CanShoot)
	}

	tap(s, input, cfg.ActionFire)
	tap(s, input, cfg.ActionReload)
	if p := playerData(s); p.Reloads != 1 || p.FireState() != components.FireArmed {
		t.Errorf("expected one reload back to armed, got reloads=%d state=%v", p.Reloads, p.FireState())
	}
}

func TestEachMissileLaunchesOnce(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	first := s.PlayerController().Fire(s.Player())
	if first == nil {
		t.Fatal("expected a missile")
	}
	s.Step(dt)
	tap(s, input, cfg.ActionReload)
	second := s.PlayerController().Fire(s.Player())

	if components.Rigidbody.Get(first).Impulses != 1 {
		t.Errorf("first missile impulses = %d, want 1", components.Rigidbody.Get(first).Impulses)
	}
	if components.Rigidbody.Get(second).Impulses != 1 {
		t.Errorf("second missile impulses = %d, want 1", components.Rigidbody.Get(second).Impulses)
	}
	if s.Channel().Len() != 2 {
		t.Errorf("expected both missiles subscribed, got %d", s.Channel().Len())
	}
}

func TestPitchSettlesAtLimit(t *testing.T) {
	tests := []struct {
		name  string
		lookY float64
		want  float64
	}{
		{"looking down", -1, cfg.Player.LookPitchLimit},
		{"looking up", 1, -cfg.Player.LookPitchLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, input := newTestScene(t, openArena(), nil)
			input.SetAxis(cfg.AxisLookY, tt.lookY)
			for i := 0; i < 200; i++ {
				s.Step(dt)
				if p := playerData(s).Pitch; math.Abs(p) > cfg.Player.LookPitchLimit {
					t.Fatalf("pitch %v exceeded the limit", p)
				}
			}
			if p := playerData(s).Pitch; p != tt.want {
				t.Errorf("expected pitch %v, got %v", tt.want, p)
			}
		})
	}
}

func TestAimFrozenWhileLocked(t *testing.T) {
	tests := []struct {
		name           string
		lookDuringLock bool
		wantTurn       bool
	}{
		{"default", false, false},
		{"look during lock", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, input := newTestScene(t, openArena(), func(c *cfg.Tuning) {
				c.Player.LookDuringLock = tt.lookDuringLock
			})
			tap(s, input, cfg.ActionFire)

			yaw := playerData(s).Yaw
			input.SetAxis(cfg.AxisLookX, 1)
			s.Step(dt)

			turned := playerData(s).Yaw != yaw
			if turned != tt.wantTurn {
				t.Errorf("turned=%v, want %v", turned, tt.wantTurn)
			}
		})
	}
}

func TestWalkAndRunSpeeds(t *testing.T) {
	tests := []struct {
		name  string
		run   bool
		speed float64
	}{
		{"walk", false, cfg.Player.WalkingSpeed},
		{"run", true, cfg.Player.RunningSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, input := newTestScene(t, openArena(), nil)
			start := components.Transform.Get(s.Player()).Position
			input.SetAxis(cfg.AxisMoveY, 1)
			input.Hold(cfg.ActionRun, tt.run)

			for i := 0; i < 60; i++ {
				s.Step(dt)
			}
			moved := components.Transform.Get(s.Player()).Position.Sub(start)
			if math.Abs(moved.Z()-tt.speed) > 1e-6 || math.Abs(moved.X()) > 1e-9 {
				t.Errorf("expected to move %v along z in one second, moved %v", tt.speed, moved)
			}
		})
	}
}

func TestJumpAndLand(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionJump)
	peak := 0.0
	for i := 0; i < 180; i++ {
		s.Step(dt)
		peak = math.Max(peak, components.Transform.Get(s.Player()).Position.Y())
	}

	if peak <= 0 {
		t.Fatal("player never left the ground")
	}
	mover := components.Character.Get(s.Player()).Mover
	if !mover.IsGrounded() || components.Transform.Get(s.Player()).Position.Y() != 0 {
		t.Errorf("player should have landed, y=%v", components.Transform.Get(s.Player()).Position.Y())
	}
	if v := playerData(s).VerticalSpeed; v != 0 {
		t.Errorf("vertical speed should reset on landing, got %v", v)
	}
}

func TestJumpIgnoredWhileLocked(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionFire)
	tap(s, input, cfg.ActionJump)

	if playerData(s).CanMove {
		t.Fatal("movement should still be locked")
	}
	if y := components.Transform.Get(s.Player()).Position.Y(); y != 0 {
		t.Errorf("locked jump must not leave the ground, y=%v", y)
	}
	if v := playerData(s).VerticalSpeed; v != 0 {
		t.Errorf("locked jump must not set vertical speed, got %v", v)
	}
}

func TestGravityContinuesWhileLocked(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionJump)
	for i := 0; i < 4; i++ {
		s.Step(dt)
	}
	tap(s, input, cfg.ActionFire)

	before := playerData(s).VerticalSpeed
	height := components.Transform.Get(s.Player()).Position.Y()
	if height <= 0 {
		t.Fatal("player should be airborne")
	}
	for i := 0; i < 3; i++ {
		s.Step(dt)
		if playerData(s).CanMove {
			t.Fatalf("movement re-enabled after %d locked ticks", i+1)
		}
		v := playerData(s).VerticalSpeed
		if v >= before {
			t.Errorf("vertical speed should keep falling while locked, %v -> %v", before, v)
		}
		before = v
	}
	if y := components.Transform.Get(s.Player()).Position.Y(); y == height {
		t.Error("airborne player should keep moving vertically while locked")
	}
}

func TestMissileDestroysObstacle(t *testing.T) {
	s, input := newTestScene(t, leveldata.DefaultArena(cfg.Arena), nil)
	crates := countOf(s, components.Destructible)

	tap(s, input, cfg.ActionFire)
	for i := 0; i < 120 && countOf(s, tags.Missile) > 0; i++ {
		s.Step(dt)
	}

	if countOf(s, tags.Missile) != 0 {
		t.Fatal("missile never hit anything")
	}
	if got := countOf(s, components.Destructible); got != crates-1 {
		t.Errorf("expected %d destructibles, got %d", crates-1, got)
	}
	if countOf(s, tags.ImpactEffect) != 1 {
		t.Errorf("expected an impact effect, got %d", countOf(s, tags.ImpactEffect))
	}
	if s.Channel().Len() != 0 {
		t.Errorf("missile should have unsubscribed, %d subscribers left", s.Channel().Len())
	}

	for i := 0; i < 60; i++ {
		s.Step(dt)
	}
	if countOf(s, tags.ImpactEffect) != 0 {
		t.Error("impact effect should expire")
	}
}

func TestMissileHitsWallAndLeavesIt(t *testing.T) {
	arena := openArena()
	arena.Walls = []leveldata.Box{{Name: "wall", X: 0, Z: 10, Width: 32, Depth: 1, Height: 4}}
	s, input := newTestScene(t, arena, nil)

	tap(s, input, cfg.ActionFire)
	for i := 0; i < 120 && countOf(s, tags.Missile) > 0; i++ {
		s.Step(dt)
	}

	if countOf(s, tags.Missile) != 0 {
		t.Fatal("missile never hit the wall")
	}
	if countOf(s, tags.Wall) != 1 {
		t.Error("walls are not destructible")
	}
	if countOf(s, tags.ImpactEffect) != 0 {
		t.Error("wall hits spawn no impact effect")
	}
	if s.Channel().Len() != 0 {
		t.Errorf("expected no subscribers, got %d", s.Channel().Len())
	}
}

func TestMissileLeavingArenaIsCulled(t *testing.T) {
	s, input := newTestScene(t, openArena(), nil)

	tap(s, input, cfg.ActionFire)
	for i := 0; i < 300 && countOf(s, tags.Missile) > 0; i++ {
		s.Step(dt)
	}
	if countOf(s, tags.Missile) != 0 {
		t.Error("missile outside the arena should be culled")
	}
	if s.Channel().Len() != 0 {
		t.Errorf("expected no subscribers, got %d", s.Channel().Len())
	}
}

func TestDestroyInvalidEntityPanics(t *testing.T) {
	s, _ := newTestScene(t, leveldata.DefaultArena(cfg.Arena), nil)

	var crate *donburi.Entry
	components.Destructible.Each(s.World(), func(e *donburi.Entry) {
		if crate == nil {
			crate = e
		}
	})
	s.DestroyEntity(crate)

	defer func() {
		if recover() == nil {
			t.Error("destroying a destroyed entity should panic")
		}
	}()
	s.DestroyEntity(crate)
}

func TestIsDestructible(t *testing.T) {
	s, _ := newTestScene(t, leveldata.DefaultArena(cfg.Arena), nil)

	components.Destructible.Each(s.World(), func(e *donburi.Entry) {
		if !s.IsDestructible(e) {
			t.Error("crate should be destructible")
		}
	})
	tags.Wall.Each(s.World(), func(e *donburi.Entry) {
		if s.IsDestructible(e) {
			t.Error("wall should not be destructible")
		}
	})
	if s.IsDestructible(s.Player()) {
		t.Error("player should not be destructible")
	}
}

func TestBotClearsCrates(t *testing.T) {
	bot := systems.NewBotInput(cfg.BotDifficultyNormal, cfg.Player.LookSensitivity)
	s, err := NewScene(Options{Tuning: cfg.Default(), Arena: leveldata.DefaultArena(cfg.Arena), Input: bot})
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	bot.Bind(s.World(), s.Player())
	crates := countOf(s, components.Destructible)

	for i := 0; i < 600; i++ {
		s.Step(dt)
	}

	if destroyed := crates - countOf(s, components.Destructible); destroyed < 2 {
		t.Errorf("expected the bot to destroy at least 2 crates, got %d", destroyed)
	}
	if p := playerData(s); p.ShotsFired < 2 || p.Reloads < 1 {
		t.Errorf("expected repeated fire and reload, got %d shots and %d reloads", p.ShotsFired, p.Reloads)
	}
}
