package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/rocketeer/broadcast"
	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/physics"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/automoto/rocketeer/shared/leveldata"
	"github.com/automoto/rocketeer/systems"
	"github.com/automoto/rocketeer/systems/factory"
	"github.com/automoto/rocketeer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoInput       = errors.New("no input source configured")
	ErrNoArena       = errors.New("no arena configured")
	ErrNoPlayerSpawn = errors.New("no player spawn points defined in arena")
	ErrNoCamera      = errors.New("player camera must sit inside the player's collision height")
	ErrNoMissile     = errors.New("missile prefab needs a positive size and mass")
)

// Options are the collaborators a scene is built from.
type Options struct {
	Tuning cfg.Tuning
	Arena  *leveldata.Arena
	Input  systems.InputSource
}

// Scene owns a single arena simulation: the world and its system order, the
// fire channel, the collision space and the continuation scheduler. It must
// only be driven from one goroutine.
type Scene struct {
	ecs       *ecs.ECS
	tuning    cfg.Tuning
	arena     *leveldata.Arena
	channel   *broadcast.Channel
	matrix    *physics.LayerMatrix
	scheduler *systems.Scheduler
	player    *donburi.Entry
	serial    int
}

// NewScene validates opts and builds the arena with its player.
func NewScene(opts Options) (*Scene, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	s := &Scene{
		tuning:    opts.Tuning,
		arena:     opts.Arena,
		matrix:    physics.NewLayerMatrix(),
		scheduler: &systems.Scheduler{},
	}
	physics.ApplyProjectilePolicy(s.matrix)

	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)
	s.channel = broadcast.NewChannel(world)

	factory.CreateClock(s.ecs)
	factory.CreateSpace(s.ecs, s.arena.Width, s.arena.Depth, s.tuning.Physics.CellSize)

	s.configure(opts.Input)

	for _, w := range s.arena.Walls {
		factory.CreateWall(s.ecs, boxBounds(w))
	}
	for _, d := range s.arena.Destructibles {
		factory.CreateCrate(s.ecs, boxBounds(d), d.Name)
	}

	spawn := s.arena.SpawnPoints[0]
	s.player = s.CreateEntity(components.PrefabPlayer, mgl64.Vec3{spawn.X, 0, spawn.Z}, gamemath.YawRotation(spawn.Yaw))
	components.Player.Get(s.player).Yaw = spawn.Yaw

	log.Printf("[scene] arena %q: %d walls, %d destructibles, spawn (%.1f, %.1f)",
		s.arena.Name, len(s.arena.Walls), len(s.arena.Destructibles), spawn.X, spawn.Z)
	return s, nil
}

func checkOptions(opts Options) error {
	if opts.Input == nil {
		return ErrNoInput
	}
	if opts.Arena == nil {
		return ErrNoArena
	}
	if len(opts.Arena.SpawnPoints) == 0 {
		return fmt.Errorf("arena %q: %w", opts.Arena.Name, ErrNoPlayerSpawn)
	}

	p := opts.Tuning.Player
	if p.CameraOffset.Y <= 0 || p.CameraOffset.Y > p.CollisionHeight {
		return fmt.Errorf("camera offset %.2f: %w", p.CameraOffset.Y, ErrNoCamera)
	}
	m := opts.Tuning.Missile
	if m.Size <= 0 || m.Mass <= 0 {
		return fmt.Errorf("missile size %.2f mass %.2f: %w", m.Size, m.Mass, ErrNoMissile)
	}

	if err := opts.Tuning.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}

// configure registers the systems in tick order.
func (s *Scene) configure(input systems.InputSource) {
	bounds := physics.Bounds{
		Max: mgl64.Vec3{s.arena.Width, s.tuning.Arena.Height, s.arena.Depth},
	}.Expand(s.tuning.Physics.BoundsMargin)

	// Continuations resume first so a lock expiring this tick frees movement
	s.ecs.AddSystem(s.scheduler.Update)
	s.ecs.AddSystem((&systems.InputSystem{Source: input}).Update)
	s.ecs.AddSystem(systems.UpdateBehaviors)
	s.ecs.AddSystem((&systems.PhysicsSystem{
		Matrix:      s.matrix,
		Gravity:     s.tuning.Physics.Gravity,
		MaxSubSteps: s.tuning.Physics.MaxSubSteps,
		Bounds:      bounds,
	}).Update)
	s.ecs.AddSystem((&systems.EffectsSystem{Sim: s}).Update)
	s.ecs.AddSystem(systems.AdvanceClock)
}

func boxBounds(b leveldata.Box) physics.Bounds {
	return physics.Bounds{
		Min: mgl64.Vec3{b.X, 0, b.Z},
		Max: mgl64.Vec3{b.X + b.Width, b.Height, b.Z + b.Depth},
	}
}

// Step advances the simulation by one tick of dt seconds.
func (s *Scene) Step(dt float64) {
	systems.GetClock(s.ecs).DeltaTime = dt
	s.ecs.Update()
}

// CreateEntity spawns a prefab. Players and static boxes are placed by their
// base centre; missiles and effects by their centre.
func (s *Scene) CreateEntity(kind components.PrefabKind, position mgl64.Vec3, orientation mgl64.Quat) *donburi.Entry {
	var e *donburi.Entry
	switch kind {
	case components.PrefabPlayer:
		e = factory.CreatePlayer(s.ecs, position, orientation, s.tuning.Player, s.tuning.Physics.GroundSkin,
			systems.NewPlayerController(s, s.channel, s.tuning.Player))
	case components.PrefabMissile:
		e = factory.CreateMissile(s.ecs, position, orientation, s.tuning.Missile,
			systems.NewMissileController(s, s.channel))
	case components.PrefabImpactEffect:
		e = factory.CreateImpactEffect(s.ecs, position, s.tuning.Impact)
	case components.PrefabWall:
		e = factory.CreateWall(s.ecs, physics.FootBounds(position, 1, s.tuning.Arena.WallHeight))
	case components.PrefabCrate:
		e = factory.CreateCrate(s.ecs, physics.FootBounds(position, s.tuning.Arena.CrateSize, s.tuning.Arena.CrateHeight), "")
	default:
		panic(fmt.Sprintf("scenes: unknown prefab %v", kind))
	}

	s.serial++
	components.Prefab.Get(e).Serial = s.serial

	if b := behaviorOf(e); b != nil {
		b.OnCreate(e)
	}
	return e
}

// DestroyEntity removes e and its collider. Destroying an entry that is not
// alive panics.
func (s *Scene) DestroyEntity(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		panic("scenes: destroy of an invalid entity")
	}

	if e.HasComponent(components.Missile) {
		s.channel.Unsubscribe(components.Missile.Get(e).Subscription)
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Collider != nil {
			obj.Remove()
		}
	}
	s.ecs.World.Remove(e.Entity())
}

// IsDestructible reports whether a missile hit removes e.
func (s *Scene) IsDestructible(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Destructible)
}

// After resumes fn once delay seconds of simulated time have passed.
func (s *Scene) After(delay float64, fn func()) {
	s.scheduler.At(s.Now()+delay, fn)
}

// Now is the simulated time at the start of the current tick.
func (s *Scene) Now() float64 {
	return systems.GetClock(s.ecs).Now
}

// Tick is the index of the next tick to run.
func (s *Scene) Tick() int {
	return systems.GetClock(s.ecs).Tick
}

func (s *Scene) Player() *donburi.Entry { return s.player }

// PlayerController returns the behavior driving the player.
func (s *Scene) PlayerController() *systems.PlayerController {
	pc, _ := behaviorOf(s.player).(*systems.PlayerController)
	return pc
}

func (s *Scene) Channel() *broadcast.Channel { return s.channel }

func (s *Scene) World() donburi.World { return s.ecs.World }

// Stats is a snapshot of the scene for logging.
type Stats struct {
	Tick          int
	Time          float64
	ShotsFired    int
	Reloads       int
	Missiles      int
	Destructibles int
	Impacts       int
	Subscribers   int
}

func (s *Scene) Stats() Stats {
	st := Stats{
		Tick:        s.Tick(),
		Time:        s.Now(),
		Subscribers: s.channel.Len(),
	}
	if s.player.Valid() {
		p := components.Player.Get(s.player)
		st.ShotsFired = p.ShotsFired
		st.Reloads = p.Reloads
	}
	st.Missiles = count(s.ecs.World, tags.Missile)
	st.Destructibles = count(s.ecs.World, components.Destructible)
	st.Impacts = count(s.ecs.World, tags.ImpactEffect)
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("tick=%d t=%.3fs shots=%d reloads=%d missiles=%d destructibles=%d impacts=%d subscribers=%d",
		st.Tick, st.Time, st.ShotsFired, st.Reloads, st.Missiles, st.Destructibles, st.Impacts, st.Subscribers)
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}

func behaviorOf(e *donburi.Entry) components.EntityBehavior {
	if e == nil || !e.Valid() || !e.HasComponent(components.Behavior) {
		return nil
	}
	return components.Behavior.Get(e).Behavior
}

var _ systems.Simulation = (*Scene)(nil)
