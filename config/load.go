package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tuning file and overlays it on the defaults. Fields the file
// does not mention keep their default values.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning config: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks that every tunable is usable by the simulation.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := t.Player
	check(p.WalkingSpeed >= 0, "player.walkingSpeed must be >= 0, got %v", p.WalkingSpeed)
	check(p.RunningSpeed >= 0, "player.runningSpeed must be >= 0, got %v", p.RunningSpeed)
	check(p.Gravity >= 0, "player.gravity must be >= 0, got %v", p.Gravity)
	check(p.LookPitchLimit >= 0 && p.LookPitchLimit <= 90, "player.lookPitchLimit must be in [0, 90], got %v", p.LookPitchLimit)
	check(p.ShootMovementDelay >= 0, "player.shootMovementDelay must be >= 0, got %v", p.ShootMovementDelay)
	check(p.CollisionWidth > 0, "player.collisionWidth must be > 0, got %v", p.CollisionWidth)
	check(p.CollisionHeight > 0, "player.collisionHeight must be > 0, got %v", p.CollisionHeight)

	m := t.Missile
	check(m.Mass > 0, "missile.mass must be > 0, got %v", m.Mass)
	check(m.Size > 0, "missile.size must be > 0, got %v", m.Size)
	check(m.TrailRate >= 0, "missile.trailRate must be >= 0, got %v", m.TrailRate)

	check(t.Impact.Duration > 0, "impact.duration must be > 0, got %v", t.Impact.Duration)
	check(t.Physics.CellSize > 0, "physics.cellSize must be > 0, got %v", t.Physics.CellSize)
	check(t.Physics.MaxSubSteps > 0, "physics.maxSubSteps must be > 0, got %v", t.Physics.MaxSubSteps)
	check(t.Arena.Width > 0 && t.Arena.Depth > 0, "arena must have a positive footprint, got %vx%v", t.Arena.Width, t.Arena.Depth)
	check(t.Arena.CrateSpacing > 0, "arena.crateSpacing must be > 0, got %v", t.Arena.CrateSpacing)
	check(t.Loop.TickRate > 0, "loop.tickRate must be > 0, got %v", t.Loop.TickRate)

	// Sub-steps cover at most half the missile size each; faster launches tunnel.
	if m.Mass > 0 && t.Physics.MaxSubSteps > 0 && t.Loop.TickRate > 0 {
		limit := m.Size / 2 * float64(t.Physics.MaxSubSteps) * float64(t.Loop.TickRate)
		check(m.Speed/m.Mass <= limit, "missile.speed / missile.mass must be <= %v to avoid tunnelling, got %v", limit, m.Speed/m.Mass)
	}

	return errors.Join(errs...)
}
