package config

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a YAML-friendly 3D offset.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec returns the offset as an mgl64 vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkingSpeed float64 `yaml:"walkingSpeed"`
	RunningSpeed float64 `yaml:"runningSpeed"`
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	Gravity      float64 `yaml:"gravity"`

	// Look
	LookSensitivity float64 `yaml:"lookSensitivity"`
	LookPitchLimit  float64 `yaml:"lookPitchLimit"` // degrees
	LookDuringLock  bool    `yaml:"lookDuringLock"` // keep aim responsive while movement is locked

	// Firing
	ShootMovementDelay float64 `yaml:"shootMovementDelay"` // seconds of movement lock after a shot

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	CameraOffset    Vec3    `yaml:"cameraOffset"` // camera position relative to the feet
	MuzzleOffset    Vec3    `yaml:"muzzleOffset"` // muzzle position relative to the camera
}

// MissileConfig contains rocket projectile configuration
type MissileConfig struct {
	Speed      float64 `yaml:"speed"` // impulse magnitude
	Mass       float64 `yaml:"mass"`
	UseGravity bool    `yaml:"useGravity"`
	Size       float64 `yaml:"size"` // edge of the collision cube

	// Effects
	TrailRate    float64 `yaml:"trailRate"`    // trail particles per second once launched
	ImpactEffect bool    `yaml:"impactEffect"` // spawn an explosion on destructible hits
}

// ImpactConfig contains explosion effect configuration
type ImpactConfig struct {
	Radius   float64 `yaml:"radius"`
	Duration float64 `yaml:"duration"` // seconds
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // used by rigid bodies with gravity enabled
	CellSize     int     `yaml:"cellSize"`     // broadphase cell edge in resolv units
	GroundSkin   float64 `yaml:"groundSkin"`   // distance above the floor still counted as grounded
	MaxSubSteps  int     `yaml:"maxSubSteps"`  // cap on rigid body sub-steps per tick
	BoundsMargin float64 `yaml:"boundsMargin"` // distance outside the arena before missiles are culled
}

// ArenaConfig describes the fallback arena used when no level file is given
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Depth        float64 `yaml:"depth"`
	Height       float64 `yaml:"height"`
	WallHeight   float64 `yaml:"wallHeight"`
	CrateSize    float64 `yaml:"crateSize"`
	CrateHeight  float64 `yaml:"crateHeight"`
	SpawnX       float64 `yaml:"spawnX"`
	SpawnZ       float64 `yaml:"spawnZ"`
	CrateSpacing float64 `yaml:"crateSpacing"`
	CrateRows    int     `yaml:"crateRows"`
}

// LoopConfig contains game loop configuration
type LoopConfig struct {
	TickRate int `yaml:"tickRate"` // ticks per second
}

// Tuning aggregates every tunable of a simulation run.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Missile MissileConfig `yaml:"missile"`
	Impact  ImpactConfig  `yaml:"impact"`
	Physics PhysicsConfig `yaml:"physics"`
	Arena   ArenaConfig   `yaml:"arena"`
	Loop    LoopConfig    `yaml:"loop"`
}

// Global configuration instances
var Player PlayerConfig
var Missile MissileConfig
var Impact ImpactConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Loop LoopConfig

// Default returns a copy of the global configuration.
func Default() Tuning {
	return Tuning{
		Player:  Player,
		Missile: Missile,
		Impact:  Impact,
		Physics: Physics,
		Arena:   Arena,
		Loop:    Loop,
	}
}

func init() {
	// Player Config
	Player = PlayerConfig{
		// Movement
		WalkingSpeed: 7.5,
		RunningSpeed: 11.5,
		JumpSpeed:    8.0,
		Gravity:      9.8,

		// Look
		LookSensitivity: 2.0,
		LookPitchLimit:  45.0,
		LookDuringLock:  false,

		// Firing
		ShootMovementDelay: 0.1,

		// Dimensions
		CollisionWidth:  0.6,
		CollisionHeight: 2.0,
		CameraOffset:    Vec3{Y: 1.6},
		MuzzleOffset:    Vec3{X: 0.3, Y: -0.2, Z: 0.8},
	}

	// Missile Config
	Missile = MissileConfig{
		Speed:        10.0,
		Mass:         1.0,
		UseGravity:   false,
		Size:         0.3,
		TrailRate:    200,
		ImpactEffect: true,
	}

	Impact = ImpactConfig{
		Radius:   2.0,
		Duration: 0.5,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      9.8,
		CellSize:     16,
		GroundSkin:   0.01,
		MaxSubSteps:  16,
		BoundsMargin: 4.0,
	}

	Arena = ArenaConfig{
		Width:        32,
		Depth:        32,
		Height:       12,
		WallHeight:   4,
		CrateSize:    1,
		CrateHeight:  2,
		SpawnX:       16,
		SpawnZ:       4,
		CrateSpacing: 3,
		CrateRows:    2,
	}

	Loop = LoopConfig{
		TickRate: 60,
	}
}
