package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/rocketeer/components"
	cfg "github.com/automoto/rocketeer/config"
	"github.com/automoto/rocketeer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type botPhase int

const (
	botAiming botPhase = iota
	botFiring
	botReloading
)

// BotInput is an input source that turns the player toward the nearest
// destructible obstacle, fires once lined up and reloads after each shot.
// Bind must be called before the first Poll.
type BotInput struct {
	world       donburi.World
	player      *donburi.Entry
	difficulty  cfg.BotDifficultyConfig
	sensitivity float64

	// Uses a fixed seed for deterministic replay support.
	rng *rand.Rand

	phase botPhase
	wait  int
}

func NewBotInput(difficulty cfg.BotDifficulty, lookSensitivity float64) *BotInput {
	return &BotInput{
		difficulty:  cfg.Bot.Difficulties[difficulty],
		sensitivity: lookSensitivity,
		rng:         rand.New(rand.NewSource(cfg.Bot.Seed)),
	}
}

// Bind attaches the bot to the player it controls.
func (b *BotInput) Bind(world donburi.World, player *donburi.Entry) {
	b.world = world
	b.player = player
}

func (b *BotInput) Poll(int) InputFrame {
	var frame InputFrame
	if b.player == nil || !b.player.Valid() {
		return frame
	}

	player := components.Player.Get(b.player)
	pos := components.Transform.Get(b.player).Position

	if b.wait > 0 {
		b.wait--
		return frame
	}

	switch b.phase {
	case botFiring:
		// The fire press was seen last tick; release so the next press registers.
		b.phase = botReloading
		b.react()
		return frame
	case botReloading:
		if player.FireState() == components.FireReloading {
			frame.Actions[cfg.ActionReload] = true
		}
		b.phase = botAiming
		return frame
	}

	target, ok := b.nearestTarget(pos)
	if !ok {
		return frame
	}

	yawErr := gamemath.WrapDegrees(yawTowards(pos, target) - player.Yaw)
	if math.Abs(yawErr) > b.difficulty.AimTolerance {
		frame.Axes[cfg.AxisLookX] = b.lookAxis(yawErr)
		return frame
	}

	if player.FireState() == components.FireArmed && player.CanMove && !b.missileInFlight() {
		frame.Actions[cfg.ActionFire] = true
		b.phase = botFiring
	}
	return frame
}

// lookAxis converts a yaw error into the axis value that closes it this tick.
func (b *BotInput) lookAxis(yawErr float64) float64 {
	if b.sensitivity <= 0 {
		return 0
	}
	limit := b.difficulty.TurnRate
	return mgl64.Clamp(yawErr/b.sensitivity, -limit, limit)
}

func (b *BotInput) react() {
	b.wait = b.difficulty.ReactionDelay
	if b.difficulty.ReactionJitter > 0 {
		b.wait += b.rng.Intn(b.difficulty.ReactionJitter + 1)
	}
}

func (b *BotInput) nearestTarget(from mgl64.Vec3) (mgl64.Vec3, bool) {
	var best mgl64.Vec3
	bestDist := math.Inf(1)
	components.Destructible.Each(b.world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		p := components.Transform.Get(e).Position
		dx, dz := p.X()-from.X(), p.Z()-from.Z()
		if d := dx*dx + dz*dz; d < bestDist {
			bestDist = d
			best = p
		}
	})
	return best, !math.IsInf(bestDist, 1)
}

func (b *BotInput) missileInFlight() bool {
	flying := false
	components.Missile.Each(b.world, func(*donburi.Entry) {
		flying = true
	})
	return flying
}

// yawTowards returns the body yaw in degrees that faces target from pos.
func yawTowards(pos, target mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(target.X()-pos.X(), target.Z()-pos.Z()))
}
