package config

// BotDifficulty affects reaction time and aim quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var botDifficultyNames = map[string]BotDifficulty{
	"easy":   BotDifficultyEasy,
	"normal": BotDifficultyNormal,
	"hard":   BotDifficultyHard,
}

// BotDifficultyByName resolves a CLI difficulty name.
func BotDifficultyByName(name string) (BotDifficulty, bool) {
	d, ok := botDifficultyNames[name]
	return d, ok
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay  int     // Ticks to wait after lining up a shot or firing before acting
	ReactionJitter int     // Random extra ticks added to each reaction
	AimTolerance   float64 // Degrees of yaw error still counted as on target
	TurnRate       float64 // Largest look axis magnitude the bot uses
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Seed         int64
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Seed: 42,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:  30, // 0.5 second reaction time
				ReactionJitter: 15,
				AimTolerance:   2.0,
				TurnRate:       0.5,
			},
			BotDifficultyNormal: {
				ReactionDelay:  15, // 0.25 second reaction time
				ReactionJitter: 8,
				AimTolerance:   1.0,
				TurnRate:       1.0,
			},
			BotDifficultyHard: {
				ReactionDelay:  5, // Near-instant reaction
				ReactionJitter: 2,
				AimTolerance:   0.5,
				TurnRate:       1.0,
			},
		},
	}
}
