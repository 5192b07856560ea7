package config

// SettingsConfig bounds the user-adjustable look settings
type SettingsConfig struct {
	MinSensitivity float64
	MaxSensitivity float64
	AppName        string // gdata application directory
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		MinSensitivity: 0.1,
		MaxSensitivity: 10.0,
		AppName:        "rocketeer",
	}
}
