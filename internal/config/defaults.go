package config

import (
	_ "embed"
)

//go:embed defaults/motion.yaml
var defaultMotionYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			DurationMS: 250,
			TickRate:   120,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Timestamps: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.motion/journal.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Scenes: map[string]SceneConfig{
			"width":  {Targets: []float64{500.64, 120}},
			"fade":   {Targets: []float64{0, 255}},
			"follow": {Targets: []float64{480, 160}},
			"slide":  {Targets: []float64{400}},
		},
	}
}
