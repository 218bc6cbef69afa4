// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for all engine and driver settings.
//
// IMPORTANT: When changing values, only modify this file.
// All other parts of the codebase should reference these values.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// ENGINE CONFIGURATION
// =============================================================================

// EngineConfig holds the simulation's own tunables.
type EngineConfig struct {
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means "derive from clock"
}

// DefaultEngine returns the default engine configuration.
func DefaultEngine() EngineConfig {
	return EngineConfig{
		TickRate: 10,
		Seed:     0,
	}
}

// =============================================================================
// SPECTATE SERVER CONFIGURATION
// =============================================================================

// SpectateConfig holds the debug/spectate HTTP+WS server's settings.
type SpectateConfig struct {
	Port            int
	EnableWebsocket bool
}

// DefaultSpectate returns the default spectate server configuration.
func DefaultSpectate() SpectateConfig {
	return SpectateConfig{
		Port:            8080,
		EnableWebsocket: true,
	}
}

// =============================================================================
// AUDIO CONFIGURATION
// =============================================================================

// AudioConfig holds audio sink settings.
type AudioConfig struct {
	SampleRate int     // Audio sample rate in Hz
	Volume     float64 // Master volume (0.0 to 1.0)
	Enabled    bool    // Whether tune playback is enabled
}

// DefaultAudio returns the default audio configuration.
func DefaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		Volume:     0.5,
		Enabled:    true,
	}
}

// =============================================================================
// FILE PATHS
// =============================================================================

// PathsConfig holds filesystem locations the driver package reads worlds
// and writes saves/high scores to.
type PathsConfig struct {
	WorldsDir string
	SavesDir  string
}

// DefaultPaths returns the default path configuration.
func DefaultPaths() PathsConfig {
	return PathsConfig{
		WorldsDir: "worlds",
		SavesDir:  "saves",
	}
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Engine   EngineConfig
	Spectate SpectateConfig
	Audio    AudioConfig
	Paths    PathsConfig
}

// fileConfig mirrors AppConfig's shape for TOML decoding; a separate
// type keeps the TOML tags out of the struct the rest of the codebase
// uses day to day.
type fileConfig struct {
	Engine struct {
		TickRate int   `toml:"tick_rate"`
		Seed     int64 `toml:"seed"`
	} `toml:"engine"`
	Spectate struct {
		Port            int  `toml:"port"`
		EnableWebsocket bool `toml:"enable_websocket"`
	} `toml:"spectate"`
	Audio struct {
		SampleRate int     `toml:"sample_rate"`
		Volume     float64 `toml:"volume"`
		Enabled    bool    `toml:"enabled"`
	} `toml:"audio"`
	Paths struct {
		WorldsDir string `toml:"worlds_dir"`
		SavesDir  string `toml:"saves_dir"`
	} `toml:"paths"`
}

// Load returns the complete configuration: defaults, then a TOML file if
// ZZTCORE_CONFIG points at one, then environment variable overrides —
// the same defaults-then-file-then-env fallback chain
// cmd/server/main.go uses for .env.
func Load() AppConfig {
	_ = godotenv.Load()

	cfg := AppConfig{
		Engine:   DefaultEngine(),
		Spectate: DefaultSpectate(),
		Audio:    DefaultAudio(),
		Paths:    DefaultPaths(),
	}

	if path := os.Getenv("ZZTCORE_CONFIG"); path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err == nil {
			applyFileConfig(&cfg, fc)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg
}

func applyFileConfig(cfg *AppConfig, fc fileConfig) {
	if fc.Engine.TickRate > 0 {
		cfg.Engine.TickRate = fc.Engine.TickRate
	}
	if fc.Engine.Seed != 0 {
		cfg.Engine.Seed = fc.Engine.Seed
	}
	if fc.Spectate.Port > 0 {
		cfg.Spectate.Port = fc.Spectate.Port
	}
	cfg.Spectate.EnableWebsocket = fc.Spectate.EnableWebsocket
	if fc.Audio.SampleRate > 0 {
		cfg.Audio.SampleRate = fc.Audio.SampleRate
	}
	if fc.Audio.Volume > 0 {
		cfg.Audio.Volume = fc.Audio.Volume
	}
	cfg.Audio.Enabled = fc.Audio.Enabled
	if fc.Paths.WorldsDir != "" {
		cfg.Paths.WorldsDir = fc.Paths.WorldsDir
	}
	if fc.Paths.SavesDir != "" {
		cfg.Paths.SavesDir = fc.Paths.SavesDir
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if tr := getEnvInt("ZZT_TICK_RATE", 0); tr > 0 {
		cfg.Engine.TickRate = tr
	}
	if seed := getEnvInt("ZZT_SEED", 0); seed != 0 {
		cfg.Engine.Seed = int64(seed)
	}
	if port := getEnvInt("ZZT_SPECTATE_PORT", 0); port > 0 {
		cfg.Spectate.Port = port
	}
	if v := getEnvFloat("ZZT_AUDIO_VOLUME", -1); v >= 0 {
		cfg.Audio.Volume = v
	}
	if os.Getenv("ZZT_AUDIO_ENABLED") == "false" {
		cfg.Audio.Enabled = false
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
