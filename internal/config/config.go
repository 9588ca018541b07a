package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// storage
	DataDir string `toml:"data_dir"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// tracking
	WeightUnit    string  `toml:"weight_unit"`
	RestTimerSecs int     `toml:"rest_timer_secs"`
	OverloadStep  float64 `toml:"overload_step"`

	Environment string `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Default returns the configuration used when no config file is present.
// The app must stay usable without any setup, so every value has a
// working fallback.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:       filepath.Join(home, ".ironlog"),
		LogLevel:      "trace",
		LogToStdout:   true,
		WeightUnit:    "lbs",
		RestTimerSecs: 180,
		OverloadStep:  2.5,
	}
}

func Load(env, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.Environment = env
		return cfg, nil
	}

	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not set", env)
	}

	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.WeightUnit == "" {
		cfg.WeightUnit = def.WeightUnit
	}
	if cfg.RestTimerSecs <= 0 {
		cfg.RestTimerSecs = def.RestTimerSecs
	}
	if cfg.OverloadStep <= 0 {
		cfg.OverloadStep = def.OverloadStep
	}

	cfg.Environment = env
	return cfg, nil
}
