package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"checkers/internal/checkers"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "CHECKERS"

type Config struct {
	StartingPlayer   string `mapstructure:"STARTING_PLAYER"`
	Position         string `mapstructure:"POSITION"` // board diagram; empty = standard setup
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	LogOutput        string `mapstructure:"LOG_OUTPUT"`
	SelfplayMaxPlies int    `mapstructure:"SELFPLAY_MAX_PLIES"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STARTING_PLAYER", "red")
	v.SetDefault("POSITION", "")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("SELFPLAY_MAX_PLIES", 200)
}

// Setup loads defaults, then cfgPath (if not empty), then CHECKERS_* environment
// variables, and validates the result.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := checkers.ParseColor(c.StartingPlayer); err != nil {
		return fmt.Errorf("%w: STARTING_PLAYER: %v", ErrInvalidConfig, err)
	}
	if c.Position != "" {
		if _, err := checkers.DecodeBoard(c.Position); err != nil {
			return fmt.Errorf("%w: POSITION: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	if c.SelfplayMaxPlies <= 0 {
		return fmt.Errorf("%w: SELFPLAY_MAX_PLIES must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) StartingColor() checkers.Color {
	color, err := checkers.ParseColor(c.StartingPlayer)
	if err != nil {
		return checkers.Red
	}
	return color
}

// InitialBoard returns a fresh board for a new game.
func (c *Config) InitialBoard() (*checkers.Board, error) {
	if c.Position == "" {
		return checkers.NewStandardBoard(), nil
	}
	return checkers.DecodeBoard(c.Position)
}

// NewLogger builds a production zap logger with the configured level and outputs.
func NewLogger(c *Config) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = splitOutputs(c.LogOutput)
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

func splitOutputs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"stderr"}
	}
	return out
}
