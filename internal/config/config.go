package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// MinRadius is the smallest board radius the game is playable on.
const MinRadius = 3

// Config holds all game configuration
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Display  DisplayConfig  `yaml:"display"`
	Debug    bool           `yaml:"debug"`
	Log      LogConfig      `yaml:"log"`
	SelfPlay SelfPlayConfig `yaml:"selfplay"`
}

// BoardConfig holds grid settings
type BoardConfig struct {
	Radius int `yaml:"radius"`
}

// DisplayConfig holds window and drawing settings
type DisplayConfig struct {
	HexSize      float64 `yaml:"hex_size"` // pixels, corner to center
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// SelfPlayConfig holds headless playout settings
type SelfPlayConfig struct {
	Games    int    `yaml:"games"`
	MaxTurns int    `yaml:"max_turns"`
	Seed     uint64 `yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Set defaults if not provided
func (c *Config) applyDefaults() {
	if c.Board.Radius == 0 {
		c.Board.Radius = 5
	}
	if c.Display.HexSize == 0 {
		c.Display.HexSize = 35
	}
	if c.Display.WindowWidth == 0 {
		c.Display.WindowWidth = 900
	}
	if c.Display.WindowHeight == 0 {
		c.Display.WindowHeight = 900
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.SelfPlay.Games == 0 {
		c.SelfPlay.Games = 20
	}
	if c.SelfPlay.MaxTurns == 0 {
		c.SelfPlay.MaxTurns = 200
	}
	if c.SelfPlay.Seed == 0 {
		c.SelfPlay.Seed = 1
	}
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Board.Radius < MinRadius {
		errs = append(errs, fmt.Errorf("board.radius must be >= %d, got %d", MinRadius, c.Board.Radius))
	}
	if c.Display.HexSize <= 0 {
		errs = append(errs, fmt.Errorf("display.hex_size must be positive, got %v", c.Display.HexSize))
	}
	if c.Display.WindowWidth <= 0 || c.Display.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("display window must be positive, got %dx%d",
			c.Display.WindowWidth, c.Display.WindowHeight))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.SelfPlay.Games < 0 || c.SelfPlay.MaxTurns < 0 {
		errs = append(errs, errors.New("selfplay.games and selfplay.max_turns must not be negative"))
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level. Debug mode forces the debug level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// Logger builds a console logger at the configured level and installs it as
// the global zerolog logger.
func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := c.LogLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.SetGlobalLevel(lvl)
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(lvl).With().Timestamp().Logger()
	log.Logger = l
	return l, nil
}
