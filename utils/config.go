package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Engine kinds accepted in Config.Engine.
const (
	EngineSparse = "sparse"
	EngineDense  = "dense"
)

const (
	// MinSpeedFactor and MaxSpeedFactor bound Config.SpeedFactor.
	MinSpeedFactor = 1
	MaxSpeedFactor = 10
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Engine              string        `json:"engine"`
	Workers             int           `json:"workers"`
	FrameRate           time.Duration `json:"frame_rate"`
	SpeedFactor         int           `json:"speed_factor"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Engine:              EngineSparse,
		Workers:             0, // one per CPU
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Seed:                1337,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot produce a working simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Engine != EngineSparse && c.Engine != EngineDense:
		return errors.Errorf("[Validate] unknown engine: %+v", c.Engine)
	case c.Workers < 0:
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	case c.SpeedFactor != 0 && (c.SpeedFactor < MinSpeedFactor || c.SpeedFactor > MaxSpeedFactor):
		return errors.Errorf("[Validate] speed_factor must be within [%d,%d], got %d",
			MinSpeedFactor, MaxSpeedFactor, c.SpeedFactor)
	}
	return nil
}

// TickInterval returns the delay between generations. A speed factor, when
// set, takes precedence over FrameRate.
func (c Config) TickInterval() time.Duration {
	if c.SpeedFactor != 0 {
		return SpeedFactorInterval(c.SpeedFactor)
	}
	return c.FrameRate
}

// SpeedFactorInterval maps a speed factor to a tick interval of 1s / 2^factor,
// clamping the factor to [MinSpeedFactor, MaxSpeedFactor].
func SpeedFactorInterval(factor int) time.Duration {
	factor = min(max(factor, MinSpeedFactor), MaxSpeedFactor)
	return time.Second >> factor
}
