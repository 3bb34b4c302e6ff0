package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the life runner.
type Config struct {
	// Pattern names a preset board: "blinker" or "gosper". PatternFile
	// takes precedence when set and points at a pattern text file.
	Pattern     string `json:"pattern"`
	PatternFile string `json:"pattern_file"`

	// Width/Height size the world the starting pattern is composited
	// into. When they are zero (or too small for the margin Add
	// requires) the pattern runs on its own board.
	Width  int `json:"width"`
	Height int `json:"height"`

	// RandomDensity seeds random boards; used when no pattern is set,
	// and for every board in batch mode.
	RandomDensity float64 `json:"random_density"`

	Generations         int           `json:"generations"`
	FrameRate           time.Duration `json:"frame_rate"`
	StagnationThreshold int           `json:"stagnation_threshold"`

	// Simulations > 1 switches to batch mode: that many random boards
	// are stepped in parallel and their final populations reported.
	Simulations int `json:"simulations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Pattern:             "gosper",
		Width:               60,
		Height:              30,
		RandomDensity:       0.15,
		Generations:         1000,
		FrameRate:           150 * time.Millisecond,
		StagnationThreshold: 5,
		Simulations:         1,
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

	return config, nil
}
