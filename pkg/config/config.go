// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/logging"
)

// Config contains configuration for a collision handler
type Config struct {
	World            WorldConfig    `json:"world"`
	QuadTree         QuadTreeConfig `json:"quadTree"`
	BroadPhaseMargin float64        `json:"broadPhaseMargin"`
	ObjectDefaults   ObjectDefaults `json:"objectDefaults"`
	LogLevel         string         `json:"logLevel"`
}

// WorldConfig describes the broad-phase bounds by center and size
type WorldConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// QuadTreeConfig contains broad-phase tuning
type QuadTreeConfig struct {
	Capacity int `json:"capacity"`
	MaxDepth int `json:"maxDepth"`
}

// ObjectDefaults are copied onto objects registered with a handler
// when ApplyDefaults is set
type ObjectDefaults struct {
	ApplyDefaults                 bool   `json:"applyDefaults"`
	FilterCollisionPoints         bool   `json:"filterCollisionPoints"`
	FilterType                    string `json:"filterType"`
	AdvancedCollisionNotification bool   `json:"advancedCollisionNotification"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default handler configuration
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			X:      0,
			Y:      0,
			Width:  10000,
			Height: 10000,
		},
		QuadTree: QuadTreeConfig{
			Capacity: 8,
			MaxDepth: 8,
		},
		BroadPhaseMargin: 0.5,
		ObjectDefaults: ObjectDefaults{
			ApplyDefaults:                 false,
			FilterCollisionPoints:         false,
			FilterType:                    contact.First.String(),
			AdvancedCollisionNotification: false,
		},
		LogLevel: "INFO",
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.World.Width <= 0 {
		return fmt.Errorf("world.width must be positive, got %v", c.World.Width)
	}
	if c.World.Height <= 0 {
		return fmt.Errorf("world.height must be positive, got %v", c.World.Height)
	}
	if c.QuadTree.Capacity < 1 {
		return fmt.Errorf("quadTree.capacity must be at least 1, got %d", c.QuadTree.Capacity)
	}
	if c.QuadTree.MaxDepth < 0 {
		return fmt.Errorf("quadTree.maxDepth must not be negative, got %d", c.QuadTree.MaxDepth)
	}
	if c.BroadPhaseMargin < 0 {
		return fmt.Errorf("broadPhaseMargin must not be negative, got %v", c.BroadPhaseMargin)
	}
	if _, err := c.ObjectDefaults.Filter(); err != nil {
		return logging.WrapError(err, "objectDefaults.filterType")
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("logLevel %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}
	return nil
}

// Filter parses the configured filter type. An empty value means First.
func (d ObjectDefaults) Filter() (contact.FilterType, error) {
	if d.FilterType == "" {
		return contact.First, nil
	}
	return contact.ParseFilterType(d.FilterType)
}
