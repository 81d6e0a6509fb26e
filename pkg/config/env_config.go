// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/logging"
)

// Environment variables recognised by ApplyEnvironmentOverrides
const (
	EnvWorldWidth           = "CONTACT_WORLD_WIDTH"
	EnvWorldHeight          = "CONTACT_WORLD_HEIGHT"
	EnvQuadTreeCapacity     = "CONTACT_QUADTREE_CAPACITY"
	EnvQuadTreeMaxDepth     = "CONTACT_QUADTREE_MAX_DEPTH"
	EnvFilterType           = "CONTACT_FILTER_TYPE"
	EnvAdvancedNotification = "CONTACT_ADVANCED_NOTIFICATION"
	EnvLogLevel             = logging.LevelEnvVar
)

// ApplyEnvironmentOverrides replaces config values with any CONTACT_*
// environment variables that are set, then validates the result.
func ApplyEnvironmentOverrides(config *Config) error {
	config.World.Width = getEnvAsFloatOrDefault(EnvWorldWidth, config.World.Width)
	config.World.Height = getEnvAsFloatOrDefault(EnvWorldHeight, config.World.Height)
	config.QuadTree.Capacity = getEnvAsIntOrDefault(EnvQuadTreeCapacity, config.QuadTree.Capacity)
	config.QuadTree.MaxDepth = getEnvAsIntOrDefault(EnvQuadTreeMaxDepth, config.QuadTree.MaxDepth)

	if value := os.Getenv(EnvFilterType); value != "" {
		ft, err := contact.ParseFilterType(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFilterType, err)
		}
		config.ObjectDefaults.FilterType = ft.String()
		config.ObjectDefaults.FilterCollisionPoints = true
		config.ObjectDefaults.ApplyDefaults = true
	}

	if _, ok := os.LookupEnv(EnvAdvancedNotification); ok {
		config.ObjectDefaults.AdvancedCollisionNotification = getEnvAsBoolOrDefault(
			EnvAdvancedNotification, config.ObjectDefaults.AdvancedCollisionNotification)
		config.ObjectDefaults.ApplyDefaults = true
	}

	config.LogLevel = getEnvOrDefault(EnvLogLevel, config.LogLevel)

	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
