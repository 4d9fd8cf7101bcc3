package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvLoader reads prefixed environment variables for bootstrap-time
// lookups that happen before the viper config is available.
type EnvLoader struct {
	prefix string
}

func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix}
}

// GetString retrieves a string value from environment variable
// Returns defaultValue if not found
func (e *EnvLoader) GetString(key, defaultValue string) string {
	if value := os.Getenv(e.buildKey(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetInt retrieves an integer value from environment variable
// Returns defaultValue if not found or invalid
func (e *EnvLoader) GetInt(key string, defaultValue int) int {
	value := os.Getenv(e.buildKey(key))
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// GetBool retrieves a boolean value from environment variable
// Accepts: "true", "1", "yes", "on" for true
// Accepts: "false", "0", "no", "off" for false
func (e *EnvLoader) GetBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(e.buildKey(key)))
	if value == "" {
		return defaultValue
	}

	switch value {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// buildKey constructs the full environment variable key with prefix
// Example: prefix="MATCHDAY", key="CONFIG_PATH" -> "MATCHDAY_CONFIG_PATH"
func (e *EnvLoader) buildKey(key string) string {
	if e.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", e.prefix, key)
}
