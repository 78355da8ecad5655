// Package environment provides utilities for loading configuration from
// environment variables with support for namespacing and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files, or from
// .env in the working directory when no path is given. Missing files are not
// an error; variables already present in the environment are never replaced.
//
// Example:
//
//	if err := environment.LoadEnv(); err != nil {
//	    log.Printf("loading .env: %v", err)
//	}
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}

	return nil
}

// GetEnvKeyPrefix builds the namespaced key for an environment variable.
//
//	GetEnvKeyPrefix("TASKAPI", "PORT") // "TASKAPI_PORT"
//	GetEnvKeyPrefix("", "PORT")        // "PORT"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetEnvOrDefault retrieves an environment variable value, returning fallback
// when the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetPrefixEnvOrDefault is GetEnvOrDefault for a namespaced key.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}
