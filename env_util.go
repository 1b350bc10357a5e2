package surrealhttp

import "os"

// GetEnvOrDefault returns the value of the environment variable key, or
// defaultValue when it is unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
