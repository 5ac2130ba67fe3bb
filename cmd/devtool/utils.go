package main

import (
	"os"
)

// getEnv returns the value of the environment variable key, or fallback if unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
