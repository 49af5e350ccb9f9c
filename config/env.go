// file: sltree/config/env.go
package config

import "os"

// GetEnvStr returns string env var or fallback.
func GetEnvStr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
