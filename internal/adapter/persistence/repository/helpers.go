package repository

import "os"

// getenvDefault resolves table and index names, so one binary can target
// differently named tables per environment.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
