package config

import "os"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort   string
	ExportPath string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		ExportPath: envOrDefault("EXPORT_PATH", "asteroids.xlsx"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
