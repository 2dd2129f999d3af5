// Package config provides configuration types and helpers for logsift.
package config

// Config holds the application-wide configuration.
type Config struct {
	// Format selects the template output format: "text", "json", "table".
	Format string `mapstructure:"format"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`

	// Progress enables per-phase progress reporting on stderr.
	Progress bool `mapstructure:"progress"`
}
