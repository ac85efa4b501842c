package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Student directory defaults, relative to the project root
	DefaultStudentsDir  = "data/students"
	DefaultManifestName = "index.json"
	DefaultPattern      = "*.json"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix is the prefix for environment overrides (ROSTER_STUDENTS_DIRECTORY, ...)
	EnvPrefix = "ROSTER"

	configName = "roster"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roster"
	}
	return filepath.Join(home, ".roster")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), configName+".yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Students: StudentsConfig{
			Directory: DefaultStudentsDir,
			Manifest:  DefaultManifestName,
			Pattern:   DefaultPattern,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
