package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Students StudentsConfig `mapstructure:"students" yaml:"students"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// StudentsConfig describes where student files live and how the manifest is named
type StudentsConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Manifest  string `mapstructure:"manifest" yaml:"manifest"`
	Pattern   string `mapstructure:"pattern" yaml:"pattern"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, restoring defaults for empty values
func (c *Config) Validate() error {
	if c.Students.Directory == "" {
		c.Students.Directory = DefaultStudentsDir
	}
	if c.Students.Manifest == "" {
		c.Students.Manifest = DefaultManifestName
	}
	if c.Students.Pattern == "" {
		c.Students.Pattern = DefaultPattern
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	if strings.ContainsAny(c.Students.Manifest, `/\`) {
		return fmt.Errorf("invalid students.manifest %q: must be a plain file name", c.Students.Manifest)
	}
	if _, err := filepath.Match(c.Students.Pattern, ""); err != nil {
		return fmt.Errorf("invalid students.pattern %q: %w", c.Students.Pattern, err)
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid logging.format %q: use pretty or json", c.Logging.Format)
	}
	return nil
}
