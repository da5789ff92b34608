// Package config provides Viper-based configuration loading for regionator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. REGIONATOR_IMPORT_WORKERS.
const EnvPrefix = "REGIONATOR"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ImportConfig holds batch conversion settings.
type ImportConfig struct {
	// SourceDir is the directory scanned for region sources.
	SourceDir string `mapstructure:"source_dir"`
	// OutputDir receives one document per region.
	OutputDir string `mapstructure:"output_dir"`
	// Extension selects source files, including the leading dot.
	Extension string `mapstructure:"extension"`
	// Format is the document encoding: "json" or "yaml".
	Format string `mapstructure:"format"`
	// Indent is the JSON indent width in spaces; 0 writes compact JSON.
	Indent int `mapstructure:"indent"`
	// Workers bounds the number of regions converted concurrently.
	Workers int `mapstructure:"workers"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Import  ImportConfig  `mapstructure:"import"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateImport(c.Import); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateImport(i ImportConfig) error {
	var errs []string
	if !strings.HasPrefix(i.Extension, ".") || len(i.Extension) < 2 {
		errs = append(errs, fmt.Sprintf("import.extension must start with '.' and name an extension, got %q", i.Extension))
	}
	validFormats := map[string]bool{"json": true, "yaml": true}
	if !validFormats[i.Format] {
		errs = append(errs, fmt.Sprintf("import.format must be one of [json, yaml], got %q", i.Format))
	}
	if i.Indent < 0 || i.Indent > 8 {
		errs = append(errs, fmt.Sprintf("import.indent must be 0-8, got %d", i.Indent))
	}
	if i.Workers < 1 {
		errs = append(errs, fmt.Sprintf("import.workers must be >= 1, got %d", i.Workers))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Precondition: path is empty or names a readable configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	return LoadInto(NewViper(), path)
}

// LoadInto reads the file at path into v, when path is non-empty, and builds
// a Config from the result. Values already bound to v, such as command-line
// flags, keep their precedence over the file.
//
// Precondition: v must be non-nil, typically from NewViper.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadInto(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and REGIONATOR_ environment
// overrides registered, ready for flag binding.
//
// Postcondition: Returns a non-nil Viper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("import.source_dir", "")
	v.SetDefault("import.output_dir", "")
	v.SetDefault("import.extension", ".rdl")
	v.SetDefault("import.format", "json")
	v.SetDefault("import.indent", 2)
	v.SetDefault("import.workers", 4)
}
