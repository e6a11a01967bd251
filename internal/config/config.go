package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/alnah/go-nbcss/internal/assets"
	"github.com/alnah/go-nbcss/internal/fileutil"
	"github.com/alnah/go-nbcss/internal/highlight"
	"github.com/alnah/go-nbcss/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxCandidates      = 64
	MaxStyleNameLength = 50
	MaxPrefixLength    = 100
)

// Config holds the settings of the stylesheet collection step.
type Config struct {
	Enabled    bool            `yaml:"enabled"`
	BaseDir    string          `yaml:"baseDir"`    // Empty = discover
	Candidates []string        `yaml:"candidates"` // Empty = default notebook layout
	Highlight  HighlightConfig `yaml:"highlight"`
	Log        LogConfig       `yaml:"log"`
}

// HighlightConfig defines the syntax-highlighting stylesheet.
type HighlightConfig struct {
	Style  string `yaml:"style"`  // chroma style name (default: "pygments")
	Prefix string `yaml:"prefix"` // class selector (default: ".highlight")
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // "none", "debug", "info", "warn", "error" (default: "info")
}

// Validate checks every field and reports all problems at once.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	var err error

	err = multierr.Append(err, validateFieldLength("baseDir", c.BaseDir, MaxPathLength))

	if len(c.Candidates) > MaxCandidates {
		err = multierr.Append(err, fmt.Errorf("%w: candidates: %d entries (max %d)", ErrInvalidValue, len(c.Candidates), MaxCandidates))
	}
	for i, candidate := range c.Candidates {
		field := fmt.Sprintf("candidates[%d]", i)
		if lenErr := validateFieldLength(field, candidate, MaxPathLength); lenErr != nil {
			err = multierr.Append(err, lenErr)
			continue
		}
		if candErr := assets.ValidateCandidate(candidate); candErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s: %w", ErrInvalidValue, field, candErr))
		}
	}

	err = multierr.Append(err, validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength))
	if lenErr := validateFieldLength("highlight.prefix", c.Highlight.Prefix, MaxPrefixLength); lenErr != nil {
		err = multierr.Append(err, lenErr)
	} else if c.Highlight.Prefix != "" {
		if prefixErr := highlight.ValidatePrefix(c.Highlight.Prefix); prefixErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: highlight.prefix: %w", ErrInvalidValue, prefixErr))
		}
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "none", "debug", "info", "warn", "error":
			// valid
		default:
			err = multierr.Append(err, fmt.Errorf("%w: log.level %q (must be none, debug, info, warn, or error)", ErrInvalidValue, c.Log.Level))
		}
	}

	return err
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// collection enabled, discovered base directory, default layout and style.
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		BaseDir:    "",
		Candidates: nil,
		Highlight: HighlightConfig{
			Style:  highlight.DefaultStyle,
			Prefix: highlight.DefaultPrefix,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-nbcss/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-nbcss", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
