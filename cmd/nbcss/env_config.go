package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/alnah/go-nbcss/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string `envconfig:"NBCSS_CONFIG"`    // config file name or path
	BaseDir    string `envconfig:"NBCSS_BASE_DIR"`  // notebook installation directory
	Style      string `envconfig:"NBCSS_STYLE"`     // chroma style name
	Prefix     string `envconfig:"NBCSS_PREFIX"`    // highlight class selector
	LogLevel   string `envconfig:"NBCSS_LOG_LEVEL"` // none, debug, info, warn, error
	Disable    bool   `envconfig:"NBCSS_DISABLE"`   // disable collection
}

// knownEnvVars lists valid NBCSS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NBCSS_CONFIG":    true,
	"NBCSS_BASE_DIR":  true,
	"NBCSS_STYLE":     true,
	"NBCSS_PREFIX":    true,
	"NBCSS_LOG_LEVEL": true,
	"NBCSS_DISABLE":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns ErrEnvConfig if a value cannot be parsed (e.g., NBCSS_DISABLE=maybe).
func loadEnvConfig() (*envConfig, error) {
	var cfg envConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return &cfg, nil
}

// warnUnknownEnvVars writes warnings for unrecognized NBCSS_* variables.
// Helps catch typos like NBCSS_BASEDIR instead of NBCSS_BASE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "NBCSS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// CLI flags are applied afterwards by applyFlags, giving:
// CLI flags > env vars > config file > defaults
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BaseDir != "" {
		cfg.BaseDir = env.BaseDir
	}
	if env.Style != "" {
		cfg.Highlight.Style = env.Style
	}
	if env.Prefix != "" {
		cfg.Highlight.Prefix = env.Prefix
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Disable {
		cfg.Enabled = false
	}
}

// applyFlags overrides config values with CLI flags.
func applyFlags(f *cliFlags, cfg *config.Config) {
	if f.baseDir != "" {
		cfg.BaseDir = f.baseDir
	}
	if f.style != "" {
		cfg.Highlight.Style = f.style
	}
	if f.prefix != "" {
		cfg.Highlight.Prefix = f.prefix
	}
	if f.disable {
		cfg.Enabled = false
	}

	switch {
	case f.verbose:
		cfg.Log.Level = "debug"
	case f.quiet:
		cfg.Log.Level = "error"
	}
}
