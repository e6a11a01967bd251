package main

// Notes:
// - loadEnvConfig reads the process environment through envconfig, so these
//   tests use t.Setenv and cannot run in parallel.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-nbcss/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("NBCSS_CONFIG", "work")
	t.Setenv("NBCSS_BASE_DIR", "/opt/notebook")
	t.Setenv("NBCSS_STYLE", "monokai")
	t.Setenv("NBCSS_PREFIX", ".code")
	t.Setenv("NBCSS_LOG_LEVEL", "debug")
	t.Setenv("NBCSS_DISABLE", "true")

	env, err := loadEnvConfig()
	if err != nil {
		t.Fatalf("loadEnvConfig() error = %v", err)
	}

	want := envConfig{
		ConfigPath: "work",
		BaseDir:    "/opt/notebook",
		Style:      "monokai",
		Prefix:     ".code",
		LogLevel:   "debug",
		Disable:    true,
	}
	if *env != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *env, want)
	}
}

func TestLoadEnvConfig_InvalidBool(t *testing.T) {
	t.Setenv("NBCSS_DISABLE", "maybe")

	_, err := loadEnvConfig()
	if !errors.Is(err, ErrEnvConfig) {
		t.Errorf("loadEnvConfig() error = %v, want ErrEnvConfig", err)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("NBCSS_STYLE", "monokai")
	t.Setenv("NBCSS_BASEDIR", "/typo")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "NBCSS_BASEDIR") {
		t.Errorf("expected warning for NBCSS_BASEDIR, got %q", out)
	}
	if strings.Contains(out, "NBCSS_STYLE") {
		t.Errorf("unexpected warning for known variable: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig / TestApplyFlags - precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.BaseDir = "/from/config"
		applyEnvConfig(&envConfig{BaseDir: "/from/env", Style: "monokai", Disable: true}, cfg)

		if cfg.BaseDir != "/from/env" {
			t.Errorf("BaseDir = %q, want /from/env", cfg.BaseDir)
		}
		if cfg.Highlight.Style != "monokai" {
			t.Errorf("Style = %q, want monokai", cfg.Highlight.Style)
		}
		if cfg.Enabled {
			t.Error("Enabled = true, want false")
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.BaseDir = "/from/config"
		cfg.Highlight.Prefix = ".code"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.BaseDir != "/from/config" || cfg.Highlight.Prefix != ".code" || !cfg.Enabled {
			t.Errorf("config changed by empty env: %+v", cfg)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     cliFlags
		wantLevel string
		wantStyle string
	}{
		{"none keeps env", cliFlags{}, "warn", "dracula"},
		{"verbose", cliFlags{verbose: true}, "debug", "dracula"},
		{"quiet", cliFlags{quiet: true}, "error", "dracula"},
		{"style overrides env", cliFlags{style: "monokai"}, "warn", "monokai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			applyEnvConfig(&envConfig{Style: "dracula", LogLevel: "warn"}, cfg)
			applyFlags(&tt.flags, cfg)

			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
			if cfg.Highlight.Style != tt.wantStyle {
				t.Errorf("Style = %q, want %q", cfg.Highlight.Style, tt.wantStyle)
			}
		})
	}
}
