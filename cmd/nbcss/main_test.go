package main

// Notes:
// - runMain tests pass --base-dir explicitly so results never depend on a
//   notebook installation on the test machine.
// - Logs go to the injected stderr; assertions only look for stable fragments.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nbcss "github.com/alnah/go-nbcss"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	env := &Environment{Stdout: &out, Stderr: &errOut}
	code = runMain(append([]string{"nbcss"}, args...), env)
	return code, out.String(), errOut.String()
}

// notebookDir creates an installation with the first and third default
// stylesheets present.
func notebookDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	candidates := nbcss.DefaultCandidates()
	for _, c := range []struct{ rel, content string }{
		{candidates[0], "html{margin:0}"},
		{candidates[2], ".cell{padding:2px}"},
	} {
		path := filepath.Join(dir, filepath.FromSlash(c.rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

// ---------------------------------------------------------------------------
// TestRunMain - flags and informational output
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "version",
			args:         []string{"--version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"nbcss " + Version},
		},
		{
			name:         "help",
			args:         []string{"--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: nbcss", "--base-dir", "NBCSS_BASE_DIR"},
		},
		{
			name:         "list styles",
			args:         []string{"--list-styles"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"monokai", "pygments"},
		},
		{
			name:         "unknown flag",
			args:         []string{"--nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"error:", "Usage: nbcss"},
		},
		{
			name:         "positional argument",
			args:         []string{"notebook.ipynb"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected arguments: notebook.ipynb"},
		},
		{
			name:         "quiet and verbose",
			args:         []string{"-q", "-v", "--disable"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"mutually exclusive"},
		},
		{
			name:         "unknown style",
			args:         []string{"--base-dir", "/nonexistent", "--style", "no-such-style", "-q"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown highlight style", "hint:", "--list-styles"},
		},
		{
			name:         "invalid prefix",
			args:         []string{"--base-dir", "/nonexistent", "--prefix", "div.code", "-q"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid", "hint:", "--prefix .highlight"},
		},
		{
			name:         "config not found",
			args:         []string{"--config", filepath.Join("nonexistent", "nbcss.yaml")},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, tt.args...)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Collect - stylesheet output
// ---------------------------------------------------------------------------

func TestRunMain_CollectToStdout(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--base-dir", notebookDir(t), "-q")
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	if !strings.HasPrefix(stdout, "html{margin:0}\n.cell{padding:2px}\n") {
		t.Errorf("stdout should start with the files in order, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, ".highlight") {
		t.Errorf("stdout missing highlight stylesheet:\n%s", stdout)
	}
}

func TestRunMain_CollectWithoutInstallation(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "--base-dir", filepath.Join(t.TempDir(), "missing"), "--prefix", ".code", "-q")
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout, ".code .") {
		t.Errorf("stdout should scope highlight rules under .code, got:\n%s", stdout)
	}
	if strings.Contains(stdout, ".chroma") {
		t.Errorf("stdout still holds .chroma selectors:\n%s", stdout)
	}

	highlightOnly, err := nbcss.Collect(nil, nbcss.NewChromaHighlighter(""), ".code", nil)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if highlightOnly.Len() != 1 {
		t.Fatalf("Collect() = %d sheets, want 1", highlightOnly.Len())
	}
	if stdout != highlightOnly.String()+"\n" {
		t.Errorf("stdout should hold exactly the highlight stylesheet, got:\n%s", stdout)
	}
}

func TestRunMain_Disabled(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--base-dir", notebookDir(t), "--disable")
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty for disabled collection", stdout)
	}
	if !strings.Contains(stderr, "collection disabled") {
		t.Errorf("stderr should mention disabled collection, got %q", stderr)
	}
}

func TestRunMain_OutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "notebook.css")
	code, stdout, stderr := runCLI(t, "--base-dir", notebookDir(t), "-o", out)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty when writing to a file", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "html{margin:0}\n") {
		t.Errorf("output file content:\n%s", data)
	}
	if !strings.Contains(stderr, "stylesheets written") {
		t.Errorf("stderr should log the write, got %q", stderr)
	}
}

func TestRunMain_OutputDirMissing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "missing", "notebook.css")
	code, _, stderr := runCLI(t, "--base-dir", notebookDir(t), "-o", out, "-q")
	if code != ExitIO {
		t.Errorf("runMain() = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr, "check parent directory") {
		t.Errorf("stderr should contain output hint, got %q", stderr)
	}
}

func TestRunMain_List(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--base-dir", notebookDir(t), "--list", "-q")
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	candidates := nbcss.DefaultCandidates()
	for _, want := range []string{
		"base dir: ",
		"present     " + candidates[0] + " (14 bytes)",
		"absent      " + candidates[1],
		"present     " + candidates[2],
		"absent      " + candidates[3],
		"highlight   pygments (",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout should contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestRunMain_ListDisabled(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "--list", "--disable")
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	if !strings.Contains(stdout, "collection disabled") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nbcss.yaml")
	yaml := "enabled: true\n" +
		"baseDir: " + notebookDir(t) + "\n" +
		"highlight:\n  style: monokai\n  prefix: .code\n" +
		"log:\n  level: none\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Run("config values apply", func(t *testing.T) {
		t.Parallel()

		code, stdout, stderr := runCLI(t, "--config", cfgPath)
		if code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
		}
		if !strings.HasPrefix(stdout, "html{margin:0}") || !strings.Contains(stdout, ".code") {
			t.Errorf("stdout:\n%s", stdout)
		}
		if stderr != "" && !strings.Contains(stderr, "warning: unknown environment variable") {
			t.Errorf("log level none should silence logs, got %q", stderr)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		code, stdout, stderr := runCLI(t, "--config", cfgPath, "--prefix", ".flag")
		if code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
		}
		if !strings.Contains(stdout, ".flag") || strings.Contains(stdout, ".code ") {
			t.Errorf("stdout:\n%s", stdout)
		}
	})
}

func TestRunMain_ConfigInvalid(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(cfgPath, []byte("enabled: true\nunknownField: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, _, stderr := runCLI(t, "--config", cfgPath)
	if code != ExitUsage {
		t.Errorf("runMain() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "failed to parse config") {
		t.Errorf("stderr = %q", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Env - environment precedence (not parallel: t.Setenv)
// ---------------------------------------------------------------------------

func TestRunMain_EnvBaseDir(t *testing.T) {
	t.Setenv("NBCSS_BASE_DIR", notebookDir(t))
	t.Setenv("NBCSS_LOG_LEVEL", "none")

	code, stdout, stderr := runCLI(t)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "html{margin:0}") {
		t.Errorf("stdout should use NBCSS_BASE_DIR, got:\n%s", stdout)
	}
}

func TestRunMain_EnvDisable(t *testing.T) {
	t.Setenv("NBCSS_DISABLE", "true")

	code, stdout, _ := runCLI(t, "-q")
	if code != ExitSuccess || stdout != "" {
		t.Errorf("runMain() = %d, stdout %q; want success and no output", code, stdout)
	}
}

func TestRunMain_EnvInvalid(t *testing.T) {
	t.Setenv("NBCSS_DISABLE", "maybe")

	code, _, stderr := runCLI(t)
	if code != ExitUsage {
		t.Errorf("runMain() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "invalid environment variable") {
		t.Errorf("stderr = %q", stderr)
	}
}
