// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// maxListed caps how many alternatives a hint lists.
const maxListed = 8

// ForBaseDirNotFound returns hints when no notebook installation was found.
// Suggests NBCSS_BASE_DIR unless it is already set.
func ForBaseDirNotFound() string {
	var hints []string

	if os.Getenv("NBCSS_BASE_DIR") == "" {
		hints = append(hints, "set NBCSS_BASE_DIR to the notebook installation directory")
	}
	hints = append(hints, "or use --base-dir")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-nbcss/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-nbcss") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownStyle lists some of the available highlight styles.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) > maxListed {
		return format("available: " + strings.Join(available[:maxListed], ", ") + ", ... (see --list-styles)")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidPrefix returns a hint for malformed highlight prefixes.
func ForInvalidPrefix() string {
	return format("the prefix must be one class selector, e.g. --prefix .highlight")
}

// ForOutputFile returns hints for output file write errors.
func ForOutputFile() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
