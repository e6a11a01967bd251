package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nbcss/internal/fileutil"
)

// BaseDirEnv names the environment variable that points at the notebook
// installation directory.
const BaseDirEnv = "NBCSS_BASE_DIR"

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// DefaultBaseDir returns the fallback installation directory under the user
// config directory, or "" if the user config directory is unknown.
func DefaultBaseDir() string {
	dir, err := userConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go-nbcss", "notebook")
}

// DiscoverBaseDir resolves the notebook installation directory.
// Tries in order: the NBCSS_BASE_DIR environment variable, then
// DefaultBaseDir. lookupEnv is typically os.LookupEnv.
// Returns ErrBaseDirNotFound listing the tried paths if none is a directory.
func DiscoverBaseDir(lookupEnv func(string) (string, bool)) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	var tried []string

	if dir, ok := lookupEnv(BaseDirEnv); ok && dir != "" {
		if fileutil.DirExists(dir) {
			return dir, nil
		}
		tried = append(tried, dir)
	}

	if dir := DefaultBaseDir(); dir != "" {
		if fileutil.DirExists(dir) {
			return dir, nil
		}
		tried = append(tried, dir)
	}

	return "", fmt.Errorf("%w: tried %s", ErrBaseDirNotFound, strings.Join(tried, ", "))
}
