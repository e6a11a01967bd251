package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Status is the outcome of looking up one stylesheet candidate.
type Status int

const (
	// StatusAbsent means the file does not exist in this installation.
	StatusAbsent Status = iota
	// StatusPresent means the file was read and decoded.
	StatusPresent
	// StatusUnreadable means the file exists but could not be used.
	StatusUnreadable
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	case StatusUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Lookup is the result of resolving one candidate against the base directory.
type Lookup struct {
	Candidate string // Candidate as given (relative, slash separated)
	Path      string // Joined filesystem path; empty if no base directory
	Status    Status
	Content   string // Decoded text, set only when Status is StatusPresent
	Err       error  // Cause for absent (optional) or unreadable (always set)
}

// Present reports whether the lookup produced stylesheet text.
func (l Lookup) Present() bool {
	return l.Status == StatusPresent
}

// FilesystemSource resolves stylesheet candidates under a base directory.
type FilesystemSource struct {
	baseDir    string
	candidates []string
}

// NewFilesystemSource creates a FilesystemSource for the given base directory.
// An empty baseDir is allowed: every lookup then reports StatusAbsent.
// The base directory is not required to exist, since a missing installation
// only means missing stylesheets.
// Returns an error if any candidate fails ValidateCandidate.
func NewFilesystemSource(baseDir string, candidates []string) (*FilesystemSource, error) {
	if err := ValidateCandidates(candidates); err != nil {
		return nil, err
	}

	if baseDir != "" {
		absPath, err := filepath.Abs(baseDir)
		if err != nil {
			return nil, fmt.Errorf("resolving base directory: %w", err)
		}
		baseDir = absPath
	}

	return &FilesystemSource{
		baseDir:    baseDir,
		candidates: append([]string(nil), candidates...),
	}, nil
}

// BaseDir returns the absolute base directory, or "" if none.
func (f *FilesystemSource) BaseDir() string {
	return f.baseDir
}

// Candidates returns a copy of the candidate list in lookup order.
func (f *FilesystemSource) Candidates() []string {
	return append([]string(nil), f.candidates...)
}

// Lookup reads one candidate. It never panics and never returns an error
// directly: the outcome is carried by Lookup.Status and Lookup.Err.
func (f *FilesystemSource) Lookup(candidate string) Lookup {
	result := Lookup{Candidate: candidate}

	if err := ValidateCandidate(candidate); err != nil {
		result.Status = StatusUnreadable
		result.Err = err
		return result
	}

	if f.baseDir == "" {
		result.Status = StatusAbsent
		result.Err = ErrBaseDirNotFound
		return result
	}

	filePath := filepath.Join(f.baseDir, filepath.FromSlash(strings.ReplaceAll(candidate, `\`, "/")))
	result.Path = filePath

	if err := f.verifyPathContainment(filePath); err != nil {
		result.Status = StatusUnreadable
		result.Err = err
		return result
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusAbsent
			result.Err = err
			return result
		}
		result.Status = StatusUnreadable
		result.Err = fmt.Errorf("%w: %v", ErrAssetRead, err)
		return result
	}

	text, err := decodeText(data)
	if err != nil {
		result.Status = StatusUnreadable
		result.Err = fmt.Errorf("%w: %s", err, filePath)
		return result
	}

	result.Status = StatusPresent
	result.Content = text
	return result
}

// verifyPathContainment ensures the joined path is within baseDir.
// Candidates are validated lexically already; this catches anything that
// slips through path cleaning.
func (f *FilesystemSource) verifyPathContainment(filePath string) error {
	rel, err := filepath.Rel(f.baseDir, filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// decodeText validates UTF-8 and strips a leading byte order mark, which
// would otherwise end up in the middle of the inlined <style> block.
func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}
