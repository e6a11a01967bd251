package assets

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ValidateCandidate checks that a candidate is a clean relative path that
// cannot leave the base directory. Both slash styles are accepted.
func ValidateCandidate(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return ErrEmptyCandidate
	}
	if strings.ContainsRune(candidate, 0) {
		return fmt.Errorf("%w: %q contains null byte", ErrPathTraversal, candidate)
	}

	slashed := strings.ReplaceAll(candidate, `\`, "/")
	if path.IsAbs(slashed) || filepath.IsAbs(candidate) || filepath.VolumeName(candidate) != "" {
		return fmt.Errorf("%w: %q", ErrAbsoluteCandidate, candidate)
	}

	for _, part := range strings.Split(slashed, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q", ErrPathTraversal, candidate)
		}
	}
	return nil
}

// ValidateCandidates validates every candidate, returning the first error.
func ValidateCandidates(candidates []string) error {
	for _, c := range candidates {
		if err := ValidateCandidate(c); err != nil {
			return err
		}
	}
	return nil
}
