package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrBaseDirNotFound indicates no installation directory could be discovered.
	ErrBaseDirNotFound = errors.New("notebook installation directory not found")

	// ErrEmptyCandidate indicates a candidate path is empty.
	ErrEmptyCandidate = errors.New("empty stylesheet candidate")

	// ErrAbsoluteCandidate indicates a candidate path is absolute instead of
	// relative to the base directory.
	ErrAbsoluteCandidate = errors.New("stylesheet candidate must be relative")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAssetRead indicates an I/O error other than "not found" while reading.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrInvalidEncoding indicates the file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("asset is not valid UTF-8")
)
