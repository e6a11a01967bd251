package nbcss

import (
	"errors"

	"github.com/alnah/go-nbcss/internal/assets"
	"github.com/alnah/go-nbcss/internal/highlight"
)

// Sentinel errors for library operations.
var (
	// ErrHighlighter wraps any failure of the highlighter stylesheet generator.
	ErrHighlighter = errors.New("highlighter stylesheet generation failed")

	// Highlighter configuration errors.
	ErrUnknownStyle  = errors.New("unknown highlight style")
	ErrInvalidPrefix = errors.New("invalid highlight prefix")

	// Stylesheet source errors.
	ErrInvalidCandidate = errors.New("invalid stylesheet candidate")
	ErrBaseDirNotFound  = errors.New("notebook installation directory not found")
	ErrAssetRead        = errors.New("failed to read stylesheet")
	ErrInvalidEncoding  = errors.New("stylesheet is not valid UTF-8")
)

// convertError maps internal errors to public errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, highlight.ErrUnknownStyle):
		return wrapError(ErrUnknownStyle, err)
	case errors.Is(err, highlight.ErrInvalidPrefix):
		return wrapError(ErrInvalidPrefix, err)
	case errors.Is(err, assets.ErrEmptyCandidate),
		errors.Is(err, assets.ErrAbsoluteCandidate),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidCandidate, err)
	case errors.Is(err, assets.ErrBaseDirNotFound):
		return wrapError(ErrBaseDirNotFound, err)
	case errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrAssetRead, err)
	case errors.Is(err, assets.ErrInvalidEncoding):
		return wrapError(ErrInvalidEncoding, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against both the sentinel and the original chain.
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap exposes the public sentinel first, then the original cause, so
// io/fs errors such as fs.ErrPermission remain matchable.
func (e *wrappedError) Unwrap() []error {
	return []error{e.sentinel, e.original}
}
