package highlight

import "errors"

// Sentinel errors for stylesheet generation.
var (
	// ErrUnknownStyle indicates the requested chroma style is not registered.
	ErrUnknownStyle = errors.New("unknown highlight style")

	// ErrInvalidPrefix indicates the prefix is not a single class selector.
	ErrInvalidPrefix = errors.New("invalid highlight prefix")

	// ErrGenerate indicates the formatter failed to write CSS.
	ErrGenerate = errors.New("highlight stylesheet generation failed")

	// ErrRescope indicates the generated CSS could not be tokenized.
	ErrRescope = errors.New("highlight stylesheet rescoping failed")
)
