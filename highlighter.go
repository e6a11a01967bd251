package nbcss

import (
	"go.uber.org/zap"

	"github.com/alnah/go-nbcss/internal/highlight"
)

const (
	// DefaultStyle is the chroma style used when none is configured.
	DefaultStyle = highlight.DefaultStyle

	// DefaultPrefix is the class selector highlight rules are scoped under.
	DefaultPrefix = highlight.DefaultPrefix
)

// Highlighter generates the syntax-highlighting stylesheet.
// Implementations return CSS rules scoped under prefix, a class selector
// such as ".highlight".
type Highlighter interface {
	StyleDefs(prefix string) (string, error)
}

// HighlighterFunc adapts a function to the Highlighter interface.
type HighlighterFunc func(prefix string) (string, error)

// StyleDefs calls f(prefix).
func (f HighlighterFunc) StyleDefs(prefix string) (string, error) {
	return f(prefix)
}

// NewChromaHighlighter returns the default chroma-based Highlighter for the
// named style. An empty style selects DefaultStyle. Unknown styles fail at
// generation time with ErrUnknownStyle.
func NewChromaHighlighter(style string) Highlighter {
	return highlight.NewChroma(style, nil)
}

// newChromaHighlighter is NewChromaHighlighter with a logger.
func newChromaHighlighter(style string, log *zap.Logger) Highlighter {
	return highlight.NewChroma(style, log)
}

// HighlightStyles returns the available chroma style names, sorted.
func HighlightStyles() []string {
	return highlight.Styles()
}

// ValidatePrefix checks that prefix is a single class selector.
// Returns ErrInvalidPrefix otherwise.
func ValidatePrefix(prefix string) error {
	return convertError(highlight.ValidatePrefix(prefix))
}

// Compile-time interface checks.
var (
	_ Highlighter = (*highlight.Chroma)(nil)
	_ Highlighter = HighlighterFunc(nil)
)
