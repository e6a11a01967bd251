package highlight

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/maruel/natural"
	"go.uber.org/zap"
)

const (
	// DefaultStyle matches the look of the classic notebook export.
	DefaultStyle = "pygments"

	// DefaultPrefix is the class wrapping highlighted code cells.
	DefaultPrefix = ".highlight"
)

// chromaRootClasses are the classes chroma scopes its rules under.
var chromaRootClasses = []string{"chroma", "bg"}

// prefixPattern accepts a single CSS class selector.
var prefixPattern = regexp.MustCompile(`^\.-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// ValidatePrefix checks that prefix is a single class selector such as ".highlight".
func ValidatePrefix(prefix string) error {
	if !prefixPattern.MatchString(prefix) {
		return fmt.Errorf("%w: %q (want a class selector like %q)", ErrInvalidPrefix, prefix, DefaultPrefix)
	}
	return nil
}

// Styles returns the registered chroma style names in natural order.
func Styles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Chroma generates highlight stylesheets from a chroma style.
type Chroma struct {
	style     string
	formatter *chromahtml.Formatter
	log       *zap.Logger
}

// NewChroma creates a Chroma generator for the named style.
// An empty style selects DefaultStyle. The style is resolved lazily by
// StyleDefs so an unknown name surfaces as a generation error.
func NewChroma(style string, log *zap.Logger) *Chroma {
	if style == "" {
		style = DefaultStyle
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Chroma{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		log:       log.Named("highlight"),
	}
}

// Style returns the configured style name.
func (c *Chroma) Style() string {
	return c.style
}

// StyleDefs returns the stylesheet for the configured style, with every rule
// scoped under prefix.
func (c *Chroma) StyleDefs(prefix string) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}

	style, ok := styles.Registry[c.style]
	if !ok {
		style, ok = styles.Registry[strings.ToLower(c.style)]
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, c.style)
	}

	var buf bytes.Buffer
	if err := c.formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	css, err := Rescope(buf.String(), chromaRootClasses, prefix)
	if err != nil {
		return "", err
	}

	c.log.Debug("generated highlight stylesheet",
		zap.String("style", style.Name),
		zap.String("prefix", prefix),
		zap.Int("bytes", len(css)))

	return css, nil
}
