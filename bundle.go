package nbcss

import (
	"iter"
	"slices"
	"strings"
)

// Bundle is an immutable, ordered list of stylesheet texts.
// Order is inlining order: later sheets override earlier rules of equal
// specificity. The zero value is an empty bundle.
type Bundle struct {
	sheets []string
}

// NewBundle returns a Bundle holding a copy of sheets.
func NewBundle(sheets ...string) Bundle {
	return newBundle(slices.Clone(sheets))
}

// newBundle takes ownership of sheets without copying.
func newBundle(sheets []string) Bundle {
	return Bundle{sheets: sheets}
}

// Len returns the number of stylesheets.
func (b Bundle) Len() int {
	return len(b.sheets)
}

// IsEmpty reports whether the bundle holds no stylesheets.
func (b Bundle) IsEmpty() bool {
	return len(b.sheets) == 0
}

// At returns the i-th stylesheet. It panics if i is out of range.
func (b Bundle) At(i int) string {
	return b.sheets[i]
}

// Last returns the final stylesheet, which for a collected bundle is the
// highlighter stylesheet. ok is false for an empty bundle.
func (b Bundle) Last() (sheet string, ok bool) {
	if len(b.sheets) == 0 {
		return "", false
	}
	return b.sheets[len(b.sheets)-1], true
}

// All iterates over index and stylesheet in order.
func (b Bundle) All() iter.Seq2[int, string] {
	return slices.All(b.sheets)
}

// Strings returns a copy of the stylesheets.
func (b Bundle) Strings() []string {
	return slices.Clone(b.sheets)
}

// Equal reports whether both bundles hold the same stylesheets in the same order.
func (b Bundle) Equal(other Bundle) bool {
	return slices.Equal(b.sheets, other.sheets)
}

// String joins the stylesheets with a newline, ready for a single <style> element.
func (b Bundle) String() string {
	return strings.Join(b.sheets, "\n")
}
