package highlight

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rescope rewrites top-level class selectors named in from (without the dot)
// to the selector to. Everything else, including comments and whitespace,
// is copied verbatim. Declaration blocks are never rewritten.
func Rescope(stylesheet string, from []string, to string) (string, error) {
	lexer := css.NewLexer(parse.NewInputString(stylesheet))

	var out strings.Builder
	out.Grow(len(stylesheet))

	depth := 0
	pendingDot := false

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return "", fmt.Errorf("%w: %v", ErrRescope, err)
			}
			break
		}

		if pendingDot {
			pendingDot = false
			if tt == css.IdentToken && depth == 0 && slices.Contains(from, string(data)) {
				out.WriteString(to)
				continue
			}
			out.WriteByte('.')
		}

		switch {
		case tt == css.DelimToken && len(data) == 1 && data[0] == '.':
			pendingDot = true
			continue
		case tt == css.LeftBraceToken:
			depth++
		case tt == css.RightBraceToken && depth > 0:
			depth--
		}
		out.Write(data)
	}

	if pendingDot {
		out.WriteByte('.')
	}
	return out.String(), nil
}
