package assets

import "path"

// staticDir is the notebook front-end static directory, relative to the
// installation base directory.
const staticDir = "frontend/html/notebook/static"

// defaultCandidates is the stylesheet layout of the notebook front-end.
// Order matters: later sheets override earlier rules of equal specificity.
var defaultCandidates = []string{
	path.Join(staticDir, "base", "css", "boilerplate.css"),
	path.Join(staticDir, "style", "style.min.css"),
	path.Join(staticDir, "notebook", "less", "notebook.less"),
	path.Join(staticDir, "notebook", "less", "renderedhtml.less"),
}

// DefaultCandidates returns the default stylesheet candidates in inlining order.
// Paths use forward slashes; the returned slice is a fresh copy.
func DefaultCandidates() []string {
	out := make([]string, len(defaultCandidates))
	copy(out, defaultCandidates)
	return out
}
