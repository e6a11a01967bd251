package nbcss

// Resource keys written by Collector.Transform.
const (
	InliningKey = "inlining"
	CSSKey      = "css"
)

// Resources is the mapping pipeline steps use to pass data to the templating
// stage. It is owned by the caller; each step contributes its own keys.
type Resources map[string]any

// Inlining returns the nested "inlining" mapping. Both Resources and plain
// map[string]any values are accepted; ok is false if the key is absent,
// nil, or holds another type.
func (r Resources) Inlining() (inlining Resources, ok bool) {
	switch v := r[InliningKey].(type) {
	case Resources:
		return v, v != nil
	case map[string]any:
		return Resources(v), v != nil
	default:
		return nil, false
	}
}

// InlinedCSS returns the Bundle published under resources["inlining"]["css"].
func (r Resources) InlinedCSS() (Bundle, bool) {
	inlining, ok := r.Inlining()
	if !ok {
		return Bundle{}, false
	}
	css, ok := inlining[CSSKey].(Bundle)
	return css, ok
}
