package nbcss

// Report describes the last regeneration: where stylesheets were looked up
// and what happened to each candidate.
type Report struct {
	BaseDir    string        // Installation directory used; empty if none
	BaseDirErr error         // Discovery failure, if any
	Assets     []AssetLookup // One entry per candidate, in order
}

// Present returns the candidates that were read.
func (r Report) Present() []AssetLookup {
	return r.filter(func(l AssetLookup) bool { return l.Status == AssetPresent })
}

// Skipped returns the absent and unreadable candidates.
func (r Report) Skipped() []AssetLookup {
	return r.filter(func(l AssetLookup) bool { return l.Status != AssetPresent })
}

func (r Report) filter(keep func(AssetLookup) bool) []AssetLookup {
	var out []AssetLookup
	for _, l := range r.Assets {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
