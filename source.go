package nbcss

import (
	"fmt"

	"github.com/alnah/go-nbcss/internal/assets"
)

// AssetStatus is the outcome of looking up one stylesheet candidate.
type AssetStatus int

const (
	// AssetAbsent means the file does not exist in this installation.
	AssetAbsent AssetStatus = iota
	// AssetPresent means the file was read.
	AssetPresent
	// AssetUnreadable means the file exists but could not be read as UTF-8 text.
	AssetUnreadable
)

func (s AssetStatus) String() string {
	switch s {
	case AssetAbsent:
		return "absent"
	case AssetPresent:
		return "present"
	case AssetUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("AssetStatus(%d)", int(s))
	}
}

// AssetLookup is the result of resolving one candidate.
type AssetLookup struct {
	Candidate string      // Relative candidate path
	Path      string      // Resolved filesystem path, if any
	Status    AssetStatus // Outcome
	Content   string      // Stylesheet text when Status is AssetPresent
	Err       error       // Cause when absent or unreadable
}

// Source defines the contract for locating candidate stylesheets.
// Lookup never fails: absent and unreadable files are reported through
// AssetLookup.Status so the caller decides what to skip.
type Source interface {
	// Candidates returns the candidate paths in inlining order.
	Candidates() []string

	// Lookup resolves one candidate.
	Lookup(candidate string) AssetLookup
}

// DefaultCandidates returns the notebook front-end stylesheet layout in
// inlining order.
func DefaultCandidates() []string {
	return assets.DefaultCandidates()
}

// NewFilesystemSource creates a Source reading candidates relative to baseDir.
// A nil candidates slice selects DefaultCandidates. An empty or nonexistent
// baseDir is allowed and reports every candidate as absent.
//
// Returns ErrInvalidCandidate if a candidate is absolute or escapes baseDir.
func NewFilesystemSource(baseDir string, candidates []string) (Source, error) {
	if candidates == nil {
		candidates = assets.DefaultCandidates()
	}
	src, err := assets.NewFilesystemSource(baseDir, candidates)
	if err != nil {
		return nil, convertError(err)
	}
	return &filesystemSource{fs: src}, nil
}

// filesystemSource wraps the internal loader to return public types.
type filesystemSource struct {
	fs *assets.FilesystemSource
}

func (s *filesystemSource) Candidates() []string {
	return s.fs.Candidates()
}

func (s *filesystemSource) Lookup(candidate string) AssetLookup {
	l := s.fs.Lookup(candidate)

	var status AssetStatus
	switch l.Status {
	case assets.StatusPresent:
		status = AssetPresent
	case assets.StatusUnreadable:
		status = AssetUnreadable
	default:
		status = AssetAbsent
	}

	return AssetLookup{
		Candidate: l.Candidate,
		Path:      l.Path,
		Status:    status,
		Content:   l.Content,
		Err:       convertError(l.Err),
	}
}

// Compile-time interface check.
var _ Source = (*filesystemSource)(nil)
