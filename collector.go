package nbcss

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/alnah/go-nbcss/internal/assets"
	"github.com/alnah/go-nbcss/internal/highlight"
)

// Compile-time interface implementation checks.
var _ Transformer = (*Collector)(nil)

// Collector gathers notebook stylesheets and publishes them into the export
// pipeline's resources. Create with NewCollector and call Transform once per
// document.
//
// A Collector is safe for concurrent use as long as each Transform call gets
// its own Resources.
type Collector struct {
	Activatable

	cfg         collectorConfig
	source      Source // nil: filesystem lookup under the base directory
	highlighter Highlighter
	style       string // chroma style; empty for a custom Highlighter
	log         *zap.Logger

	regen  sync.Mutex // serializes Regenerate
	mu     sync.RWMutex
	header Bundle
	report Report
}

// NewCollector creates a Collector. When enabled (the default), stylesheets
// are collected before it returns; missing files are skipped, but a
// highlighter failure is returned as an error wrapping ErrHighlighter.
//
// Returns ErrInvalidPrefix or ErrInvalidCandidate for bad options, even when
// disabled.
func NewCollector(opts ...Option) (*Collector, error) {
	c := &Collector{
		Activatable: NewActivatable(true),
		cfg: collectorConfig{
			baseDirFunc: discoverBaseDir,
			candidates:  assets.DefaultCandidates(),
			style:       DefaultStyle,
			prefix:      DefaultPrefix,
		},
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.Named("nbcss")

	if err := highlight.ValidatePrefix(c.cfg.prefix); err != nil {
		return nil, convertError(err)
	}
	if c.source == nil {
		if err := assets.ValidateCandidates(c.cfg.candidates); err != nil {
			return nil, convertError(err)
		}
	}
	if c.highlighter == nil {
		chroma := highlight.NewChroma(c.cfg.style, c.log)
		c.highlighter = chroma
		c.style = chroma.Style()
	}

	if c.Enabled() {
		if err := c.Regenerate(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// discoverBaseDir is the default installation directory lookup.
func discoverBaseDir() (string, error) {
	return assets.DiscoverBaseDir(os.LookupEnv)
}

// Regenerate collects the stylesheets again and replaces the header.
// The header is replaced only on success: if the highlighter fails, the
// previous header stays in place and the error wraps ErrHighlighter.
// Concurrent calls run one at a time, so the header always reflects the
// last call to complete.
func (c *Collector) Regenerate() error {
	c.regen.Lock()
	defer c.regen.Unlock()

	src, report := c.resolveSource()

	bundle, lookups, err := collect(src, c.highlighter, c.cfg.prefix, c.log)
	if err != nil {
		return err
	}
	report.Assets = lookups

	c.mu.Lock()
	c.header = bundle
	c.report = report
	c.mu.Unlock()

	return nil
}

// resolveSource returns the Source for this regeneration. Failing to find the
// installation is not an error: every candidate is then reported absent.
func (c *Collector) resolveSource() (Source, Report) {
	if c.source != nil {
		return c.source, Report{}
	}

	var report Report

	baseDir := c.cfg.baseDir
	if baseDir == "" {
		dir, err := c.cfg.baseDirFunc()
		if err != nil {
			c.log.Warn("notebook installation not found, only the highlight stylesheet will be inlined",
				zap.Error(err))
			report.BaseDirErr = convertError(err)
			dir = ""
		}
		baseDir = dir
	}

	fsSrc, err := assets.NewFilesystemSource(baseDir, c.cfg.candidates)
	if err != nil {
		// Candidates were validated in NewCollector, so only resolving the
		// base directory to an absolute path can fail here.
		c.log.Warn("cannot resolve notebook installation directory",
			zap.String("baseDir", baseDir), zap.Error(err))
		report.BaseDirErr = err
		fsSrc, _ = assets.NewFilesystemSource("", c.cfg.candidates)
	}

	report.BaseDir = fsSrc.BaseDir()
	return &filesystemSource{fs: fsSrc}, report
}

// Header returns the current stylesheet bundle. It is empty for a disabled
// collector.
func (c *Collector) Header() Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.header
}

// HighlightStyle returns the chroma style in use, or "" when WithHighlighter
// supplied a custom Highlighter.
func (c *Collector) HighlightStyle() string {
	return c.style
}

// Report returns the outcome of the last successful regeneration.
func (c *Collector) Report() Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}

// Transform publishes the header under res["inlining"]["css"] and returns
// doc and res. Other keys, including other "inlining" entries, are kept.
// A nil res is replaced by a new Resources. When disabled, doc and res are
// returned untouched.
func (c *Collector) Transform(doc Document, res Resources) (Document, Resources) {
	return c.Call(doc, res, c.publish)
}

func (c *Collector) publish(doc Document, res Resources) (Document, Resources) {
	if res == nil {
		res = Resources{}
	}

	inlining, ok := res.Inlining()
	if !ok {
		inlining = Resources{}
		res[InliningKey] = inlining
	}
	inlining[CSSKey] = c.Header()

	return doc, res
}

// Collect reads every candidate of src in order, keeps the present ones, and
// appends the highlighter stylesheet for prefix as the last element.
// A nil src collects only the highlighter stylesheet; a nil hl uses the
// default chroma highlighter; a nil log disables logging.
//
// Absent and unreadable candidates are skipped. A highlighter error is
// returned wrapping ErrHighlighter and no Bundle is produced.
func Collect(src Source, hl Highlighter, prefix string, log *zap.Logger) (Bundle, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return Bundle{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if hl == nil {
		hl = newChromaHighlighter(DefaultStyle, log)
	}
	bundle, _, err := collect(src, hl, prefix, log)
	return bundle, err
}

// collect builds the bundle into a local slice so a failure never exposes a
// partial result.
func collect(src Source, hl Highlighter, prefix string, log *zap.Logger) (Bundle, []AssetLookup, error) {
	var candidates []string
	if src != nil {
		candidates = src.Candidates()
	}

	sheets := make([]string, 0, len(candidates)+1)
	lookups := make([]AssetLookup, 0, len(candidates))

	for _, candidate := range candidates {
		lookup := src.Lookup(candidate)
		lookups = append(lookups, lookup)

		switch lookup.Status {
		case AssetPresent:
			sheets = append(sheets, lookup.Content)
			log.Debug("stylesheet loaded",
				zap.String("candidate", candidate),
				zap.String("path", lookup.Path),
				zap.Int("bytes", len(lookup.Content)))
		case AssetAbsent:
			log.Debug("stylesheet absent, skipped",
				zap.String("candidate", candidate),
				zap.String("path", lookup.Path))
		default:
			log.Warn("stylesheet unreadable, skipped",
				zap.String("candidate", candidate),
				zap.String("path", lookup.Path),
				zap.Error(lookup.Err))
		}
	}

	css, err := hl.StyleDefs(prefix)
	if err != nil {
		return Bundle{}, nil, fmt.Errorf("%w: %w", ErrHighlighter, convertError(err))
	}
	sheets = append(sheets, css)

	log.Debug("stylesheets collected",
		zap.Int("candidates", len(candidates)),
		zap.Int("files", len(sheets)-1))

	return newBundle(sheets), lookups, nil
}
