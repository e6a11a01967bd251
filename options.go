package nbcss

import (
	"go.uber.org/zap"
)

// Option configures a Collector.
type Option func(*Collector)

// collectorConfig holds internal configuration for Collector.
type collectorConfig struct {
	baseDir     string
	baseDirFunc func() (string, error)
	candidates  []string
	style       string
	prefix      string
}

// WithEnabled sets the activation switch. A disabled collector does no I/O
// and its Transform leaves resources untouched. Default: enabled.
func WithEnabled(enabled bool) Option {
	return func(c *Collector) {
		c.Activatable = NewActivatable(enabled)
	}
}

// WithBaseDir sets the notebook installation directory, skipping discovery.
func WithBaseDir(dir string) Option {
	return func(c *Collector) {
		c.cfg.baseDir = dir
	}
}

// WithBaseDirFunc replaces installation directory discovery. fn runs on every
// regeneration; an error means "no installation" and is not fatal.
// Panics if fn is nil.
func WithBaseDirFunc(fn func() (string, error)) Option {
	if fn == nil {
		panic("nbcss: WithBaseDirFunc function must not be nil")
	}
	return func(c *Collector) {
		c.cfg.baseDirFunc = fn
	}
}

// WithCandidates replaces the default stylesheet layout. Paths are relative
// to the installation directory and are read in the given order.
func WithCandidates(candidates ...string) Option {
	return func(c *Collector) {
		c.cfg.candidates = append([]string(nil), candidates...)
	}
}

// WithSource replaces filesystem lookup entirely. The base directory and
// candidate options are ignored when a Source is set.
func WithSource(src Source) Option {
	return func(c *Collector) {
		c.source = src
	}
}

// WithHighlighter replaces the chroma highlighter. WithStyle is ignored when
// a Highlighter is set.
func WithHighlighter(h Highlighter) Option {
	return func(c *Collector) {
		c.highlighter = h
	}
}

// WithStyle selects the chroma style (e.g., "monokai"). Default: DefaultStyle.
func WithStyle(style string) Option {
	return func(c *Collector) {
		c.cfg.style = style
	}
}

// WithPrefix sets the class selector highlight rules are scoped under.
// Default: DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.cfg.prefix = prefix
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Collector) {
		if log == nil {
			log = zap.NewNop()
		}
		c.log = log
	}
}
