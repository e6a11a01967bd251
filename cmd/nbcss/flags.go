package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config  string
	baseDir string
	style   string
	prefix  string
	output  string
	disable bool

	list       bool
	listStyles bool
	version    bool

	quiet   bool
	verbose bool
}

// newFlagSet registers every flag on a new FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("nbcss", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// Collection
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.baseDir, "base-dir", "", "notebook installation directory")
	fs.StringVar(&f.style, "style", "", "chroma highlight style")
	fs.StringVar(&f.prefix, "prefix", "", "class selector highlight rules are scoped under")
	fs.BoolVar(&f.disable, "disable", false, "disable collection (publishes nothing)")

	// Output
	fs.StringVarP(&f.output, "output", "o", "", "write stylesheets to file instead of stdout")
	fs.BoolVar(&f.list, "list", false, "list candidate stylesheets and their status")
	fs.BoolVar(&f.listStyles, "list-styles", false, "list available highlight styles")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")

	return fs
}

// parseFlags parses args (without the program name).
// Returns flag.ErrHelp when -h/--help is given.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errUnexpectedArgs(fs.Args())
	}

	return f, nil
}
