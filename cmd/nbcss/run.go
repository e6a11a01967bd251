package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	nbcss "github.com/alnah/go-nbcss"
	"github.com/alnah/go-nbcss/internal/config"
	"github.com/alnah/go-nbcss/internal/fileutil"
	"github.com/alnah/go-nbcss/internal/highlight"
	"github.com/alnah/go-nbcss/internal/hints"
)

// outputPerm is the mode of files written with --output.
const outputPerm = 0o644

// runMain parses args (including the program name), runs the collector and
// returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case flags.version:
		fmt.Fprintf(env.Stdout, "nbcss %s\n", Version)
		return ExitSuccess
	case flags.listStyles:
		for _, name := range nbcss.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return ExitSuccess
	}

	if err := run(flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run resolves configuration, collects stylesheets and writes the result.
func run(flags *cliFlags, env *Environment) error {
	if flags.quiet && flags.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	log, err := cfg.Log.Prepare(env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	collector, err := nbcss.NewCollector(collectorOptions(cfg, log)...)
	if err != nil {
		return err
	}

	if flags.list {
		printReport(env.Stdout, collector)
		return nil
	}

	_, res := collector.Transform(nil, nbcss.Resources{})
	css, published := res.InlinedCSS()
	if !published {
		log.Info("collection disabled, nothing to write")
		return nil
	}

	return writeOutput(flags.output, css, env.Stdout, log)
}

// resolveConfig merges config file, environment and flags.
// Precedence: flags > env > config file > defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	applyFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// collectorOptions maps a resolved config onto collector options.
func collectorOptions(cfg *config.Config, log *zap.Logger) []nbcss.Option {
	opts := []nbcss.Option{
		nbcss.WithEnabled(cfg.Enabled),
		nbcss.WithStyle(cfg.Highlight.Style),
		nbcss.WithLogger(log),
	}
	if cfg.Highlight.Prefix != "" {
		opts = append(opts, nbcss.WithPrefix(cfg.Highlight.Prefix))
	}
	if cfg.BaseDir != "" {
		opts = append(opts, nbcss.WithBaseDir(cfg.BaseDir))
	}
	if len(cfg.Candidates) > 0 {
		opts = append(opts, nbcss.WithCandidates(cfg.Candidates...))
	}
	return opts
}

// writeOutput writes the bundle to path, or to stdout when path is empty.
func writeOutput(path string, css nbcss.Bundle, stdout io.Writer, log *zap.Logger) error {
	content := css.String() + "\n"

	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}

	if err := fileutil.WriteFileAtomic(path, content, outputPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	log.Info("stylesheets written",
		zap.String("path", path),
		zap.Int("sheets", css.Len()),
		zap.Int("bytes", len(content)))
	return nil
}

// printReport lists each candidate with its status, then the highlighter
// stylesheet.
func printReport(w io.Writer, collector *nbcss.Collector) {
	if !collector.Enabled() {
		fmt.Fprintln(w, "collection disabled")
		return
	}

	report := collector.Report()
	if report.BaseDir != "" {
		fmt.Fprintf(w, "base dir: %s\n", report.BaseDir)
	} else {
		fmt.Fprintln(w, "base dir: not found")
	}
	if report.BaseDirErr != nil {
		fmt.Fprintf(w, "  %v%s\n", report.BaseDirErr, hints.ForBaseDirNotFound())
	}

	for _, lookup := range report.Assets {
		switch lookup.Status {
		case nbcss.AssetPresent:
			fmt.Fprintf(w, "%-11s %s (%d bytes)\n", lookup.Status, lookup.Candidate, len(lookup.Content))
		case nbcss.AssetUnreadable:
			fmt.Fprintf(w, "%-11s %s: %v\n", lookup.Status, lookup.Candidate, lookup.Err)
		default:
			fmt.Fprintf(w, "%-11s %s\n", lookup.Status, lookup.Candidate)
		}
	}

	if css, ok := collector.Header().Last(); ok {
		style := collector.HighlightStyle()
		if style == "" {
			style = "custom"
		}
		fmt.Fprintf(w, "%-11s %s (%d bytes)\n", "highlight", style, len(css))
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(searchedPaths(err))
	case errors.Is(err, nbcss.ErrUnknownStyle):
		return hints.ForUnknownStyle(nbcss.HighlightStyles())
	case errors.Is(err, nbcss.ErrInvalidPrefix), errors.Is(err, highlight.ErrInvalidPrefix):
		return hints.ForInvalidPrefix()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputFile()
	default:
		return ""
	}
}

// searchedPaths extracts the "tried a, b" list from a config-not-found error.
func searchedPaths(err error) []string {
	_, tried, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(tried, ", ")
}
