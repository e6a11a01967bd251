package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbcss [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Collect notebook front-end stylesheets and the syntax-highlight stylesheet")
	fmt.Fprintln(w, "inlined into exported HTML, and print them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Collection:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --base-dir <path>     Notebook installation directory")
	fmt.Fprintln(w, "      --style <name>        Highlight style (default: pygments)")
	fmt.Fprintln(w, "      --prefix <selector>   Highlight class selector (default: .highlight)")
	fmt.Fprintln(w, "      --disable             Disable collection")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write stylesheets to file")
	fmt.Fprintln(w, "      --list                List candidate stylesheets and their status")
	fmt.Fprintln(w, "      --list-styles         List available highlight styles")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NBCSS_CONFIG, NBCSS_BASE_DIR, NBCSS_STYLE, NBCSS_PREFIX, NBCSS_LOG_LEVEL,")
	fmt.Fprintln(w, "  NBCSS_DISABLE. Flags take precedence over environment, environment over")
	fmt.Fprintln(w, "  the config file.")
}
