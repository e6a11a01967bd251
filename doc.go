// Package nbcss collects the stylesheets inlined into notebooks exported as HTML.
//
// # Quick Start
//
// Create a collector once per export pipeline and call Transform for every
// document:
//
//	collector, err := nbcss.NewCollector()
//	if err != nil {
//	    log.Fatal(err) // highlighter failure
//	}
//
//	doc, res := collector.Transform(notebook, nbcss.Resources{})
//	css, _ := res.InlinedCSS()
//	for _, sheet := range css.All() {
//	    // write <style>sheet</style>
//	}
//
// # Collection
//
// When enabled, NewCollector reads the notebook front-end stylesheets from
// the installation directory, in a fixed order:
//
//  1. frontend/html/notebook/static/base/css/boilerplate.css
//  2. frontend/html/notebook/static/style/style.min.css
//  3. frontend/html/notebook/static/notebook/less/notebook.less
//  4. frontend/html/notebook/static/notebook/less/renderedhtml.less
//
// Missing files are skipped: installed layouts differ between versions. The
// syntax-highlighting stylesheet, generated with chroma and scoped under
// ".highlight", is always appended last. A highlighter failure is fatal and
// makes NewCollector return an error.
//
// The result is a Bundle, an immutable ordered list of stylesheet texts.
//
// # Publishing
//
// Transform stores the Bundle in resources["inlining"]["css"]. The Bundle is
// shared, not copied, which is safe because it cannot be modified. A disabled
// collector leaves resources untouched.
//
// # Configuration
//
// Use functional options to customize the collector:
//
//	collector, err := nbcss.NewCollector(
//	    nbcss.WithBaseDir("/usr/lib/python3/site-packages/IPython"),
//	    nbcss.WithStyle("monokai"),
//	    nbcss.WithLogger(logger),
//	)
//
// Without WithBaseDir, the installation directory is read from the
// NBCSS_BASE_DIR environment variable, then ~/.config/go-nbcss/notebook.
//
// # Standalone Collection
//
// Collect builds a Bundle without a Collector, for pipelines that manage
// their own lifecycle:
//
//	src, err := nbcss.NewFilesystemSource(dir, nil)
//	bundle, err := nbcss.Collect(src, nbcss.NewChromaHighlighter(""), nbcss.DefaultPrefix, nil)
package nbcss
