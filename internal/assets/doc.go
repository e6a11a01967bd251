// Package assets locates the notebook front-end stylesheets that get inlined
// into exported HTML.
//
// # Candidate Layout
//
// Stylesheets are looked up as an ordered list of candidate paths, each
// relative to the notebook installation directory:
//
//	{baseDir}/
//	└── frontend/html/notebook/static/
//	    ├── base/css/boilerplate.css
//	    ├── style/style.min.css
//	    └── notebook/less/
//	        ├── notebook.less
//	        └── renderedhtml.less
//
// Installed layouts differ between notebook versions, so any candidate may
// be missing. FilesystemSource.Lookup reports one of three outcomes per
// candidate instead of an error: present, absent, or unreadable. Callers
// decide what to do with each; absent and unreadable are distinct so a
// permission problem is never confused with a file that simply does not
// ship in this version.
//
// # Base Directory
//
// DiscoverBaseDir resolves the installation directory from the
// NBCSS_BASE_DIR environment variable, then from the user config directory.
//
// # Security
//
// Candidates are validated to be relative paths without traversal, and
// lookups verify the joined path stays within the base directory.
package assets
