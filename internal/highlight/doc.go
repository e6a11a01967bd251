// Package highlight generates the syntax-highlighting stylesheet inlined
// next to the notebook CSS.
//
// Rules are produced by chroma's HTML formatter in class mode and then
// rescoped: chroma writes its rules under the ".chroma" and ".bg" classes,
// which are rewritten to the caller's prefix (".highlight" by default) so
// the output matches the markup emitted for code cells.
package highlight
