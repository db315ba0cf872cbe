// Package docparse recognizes the docstring dialect of a raw Python
// docstring and extracts its structured sections.
//
// Four dialects are recognized (Google, NumPy, Sphinx, Epytext) plus an
// unknown fallback. Detection is heuristic and short-circuiting; the first
// dialect whose markers appear wins. Extraction is per-dialect and never
// fails: malformed input degrades to absent or partially-filled fields.
//
// All functions in this package are pure and safe for concurrent use.
package docparse
