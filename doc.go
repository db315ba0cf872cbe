// Package snakedoc transpiles raw Python docstrings into safe, well-formed
// Markdown for embedding on generated Elixir bindings.
//
// # Quick Start
//
// The zero-configuration path is a single call:
//
//	md := snakedoc.Convert(docstring)
//
// For custom behavior, create a Converter:
//
//	conv := snakedoc.New(
//	    snakedoc.WithStyle(snakedoc.StyleGoogle),
//	    snakedoc.WithTypeMappings(map[string]string{"ndarray": "Nx.Tensor.t()"}),
//	)
//	md := conv.Convert(docstring)
//
// # Conversion Pipeline
//
// Conversion runs five stages over a single docstring:
//
//  1. Style detection and splitting (Google, NumPy, Sphinx, Epytext)
//  2. Per-dialect section extraction (parameters, returns, raises,
//     examples, notes)
//  3. Type and exception mapping into Elixir typespec vocabulary
//  4. Markdown assembly (grid-table fencing, math rewriting)
//  5. Sanitization (fence balancing, quote repair, link safety)
//
// Every stage is total over arbitrary input: a malformed or truncated
// docstring degrades to unstructured prose, never to an error. Convert
// always returns syntactically valid Markdown with balanced code fences,
// and all links either point to anchors or scheme-qualified URIs or are
// collapsed to plain text.
//
// # Concurrency
//
// The pipeline is pure and stateless across calls. A Converter is immutable
// after construction and safe for unbounded concurrent use; batch callers
// may convert many docstrings in parallel with no coordination.
package snakedoc
