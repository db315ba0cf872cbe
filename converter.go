package snakedoc

import (
	"strings"

	"github.com/nshkrdotcom/snakedoc/internal/docparse"
	"github.com/nshkrdotcom/snakedoc/internal/render"
	"github.com/nshkrdotcom/snakedoc/internal/sanitize"
	"github.com/nshkrdotcom/snakedoc/internal/typemap"
)

// Converter runs the docstring-to-Markdown pipeline. It is immutable after
// construction and safe for concurrent use; each call produces fresh output
// with no shared state.
type Converter struct {
	style    Style // forced dialect; empty means auto-detect
	mapper   *typemap.Mapper
	renderer *render.Renderer
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig collects option values before the Converter is assembled.
type converterConfig struct {
	style        Style
	typeMappings map[string]string
	excMappings  map[string]string
}

// WithStyle forces the docstring dialect, skipping detection.
func WithStyle(style Style) Option {
	return func(c *converterConfig) {
		c.style = style
	}
}

// WithTypeMappings overlays extra Python-to-Elixir type mappings. Overlay
// entries are checked before the built-in table; the map is copied.
func WithTypeMappings(mappings map[string]string) Option {
	return func(c *converterConfig) {
		c.typeMappings = mappings
	}
}

// WithExceptionMappings overlays extra exception mappings, checked before
// the built-in table; the map is copied.
func WithExceptionMappings(mappings map[string]string) Option {
	return func(c *converterConfig) {
		c.excMappings = mappings
	}
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	mapper := typemap.NewMapper(cfg.typeMappings, cfg.excMappings)
	return &Converter{
		style:    cfg.style,
		mapper:   mapper,
		renderer: render.New(mapper),
	}
}

// Convert transpiles one raw docstring into sanitized Markdown. It is total
// over any input, including the empty string, and never fails: pathological
// input degrades to unstructured prose, never to an error.
func (c *Converter) Convert(docstring string) string {
	doc := docparse.ParseWithStyle(docstring, docparse.Style(c.style))
	out := c.renderer.Render(doc)
	out = sanitize.Sanitize(out)
	return strings.TrimSpace(out)
}

// Parse runs only the detection and extraction stages, returning the
// structured form of the docstring.
func (c *Converter) Parse(docstring string) ParsedDoc {
	return fromInternalDoc(docparse.ParseWithStyle(docstring, docparse.Style(c.style)))
}

// ConvertType maps a Python type expression to Elixir typespec syntax using
// this converter's tables.
func (c *Converter) ConvertType(pythonType string) string {
	return c.mapper.ConvertType(pythonType)
}

// ConvertException maps a Python exception name to an Elixir error module
// using this converter's tables.
func (c *Converter) ConvertException(pythonException string) string {
	return c.mapper.ConvertException(pythonException)
}

// defaultConverter backs the package-level convenience functions.
var defaultConverter = New()

// Convert transpiles a docstring with the default converter.
func Convert(docstring string) string {
	return defaultConverter.Convert(docstring)
}

// Parse parses a docstring with the default converter.
func Parse(docstring string) ParsedDoc {
	return defaultConverter.Parse(docstring)
}

// DetectStyle classifies the docstring dialect. It is pure and
// deterministic: the same input always yields the same style.
func DetectStyle(docstring string) Style {
	return Style(docparse.DetectStyle(docparse.Normalize(docstring)))
}

// ConvertType maps a Python type expression using the built-in tables.
func ConvertType(pythonType string) string {
	return typemap.ConvertType(pythonType)
}

// ConvertException maps a Python exception name using the built-in table.
func ConvertException(pythonException string) string {
	return typemap.ConvertException(pythonException)
}

// Sanitize applies the output safety pass (fence repair, quote repair,
// link sanitization) to an arbitrary Markdown string. Convert already
// sanitizes its output; this is exposed for callers post-processing
// Markdown from other sources.
func Sanitize(markdown string) string {
	return sanitize.Sanitize(markdown)
}
