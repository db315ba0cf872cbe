package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/nshkrdotcom/snakedoc"
	"github.com/nshkrdotcom/snakedoc/internal/config"
	"github.com/nshkrdotcom/snakedoc/internal/fileutil"
	"github.com/nshkrdotcom/snakedoc/internal/hints"
	"github.com/nshkrdotcom/snakedoc/internal/preview"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrOutputWithMany = errors.New("--output requires exactly one input file")
)

// knownStyles lists the dialect names accepted by --style and config.
var knownStyles = []string{
	string(snakedoc.StyleGoogle),
	string(snakedoc.StyleNumpy),
	string(snakedoc.StyleSphinx),
	string(snakedoc.StyleEpytext),
}

// run loads configuration, builds the converter, and converts stdin or the
// given input files.
func run(flags cliFlags, inputs []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintf(stdout, "snakedoc %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if !fileutil.IsFilePath(flags.config) {
					searched = config.SearchPaths(flags.config)
				}
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
			}
			return err
		}
		cfg = loaded
	}

	conv := buildConverter(flags, cfg, stderr)

	if len(inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		fmt.Fprintln(stdout, conv.Convert(string(data)))
		return nil
	}

	if flags.output != "" && len(inputs) > 1 {
		return ErrOutputWithMany
	}

	return convertFiles(flags, cfg, conv, inputs, stderr)
}

// buildConverter assembles converter options from flags and config. An
// unrecognized style name degrades to auto-detection with a warning; the
// core pipeline itself never errors.
func buildConverter(flags cliFlags, cfg *config.Config, stderr io.Writer) *snakedoc.Converter {
	style := flags.style
	if style == "" {
		style = cfg.Style
	}

	opts := []snakedoc.Option{
		snakedoc.WithTypeMappings(cfg.Types),
		snakedoc.WithExceptionMappings(cfg.Exceptions),
	}
	if style != "" {
		if isKnownStyle(style) {
			opts = append(opts, snakedoc.WithStyle(snakedoc.Style(style)))
		} else if !flags.quiet {
			fmt.Fprintf(stderr, "warning: unknown style %q, auto-detecting%s\n",
				style, hints.ForUnknownStyle(knownStyles))
		}
	}
	return snakedoc.New(opts...)
}

func isKnownStyle(style string) bool {
	for _, s := range knownStyles {
		if s == style {
			return true
		}
	}
	return false
}

// convertFiles converts each input file, in parallel up to the worker
// limit. Conversions are independent, so ordering does not matter.
func convertFiles(flags cliFlags, cfg *config.Config, conv *snakedoc.Converter, inputs []string, stderr io.Writer) error {
	writeHTML := flags.html || cfg.Output.HTML

	var prev *preview.Renderer
	if writeHTML {
		prev = preview.New()
	}

	var g errgroup.Group
	g.SetLimit(resolveWorkers(flags.workers))

	for _, input := range inputs {
		input := input
		g.Go(func() error {
			return convertOne(flags, conv, prev, input, stderr)
		})
	}
	return g.Wait()
}

// convertOne converts a single docstring file to Markdown (and optionally
// an HTML preview) next to it.
func convertOne(flags cliFlags, conv *snakedoc.Converter, prev *preview.Renderer, input string, stderr io.Writer) error {
	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	md := conv.Convert(string(data))

	outPath := flags.output
	if outPath == "" {
		outPath = replaceExt(input, ".md")
	}
	if err := os.WriteFile(outPath, []byte(md+"\n"), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if prev != nil {
		html, err := prev.ToHTML(md, input)
		if err != nil {
			return err
		}
		htmlPath := replaceExt(outPath, ".html")
		if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	if flags.verbose && !flags.quiet {
		fmt.Fprintf(stderr, "%s %s -> %s\n", color.GreenString("converted"), input, outPath)
	}
	return nil
}

// replaceExt swaps the file extension of path for ext (which includes the
// dot). A path without an extension gets ext appended.
func replaceExt(path, ext string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}

// resolveWorkers maps the --workers flag to an errgroup limit.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}
