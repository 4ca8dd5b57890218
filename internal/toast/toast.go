// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toast orchestrates the four-stage pipeline: stamp page
// numbers, flatten through Ghostscript, split pages into halves, and
// assemble the output document. The pipeline owns a single temporary
// directory; every intermediate file lives there and is removed on all
// exit paths unless debug mode keeps it.
package toast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/pdiddy/pdftoast/internal/annotate"
	"github.com/pdiddy/pdftoast/internal/flatten"
	"github.com/pdiddy/pdftoast/internal/pagerange"
	"github.com/pdiddy/pdftoast/internal/split"
	"github.com/pdiddy/pdftoast/pkg/types"
)

// DefaultSuffix is inserted before the extension of the output file name.
const DefaultSuffix = "-toasted"

// Flattener distills a PDF so stamped content survives cropping.
// Production use is *flatten.Ghostscript; tests inject fakes.
type Flattener interface {
	Flatten(ctx context.Context, inPath, outPath string) error
}

// Pipeline runs a toasting pass over one document.
type Pipeline struct {
	Config    types.ToastConfig
	Pages     pagerange.Range
	Flattener Flattener
	Progress  io.Writer
}

// New builds a pipeline with a Ghostscript flattener from cfg.
func New(cfg types.ToastConfig, pages pagerange.Range) *Pipeline {
	if cfg.Debug {
		cfg.Verbose = true
	}
	return &Pipeline{
		Config:    cfg,
		Pages:     pages,
		Flattener: flatten.New(cfg.GhostscriptBin, cfg.Debug),
		Progress:  os.Stdout,
	}
}

// OutputPath derives the output file name by inserting suffix before
// the input's extension, in the input's directory.
func OutputPath(inputPath, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix + ext
}

// Run toasts the document at inputPath and returns the output path.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		return "", fmt.Errorf("input file %s must have a .pdf extension", inputPath)
	}
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}

	pageCount, err := api.PageCountFile(inputPath)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return "", fmt.Errorf("document %s is encrypted", inputPath)
		}
		return "", fmt.Errorf("reading %s: %w", inputPath, err)
	}

	pages, err := p.Pages.Resolve(pageCount)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "pdftoast-")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}
	if p.Config.Debug {
		p.sayf("(temporary files kept at %s)\n", tmpDir)
	} else {
		defer os.RemoveAll(tmpDir)
	}

	stamped := filepath.Join(tmpDir, "stamped.pdf")
	annotated := filepath.Join(tmpDir, "annotated.pdf")
	flattened := filepath.Join(tmpDir, "flattened.pdf")

	p.sayf("Adding marginal page-number stamps, top and bottom...\n")
	if err := annotate.AddPageNumbers(inputPath, stamped, annotated, pages, nil); err != nil {
		return "", err
	}
	p.sayf("...done\n")

	p.sayf("Flattening the annotated PDF...\n")
	flattenCtx := ctx
	if p.Config.Timeout > 0 {
		var cancel context.CancelFunc
		flattenCtx, cancel = context.WithTimeout(ctx, p.Config.Timeout)
		defer cancel()
	}
	if err := p.Flattener.Flatten(flattenCtx, annotated, flattened); err != nil {
		return "", err
	}
	p.sayf("...done\n")

	p.sayf("Splitting the pages...\n")
	halves, err := split.File(flattened, split.Options{
		Overlap:  p.Config.Overlap,
		Rotation: p.Config.Rotation,
	}, nil)
	if err != nil {
		return "", err
	}
	p.sayf("...done\n")

	outPath := OutputPath(inputPath, p.Config.OutputSuffix)

	p.sayf("Writing the half-pages to the output file...\n")
	if err := split.WriteDocument(halves, outPath, nil); err != nil {
		return "", err
	}
	p.sayf("...done\n")

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	p.sayf("Your new PDF file is at %s\n", abs)

	return outPath, nil
}

// sayf prints a progress message when verbose output is enabled.
func (p *Pipeline) sayf(format string, args ...any) {
	if p.Config.Verbose && p.Progress != nil {
		fmt.Fprintf(p.Progress, format, args...)
	}
}
