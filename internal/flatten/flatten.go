// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatten rewrites a PDF through Ghostscript so that stamped
// page numbers become part of the static page content before the pages
// are cropped.
package flatten

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// defaultBin is the Ghostscript binary looked up on PATH.
const defaultBin = "gs"

// ErrGhostscriptNotFound reports that the Ghostscript binary is not on
// the system path.
var ErrGhostscriptNotFound = errors.New("ghostscript not found on PATH")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// Ghostscript flattens PDFs by distilling them through a gs subprocess.
type Ghostscript struct {
	bin   string
	debug bool
	exec  executor
}

// New returns a Ghostscript flattener using the given binary name, or
// "gs" when bin is empty. In debug mode Ghostscript warnings are not
// suppressed and are echoed to stderr.
func New(bin string, debug bool) *Ghostscript {
	if bin == "" {
		bin = defaultBin
	}
	return &Ghostscript{bin: bin, debug: debug, exec: defaultExec}
}

var defaultExec executor = &osExecutor{}

// Available reports whether the Ghostscript binary exists on PATH.
// Checked before any temporary files are created, so a missing binary
// aborts the run cleanly.
func (g *Ghostscript) Available() error {
	if _, err := g.exec.LookPath(g.bin); err != nil {
		return fmt.Errorf("%w (looked for %q)", ErrGhostscriptNotFound, g.bin)
	}
	return nil
}

// args builds the gs invocation for distilling inPath into outPath with
// annotations merged into page content.
func (g *Ghostscript) args(inPath, outPath string) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dSAFER",
		"-dPDFSETTINGS=/printer",
		"-dNOPAUSE",
		"-dBATCH",
		"-dPreserveAnnots=false",
	}
	if !g.debug {
		args = append([]string{"-dQUIET"}, args...)
	}
	return append(args, "-sOutputFile="+outPath, inPath)
}

// Flatten distills inPath into outPath. The context bounds the
// subprocess; cancellation or deadline expiry kills it. On a non-zero
// exit the subprocess stderr is folded into the returned error.
func (g *Ghostscript) Flatten(ctx context.Context, inPath, outPath string) error {
	if err := g.Available(); err != nil {
		return err
	}

	var stderr bytes.Buffer
	var sink io.Writer = &stderr
	if g.debug {
		sink = io.MultiWriter(&stderr, os.Stderr)
	}

	if err := g.exec.Run(ctx, g.bin, g.args(inPath, outPath), sink); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ghostscript timed out: %w", ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ghostscript failed: %w: %s", err, msg)
		}
		return fmt.Errorf("ghostscript failed: %w", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("ghostscript produced no output file: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("ghostscript produced an empty output file %s", outPath)
	}
	return nil
}
