// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toast

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdftoast/internal/pagerange"
	"github.com/pdiddy/pdftoast/internal/pdftest"
	"github.com/pdiddy/pdftoast/pkg/types"
)

// copyFlattener stands in for Ghostscript by copying the annotated file
// unchanged. The stamps pdfcpu adds are already page content, so the
// rest of the pipeline behaves as it would after a real distill.
type copyFlattener struct{}

func (copyFlattener) Flatten(_ context.Context, inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// failFlattener always errors, simulating a broken gs install.
type failFlattener struct{ err error }

func (f failFlattener) Flatten(_ context.Context, _, _ string) error { return f.err }

func newTestPipeline(pages pagerange.Range) *Pipeline {
	return &Pipeline{
		Config:    types.ToastConfig{Rotation: 90},
		Pages:     pages,
		Flattener: copyFlattener{},
		Progress:  io.Discard,
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
		want   string
	}{
		{
			name:  "default suffix",
			input: "sample.pdf",
			want:  "sample-toasted.pdf",
		},
		{
			name:  "keeps directory",
			input: filepath.Join("docs", "paper.pdf"),
			want:  filepath.Join("docs", "paper-toasted.pdf"),
		},
		{
			name:  "uppercase extension preserved",
			input: "SCAN.PDF",
			want:  "SCAN-toasted.PDF",
		},
		{
			name:   "custom suffix",
			input:  "sample.pdf",
			suffix: "-split",
			want:   "sample-split.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, tt.suffix))
		})
	}
}

func TestRunFullDocument(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteDocument(t, dir, "sample.pdf", 3)

	p := newTestPipeline(pagerange.All())
	out, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample-toasted.pdf"), out)

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "each page yields two halves")
}

func TestRunPageRange(t *testing.T) {
	// sample.pdf with 4 pages, -p 2-3: four output pages, in order
	// page2-top, page2-bottom, page3-top, page3-bottom.
	dir := t.TempDir()
	in := pdftest.WriteDocument(t, dir, "sample.pdf", 4)

	p := newTestPipeline(pagerange.Range{Start: 2, End: 3})
	out, err := p.Run(context.Background(), in)
	require.NoError(t, err)

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRunVerboseProgress(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteDocument(t, dir, "sample.pdf", 1)

	var buf bytes.Buffer
	p := newTestPipeline(pagerange.All())
	p.Config.Verbose = true
	p.Progress = &buf

	_, err := p.Run(context.Background(), in)
	require.NoError(t, err)

	for _, want := range []string{
		"page-number stamps",
		"Flattening",
		"Splitting",
		"Writing the half-pages",
		"Your new PDF file is at",
	} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRunRejectsBadInputs(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		input  string
		pages  pagerange.Range
		errMsg string
	}{
		{
			name:   "not a pdf",
			input:  filepath.Join(dir, "notes.txt"),
			errMsg: ".pdf extension",
		},
		{
			name:   "missing file",
			input:  filepath.Join(dir, "gone.pdf"),
			errMsg: "input file",
		},
		{
			name:   "range beyond document",
			input:  pdftest.WriteDocument(t, dir, "short.pdf", 2),
			pages:  pagerange.Range{Start: 10},
			errMsg: "only 2 page(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(tt.pages)
			_, err := p.Run(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunFlattenerFailureProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteDocument(t, dir, "sample.pdf", 2)

	p := newTestPipeline(pagerange.All())
	p.Flattener = failFlattener{err: errors.New("gs exploded")}

	_, err := p.Run(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gs exploded")

	_, statErr := os.Stat(filepath.Join(dir, "sample-toasted.pdf"))
	assert.True(t, os.IsNotExist(statErr), "no output file after a failed run")
}

func TestRunMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf at all"), 0o644))

	p := newTestPipeline(pagerange.All())
	_, err := p.Run(context.Background(), in)
	require.Error(t, err)
}
