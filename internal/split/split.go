// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split crops each page of a flattened PDF into a top half and
// a bottom half, rotates the halves to landscape, and reassembles them
// in reading order into the output document.
package split

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Options controls half-page geometry.
type Options struct {
	// Overlap extends each half past the page midpoint, in points.
	Overlap float64

	// Rotation in degrees applied to each half: 0, 90, 180, or 270.
	Rotation int
}

// HalfPage is one serialized single-page PDF holding the top or bottom
// half of a source page.
type HalfPage struct {
	// Page is the 1-based source page number within the split document.
	Page int

	// Top reports whether this is the upper half.
	Top bool

	// Data is the half as a complete single-page PDF.
	Data []byte
}

// File splits every page of the PDF at path into two halves. The result
// holds 2N halves for an N-page input, ordered top-then-bottom per page
// with source page order preserved.
func File(path string, opts Options, conf *model.Configuration) ([]HalfPage, error) {
	if conf == nil {
		conf = model.NewDefaultConfiguration()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("counting pages in %s: %w", path, err)
	}

	halves := make([]HalfPage, 0, 2*ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		_, _, inh, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}

		box := inh.CropBox
		if box == nil {
			box = inh.MediaBox
		}
		if box == nil {
			return nil, fmt.Errorf("page %d has no media box", pageNr)
		}

		topBox, bottomBox := halfBoxes(box, opts.Overlap)

		for _, h := range []struct {
			box *types.Rectangle
			top bool
		}{
			{topBox, true},
			{bottomBox, false},
		} {
			data, err := extractHalf(ctx, pageNr, h.box, opts.Rotation)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", pageNr, err)
			}
			halves = append(halves, HalfPage{Page: pageNr, Top: h.top, Data: data})
		}
	}

	return halves, nil
}

// halfBoxes computes the top and bottom crop rectangles for a page box.
// The cut is the exact proportional midpoint of the box, whatever its
// size or origin; overlap extends both halves across it, clamped to the
// box edges.
func halfBoxes(box *types.Rectangle, overlap float64) (top, bottom *types.Rectangle) {
	mid := box.LL.Y + box.Height()/2

	topLow := mid - overlap
	if topLow < box.LL.Y {
		topLow = box.LL.Y
	}
	bottomHigh := mid + overlap
	if bottomHigh > box.UR.Y {
		bottomHigh = box.UR.Y
	}

	top = types.NewRectangle(box.LL.X, topLow, box.UR.X, box.UR.Y)
	bottom = types.NewRectangle(box.LL.X, box.LL.Y, box.UR.X, bottomHigh)
	return top, bottom
}

// extractHalf pulls pageNr out of src as a single-page context, crops
// it to region, applies the rotation, and serializes it.
func extractHalf(src *model.Context, pageNr int, region *types.Rectangle, rotation int) ([]byte, error) {
	ctxPage, err := pdfcpu.ExtractPages(src, []int{pageNr}, false)
	if err != nil {
		return nil, fmt.Errorf("extracting page: %w", err)
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return nil, err
	}

	pageDict, _, inh, err := ctxPage.PageDict(1, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("extracted page has no page dict")
	}

	pageDict["MediaBox"] = region.Array()
	pageDict["CropBox"] = region.Array()

	// Compose the half rotation with any rotation the page already
	// inherits, so pre-rotated documents keep reading left to right.
	rot := ((inh.Rotate+rotation)%360 + 360) % 360
	if rot != 0 {
		pageDict["Rotate"] = types.Integer(rot)
	} else {
		pageDict.Delete("Rotate")
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctxPage, &buf); err != nil {
		return nil, fmt.Errorf("serializing half: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument merges the halves, in order, into a single PDF at
// outPath. A partial file is removed when the merge fails.
func WriteDocument(halves []HalfPage, outPath string, conf *model.Configuration) error {
	if len(halves) == 0 {
		return fmt.Errorf("no half pages to write")
	}
	if conf == nil {
		conf = model.NewDefaultConfiguration()
	}

	readers := make([]io.ReadSeeker, len(halves))
	for i, h := range halves {
		readers[i] = bytes.NewReader(h.Data)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := api.MergeRaw(readers, out, false, conf); err != nil {
		out.Close()
		os.Remove(outPath)
		return fmt.Errorf("assembling %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
