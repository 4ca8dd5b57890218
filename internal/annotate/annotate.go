// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotate stamps page-number labels onto a PDF and trims it to
// the selected page range. Labels are placed in the right margin, one
// near the top edge and one near the bottom edge, so that each label
// survives inside its half after the later split.
package annotate

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/pdftoast/internal/pagerange"
)

// Label geometry, in points from the page edge. Both insets must stay
// well inside half the height of any supported page size.
const (
	TopInset    = 30
	BottomInset = 20
	rightInset  = 10
)

// labelColor matches the green used for the page-number labels.
const labelColor = "#009900"

// pageNumberText renders as "current/total" on each stamped page.
const pageNumberText = "%p/%P"

// stampDesc builds a pdfcpu watermark description anchored at position
// pos with the given offset.
func stampDesc(pos string, dx, dy int) string {
	return fmt.Sprintf(
		"fontname:Helvetica, points:10, scalefactor:1 abs, position:%s, offset:%d %d, fillcolor:%s, rotation:0, opacity:1",
		pos, dx, dy, labelColor)
}

// TopStampDesc describes the label near the top margin.
func TopStampDesc() string {
	return stampDesc("tr", -rightInset, -TopInset)
}

// BottomStampDesc describes the label near the bottom margin.
func BottomStampDesc() string {
	return stampDesc("br", -rightInset, BottomInset)
}

// AddPageNumbers stamps page-number labels on the pages selected by r
// and writes a document containing only those pages to outPath. The
// intermediate stamped file is written next to outPath's directory
// entry stampedPath. r must already be resolved against the document.
func AddPageNumbers(inPath, stampedPath, outPath string, r pagerange.Range, conf *model.Configuration) error {
	pageCount, err := api.PageCountFile(inPath)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return fmt.Errorf("document %s is encrypted", inPath)
		}
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	if r.End > pageCount {
		return fmt.Errorf("page range ends at %d but document has only %d page(s)", r.End, pageCount)
	}

	sel := []string{r.Spec()}

	top, err := api.TextWatermark(pageNumberText, TopStampDesc(), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building top stamp: %w", err)
	}
	if err := api.AddWatermarksFile(inPath, stampedPath, sel, top, conf); err != nil {
		return fmt.Errorf("stamping top page numbers: %w", err)
	}

	bottom, err := api.TextWatermark(pageNumberText, BottomStampDesc(), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building bottom stamp: %w", err)
	}
	if err := api.AddWatermarksFile(stampedPath, stampedPath, sel, bottom, conf); err != nil {
		return fmt.Errorf("stamping bottom page numbers: %w", err)
	}

	if err := api.TrimFile(stampedPath, outPath, sel, conf); err != nil {
		return fmt.Errorf("trimming to pages %s: %w", r.Spec(), err)
	}
	return nil
}
