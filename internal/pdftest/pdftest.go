// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds minimal but structurally valid PDF files for
// tests: correct xref offsets, one Helvetica text object per page.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Letter and A4 page extents in points.
const (
	LetterWidth  = 612
	LetterHeight = 792
	A4Width      = 595
	A4Height     = 842
)

// Document builds a PDF with n pages of width x height points. Each page
// carries a short text line identifying its page number.
func Document(n int, width, height float64) []byte {
	// Objects: 1 catalog, 2 pages, then per page: page dict + content
	// stream, and finally one shared font object.
	fontObj := 3 + 2*n

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, fontObj+1)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, n)
	for i := 0; i < n; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n)

	for i := 0; i < n; i++ {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1

		offsets[pageObj] = b.Len()
		fmt.Fprintf(&b,
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n",
			pageObj, width, height, contentObj, fontObj)

		stream := fmt.Sprintf("BT\n/F1 12 Tf\n72 %g Td\n(Page %d) Tj\nET", height-72, i+1)
		offsets[contentObj] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(stream), stream)
	}

	offsets[fontObj] = b.Len()
	fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontObj)

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", fontObj+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= fontObj; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		fontObj+1, xrefOffset)

	return []byte(b.String())
}

// WriteDocument writes an n-page Letter-sized PDF into dir and returns
// its path.
func WriteDocument(t *testing.T, dir string, name string, n int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Document(n, LetterWidth, LetterHeight), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
