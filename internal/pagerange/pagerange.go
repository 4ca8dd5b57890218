// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagerange parses and validates page-range selections of the
// form "2-5", "2-", or "-5". Page numbers are 1-based and inclusive.
package pagerange

import (
	"fmt"
	"regexp"
	"strconv"
)

// rangePattern matches "a-b", "a-", and "-b" with decimal page numbers.
var rangePattern = regexp.MustCompile(`^(\d*)-(\d*)$`)

// Range is a validated, inclusive selection of 1-based page numbers.
// The zero value selects nothing; use Parse or All to construct one.
type Range struct {
	// Start is the first selected page. Zero means "from page 1" until
	// the range is resolved against a document.
	Start int

	// End is the last selected page. Zero means "through the last page"
	// until the range is resolved against a document.
	End int
}

// All returns a range selecting every page of a document.
func All() Range {
	return Range{}
}

// Parse reads a page-range expression. Open ends are left as zero and
// filled in by Resolve. A bare number like "3" is rejected with a hint,
// since the user probably meant "3-3".
func Parse(spec string) (Range, error) {
	m := rangePattern.FindStringSubmatch(spec)
	if m == nil {
		if _, err := strconv.Atoi(spec); err == nil {
			return Range{}, fmt.Errorf("invalid page range %q: did you mean %q?", spec, spec+"-"+spec)
		}
		return Range{}, fmt.Errorf("invalid page range %q: expected START-END, START-, or -END", spec)
	}
	if m[1] == "" && m[2] == "" {
		return Range{}, fmt.Errorf("invalid page range %q: at least one bound is required", spec)
	}

	var r Range
	var err error
	if m[1] != "" {
		if r.Start, err = strconv.Atoi(m[1]); err != nil {
			return Range{}, fmt.Errorf("invalid page range %q: %w", spec, err)
		}
		if r.Start < 1 {
			return Range{}, fmt.Errorf("invalid page range %q: pages are numbered from 1", spec)
		}
	}
	if m[2] != "" {
		if r.End, err = strconv.Atoi(m[2]); err != nil {
			return Range{}, fmt.Errorf("invalid page range %q: %w", spec, err)
		}
		if r.End < 1 {
			return Range{}, fmt.Errorf("invalid page range %q: pages are numbered from 1", spec)
		}
	}
	if r.Start != 0 && r.End != 0 && r.Start > r.End {
		return Range{}, fmt.Errorf("invalid page range %q: start exceeds end", spec)
	}
	return r, nil
}

// Resolve fills in open bounds and checks the range against the actual
// page count of a document.
func (r Range) Resolve(pageCount int) (Range, error) {
	if pageCount < 1 {
		return Range{}, fmt.Errorf("document has no pages")
	}
	if r.Start == 0 {
		r.Start = 1
	}
	if r.End == 0 {
		r.End = pageCount
	}
	if r.Start > pageCount {
		return Range{}, fmt.Errorf("page range starts at %d but document has only %d page(s)", r.Start, pageCount)
	}
	if r.End > pageCount {
		return Range{}, fmt.Errorf("page range ends at %d but document has only %d page(s)", r.End, pageCount)
	}
	if r.Start > r.End {
		return Range{}, fmt.Errorf("page range start %d exceeds end %d", r.Start, r.End)
	}
	return r, nil
}

// Count returns the number of selected pages. Valid on resolved ranges.
func (r Range) Count() int {
	if r.Start == 0 || r.End == 0 || r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Spec renders the range in pdfcpu page-selection syntax, e.g. "2-5".
// Valid on resolved ranges.
func (r Range) Spec() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Contains reports whether page is within the resolved range.
func (r Range) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}
