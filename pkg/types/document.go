// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageSize is the extent of one page in PDF points (1/72 inch).
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DocumentInfo describes an input PDF, as reported by the info subcommand.
type DocumentInfo struct {
	// Path is the input file path as given on the command line.
	Path string `json:"path" yaml:"path"`

	// Pages is the number of pages in the document.
	Pages int `json:"pages" yaml:"pages"`

	// PageSizes lists the media box extent of each page, in order.
	PageSizes []PageSize `json:"page_sizes" yaml:"page_sizes"`

	// OutputPath is where a toasting run would write its result.
	OutputPath string `json:"output_path" yaml:"output_path"`
}
