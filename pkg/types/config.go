// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ToastConfig holds settings for a toasting run.
type ToastConfig struct {
	// GhostscriptBin is the Ghostscript binary used for flattening (default "gs").
	GhostscriptBin string `json:"ghostscript_bin" yaml:"ghostscript_bin"`

	// Timeout bounds the Ghostscript subprocess; expiry aborts the run.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// OutputSuffix is inserted before the .pdf extension of the output
	// file name (default "-toasted").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix"`

	// Overlap extends each half past the page midpoint, in points.
	// Zero splits at the exact midpoint.
	Overlap float64 `json:"overlap" yaml:"overlap"`

	// Rotation is applied to every half page: 0, 90, 180, or 270 degrees.
	Rotation int `json:"rotation" yaml:"rotation"`

	// Verbose enables phase progress messages.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Debug keeps temporary files and surfaces Ghostscript diagnostics.
	// Implies Verbose.
	Debug bool `json:"debug" yaml:"debug"`
}
