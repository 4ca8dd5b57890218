// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdftoast/internal/toast"
	"github.com/pdiddy/pdftoast/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info input.pdf",
	Short: "Show page count and page sizes of a PDF",
	Long: `Info prints the page count, per-page dimensions, and the output path a
toasting run would use, as YAML. Useful for choosing a page range before
toasting.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return fmt.Errorf("document %s is encrypted", path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}

	info := types.DocumentInfo{
		Path:       path,
		Pages:      pageCount,
		OutputPath: toast.OutputPath(path, viper.GetString("suffix")),
	}
	for _, d := range dims {
		info.PageSizes = append(info.PageSizes, types.PageSize{
			Width:  d.Width,
			Height: d.Height,
		})
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("rendering document info: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
