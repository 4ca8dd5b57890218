// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdftoast CLI. It splits each
// page of a portrait PDF into two landscape half-pages with marginal
// page-number labels, for reading on landscape screens.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the toasting pipeline on a single input file.
var rootCmd = &cobra.Command{
	Use:   "pdftoast [flags] input.pdf",
	Short: "Split PDF pages into landscape half-pages",
	Long: `pdftoast converts a portrait PDF for landscape screens: every selected
page is stamped with its page number top and bottom, flattened through
Ghostscript, split into a top half and a bottom half, and the halves are
rotated and reassembled in reading order.

Output goes to a new file named by inserting "-toasted" before the .pdf
extension; the input file is left unchanged.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runToast,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdftoast.yaml or ~/.config/pdftoast/config.yaml)")

	rootCmd.Flags().StringP("pages", "p", "", "page range such as 2-5, 2-, or -5 (default: all pages)")
	rootCmd.Flags().BoolP("verbose", "v", false, "print phase progress messages")
	rootCmd.Flags().BoolP("debug", "d", false, "keep temporary files and show Ghostscript diagnostics (implies --verbose)")
	rootCmd.Flags().Float64("overlap", 0, "extend each half past the page midpoint by this many points")
	rootCmd.Flags().Int("rotation", 90, "rotation applied to each half: 0, 90, 180, or 270 degrees")
	rootCmd.Flags().String("gs", "", "Ghostscript binary (default: gs)")
	rootCmd.Flags().Duration("timeout", 0, "Ghostscript subprocess timeout (default 2m)")
	rootCmd.Flags().String("suffix", "", "output file suffix (default: -toasted)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdftoast")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdftoast"))
		}
	}

	viper.SetDefault("ghostscript", "gs")
	viper.SetDefault("timeout", 2*time.Minute)
	viper.SetDefault("suffix", "")
	viper.SetDefault("overlap", 0.0)
	viper.SetDefault("rotation", 90)

	viper.SetEnvPrefix("PDFTOAST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
