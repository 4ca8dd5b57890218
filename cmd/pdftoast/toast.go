// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdftoast/internal/flatten"
	"github.com/pdiddy/pdftoast/internal/pagerange"
	"github.com/pdiddy/pdftoast/internal/toast"
	"github.com/pdiddy/pdftoast/pkg/types"
)

// buildConfig merges flag values over config-file and env defaults.
// A flag the user set wins; otherwise the viper value applies.
func buildConfig(cmd *cobra.Command) types.ToastConfig {
	cfg := types.ToastConfig{
		GhostscriptBin: viper.GetString("ghostscript"),
		Timeout:        viper.GetDuration("timeout"),
		OutputSuffix:   viper.GetString("suffix"),
		Overlap:        viper.GetFloat64("overlap"),
		Rotation:       viper.GetInt("rotation"),
	}

	if cmd.Flags().Changed("gs") {
		cfg.GhostscriptBin, _ = cmd.Flags().GetString("gs")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("suffix") {
		cfg.OutputSuffix, _ = cmd.Flags().GetString("suffix")
	}
	if cmd.Flags().Changed("overlap") {
		cfg.Overlap, _ = cmd.Flags().GetFloat64("overlap")
	}
	if cmd.Flags().Changed("rotation") {
		cfg.Rotation, _ = cmd.Flags().GetInt("rotation")
	}

	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	cfg.Debug, _ = cmd.Flags().GetBool("debug")
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return cfg
}

// validateRotation accepts the quarter-turn rotations PDF viewers honor.
func validateRotation(r int) error {
	switch r {
	case 0, 90, 180, 270:
		return nil
	}
	return fmt.Errorf("rotation must be 0, 90, 180, or 270 (got %d)", r)
}

func runToast(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	if err := validateRotation(cfg.Rotation); err != nil {
		return err
	}

	pages := pagerange.All()
	if spec, _ := cmd.Flags().GetString("pages"); spec != "" {
		var err error
		if pages, err = pagerange.Parse(spec); err != nil {
			return err
		}
	}

	// Abort before any work when Ghostscript is missing.
	if err := flatten.New(cfg.GhostscriptBin, cfg.Debug).Available(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := toast.New(cfg, pages)
	_, err := p.Run(ctx, args[0])
	return err
}
