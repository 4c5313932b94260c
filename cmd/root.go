// Package cmd defines the CLI surface of the portalgen executable.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacortez/portalgen/internal/assets"
	"github.com/jacortez/portalgen/internal/capture"
	"github.com/jacortez/portalgen/internal/config"
	"github.com/jacortez/portalgen/internal/csvio"
	"github.com/jacortez/portalgen/internal/diag"
	"github.com/jacortez/portalgen/internal/logging"
	"github.com/jacortez/portalgen/internal/pipeline"
	"github.com/jacortez/portalgen/internal/placeholder"
)

type rootFlags struct {
	cfgFile         string
	input           string
	outputDir       string
	title           string
	description     string
	takeScreenshots bool
	fullPage        bool
	samplePath      string
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "portalgen",
		Short: "Generates a static gallery portal from a CSV of sites",
		Long: `portalgen reads a CSV with columns title,url,image,description and
emits a self-contained static HTML portal with one card per site. Images are
resolved per entry: an explicit remote URL or local file when given,
otherwise an optional page screenshot (headless Chrome), otherwise a drawn
placeholder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.cfgFile, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&flags.input, "input", "", "path to the sites CSV (title,url,image,description)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "portal", "output directory")
	cmd.Flags().StringVar(&flags.title, "title", "Mi Portal", "portal title")
	cmd.Flags().StringVar(&flags.description, "description", "Accesos directos favoritos", "portal description")
	cmd.Flags().BoolVar(&flags.takeScreenshots, "take-screenshots", false, "capture page screenshots when no image is given (requires Chrome)")
	cmd.Flags().BoolVar(&flags.fullPage, "fullpage", false, "capture full-page screenshots instead of the viewport")
	cmd.Flags().StringVar(&flags.samplePath, "make-sample", "", "write a sample CSV to the given path and exit")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	if flags.samplePath != "" {
		return runMakeSample(cmd, flags.samplePath)
	}

	if flags.input == "" {
		return errors.New("--input is required (or use --make-sample to create a sample CSV)")
	}
	if _, err := os.Stat(flags.input); err != nil {
		return fmt.Errorf("input file does not exist: %s", flags.input)
	}

	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	sink := diag.NewLogSink(logger)
	caps, renderer, drawer := probeCapabilities(cfg, flags.takeScreenshots, logger)
	if closer, ok := renderer.(*capture.Chromedp); ok {
		defer closer.Close(cmd.Context()) //nolint:errcheck // teardown on exit
	}

	fetcher := assets.NewCollyFetcher(assets.FetchConfig{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	resolver, err := assets.NewResolver(flags.outputDir, fetcher, renderer, drawer, sink, logger)
	if err != nil {
		return err
	}

	driver := pipeline.New(resolver, caps, sink, logger)
	result, err := driver.Run(cmd.Context(), pipeline.Options{
		InputPath:       flags.input,
		OutputDir:       flags.outputDir,
		Title:           flags.title,
		Description:     flags.description,
		TakeScreenshots: flags.takeScreenshots,
		FullPage:        flags.fullPage,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Portal generado en: %s (%d tarjetas)\n", result.OutputPath, result.Cards)
	return nil
}

func runMakeSample(cmd *cobra.Command, path string) error {
	if err := csvio.WriteSample(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s ya existe, no se sobrescribe\n", path)
			return nil
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "CSV de ejemplo creado en %s\n", path)
	return nil
}

// probeCapabilities attempts to initialize the two optional facilities once
// at startup. Failures are recorded as absent capabilities, never raised.
// The screenshot probe only runs when captures were requested: it launches
// a browser process, which would be wasted work otherwise.
func probeCapabilities(cfg config.Config, takeScreenshots bool, logger *zap.Logger) (pipeline.Capabilities, assets.Renderer, assets.Drawer) {
	var (
		caps     pipeline.Capabilities
		renderer assets.Renderer
		drawer   assets.Drawer
	)

	if takeScreenshots {
		chrome, err := capture.New(capture.Config{
			ViewportWidth:  cfg.Capture.ViewportWidth,
			ViewportHeight: cfg.Capture.ViewportHeight,
			NavTimeout:     cfg.NavTimeout(),
			SettleDelay:    cfg.SettleDelay(),
			UserAgent:      cfg.HTTP.UserAgent,
		}, logger)
		if err != nil {
			logger.Warn("screenshot capability unavailable", zap.Error(err))
		} else {
			caps.Render = true
			renderer = chrome
		}
	}

	pd, err := placeholder.New(cfg.Capture.ViewportWidth, cfg.Capture.ViewportHeight)
	if err != nil {
		logger.Warn("placeholder capability unavailable", zap.Error(err))
	} else {
		caps.Draw = true
		drawer = pd
	}

	return caps, renderer, drawer
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
