package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"brailleplot/internal/braille"
	"brailleplot/internal/config"
)

// Flags holds the options shared by every command.
type Flags struct {
	Config  string
	Debug   bool
	Width   int
	Height  int
	Border  bool
	NoColor bool
	Title   string
	Blend   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags Flags

	rootCmd := &cobra.Command{
		Use:   "brailleplot",
		Short: "Braille charts for the terminal",
		Long: `brailleplot draws scatter, line, bar and pie charts and vector
datasets (CSV, GeoJSON, WKT, KML) with Unicode braille characters,
eight dots per terminal cell.`,
		Example: `  # Plot a dataset once
  brailleplot render points.csv

  # Plot a pasted geometry without color
  brailleplot render --wkt "POLYGON ((0 0, 4 0, 2 3, 0 0))" --no-color

  # Show the demo scenes
  brailleplot gallery
  brailleplot gallery spiral pie

  # Browse scenes and datasets interactively
  brailleplot view`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), flags.Debug)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Config, "config", "", "Path to "+config.FileName+" (default: search upward from the working directory)")
	pf.BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	pf.IntVar(&flags.Width, "width", 0, "Canvas width in cells")
	pf.IntVar(&flags.Height, "height", 0, "Canvas height in cells")
	pf.BoolVar(&flags.Border, "border", true, "Draw a frame around the canvas")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable color escapes")
	pf.StringVar(&flags.Title, "title", "", "Title centered above the canvas")
	pf.StringVar(&flags.Blend, "blend", "", "Color blend mode: overwrite or keep-first")

	rootCmd.AddCommand(renderCmd(&flags), galleryCmd(&flags), viewCmd(&flags))
	return rootCmd
}

// setupLogging installs a tint handler on w as the default slog logger.
func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})))
}

// resolve loads the config file and applies the flags the user set.
func (f *Flags) resolve(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg  config.Config
		path string
		err  error
	)
	if f.Config != "" {
		path = f.Config
		cfg, err = config.Load(path)
	} else {
		path, cfg, err = config.Find(".")
	}
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = f.Width
	}
	if changed("height") {
		cfg.Height = f.Height
	}
	if changed("border") {
		cfg.Border = f.Border
	}
	if f.NoColor {
		cfg.Color = false
	}
	if changed("title") {
		cfg.Title = f.Title
	}
	if changed("blend") {
		cfg.Blend = f.Blend
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// blendOverride returns the --blend mode when the user set it.
func (f *Flags) blendOverride(cmd *cobra.Command, cfg config.Config) (braille.BlendMode, bool) {
	if !cmd.Flags().Changed("blend") {
		return braille.Overwrite, false
	}
	mode, err := cfg.BlendMode()
	return mode, err == nil
}
