package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
	"brailleplot/internal/config"
	"brailleplot/internal/geom"
)

func renderCmd(flags *Flags) *cobra.Command {
	var (
		wkt  string
		axes bool
	)
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Plot one or more datasets once",
		Long: `Render loads every file (.csv, .geojson, .json, .kml, .wkt) into one
shared range and prints the canvas. Without files, --wkt supplies the geometry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 && wkt == "" {
				return errors.New("nothing to render: pass a file or --wkt")
			}

			var data geom.Data
			for _, path := range args {
				d, err := geom.Load(path)
				if err != nil {
					return err
				}
				slog.Debug("loaded dataset", "path", path, "points", len(d.Points), "lines", len(d.Lines), "polygons", len(d.Polygons))
				data.Merge(d)
			}
			if wkt != "" {
				d, err := geom.ParseWKT(wkt)
				if err != nil {
					return fmt.Errorf("--wkt: %w", err)
				}
				data.Merge(d)
			}

			c, err := plotData(cfg, data, axes)
			if err != nil {
				return err
			}
			return printFrame(cmd.OutOrStdout(), cfg, c.Canvas)
		},
	}
	cmd.Flags().StringVar(&wkt, "wkt", "", "WKT geometry to plot")
	cmd.Flags().BoolVar(&axes, "axes", false, "Draw labelled axes for the data range")
	return cmd
}

// plotData draws data on a new chart sized and colored by cfg.
func plotData(cfg config.Config, data geom.Data, axes bool) (*chart.Chart, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.BlendMode()
	if err != nil {
		return nil, err
	}
	c := chart.New(cfg.Width, cfg.Height)
	c.Canvas.Blend = mode
	if axes {
		xr, yr := data.BBox.Ranges()
		c.DrawAxes(xr, yr, braille.BrightBlack)
	}
	geom.Plot(c, data, palette)
	return c, nil
}

// printFrame writes the framed canvas followed by a newline.
func printFrame(w io.Writer, cfg config.Config, cv *braille.Canvas) error {
	out := cfg.Render(cv)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
