package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"brailleplot/internal/config"
	"brailleplot/internal/gallery"
	"brailleplot/internal/tui"
)

func galleryCmd(flags *Flags) *cobra.Command {
	var (
		list  bool
		frame int
	)
	cmd := &cobra.Command{
		Use:   "gallery [scene...]",
		Short: "Print demo scenes",
		Long: `Gallery prints the named scenes, or all of them, each at its preferred
size unless --width or --height is given. Animated scenes are printed at
--frame.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return gallery.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, s := range gallery.Scenes() {
					fmt.Fprintf(out, "%-12s %s\n", s.Name, s.Title)
				}
				return nil
			}

			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			scenes := gallery.Scenes()
			if len(args) > 0 {
				scenes = scenes[:0]
				for _, name := range args {
					s, ok := gallery.Lookup(name)
					if !ok {
						return fmt.Errorf("unknown scene %q (have %s)", name, strings.Join(gallery.Names(), ", "))
					}
					scenes = append(scenes, s)
				}
			}

			width, height := 0, 0
			if cmd.Flags().Changed("width") {
				width = cfg.Width
			}
			if cmd.Flags().Changed("height") {
				height = cfg.Height
			}
			mode, override := flags.blendOverride(cmd, cfg)
			for i, s := range scenes {
				if override {
					s.Blend = mode
				}
				slog.Debug("drawing scene", "name", s.Name, "frame", frame)
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, heading(cfg, fmt.Sprintf("%d. %s", i+1, s.Title)))
				if err := printFrame(out, cfg, s.Chart(width, height, frame).Canvas); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List scene names and exit")
	cmd.Flags().IntVar(&frame, "frame", 0, "Frame to draw for animated scenes")
	return cmd
}

// heading styles a scene heading unless color is off.
func heading(cfg config.Config, s string) string {
	if !cfg.Color {
		return s
	}
	return tui.Heading(s)
}
