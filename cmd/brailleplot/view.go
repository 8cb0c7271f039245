package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"brailleplot/internal/tui"
)

func viewCmd(flags *Flags) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "view [file|scene]",
		Short: "Browse scenes and datasets interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			// The alt screen owns the terminal: log to a file or not at all.
			level := slog.LevelInfo
			if flags.Debug {
				level = slog.LevelDebug
			}
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "brailleplot")
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{Level: level, NoColor: true})))
			} else {
				slog.SetDefault(slog.New(slog.DiscardHandler))
			}

			m := tui.New(cfg)
			if len(args) == 1 {
				m = tui.NewWithPath(cfg, args[0])
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the viewer runs")
	return cmd
}
