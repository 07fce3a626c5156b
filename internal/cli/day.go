package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/pipeline"
	"github.com/calgrid/calgrid/pkg/render"
)

// newDayCmd lays out one day's events into columns and renders the result.
func newDayCmd(configPath *string) *cobra.Command {
	flags := &gridFlags{}
	var (
		eventsPath string
		hourHeight float64
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Lay out a day's events into non-overlapping columns",
		Long: `Day filters the event file to the anchor day, resolves temporal overlaps
into visual columns, and renders the resulting schedule as text, JSON, or SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			opts, err := flags.options(cfg, pipeline.ModeDay, logger)
			if err != nil {
				return err
			}
			if hourHeight > 0 {
				opts.HourHeight = hourHeight
			}

			prog := newProgress(logger)
			events, err := loadEvents(ctx, eventsPath)
			if err != nil {
				return err
			}
			opts.Events = events

			runner, cleanup, err := newRunner(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Laid out %d events", len(result.Layout)))

			var out []byte
			switch flags.format {
			case formatText:
				out = []byte(renderDayText(result.Layout, events, opts.Anchor, opts.Calendar()))
			case formatJSON:
				out, err = render.JSONResult(result)
				if err != nil {
					return err
				}
			case formatSVG:
				out = render.SVGDay(result.Layout, events, render.SVGOptions{
					HourHeight: opts.HourHeight,
					HourLines:  true,
				})
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, svg)", flags.format)
			}

			if outPath != "" {
				return os.WriteFile(outPath, out, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.anchor, "date", "d", "", "day to lay out YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&flags.timezone, "tz", "", "IANA timezone (default from config)")
	cmd.Flags().StringVar(&flags.weekStart, "week-start", "", "first weekday of the week (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatText, "output format: text, json, svg")
	cmd.Flags().StringVarP(&eventsPath, "events", "e", "", "event file (.json or .ics)")
	cmd.Flags().Float64Var(&hourHeight, "hour-height", 0, "vertical scale in units per hour (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to file instead of stdout")
	_ = cmd.MarkFlagRequired("events")
	return cmd
}
