package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/pipeline"
	"github.com/calgrid/calgrid/pkg/render"
)

// newMonthCmd renders the 42-cell month grid for an anchor date.
func newMonthCmd(configPath *string) *cobra.Command {
	return newGridCmd(configPath, pipeline.ModeMonth, "month", "Render the month grid for a date")
}

// newWeekCmd renders the 7-cell week grid for an anchor date.
func newWeekCmd(configPath *string) *cobra.Command {
	return newGridCmd(configPath, pipeline.ModeWeek, "week", "Render the week grid for a date")
}

// newGridCmd builds the shared month/week command.
func newGridCmd(configPath *string, mode pipeline.Mode, use, short string) *cobra.Command {
	flags := &gridFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			opts, err := flags.options(cfg, mode, logger)
			if err != nil {
				return err
			}

			runner, cleanup, err := newRunner(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := runner.Execute(ctx, opts)
			if err != nil {
				return err
			}

			switch flags.format {
			case formatText:
				fmt.Fprintln(cmd.OutOrStdout(), renderGridText(result.Cells, opts.Anchor, opts.Calendar()))
			case formatJSON:
				data, err := render.JSONResult(result)
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(data)
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", flags.format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.anchor, "anchor", "a", "", "anchor date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&flags.timezone, "tz", "", "IANA timezone (default from config)")
	cmd.Flags().StringVar(&flags.weekStart, "week-start", "", "first weekday of the week (default from config)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatText, "output format: text, json")
	return cmd
}
