package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/source/jsonfile"
)

// sampleGroups are the group keys cycled through by the sample generator.
var sampleGroups = []string{"team", "personal", "focus", "ops"}

// newSampleCmd generates a sample event file for trying out the layout
// commands without a real calendar.
func newSampleCmd() *cobra.Command {
	var (
		datestr string
		count   int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample event file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(datestr, time.UTC, time.Now())
			if err != nil {
				return err
			}

			events := sampleEvents(day, count)
			return jsonfile.WriteEvents(events, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&datestr, "date", "d", "", "day to generate events on YYYY-MM-DD (default today)")
	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of events to generate")
	return cmd
}

// sampleEvents produces count events spread over the working hours of
// day, deliberately overlapping so the column assignment has work to do.
func sampleEvents(day time.Time, count int) []event.Event {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	events := make([]event.Event, count)
	for i := range events {
		// Starts stagger by 45 minutes from 09:00; durations cycle
		// between 30 and 90 minutes so neighbors overlap.
		start := dayStart.Add(9*time.Hour + time.Duration(i*45)*time.Minute)
		dur := time.Duration(30+(i%3)*30) * time.Minute
		events[i] = event.Event{
			ID:       uuid.NewString(),
			Start:    start,
			End:      start.Add(dur),
			GroupKey: sampleGroups[i%len(sampleGroups)],
		}
	}
	return events
}
