package cli

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/pipeline"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 9, 17, 10, 0, 0, 0, time.UTC)

	got, err := parseDate("", time.UTC, now)
	if err != nil || !got.Equal(now) {
		t.Errorf("parseDate(\"\") = %v, %v; want now", got, err)
	}

	got, err = parseDate("2026-09-01", time.UTC, now)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("parseDate() = %v, want %v", got, want)
	}

	if _, err := parseDate("01/09/2026", time.UTC, now); err == nil {
		t.Error("parseDate() accepted a non-ISO date")
	}
}

func TestParseDateNegativeOffsetZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	got, err := parseDate("2026-09-01", ny, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	// Midnight in New York, not UTC: the date must stay September 1 when
	// viewed in its own zone.
	if want := time.Date(2026, 9, 1, 0, 0, 0, 0, ny); !got.Equal(want) {
		t.Errorf("parseDate() = %v, want %v", got, want)
	}
	if local := got.In(ny); local.Day() != 1 || local.Month() != time.September {
		t.Errorf("parsed date in zone = %v, want September 1", local)
	}
}

func TestGridFlagsOptionsResolveTimezoneBeforeAnchor(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	flags := &gridFlags{anchor: "2026-09-01", timezone: "America/New_York"}
	logger := log.NewWithOptions(io.Discard, log.Options{})

	opts, err := flags.options(config.Default(), pipeline.ModeMonth, logger)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 9, 1, 0, 0, 0, 0, ny); !opts.Anchor.Equal(want) {
		t.Errorf("Anchor = %v, want midnight in the flag's zone %v", opts.Anchor, want)
	}
	if opts.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", opts.Timezone)
	}
}

func TestGridFlagsOptionsRejectBadTimezone(t *testing.T) {
	flags := &gridFlags{timezone: "Nowhere/Atlantis"}
	logger := log.NewWithOptions(io.Discard, log.Options{})

	if _, err := flags.options(config.Default(), pipeline.ModeMonth, logger); err == nil {
		t.Error("options() accepted an unresolvable timezone")
	}
}
