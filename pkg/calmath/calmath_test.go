package calmath

import (
	"testing"
	"time"

	"github.com/calgrid/calgrid/pkg/errors"
)

func TestStartOfDay(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cal  Calendar
		in   time.Time
		want time.Time
	}{
		{
			name: "afternoon truncates to midnight",
			cal:  Default(),
			in:   time.Date(2026, 9, 1, 15, 42, 7, 123, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight is a fixed point",
			cal:  Default(),
			in:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "timezone shifts the day boundary",
			cal:  Calendar{Location: madrid, WeekStart: time.Monday},
			// 23:30 UTC on Aug 31 is already Sep 1 in Madrid (CEST).
			in:   time.Date(2026, 8, 31, 23, 30, 0, 0, time.UTC),
			want: time.Date(2026, 9, 1, 0, 0, 0, 0, madrid),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cal.StartOfDay(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	cal := Default()
	got := cal.StartOfMonth(time.Date(2026, 9, 17, 13, 0, 0, 0, time.UTC))
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{name: "february non-leap", in: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), want: 28},
		{name: "february leap", in: time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "30-day month", in: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "31-day month", in: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), want: 31},
		{name: "december", in: time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), want: 31},
	}

	cal := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.DaysInMonth(tt.in); got != tt.want {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	// September 2026 starts on a Tuesday; check the offset against all
	// seven week-start conventions.
	monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		weekStart time.Weekday
		want      int
	}{
		{time.Sunday, 2},
		{time.Monday, 1},
		{time.Tuesday, 0},
		{time.Wednesday, 6},
		{time.Thursday, 5},
		{time.Friday, 4},
		{time.Saturday, 3},
	}

	for _, tt := range tests {
		t.Run(tt.weekStart.String(), func(t *testing.T) {
			cal := Calendar{Location: time.UTC, WeekStart: tt.weekStart}
			if got := cal.FirstWeekdayOffset(monthStart); got != tt.want {
				t.Errorf("FirstWeekdayOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	cal := Default()

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC),
			b:    time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day-of-month different month",
			a:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	cal := Default()

	a := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 30, 23, 59, 0, 0, time.UTC)
	if !cal.SameMonth(a, b) {
		t.Error("SameMonth() = false for days in the same month")
	}

	c := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if cal.SameMonth(a, c) {
		t.Error("SameMonth() = true for same month of different years")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Validate() on default calendar = %v, want nil", err)
	}

	bad := Calendar{Location: time.UTC, WeekStart: time.Weekday(9)}
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() = nil for out-of-range week start")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCalendar) {
		t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCalendar)
	}
}

func TestZeroValueCalendarUsesUTC(t *testing.T) {
	var cal Calendar
	got := cal.StartOfDay(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC))
	if got.Location() != time.UTC {
		t.Errorf("StartOfDay() location = %v, want UTC", got.Location())
	}
}
