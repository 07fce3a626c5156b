package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/calgrid/calgrid/pkg/calmath"
	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/grid"
	"github.com/calgrid/calgrid/pkg/layout"
)

// weekdayAbbrevs in time.Weekday order (Sunday first).
var weekdayAbbrevs = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// renderGridText renders a month or week grid as styled terminal text:
// a title line, a weekday header aligned to the calendar's week start,
// and one row per week. Padding days are dimmed; today is highlighted.
func renderGridText(cells []grid.DayCell, anchor time.Time, cal calmath.Calendar) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(anchor.In(cal.Location).Format("January 2006")))
	b.WriteString("\n")

	headers := make([]string, 7)
	for i := range headers {
		headers[i] = weekdayAbbrevs[(int(cal.WeekStart)+i)%7]
	}
	b.WriteString(styleWeekday.Render(strings.Join(headers, " ")))
	b.WriteString("\n")

	for i, cell := range cells {
		label := fmt.Sprintf("%2d", cell.Date.Day())
		switch {
		case cell.IsToday:
			label = styleToday.Render(label)
		case cell.InCurrentPeriod:
			label = styleDay.Render(label)
		default:
			label = styleOutside.Render(label)
		}
		b.WriteString(label)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// renderDayText renders a day layout as one line per event: time range,
// column position within the cluster, and the event ID.
func renderDayText(placements []layout.PixelLayout, events []event.Event, day time.Time, cal calmath.Calendar) string {
	byID := make(map[string]event.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(day.In(cal.Location).Format("Monday, January 2 2006")))
	b.WriteString("\n")

	if len(placements) == 0 {
		b.WriteString(styleDim.Render("no events"))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range placements {
		e := byID[p.EventID]
		span := fmt.Sprintf("%s-%s",
			e.Start.In(cal.Location).Format("15:04"),
			e.End.In(cal.Location).Format("15:04"))
		lane := styleDim.Render(fmt.Sprintf("[%d/%d]", p.Column+1, p.ColumnCount))
		fmt.Fprintf(&b, "%s %s %s\n", styleBar.Render(span), lane, e.ID)
	}
	return b.String()
}
