package render

import (
	"fmt"
	"strings"

	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/layout"
)

// DefaultPalette is the standard group color palette. Slots are selected
// by event.ColorIndex over the event's group key.
var DefaultPalette = []string{
	"#4e79a7", // blue
	"#f28e2b", // orange
	"#59a14f", // green
	"#e15759", // red
	"#b07aa1", // purple
	"#76b7b2", // teal
	"#edc948", // yellow
	"#9c755f", // brown
}

// SVGOptions controls the day-schedule SVG sink.
type SVGOptions struct {
	// Width is the drawable width in user units. Zero means 400.
	Width float64

	// HourHeight must match the hour height the layout was computed with;
	// it sizes the hour ruling. Zero means pipeline's default of 50.
	HourHeight float64

	// Palette is the fill color cycle. Empty means DefaultPalette.
	Palette []string

	// HourLines draws a horizontal rule at every hour when true.
	HourLines bool
}

// setDefaults fills zero-valued options.
func (o *SVGOptions) setDefaults() {
	if o.Width == 0 {
		o.Width = 400
	}
	if o.HourHeight == 0 {
		o.HourHeight = 50
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
}

// SVGDay renders a day layout as a standalone SVG document.
//
// Each placement becomes one rect: the horizontal lane is Column of
// ColumnCount equal slices of the width, the vertical geometry comes
// straight from the placement. Fill colors are chosen per event group.
// Events missing from the events slice fall back to palette slot 0.
//
// Output is deterministic: rects appear in placement order, which the
// layout engine already guarantees is stable.
func SVGDay(placements []layout.PixelLayout, events []event.Event, opts SVGOptions) []byte {
	opts.setDefaults()

	groups := make(map[string]string, len(events))
	for _, e := range events {
		groups[e.ID] = e.GroupKey
	}

	height := opts.HourHeight * 24

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		opts.Width, height, opts.Width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	if opts.HourLines {
		for h := 1; h < 24; h++ {
			y := float64(h) * opts.HourHeight
			fmt.Fprintf(&b, `<line x1="0" y1="%g" x2="%g" y2="%g" stroke="#e0e0e0" stroke-width="1"/>`+"\n",
				y, opts.Width, y)
		}
	}

	for _, p := range placements {
		lane := opts.Width / float64(p.ColumnCount)
		x := lane * float64(p.Column)
		fill := opts.Palette[event.ColorIndex(groups[p.EventID], len(opts.Palette))]
		fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" fill-opacity="0.85" stroke="#ffffff" stroke-width="1" rx="2"><title>%s</title></rect>`+"\n",
			x, p.YOffset, lane, p.Height, fill, escape(p.EventID))
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// escape sanitizes text for embedding in SVG.
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
