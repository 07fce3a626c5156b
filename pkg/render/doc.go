// Package render turns layout results into output artifacts.
//
// The engine stops at geometry; this package is the presentation
// boundary that maps geometry to bytes. Two sinks are provided:
//
//   - SVG: a standalone day-schedule drawing with hour lines and one
//     rect per event, colored by group
//   - JSON: the result serialized for API consumers and piping
//
// Color selection uses event.ColorIndex, so a group always keeps its
// palette slot across runs.
package render
