// Package jsonfile reads and writes event snapshots as JSON files.
//
// The format is a plain array of event objects:
//
//	[
//	  {"id": "a", "start": "2026-09-01T09:00:00Z", "end": "2026-09-01T10:00:00Z", "group_key": "ops"}
//	]
//
// It is the interchange format between the sample generator, the CLI
// layout commands, and the HTTP API.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
)

// ReadEvents decodes a JSON event array from r.
//
// Every event must carry a non-empty, unique ID; start and end must be
// RFC 3339 timestamps. ReadEvents does not validate that end >= start —
// the layout engine tolerates degenerate ranges and validation of event
// data belongs to whoever created it.
func ReadEvents(r io.Reader) ([]event.Event, error) {
	var events []event.Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "decode events")
	}

	seen := make(map[string]bool, len(events))
	for i, e := range events {
		if e.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidSource, "event %d has no id", i)
		}
		if seen[e.ID] {
			return nil, errors.New(errors.ErrCodeInvalidSource, "duplicate event id %q", e.ID)
		}
		seen[e.ID] = true
		if e.Start.IsZero() || e.End.IsZero() {
			return nil, errors.New(errors.ErrCodeInvalidSource, "event %q is missing start or end", e.ID)
		}
	}
	return events, nil
}

// WriteEvents encodes events as an indented JSON array to w.
// The output can be re-imported with ReadEvents for round-trip use.
func WriteEvents(events []event.Event, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}

// ImportEvents reads a JSON event file at path.
func ImportEvents(path string) ([]event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	events, err := ReadEvents(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// ExportEvents writes events to a JSON file at path.
func ExportEvents(events []event.Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteEvents(events, f)
}

// FileSource adapts a JSON event file to the source.Source interface.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the JSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads the full event snapshot from the file.
func (s *FileSource) Load(ctx context.Context) ([]event.Event, error) {
	return ImportEvents(s.path)
}

// Name identifies the source by its path.
func (s *FileSource) Name() string {
	return s.path
}
