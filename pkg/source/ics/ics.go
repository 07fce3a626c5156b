// Package ics loads events from iCalendar (RFC 5545) data.
//
// The adapter maps each VEVENT to one engine event: UID becomes the ID
// (a generated one fills in when a feed omits it), DTSTART/DTEND become
// the time range, and the source's configured name becomes the group key
// so every subscription gets its own color bucket.
//
// Recurrence rules are not expanded; a recurring VEVENT contributes only
// its base occurrence. All-day and malformed component handling follows
// the underlying parser.
package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
)

// Source loads events from one ICS file or subscription URL.
type Source struct {
	// Name labels the source; it becomes the GroupKey of every event it
	// yields.
	name string

	// Location is a local file path or an http(s) URL.
	location string

	// Client is the HTTP client for URL sources. Nil means
	// http.DefaultClient.
	Client *http.Client
}

// New creates an ICS source. location may be a local path or an
// http(s) URL; name labels the source and buckets its events for color
// assignment.
func New(name, location string) *Source {
	return &Source{name: name, location: location}
}

// Name identifies the source.
func (s *Source) Name() string {
	return s.name
}

// Load fetches and parses the ICS payload into engine events.
func (s *Source) Load(ctx context.Context) ([]event.Event, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	cal, err := ical.ParseCalendar(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "parse ICS from %s", s.location)
	}

	var events []event.Event
	for _, ve := range cal.Events() {
		e, ok := s.convert(ve)
		if !ok {
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// fetch opens the payload stream for a path or URL location.
func (s *Source) fetch(ctx context.Context) (io.ReadCloser, error) {
	if strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "build request for %s", s.location)
		}
		client := s.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "fetch %s", s.location)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.New(errors.ErrCodeInvalidSource, "fetch %s: status %d", s.location, resp.StatusCode)
		}
		return resp.Body, nil
	}

	f, err := os.Open(s.location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", s.location)
		}
		return nil, fmt.Errorf("open %s: %w", s.location, err)
	}
	return f, nil
}

// convert maps one VEVENT to an engine event. Components without a
// resolvable time range are skipped.
func (s *Source) convert(ve *ical.VEvent) (event.Event, bool) {
	start, err := ve.GetStartAt()
	if err != nil {
		return event.Event{}, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		// DTEND is optional; treat as instantaneous and let the layout
		// apply its minimum height.
		end = start
	}

	id := ""
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		id = p.Value
	}
	if id == "" {
		id = uuid.NewString()
	}

	return event.Event{
		ID:       id,
		Start:    start,
		End:      end,
		GroupKey: s.name,
	}, true
}
