// Package api exposes the layout pipeline over HTTP.
//
// The surface is intentionally small and read-only:
//
//	GET  /healthz             liveness probe
//	GET  /v1/grid/month       42-cell month grid for ?anchor=YYYY-MM-DD
//	GET  /v1/grid/week        7-cell week grid for ?anchor=YYYY-MM-DD
//	POST /v1/layout/day       day layout for a posted event snapshot
//
// Grid endpoints take the calendar convention from query parameters
// (tz, week_start); the day endpoint takes the full query as its JSON
// body. Errors are returned as {"code", "error"} JSON with the status
// derived from the error code.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
	"github.com/calgrid/calgrid/pkg/pipeline"
)

// Server wires the layout runner to HTTP handlers.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	now    func() time.Time // injectable clock for tests
}

// NewServer creates a server around a runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	return &Server{runner: runner, logger: logger, now: time.Now}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/grid/month", s.handleGrid(pipeline.ModeMonth))
		r.Get("/grid/week", s.handleGrid(pipeline.ModeWeek))
		r.Post("/layout/day", s.handleDayLayout)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGrid serves month and week grids from query parameters.
func (s *Server) handleGrid(mode pipeline.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tz := r.URL.Query().Get("tz")
		loc, err := errors.ParseTimezone(tz)
		if err != nil {
			writeError(w, err)
			return
		}
		anchor, err := parseAnchor(r.URL.Query().Get("anchor"), loc, s.now())
		if err != nil {
			writeError(w, err)
			return
		}

		result, err := s.runner.Execute(r.Context(), pipeline.Options{
			Mode:      mode,
			Anchor:    anchor,
			Now:       s.now(),
			Timezone:  tz,
			WeekStart: r.URL.Query().Get("week_start"),
			Logger:    s.logger,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// dayLayoutRequest is the POST body for /v1/layout/day.
type dayLayoutRequest struct {
	Day        string        `json:"day"`
	Timezone   string        `json:"timezone,omitempty"`
	WeekStart  string        `json:"week_start,omitempty"`
	HourHeight float64       `json:"hour_height,omitempty"`
	Events     []event.Event `json:"events"`
}

func (s *Server) handleDayLayout(w http.ResponseWriter, r *http.Request) {
	var req dayLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	loc, err := errors.ParseTimezone(req.Timezone)
	if err != nil {
		writeError(w, err)
		return
	}
	anchor, err := parseAnchor(req.Day, loc, s.now())
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Mode:       pipeline.ModeDay,
		Anchor:     anchor,
		Now:        s.now(),
		Timezone:   req.Timezone,
		WeekStart:  req.WeekStart,
		HourHeight: req.HourHeight,
		Events:     req.Events,
		Logger:     s.logger,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// parseAnchor parses a YYYY-MM-DD anchor as midnight in the request's
// timezone, defaulting to fallback when empty. Parsing in loc keeps the
// anchor on the named calendar day; parsed as UTC it would land on the
// previous local day in negative-offset zones.
func parseAnchor(raw string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid anchor %q (want YYYY-MM-DD)", raw)
	}
	return t, nil
}
