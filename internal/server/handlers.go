package server

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/navpath"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

const (
	defaultNearest = 1
	maxNearest     = 50

	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

type healthBody struct {
	Status string `json:"status"`
	Points int    `json:"points"`
	Edges  int    `json:"edges"`
}

type nearestBody struct {
	FloorID int           `json:"floorId"`
	Points  []venue.Point `json:"points"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthBody{
		Status: "ok",
		Points: len(s.snapshot.Points),
		Edges:  len(s.snapshot.Edges),
	})
}

// handleRoute serves GET /route?from=<roomID>&to=<roomID>[&floor=<floorID>][&format=geojson].
// Without floor the route is returned for every floor it crosses.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	s.serveRoute(w, r, navpath.ComputeRenderPath)
}

// handlePointRoute serves GET /route/points with point IDs instead of room IDs.
func (s *Server) handlePointRoute(w http.ResponseWriter, r *http.Request) {
	s.serveRoute(w, r, navpath.ComputePointRenderPath)
}

// computeFunc is the signature shared by the navpath entry points.
type computeFunc func(ctx context.Context, from, to int, edges []venue.Edge, all, floor []venue.Point, opts ...navpath.Option) ([]venue.Point, error)

func (s *Server) serveRoute(w http.ResponseWriter, r *http.Request, compute computeFunc) {
	q := r.URL.Query()

	from, err := intParam(q, "from")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	to, err := intParam(q, "to")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format, err := formatParam(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	floorPoints := s.snapshot.Points
	if q.Has("floor") {
		floorID, err := intParam(q, "floor")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if floorPoints, err = s.floor(floorID); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	path, err := compute(r.Context(), from, to, s.snapshot.Edges, s.snapshot.Points, floorPoints, navpath.WithRouter(s.router))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	loggerFrom(r.Context(), s.logger).Debug("route computed", "from", from, "to", to, "samples", len(path))

	if format == formatGeoJSON {
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		err = snapshotio.WritePathGeoJSON(w, path)
	} else {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		err = snapshotio.WritePathJSON(w, path)
	}
	if err != nil {
		loggerFrom(r.Context(), s.logger).Warn("write response", "err", err)
	}
}

// handleNearest serves GET /floors/{floorID}/nearest?x=&y=[&k=].
func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	floorID, err := strconv.Atoi(chi.URLParam(r, "floorID"))
	if err != nil {
		s.writeError(w, r, apperr.New(apperr.ErrCodeInvalidInput, "floor id must be an integer, got %q", chi.URLParam(r, "floorID")))
		return
	}
	if _, err := s.floor(floorID); err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	x, err := floatParam(q, "x")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	y, err := floatParam(q, "y")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	k := defaultNearest
	if q.Has("k") {
		if k, err = intParam(q, "k"); err != nil {
			s.writeError(w, r, err)
			return
		}
		if k < 1 || k > maxNearest {
			s.writeError(w, r, apperr.New(apperr.ErrCodeInvalidInput, "k must be between 1 and %d, got %d", maxNearest, k))
			return
		}
	}

	points := s.indexes[floorID].Nearest(x, y, k)
	if points == nil {
		points = []venue.Point{}
	}
	s.writeJSON(w, http.StatusOK, nearestBody{FloorID: floorID, Points: points})
}

// floor returns the points of floorID. A floor is known when the snapshot
// lists it or when any point lies on it.
func (s *Server) floor(floorID int) ([]venue.Point, error) {
	points, ok := s.floorPoints[floorID]
	if !ok {
		return nil, apperr.New(apperr.ErrCodeNotFound, "floor %d not found", floorID)
	}
	return points, nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be a finite number, got %q", name, raw)
	}
	return v, nil
}

func formatParam(q url.Values) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(q.Get("format"))); f {
	case "", formatJSON:
		return formatJSON, nil
	case formatGeoJSON:
		return formatGeoJSON, nil
	default:
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "format must be json or geojson, got %q", f)
	}
}
