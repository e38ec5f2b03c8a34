// Package server exposes read-only routing over HTTP.
//
// A Server wraps one immutable venue snapshot. Handlers never modify it, so
// requests run concurrently without locks. Per-floor point lists and spatial
// indexes are built once in New.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	apperr "github.com/DanishNasarudin/wvpac-pathfinder/internal/errors"
	"github.com/DanishNasarudin/wvpac-pathfinder/router"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Server serves routes over a single venue snapshot.
type Server struct {
	snapshot    venue.Snapshot
	router      *router.Router
	logger      *log.Logger
	floorPoints map[int][]venue.Point
	indexes     map[int]*geom.PointIndex
}

// New prepares a Server. A nil router or logger selects the defaults.
func New(snap venue.Snapshot, r *router.Router, logger *log.Logger) *Server {
	if r == nil {
		r = router.New()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		snapshot:    snap,
		router:      r,
		logger:      logger,
		floorPoints: make(map[int][]venue.Point),
		indexes:     make(map[int]*geom.PointIndex),
	}
	for _, f := range snap.Floors {
		s.floorPoints[f.ID] = nil
	}
	for _, p := range snap.Points {
		s.floorPoints[p.FloorID] = append(s.floorPoints[p.FloorID], p)
	}
	for id, points := range s.floorPoints {
		s.indexes[id] = geom.NewPointIndex(points)
	}

	return s
}

// Handler returns the chi router with all endpoints mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/route", s.handleRoute)
	r.Get("/route/points", s.handlePointRoute)
	r.Get("/floors/{floorID}/nearest", s.handleNearest)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "points", len(s.snapshot.Points), "edges", len(s.snapshot.Edges))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

type errorBody struct {
	Error string      `json:"error"`
	Code  apperr.Code `json:"code"`
}

// writeError classifies err and writes it with the matching status.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	coded := apperr.Classify(err)
	status := statusFor(coded.Code)
	if status >= http.StatusInternalServerError {
		loggerFrom(r.Context(), s.logger).Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: apperr.UserMessage(coded), Code: coded.Code})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
