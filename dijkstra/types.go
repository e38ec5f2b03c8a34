// Package dijkstra defines core types and configuration options
// for the shortest-path search over a venue's navigation graph.
//
// Options:
//
//	– Strategy: how the next point to settle is chosen (linear scan or binary heap).
//	– Logger:   where diagnostics (skipped edges, invalid input) are written.
//
// Errors (sentinel):
//
//	– ErrEmptyPoints      if the point collection is nil or empty.
//	– ErrNoPath           if the destination cannot be reached from the start.
//	– ErrUnknownStrategy  if ParseStrategy receives an unknown name.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// Sentinel errors returned by the search.
var (
	// ErrEmptyPoints indicates that the search was given no points at all.
	// This is an input-validation failure, not an ordinary "no route".
	ErrEmptyPoints = errors.New("dijkstra: points collection is empty")

	// ErrNoPath indicates that the destination is unreachable from the start,
	// or that either endpoint is absent from the points collection.
	ErrNoPath = errors.New("dijkstra: no path between points")

	// ErrUnknownStrategy indicates that ParseStrategy did not recognise a name.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Searcher finds a minimum-weight path between two point IDs.
//
// Implementations must treat edges as directed as given (callers normalize
// with navgraph.MakeBidirectional first), weigh each edge by the Euclidean
// distance between its endpoints, skip edges whose endpoints are missing,
// and return the path inclusive of both ends.
type Searcher interface {
	ShortestPath(ctx context.Context, startID, endID int, edges []venue.Edge, points []venue.Point) ([]venue.Point, error)
}

// Strategy selects how the unsettled point with the smallest tentative
// distance is found on each iteration.
type Strategy int

const (
	// StrategyLinear scans every unsettled point: O(P) per iteration,
	// O(P² + E) overall. Simple and fast for venue-sized graphs.
	StrategyLinear Strategy = iota

	// StrategyHeap keeps a binary min-heap with lazy decrease-key:
	// O((P + E) log P) overall.
	StrategyHeap
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name ("linear" or "heap", any case) to a
// Strategy. The empty string selects StrategyLinear.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return StrategyLinear, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyLinear, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures a Searcher.
//
// Strategy – point selection method. Default StrategyLinear.
// Logger   – diagnostics sink. Default log.Default().
type Options struct {
	Strategy Strategy
	Logger   *log.Logger
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// WithStrategy sets the point selection method.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger sets the diagnostics logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options initialized with the defaults:
//   - Strategy: StrategyLinear.
//   - Logger:   log.Default().
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyLinear,
		Logger:   log.Default(),
	}
}
