package router

import (
	"github.com/charmbracelet/log"

	"github.com/DanishNasarudin/wvpac-pathfinder/dijkstra"
)

// Options configures a Router.
//
// Searcher    – shortest-path implementation. Default dijkstra.New().
// Logger      – diagnostics sink. Default log.Default().
// Parallelism – how many entry-point pairs are searched at once. Default 1.
type Options struct {
	Searcher    dijkstra.Searcher
	Logger      *log.Logger
	Parallelism int
}

// Option represents a functional option for configuring a Router.
type Option func(*Options)

// WithSearcher replaces the shortest-path implementation. A nil searcher is ignored.
func WithSearcher(s dijkstra.Searcher) Option {
	return func(o *Options) {
		if s != nil {
			o.Searcher = s
		}
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

// WithParallelism bounds the number of concurrent searches. Values below 1
// select sequential evaluation.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Parallelism = n
	}
}

// DefaultOptions returns Options initialized with the defaults:
//   - Searcher:    dijkstra.New() (linear scan).
//   - Logger:      log.Default().
//   - Parallelism: 1.
func DefaultOptions() Options {
	return Options{
		Searcher:    dijkstra.New(),
		Logger:      log.Default(),
		Parallelism: 1,
	}
}
