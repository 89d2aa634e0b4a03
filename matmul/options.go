// SPDX-License-Identifier: MIT

// Package matmul: functional configuration for the multiply strategies.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Every strategy accepts the same ...Option list; a strategy ignores the
// knobs it has no use for (Naive ignores all of them).
package matmul

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTileSize is the edge length of the i/j/k blocks used by Tiled.
	DefaultTileSize = 64

	// DefaultMinSize is the Strassen recursion threshold: n <= DefaultMinSize
	// multiplies with the naive kernel.
	DefaultMinSize = 64

	// DefaultLanes selects the lane count detected for the element type at
	// startup (see LaneWidth).
	DefaultLanes = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTileSizeInvalid = "matmul: WithTileSize: tile size must be > 0"
	panicMinSizeInvalid  = "matmul: WithMinSize: min size must be > 0"
	panicLanesInvalid    = "matmul: WithLanes: lanes must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tileSize int // > 0; DefaultTileSize
	minSize  int // > 0; DefaultMinSize
	lanes    int // >= 0; 0 means detected width
}

func defaultOptions() Options {
	return Options{
		tileSize: DefaultTileSize,
		minSize:  DefaultMinSize,
		lanes:    DefaultLanes,
	}
}

// gatherOptions folds opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTileSize sets the block edge for Tiled. Panics if n <= 0.
func WithTileSize(n int) Option {
	if n <= 0 {
		panic(panicTileSizeInvalid)
	}

	return func(o *Options) { o.tileSize = n }
}

// WithMinSize sets the Strassen recursion threshold. Panics if n <= 0.
func WithMinSize(n int) Option {
	if n <= 0 {
		panic(panicMinSizeInvalid)
	}

	return func(o *Options) { o.minSize = n }
}

// WithLanes overrides the detected lane count for SIMD. Panics if n <= 0.
func WithLanes(n int) Option {
	if n <= 0 {
		panic(panicLanesInvalid)
	}

	return func(o *Options) { o.lanes = n }
}
