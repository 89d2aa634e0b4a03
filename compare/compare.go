// SPDX-License-Identifier: MIT

// Package compare cross-checks every multiply strategy against the naive
// reference on seeded random operands and reports the largest deviation
// of each product.
//
// Run does not time anything; it answers one question per (strategy, size)
// pair: does the product agree with Naive within tolerance.
package compare

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/config"
	"github.com/katalvlaran/blockmul/log"
	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Check is the outcome of one strategy on one shape.
type Check struct {
	Strategy   matmul.Strategy
	Rows       int
	Inner      int
	Cols       int
	MaxAbsDiff float64
	Tolerance  float64
	OK         bool
}

// Shape formats the product as "m×k * k×n".
func (c Check) Shape() string {
	return fmt.Sprintf("%dx%d * %dx%d", c.Rows, c.Inner, c.Inner, c.Cols)
}

// Report collects the checks of one run.
type Report struct {
	Precision string
	Seed      int64
	Checks    []Check
}

// Failed returns the checks that exceeded their tolerance.
func (r *Report) Failed() []Check {
	return lo.Filter(r.Checks, func(c Check, _ int) bool { return !c.OK })
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Render writes the report as a table.
func (r *Report) Render(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("strategy", "shape", "max abs diff", "tolerance", "ok")
	for _, c := range r.Checks {
		if err := table.Append([]string{
			c.Strategy.String(),
			c.Shape(),
			strconv.FormatFloat(c.MaxAbsDiff, 'g', 4, 64),
			strconv.FormatFloat(c.Tolerance, 'g', 4, 64),
			strconv.FormatBool(c.OK),
		}); err != nil {
			return errors.Trace(err)
		}
	}

	return errors.Trace(table.Render())
}

// Run executes the comparison described by conf. The context is checked
// between products; a cancelled run returns the context error.
func Run(ctx context.Context, conf *config.Config) (*Report, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	strategies, err := conf.ParsedStrategies()
	if err != nil {
		return nil, errors.Trace(err)
	}

	var checks []Check
	switch conf.Precision {
	case config.PrecisionFloat32:
		checks, err = run[float32](ctx, conf, strategies)
	default:
		checks, err = run[float64](ctx, conf, strategies)
	}
	if err != nil {
		return nil, err
	}

	return &Report{Precision: conf.Precision, Seed: conf.Seed, Checks: checks}, nil
}

// Options translates conf into the matmul options for element type T.
func Options[T matrix.Float](conf *config.Config) []matmul.Option {
	tile := conf.TileSize
	if tile == 0 {
		tile = matmul.SuggestTileSize[T]()
	}
	opts := []matmul.Option{
		matmul.WithTileSize(tile),
		matmul.WithMinSize(conf.MinSize),
	}
	if conf.Lanes > 0 {
		opts = append(opts, matmul.WithLanes(conf.Lanes))
	}

	return opts
}

func run[T matrix.Float](ctx context.Context, conf *config.Config, strategies []matmul.Strategy) ([]Check, error) {
	rng := rand.New(rand.NewSource(conf.Seed))
	opts := Options[T](conf)

	checks := make([]Check, 0, len(conf.Sizes)*len(strategies))
	for _, n := range conf.Sizes {
		k := conf.InnerFor(n)
		a, err := matrix.NewRandom[T](n, k, rng)
		if err != nil {
			return nil, errors.Annotatef(err, "generate %dx%d", n, k)
		}
		b, err := matrix.NewRandom[T](k, n, rng)
		if err != nil {
			return nil, errors.Annotatef(err, "generate %dx%d", k, n)
		}
		want, err := matmul.Naive[T](a, b)
		if err != nil {
			return nil, errors.Trace(err)
		}

		tol := conf.RelTolerance
		if tol == 0 {
			tol = matmul.Tolerance[T](k)
		}
		for _, s := range strategies {
			if err := ctx.Err(); err != nil {
				return nil, errors.Trace(err)
			}
			got, err := matmul.Multiply[T](s, a, b, opts...)
			if err != nil {
				return nil, errors.Annotatef(err, "%s %dx%d", s, n, k)
			}
			diff, err := matrix.MaxAbsDiff[T](got, want)
			if err != nil {
				return nil, errors.Trace(err)
			}
			ok, err := matrix.AllClose[T](got, want, tol, tol)
			if err != nil {
				return nil, errors.Trace(err)
			}
			check := Check{Strategy: s, Rows: n, Inner: k, Cols: n, MaxAbsDiff: diff, Tolerance: tol, OK: ok}
			checks = append(checks, check)

			fields := []zap.Field{
				zap.String("strategy", s.String()),
				zap.String("shape", check.Shape()),
				zap.Float64("max_abs_diff", diff),
				zap.Float64("tolerance", tol),
			}
			if ok {
				log.Logger().Debug("strategy agrees with naive", fields...)
			} else {
				log.Logger().Warn("strategy deviates from naive", fields...)
			}
		}
	}

	return checks, nil
}
