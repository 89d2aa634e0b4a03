// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/compare"
	"github.com/katalvlaran/blockmul/config"
	"github.com/katalvlaran/blockmul/log"
	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMultiplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply seeded random matrices with one strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("strategy")
			s, err := matmul.ParseStrategy(name)
			if err != nil {
				return errors.Trace(err)
			}

			var rows [][]string
			if conf.Precision == config.PrecisionFloat32 {
				rows, err = multiplyRows[float32](conf, s)
			} else {
				rows, err = multiplyRows[float64](conf, s)
			}
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("strategy", "shape", "trace", "frobenius", "spectral")
			for _, row := range rows {
				if err = table.Append(row); err != nil {
					return errors.Trace(err)
				}
			}
			return errors.Trace(table.Render())
		},
	}
	cmd.Flags().StringP("strategy", "s", matmul.StrategyTiled.String(), "multiply strategy")
	return cmd
}

// multiplyRows computes one product per configured size and summarizes each
// result by its trace, Frobenius norm and spectral norm.
func multiplyRows[T matrix.Float](conf *config.Config, s matmul.Strategy) ([][]string, error) {
	rng := rand.New(rand.NewSource(conf.Seed))
	opts := compare.Options[T](conf)

	rows := make([][]string, 0, len(conf.Sizes))
	for _, n := range conf.Sizes {
		k := conf.InnerFor(n)
		a, err := matrix.NewRandom[T](n, k, rng)
		if err != nil {
			return nil, errors.Trace(err)
		}
		b, err := matrix.NewRandom[T](k, n, rng)
		if err != nil {
			return nil, errors.Trace(err)
		}
		c, err := matmul.Multiply[T](s, a, b, opts...)
		if err != nil {
			return nil, errors.Annotatef(err, "%s %dx%d", s, n, k)
		}
		trace, err := matrix.Trace[T](c)
		if err != nil {
			return nil, errors.Trace(err)
		}
		norm, err := matrix.FrobeniusNorm[T](c)
		if err != nil {
			return nil, errors.Trace(err)
		}
		spectral, err := spectralNorm(c)
		if err != nil {
			return nil, errors.Trace(err)
		}
		log.Logger().Info("multiplied",
			zap.String("strategy", s.String()),
			zap.Int("n", n),
			zap.Int("inner", k))
		rows = append(rows, []string{
			s.String(),
			compare.Check{Rows: n, Inner: k, Cols: n}.Shape(),
			strconv.FormatFloat(float64(trace), 'g', 8, 64),
			strconv.FormatFloat(norm, 'g', 8, 64),
			strconv.FormatFloat(spectral, 'g', 8, 64),
		})
	}

	return rows, nil
}

// spectralNorm returns the largest singular value of c, the square root of
// the top eigenvalue of CᵀC. The Gram matrix is formed with Naive so that it
// is exactly symmetric.
func spectralNorm[T matrix.Float](c *matrix.Dense[T]) (float64, error) {
	ct, err := matrix.Transpose[T](c)
	if err != nil {
		return 0, errors.Trace(err)
	}
	gram, err := matmul.Naive[T](ct, c)
	if err != nil {
		return 0, errors.Trace(err)
	}
	eig, err := matrix.SymmetricEigenvalues[T](gram)
	if err != nil {
		return 0, errors.Trace(err)
	}

	return math.Sqrt(max(eig[len(eig)-1], 0)), nil
}
