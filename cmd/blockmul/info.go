// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/matmul"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show detected CPU features and derived defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := matmul.DescribeCPU()
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("property", "value")
			rows := [][]string{
				{"cpu", info.Brand},
				{"physical cores", strconv.Itoa(info.PhysicalCores)},
				{"l1d bytes", strconv.Itoa(info.L1D)},
				{"l2 bytes", strconv.Itoa(info.L2)},
				{"fma", strconv.FormatBool(info.FMA)},
				{"neon", strconv.FormatBool(info.NEON)},
				{"dispatch", info.Level.String()},
				{"width bytes", strconv.Itoa(info.Width)},
				{"no simd env", strconv.FormatBool(matmul.NoSimdEnv())},
				{"float32 lanes", strconv.Itoa(matmul.LaneWidth[float32]())},
				{"float64 lanes", strconv.Itoa(matmul.LaneWidth[float64]())},
				{"float32 tile", strconv.Itoa(matmul.SuggestTileSize[float32]())},
				{"float64 tile", strconv.Itoa(matmul.SuggestTileSize[float64]())},
			}
			for _, row := range rows {
				if err := table.Append(row); err != nil {
					return errors.Trace(err)
				}
			}
			return errors.Trace(table.Render())
		},
	}
}
