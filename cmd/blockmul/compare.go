// SPDX-License-Identifier: MIT

package main

import (
	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/compare"
	"github.com/katalvlaran/blockmul/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Check every strategy against the naive reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			report, err := compare.Run(cmd.Context(), conf)
			if err != nil {
				return errors.Trace(err)
			}
			if err = report.Render(cmd.OutOrStdout()); err != nil {
				return errors.Trace(err)
			}
			if failed := report.Failed(); len(failed) > 0 {
				return errors.Errorf("%d of %d checks exceeded tolerance", len(failed), len(report.Checks))
			}
			log.Logger().Info("all strategies agree with naive",
				zap.Int("checks", len(report.Checks)),
				zap.String("precision", report.Precision))
			return nil
		},
	}
}
