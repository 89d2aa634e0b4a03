// SPDX-License-Identifier: MIT

// Command blockmul multiplies seeded random matrices with the blocked
// strategies of package matmul and cross-checks them against the naive
// reference.
package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/cmd/version"
	"github.com/katalvlaran/blockmul/config"
	"github.com/katalvlaran/blockmul/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockmul",
		Short:         "Blocked matrix multiplication engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			log.SetLogger(cmd.Flags(), debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				_, err := fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
				return errors.Trace(err)
			}
			return cmd.Help()
		},
	}

	log.AddFlags(root.PersistentFlags())
	config.AddFlags(root.PersistentFlags())
	root.PersistentFlags().Bool("debug", false, "use debug log mode")
	root.PersistentFlags().BoolP("version", "v", false, "blockmul version")
	root.PersistentFlags().StringP("config", "c", "", "configuration file path")

	root.AddCommand(newMultiplyCommand(), newCompareCommand(), newInfoCommand(), newVersionCommand())
	return root
}

// loadConfig resolves the configuration from --config, the environment and
// the flags of cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	log.Logger().Debug("load config", zap.String("config", configPath))
	conf, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return nil, errors.Annotate(err, "failed to load config")
	}
	return conf, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
			return errors.Trace(err)
		},
	}
}

func main() {
	defer func() { _ = log.Logger().Sync() }()
	if err := newRootCommand().Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
