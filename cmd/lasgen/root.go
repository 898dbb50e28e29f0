// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasfield/config"
)

// app is the state shared by subcommands once the root pre-run has resolved it.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "lasgen",
		Short:         "Generate 2-D Gaussian random fields by local average subdivision",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Logging.Level = a.logLevel
			}
			log, err := config.NewLogger(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			a.log.Debug("configuration resolved",
				zap.String("path", a.configPath),
				zap.Int("nx", cfg.Grid.NX),
				zap.Int("ny", cfg.Grid.NY),
				zap.String("model", cfg.Model.Kind))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(newGridCmd(a), newGenerateCmd(a), newStatsCmd(a))

	return root
}
