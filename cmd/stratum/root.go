/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package stratum

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/stratum/cmd/stratum/match"
	"github.com/dburkart/stratum/cmd/stratum/repl"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "stratum",
		Short: "Stratum matches rule expressions against token streams",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [csv, json, text]")

	// Bind viper config to the root flags
	viper.BindPFlag("stratum.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("stratum.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("stratum.output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("stratum version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	match.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	rootCmd.AddCommand(match.Command)
	rootCmd.AddCommand(repl.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
