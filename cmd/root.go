// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	detectcmd "github.com/gizzahub/universalbuild/cmd/detect"
	"github.com/gizzahub/universalbuild/internal/logx"
)

var (
	verbose bool
	debug   bool
	quiet   bool
)

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "universalbuild",
		Short: "Detects runnable services in a repository and emits UniversalBuild artifacts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetGlobal(loggerForFlags(verbose, debug, quiet))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(detectcmd.NewDetectCmd(ctx))

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (shows all log levels)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs except critical errors")

	return cmd
}

// loggerForFlags builds the process-wide zap logger from the root
// command's verbosity flags, mirroring gzh-cli's logger.SetGlobalLoggingFlags
// three-way switch but wired onto logx's zap-based logger instead.
func loggerForFlags(verbose, debug, quiet bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	switch {
	case quiet:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case debug:
		cfg = zap.NewDevelopmentConfig()
	case verbose:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Execute invokes the command.
func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCmd(ctx, version)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}

	return nil
}
