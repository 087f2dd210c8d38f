// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package detect wires the detector's public pkg/detect.Detect entry
// point into a cobra subcommand: repository path in, UniversalBuild
// JSON out.
package detect

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/logx"
	"github.com/gizzahub/universalbuild/pkg/detect"
)

var (
	configPath string
	mode       string
	pretty     bool
)

// NewDetectCmd returns the "detect" subcommand, which analyzes the
// repository at the given path (default ".") and prints the resulting
// UniversalBuild list as JSON.
func NewDetectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "detect [path]",
		Short:        "Detect runnable services in a repository and emit UniversalBuild artifacts",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}
			return runDetect(ctx, cmd, repoPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a detect.yaml config file (default: search standard locations)")
	cmd.Flags().StringVar(&mode, "mode", "", "Override the configured run mode (static, llm, full)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON output")

	return cmd
}

func runDetect(ctx context.Context, cmd *cobra.Command, repoPath string) error {
	cfg, err := detectconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading detect configuration: %w", err)
	}
	if mode != "" {
		cfg.Mode = detectconfig.Mode(mode)
	}

	log := logx.Named("cmd.detect")
	log.Info("starting detection run",
		zap.String("repo_path", repoPath),
		zap.String("mode", string(cfg.Mode)),
	)

	// No real llmclient.Client is wired yet (see DESIGN.md): in llm/full
	// mode the registry falls back to deterministic-only detection, per
	// pkg/detect.Detect's documented nil-client behavior.
	builds, err := detect.Detect(ctx, repoPath, *cfg, nil)
	if err != nil {
		return fmt.Errorf("detecting services: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(builds)
}
