// Package detect is the detector's public API (spec.md §2, SPEC_FULL.md
// §2): one repository in, one UniversalBuild list out. Everything under
// internal/ is an implementation detail; this is the only package an
// external caller (the cmd/ CLI skeleton or a host embedding the
// detector as a library) should import.
package detect

import (
	"context"
	"path/filepath"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/llmclient"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pipeline"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/stack"
)

// Detect analyzes the repository rooted at repoPath on disk and returns
// its UniversalBuild list. client is only consulted when cfg.Mode is
// llm or full; pass nil for static mode (a nil client in llm/full mode
// silently falls back to the deterministic-only registry, the same
// behavior stack.WithDefaults documents).
func Detect(ctx context.Context, repoPath string, cfg detectconfig.Config, client llmclient.Client) ([]model.UniversalBuild, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, errtax.Wrap(errtax.KindPathNotFound, "could not resolve repository path", err)
	}

	fsys := fsa.NewRealFS(abs)
	if !fsys.IsDir(".") {
		if !fsys.Exists(".") {
			return nil, errtax.New(errtax.KindPathNotFound, "repository path does not exist").WithContext("path", abs)
		}
		return nil, errtax.New(errtax.KindNotADirectory, "repository path is not a directory").WithContext("path", abs)
	}

	return DetectFS(ctx, fsys, ".", cfg, client)
}

// DetectFS runs the same pipeline against an arbitrary fsa.FS, rooted
// at repoPath within it. This is the entry point fixture-driven tests
// use against fsa.MockFS, and what Detect delegates to once it has
// validated and wrapped a real directory.
func DetectFS(ctx context.Context, fsys fsa.FS, repoPath string, cfg detectconfig.Config, client llmclient.Client) ([]model.UniversalBuild, error) {
	registry := stack.WithDefaults(cfg.Mode, client)
	index := pkgindex.NewStatic(pkgindex.DefaultVersions())
	orch := pipeline.Orchestrator{Config: cfg}
	return orch.Run(ctx, fsys, repoPath, registry, index)
}
