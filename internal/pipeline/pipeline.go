// Package pipeline drives one end-to-end run over a repository: Scan,
// WorkspaceStructure, and a bounded-concurrency fan-out of the
// per-service micro-pipeline, finally handed to the assembler. Grounded
// on original_source/crates/pipeline/src/pipeline/{orchestrator,
// context}.rs for the phase sequence and gzh-cli's bulk-clone fan-out
// (internal/workerpool usage in its synclone command paths) for the
// concurrency shape.
package pipeline

import (
	"context"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gizzahub/universalbuild/internal/assembler"
	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/logx"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pipeline/service"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack"
	"github.com/gizzahub/universalbuild/internal/workerpool"
	"github.com/gizzahub/universalbuild/internal/workspace"
)

// AnalysisContext carries everything a run shares across every service:
// the run's correlation id (attached to every log line), the scanned
// repository, the resolved workspace structure, and the registry/index
// the service pipeline consults.
type AnalysisContext struct {
	RunID     string
	Scan      *scanner.Result
	Workspace model.WorkspaceStructure
	Registry  stack.Registry
	Index     pkgindex.Index
}

// Orchestrator runs the full Scan → Workspace → per-service fan-out
// pipeline for one repository.
type Orchestrator struct {
	Config detectconfig.Config
}

// serviceOutcome is one package's analysis result, tracked alongside
// its originating Package so results can be re-sorted into a
// deterministic order after the worker pool's unordered fan-in
// (spec.md §5: output must not depend on goroutine scheduling).
type serviceOutcome struct {
	pkg     model.Package
	ctx     *model.ServiceContext
	err     error
	skipped bool
}

// Run scans repoPath with fsys, resolves its workspace structure,
// analyzes every member package concurrently (capped at
// min(8, runtime.NumCPU()) workers per spec.md §5), and assembles the
// surviving ServiceContexts into UniversalBuild records. A service
// whose Stack phase fails (errtax.BandFatalToService) is skipped with a
// logged warning rather than aborting the run; any other band aborts
// the whole run immediately.
func (o Orchestrator) Run(ctx context.Context, fsys fsa.FS, repoPath string, registry stack.Registry, index pkgindex.Index) ([]model.UniversalBuild, error) {
	if len(registry.Languages) == 0 || len(registry.BuildSystems) == 0 {
		return nil, errtax.New(errtax.KindRegistryMisconfigured, "registry has no language or build system registrations")
	}
	if err := ctx.Err(); err != nil {
		return nil, errtax.Wrap(errtax.KindCancelled, "run cancelled before scan", err)
	}

	runID := uuid.New().String()
	log := logx.Named("pipeline").With(zap.String("run_id", runID))

	scan, err := scanner.Scan(fsys, repoPath, scanner.Options{
		MaxDepth:     o.Config.MaxScanDepth,
		MaxEntries:   o.Config.MaxScanEntries,
		ReadmeMaxBytes: o.Config.MaxReadBytes,
		Languages:    registry.Languages,
		BuildSystems: registry.BuildSystems,
	})
	if err != nil {
		return nil, err
	}

	ws, err := workspace.Analyze(fsys, scan, registry.Orchestrators, registry.BuildSystems)
	if err != nil {
		return nil, err
	}

	analysisCtx := AnalysisContext{RunID: runID, Scan: scan, Workspace: ws, Registry: registry, Index: index}
	log.Info("workspace resolved", zap.Int("packages", len(ws.Packages)))

	if err := ctx.Err(); err != nil {
		return nil, errtax.Wrap(errtax.KindCancelled, "run cancelled before service analysis", err)
	}

	outcomes, err := o.analyzeServices(ctx, fsys, analysisCtx)
	if err != nil {
		return nil, err
	}

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].pkg.Path < outcomes[j].pkg.Path })

	contexts := make([]*model.ServiceContext, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.skipped {
			log.Warn("service skipped", zap.String("path", outcome.pkg.Path), zap.Error(outcome.err))
			continue
		}
		contexts = append(contexts, outcome.ctx)
	}

	asm := assembler.Assembler{Languages: registry.Languages, Frameworks: registry.Frameworks}
	builds := asm.Assemble(contexts)
	log.Info("assembled universal builds", zap.Int("count", len(builds)))
	return builds, nil
}

func (o Orchestrator) analyzeServices(ctx context.Context, fsys fsa.FS, ac AnalysisContext) ([]serviceOutcome, error) {
	analyzer := service.Analyzer{Registry: ac.Registry, Index: ac.Index, Mode: o.Config.Mode}

	workers := min(8, runtime.NumCPU())
	if c := o.Config.Concurrency; c > 0 && c < workers {
		workers = c
	}

	// jobs are pointers so the worker pool's processFn can stash each
	// outcome directly on the item it was given, sidestepping
	// ProcessBatch's lack of result-ordering guarantees entirely: the
	// input slice (not the returned Result slice) is the source of
	// truth for per-package outcomes.
	type job struct {
		pkg     model.Package
		outcome serviceOutcome
	}
	jobs := make([]*job, len(ac.Workspace.Packages))
	for i, pkg := range ac.Workspace.Packages {
		jobs[i] = &job{pkg: pkg}
	}

	results, err := workerpool.ProcessBatch(ctx, jobs, workerpool.Config{WorkerCount: workers}, func(ctx context.Context, j *job) error {
		if err := ctx.Err(); err != nil {
			return errtax.Wrap(errtax.KindCancelled, "run cancelled during service analysis", err)
		}
		sctx, aerr := analyzer.Analyze(fsys, j.pkg, ac.Scan)
		if aerr != nil {
			if errtax.BandOf(aerr) == errtax.BandFatalToService {
				j.outcome = serviceOutcome{pkg: j.pkg, err: aerr, skipped: true}
				return nil
			}
			return aerr
		}
		j.outcome = serviceOutcome{pkg: j.pkg, ctx: sctx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Error != nil {
			return nil, r.Error
		}
	}

	outcomes := make([]serviceOutcome, len(jobs))
	for i, j := range jobs {
		outcomes[i] = j.outcome
	}
	return outcomes, nil
}
