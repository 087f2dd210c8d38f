// Package service implements the per-service micro-pipeline (spec.md
// §4.4): Stack → Build → RuntimeConfig → Cache, run once for every
// workspace package the analyzer enumerated. Grounded on
// original_source/crates/pipeline/src/pipeline/phases/{10_stack,
// 11_build,12_runtime_config,13_cache}.rs for phase ordering and
// original_source/crates/pipeline/src/pipeline/phase_trait.rs for the
// Ok/Err-per-phase shape, adapted to Go's (value, error) idiom.
package service

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/framework"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Analyzer runs the service micro-pipeline against one workspace
// package at a time.
type Analyzer struct {
	Registry stack.Registry
	Index    pkgindex.Index
	Mode     detectconfig.Mode
}

// Analyze runs Stack, then (if a stack was picked) Build, RuntimeConfig,
// and Cache in order, returning the filled ServiceContext. A service
// with no matching stack returns a KindNoStackDetected error — fatal to
// this service only, per spec.md §4.4's failure policy.
func (a Analyzer) Analyze(fsys fsa.FS, pkg model.Package, scan *scanner.Result) (*model.ServiceContext, error) {
	ctx := &model.ServiceContext{ServicePath: pkg.Path}

	if err := a.runStack(fsys, pkg, scan, ctx); err != nil {
		return nil, err
	}

	a.runBuild(pkg, scan, ctx)
	a.runRuntimeConfig(fsys, pkg, scan, ctx)
	a.runCache(ctx)

	return ctx, nil
}

// candidate is one DetectAll hit paired with the manifest priority and
// registration-order index used to break ties (spec.md §4.1).
type candidate struct {
	stack        model.DetectionStack
	priority     int
	registration int
	confidence   float64
}

func (a Analyzer) runStack(fsys fsa.FS, pkg model.Package, scan *scanner.Result, ctx *model.ServiceContext) error {
	fileTree := filesUnder(scan.Files, pkg.Path)

	var candidates []candidate
	for regIdx, bs := range a.Registry.BuildSystems {
		for _, ds := range bs.DetectAll(".", fileTree, fsys) {
			hit, ok := scan.Manifests[ds.ManifestPath]
			if !ok {
				continue
			}
			if !isRunnableCandidate(a.Registry.Languages, ds, hit.Content) {
				continue
			}
			candidates = append(candidates, candidate{
				stack:        ds,
				priority:     manifestPriority(bs.ManifestPatterns(), ds.ManifestPath),
				registration: regIdx,
				confidence:   languageConfidence(a.Registry.Languages, ds, hit.Content),
			})
		}
	}

	best, ok := pickBest(candidates)
	detectedBy := model.DetectedByDeterministic
	if !ok && a.Mode != detectconfig.ModeStatic {
		best, _, ok = a.llmFallback(scan, pkg)
		detectedBy = model.DetectedByLLM
	}
	if !ok {
		return errtax.New(errtax.KindNoStackDetected, "no build system candidate matched this service").
			WithContext("path", pkg.Path)
	}

	confidence := model.FromScore(best.confidence)

	if detectedBy == model.DetectedByDeterministic && confidence == model.ConfidenceLow && a.Registry.AllowLLMOverride {
		if fallback, score, ok := a.llmFallback(scan, pkg); ok {
			best = fallback
			confidence = model.FromScore(score)
			detectedBy = model.DetectedByLLM
		}
	}

	ctx.PickedStack = &best.stack
	ctx.ManifestPath = best.stack.ManifestPath
	ctx.DetectedBy = detectedBy
	ctx.Confidence = confidence
	return nil
}

// llmFallback consults the LLM-backed language definition, if
// registered, only ever after the deterministic definitions: when none
// of them produced a candidate (llm and full modes), or when the picked
// candidate scored Low (full mode only, via AllowLLMOverride).
func (a Analyzer) llmFallback(scan *scanner.Result, pkg model.Package) (candidate, float64, bool) {
	for _, l := range a.Registry.Languages {
		llm, ok := l.(language.LLM)
		if !ok {
			continue
		}
		for _, manifestPath := range sortedManifestKeys(scan) {
			if !underPackage(manifestPath, pkg.Path) {
				continue
			}
			hit := scan.Manifests[manifestPath]
			langID, detection, matched, err := llm.DetectWithContext(context.Background(), path.Base(manifestPath), hit.Content)
			if err != nil || !matched {
				continue
			}
			return candidate{
				stack: model.DetectionStack{
					BuildSystem:  detection.BuildSystem,
					Language:     langID,
					ManifestPath: manifestPath,
				},
				confidence: detection.Confidence,
			}, detection.Confidence, true
		}
	}
	return candidate{}, 0, false
}

func underPackage(manifestPath, servicePath string) bool {
	dir := path.Dir(manifestPath)
	return dir == servicePath || (servicePath == "." && dir == ".")
}

func sortedManifestKeys(scan *scanner.Result) []string {
	keys := make([]string, 0, len(scan.Manifests))
	for k := range scan.Manifests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isRunnableCandidate(langs []language.Definition, ds model.DetectionStack, manifestContent string) bool {
	for _, l := range langs {
		if l.ID() != ds.Language {
			continue
		}
		return l.IsRunnable(path.Base(ds.ManifestPath), manifestContent)
	}
	return true // language not registered (shouldn't happen): don't block on an unknown opinion
}

func languageConfidence(langs []language.Definition, ds model.DetectionStack, manifestContent string) float64 {
	for _, l := range langs {
		if l.ID() != ds.Language {
			continue
		}
		if detection := l.Detect(path.Base(ds.ManifestPath), manifestContent); detection != nil {
			return detection.Confidence
		}
	}
	return 0.5
}

func manifestPriority(patterns []model.ManifestPattern, manifestPath string) int {
	base := path.Base(manifestPath)
	best := 0
	for _, p := range patterns {
		matches := p.Pattern == base ||
			(strings.HasPrefix(p.Pattern, "*.") && strings.HasSuffix(base, strings.TrimPrefix(p.Pattern, "*")))
		if matches && p.Priority > best {
			best = p.Priority
		}
	}
	return best
}

// pickBest implements spec.md §4.1's tie-break: highest priority, then
// earliest registration order.
func pickBest(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.priority > best.priority:
			best = c
		case c.priority == best.priority && c.registration < best.registration:
			best = c
		}
	}
	return best, true
}

func filesUnder(files []string, servicePath string) []string {
	if servicePath == "." {
		return files
	}
	var out []string
	prefix := servicePath + "/"
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			out = append(out, f)
		}
	}
	return out
}

func (a Analyzer) runBuild(pkg model.Package, scan *scanner.Result, ctx *model.ServiceContext) {
	bs := findBuildSystem(a.Registry.BuildSystems, ctx.PickedStack.BuildSystem)
	if bs == nil {
		ctx.Confidence = ctx.Confidence.Min(model.ConfidenceLow)
		ctx.Warnings = append(ctx.Warnings, "no registered build system for "+ctx.PickedStack.BuildSystem.String()+": build template left empty")
		return
	}

	manifestContent := scan.Manifests[ctx.ManifestPath].Content
	tmpl := bs.BuildTemplate(a.Index, pkg.Path, manifestContent)

	lang := findLanguage(a.Registry.Languages, ctx.PickedStack.Language)
	var fw *model.FrameworkID
	if lang != nil {
		deps := lang.ParseDependencies(manifestContent, map[string]bool{})
		if picked, ok := framework.Pick(a.Registry.Frameworks, ctx.PickedStack.Language, ctx.PickedStack.BuildSystem, deps.External); ok {
			tmpl = picked.CustomizeBuildTemplate(tmpl)
			id := picked.ID()
			fw = &id
		}
	}

	ctx.BuildTemplate = valueOf(tmpl.ExpandProjectName(pkg.Name))
	ctx.Framework = fw
}

func (a Analyzer) runRuntimeConfig(fsys fsa.FS, pkg model.Package, scan *scanner.Result, ctx *model.ServiceContext) {
	lang := findLanguage(a.Registry.Languages, ctx.PickedStack.Language)
	runtimeName := "native"
	if lang != nil && lang.RuntimeName() != "" {
		runtimeName = lang.RuntimeName()
	}

	rt, ok := a.Registry.RuntimeByName(runtimeName)
	if !ok {
		ctx.Confidence = ctx.Confidence.Min(model.ConfidenceLow)
		ctx.Warnings = append(ctx.Warnings, "no registered runtime named "+runtimeName+": falling back to language default port")
		fallback := &model.RuntimeConfig{PortSource: "language"}
		if lang != nil {
			fallback.Port = lang.DefaultPort()
		}
		ctx.RuntimeConfig = fallback
		return
	}

	cfg := rt.TryExtract(entrypointSources(fsys, lang, filesUnder(scan.Files, pkg.Path), scan, ctx.ServicePath), ctx.Framework)
	if cfg == nil {
		cfg = &model.RuntimeConfig{PortSource: "framework"}
		if ctx.Framework != nil {
			if fw := findFramework(a.Registry.Frameworks, *ctx.Framework); fw != nil && fw.DefaultPort() != 0 {
				cfg.Port = fw.DefaultPort()
			}
		}
		if cfg.Port == 0 {
			cfg.PortSource = "language"
			if lang != nil {
				cfg.Port = lang.DefaultPort()
			}
		}
	}
	if cfg.Entrypoint == "" && lang != nil {
		cfg.Entrypoint = lang.ParseEntrypointFromManifest(scan.Manifests[ctx.ManifestPath].Content)
	}
	ctx.RuntimeConfig = cfg
}

// entrypointSources reads the language's detected entrypoint files
// (e.g. src/main.rs, index.js) plus every manifest already collected
// for this service, so a runtime's TryExtract can inspect both source
// bind/listen calls and manifest-declared ports.
func entrypointSources(fsys fsa.FS, lang language.Definition, serviceFiles []string, scan *scanner.Result, servicePath string) map[string]string {
	out := make(map[string]string)
	for p, hit := range scan.Manifests {
		if underPackage(p, servicePath) {
			out[p] = hit.Content
		}
	}
	if lang == nil {
		return out
	}
	for _, entry := range lang.FindEntrypoints(serviceFiles) {
		if content, err := fsys.ReadToString(entry); err == nil {
			out[entry] = content
		}
	}
	return out
}

func findFramework(frameworks []framework.Definition, id model.FrameworkID) framework.Definition {
	for _, f := range frameworks {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

func (a Analyzer) runCache(ctx *model.ServiceContext) {
	if ctx.PickedStack == nil {
		return
	}
	bs := findBuildSystem(a.Registry.BuildSystems, ctx.PickedStack.BuildSystem)
	if bs == nil {
		return
	}
	ctx.Cache = &model.CacheInfo{CacheDirs: bs.CacheDirs()}
}

func findBuildSystem(systems []buildsystem.Definition, id model.BuildSystemID) buildsystem.Definition {
	for _, bs := range systems {
		if bs.ID() == id {
			return bs
		}
	}
	return nil
}

func findLanguage(langs []language.Definition, id model.LanguageID) language.Definition {
	for _, l := range langs {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

func valueOf(t model.BuildTemplate) *model.BuildTemplate { return &t }
