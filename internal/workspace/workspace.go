// Package workspace implements the workspace analyzer (spec.md §4.3):
// orchestrator detection at the repository root, implicit-workspace
// fallback through a build system's IsWorkspaceRoot, member glob
// expansion, and per-package metadata extraction. Grounded on
// original_source/crates/stack/src/orchestrator/nx.rs for the Nx
// legacy-workspace-file special case and spec.md §4.3 for the rest.
package workspace

import (
	"path"
	"sort"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/orchestrator"
)

// legacyWorkspaceFiler is implemented only by the Nx orchestrator
// (orchestrator.Defaults()'s nxOrchestrator), exposing the pre-Nx-15
// member-manifest fallback spec.md §4.3 describes.
type legacyWorkspaceFiler interface {
	LegacyWorkspaceFile() string
}

// Analyze runs the deterministic workspace decomposition against the
// repository root, given the scanner's already-collected manifest set.
func Analyze(fsys fsa.FS, scan *scanner.Result, orchestrators []orchestrator.Definition, buildSystems []buildsystem.Definition) (model.WorkspaceStructure, error) {
	byName := indexBuildSystemsByName(buildSystems)
	byID := indexBuildSystemsByID(buildSystems)

	orchID, memberBS, memberPatterns := detectOrchestrator(fsys, orchestrators, byID)

	var packages []model.Package
	switch {
	case orchID != nil && memberBS != nil:
		packages = expandMembers(fsys, scan, memberPatterns, memberBS, byName)
	case orchID == nil:
		// No orchestrator config present: fall back to the first root
		// manifest (in sorted path order, for determinism) whose owning
		// build system reports IsWorkspaceRoot.
		if bs, content, ok := findImplicitWorkspaceRoot(scan, byName); ok {
			packages = expandMembers(fsys, scan, bs.ParseWorkspacePatterns(content), bs, byName)
		}
	}

	packages = dropRootIfNonRootPackagesFound(packages)
	packages = keepOnlyApplications(packages)
	if len(packages) == 0 {
		packages = []model.Package{syntheticRootPackage(fsys)}
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].Path < packages[j].Path })

	return model.WorkspaceStructure{Orchestrator: orchID, Packages: packages}, nil
}

func indexBuildSystemsByID(systems []buildsystem.Definition) map[model.BuildSystemID]buildsystem.Definition {
	out := make(map[model.BuildSystemID]buildsystem.Definition, len(systems))
	for _, bs := range systems {
		out[bs.ID()] = bs
	}
	return out
}

func indexBuildSystemsByName(systems []buildsystem.Definition) map[string]buildsystem.Definition {
	out := make(map[string]buildsystem.Definition, len(systems))
	for _, bs := range systems {
		out[bs.ID().String()] = bs
	}
	return out
}

// detectOrchestrator checks each orchestrator in registration order
// (spec.md §4.3: "the first match yields an OrchestratorId") and
// returns its id, the build system member expansion delegates to, and
// the member glob patterns resolved for it.
func detectOrchestrator(fsys fsa.FS, orchestrators []orchestrator.Definition, byID map[model.BuildSystemID]buildsystem.Definition) (*model.OrchestratorID, buildsystem.Definition, []string) {
	for _, o := range orchestrators {
		_, content, ok := readFirstConfig(fsys, o.ConfigFiles())
		if !ok || !o.Matches(content) {
			continue
		}

		id := o.ID()
		bs, hasBuildSystem := byID[o.BuildSystem()]
		if !hasBuildSystem {
			return &id, nil, nil
		}

		if legacy, isNx := o.(legacyWorkspaceFiler); isNx {
			if legacyContent, err := fsys.ReadToString(legacy.LegacyWorkspaceFile()); err == nil {
				return &id, bs, bs.ParseWorkspacePatterns(legacyContent)
			}
			if rootContent, err := fsys.ReadToString("package.json"); err == nil {
				return &id, bs, bs.ParseWorkspacePatterns(rootContent)
			}
			return &id, bs, nil
		}

		// Prefer a build-system-specific workspace config file (e.g.
		// pnpm-workspace.yaml) over the orchestrator's own config file
		// (e.g. rush.json) when one exists, since that's where member
		// patterns actually live for that build system.
		if patterns, ok := patternsFromWorkspaceConfigs(fsys, bs); ok {
			return &id, bs, patterns
		}
		return &id, bs, bs.ParseWorkspacePatterns(content)
	}
	return nil, nil, nil
}

func patternsFromWorkspaceConfigs(fsys fsa.FS, bs buildsystem.Definition) ([]string, bool) {
	for _, cfg := range bs.WorkspaceConfigs() {
		if content, err := fsys.ReadToString(cfg); err == nil {
			if patterns := bs.ParseWorkspacePatterns(content); len(patterns) > 0 {
				return patterns, true
			}
		}
	}
	return nil, false
}

func readFirstConfig(fsys fsa.FS, candidates []string) (configPath string, content string, ok bool) {
	for _, c := range candidates {
		if fsys.IsFile(c) {
			if text, err := fsys.ReadToString(c); err == nil {
				return c, text, true
			}
		}
	}
	return "", "", false
}

// findImplicitWorkspaceRoot consults every scanned root-level manifest,
// in sorted path order for determinism, and returns the first whose
// build system reports IsWorkspaceRoot.
func findImplicitWorkspaceRoot(scan *scanner.Result, byName map[string]buildsystem.Definition) (buildsystem.Definition, string, bool) {
	for _, manifestPath := range sortedManifestPaths(scan) {
		if path.Dir(manifestPath) != "." {
			continue
		}
		hit := scan.Manifests[manifestPath]
		for _, idStr := range hit.BuildSystems {
			bs, ok := byName[idStr]
			if ok && bs.IsWorkspaceRoot(hit.Content) {
				return bs, hit.Content, true
			}
		}
	}
	return nil, "", false
}

func sortedManifestPaths(scan *scanner.Result) []string {
	paths := make([]string, 0, len(scan.Manifests))
	for p := range scan.Manifests {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func expandMembers(fsys fsa.FS, scan *scanner.Result, patterns []string, globBS buildsystem.Definition, byName map[string]buildsystem.Definition) []model.Package {
	var packages []model.Package
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		dirs := globBS.GlobWorkspacePattern(fsys, ".", pattern)
		sort.Strings(dirs)
		for _, dir := range dirs {
			if seen[dir] {
				continue
			}
			seen[dir] = true
			if pkg, ok := packageAt(scan, byName, dir); ok {
				packages = append(packages, pkg)
			}
		}
	}
	return packages
}

func packageAt(scan *scanner.Result, byName map[string]buildsystem.Definition, dir string) (model.Package, bool) {
	for _, manifestPath := range sortedManifestPaths(scan) {
		if path.Dir(manifestPath) != dir {
			continue
		}
		hit := scan.Manifests[manifestPath]
		for _, idStr := range hit.BuildSystems {
			bs, ok := byName[idStr]
			if !ok {
				continue
			}
			name, isApp := bs.ParsePackageMetadata(hit.Content)
			if name == "" {
				name = path.Base(dir)
			}
			return model.Package{Path: dir, Name: name, IsApplication: isApp}, true
		}
	}
	return model.Package{}, false
}

// dropRootIfNonRootPackagesFound implements spec.md §4.3's rule: the
// root manifest is never itself emitted as a package once at least one
// non-root package was found.
func dropRootIfNonRootPackagesFound(packages []model.Package) []model.Package {
	hasNonRoot := false
	for _, p := range packages {
		if p.Path != "." {
			hasNonRoot = true
			break
		}
	}
	if !hasNonRoot {
		return packages
	}
	out := packages[:0]
	for _, p := range packages {
		if p.Path != "." {
			out = append(out, p)
		}
	}
	return out
}

// keepOnlyApplications implements spec.md §8's cargo-workspace scenario:
// workspace members whose ParsePackageMetadata reports IsApplication
// false (a library crate with no [[bin]], a package.json with neither a
// start script nor a main entry) are not independently runnable and are
// dropped from the emitted package list. If every member turns out to
// be a library, the caller's empty-packages fallback takes over rather
// than emitting zero services for a repository that does have code.
func keepOnlyApplications(packages []model.Package) []model.Package {
	out := packages[:0]
	for _, p := range packages {
		if p.IsApplication {
			out = append(out, p)
		}
	}
	return out
}

func syntheticRootPackage(fsys fsa.FS) model.Package {
	name := "repo"
	if canon, err := fsys.Canonicalize("."); err == nil {
		name = path.Base(canon)
	}
	return model.Package{Path: ".", Name: name, IsApplication: true}
}
