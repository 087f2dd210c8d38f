package buildsystem

import (
	"encoding/json"
	"path"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"gopkg.in/yaml.v3"
)

type packageJSON struct {
	Name       string          `json:"name"`
	Main       string          `json:"main"`
	Scripts    map[string]string `json:"scripts"`
	Workspaces json.RawMessage `json:"workspaces"`
}

func parseWorkspacesField(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.Packages
	}
	return nil
}

// detectAllJS shares the package.json scan across the npm/yarn/pnpm/bun
// family; the specific lock file present (spec.md §4.1's tie-break:
// "lock files disambiguate JavaScript variants") decides which system
// actually claims the manifest.
func detectAllJS(self model.BuildSystemID, lockFileName string, fileTree []string) []model.DetectionStack {
	var out []model.DetectionStack
	manifestDirs := make(map[string]bool)
	lockDirs := make(map[string]bool)
	for _, f := range fileTree {
		dir := path.Dir(f)
		switch path.Base(f) {
		case "package.json":
			manifestDirs[dir] = true
		case lockFileName:
			lockDirs[dir] = true
		}
	}
	for dir := range manifestDirs {
		if lockFileName != "" && !lockDirs[dir] {
			continue
		}
		manifestPath := path.Join(dir, "package.json")
		if dir == "." {
			manifestPath = "package.json"
		}
		out = append(out, model.DetectionStack{
			BuildSystem:  self,
			Language:     model.LanguageJavaScript,
			ManifestPath: manifestPath,
		})
	}
	return out
}

func jsBuildTemplate(index pkgindex.Index, installCmd string, cacheDirs []string) model.BuildTemplate {
	nodeVersion := "nodejs-20.11"
	if v, ok := index.GetLatestVersion("nodejs"); ok {
		nodeVersion = v
	}
	return model.BuildTemplate{
		BuildImage:    nodeVersion,
		RuntimeImage:  nodeVersion,
		BuildCommands: []string{installCmd, "npm run build --if-present"},
		CachePaths:    cacheDirs,
		CommonPorts:   []int{3000},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func parsePackageMetadataJS(content string) (string, bool) {
	var p packageJSON
	if json.Unmarshal([]byte(content), &p) != nil {
		return "", false
	}
	_, hasStart := p.Scripts["start"]
	return p.Name, hasStart || p.Main != ""
}

func parseWorkspacePatternsJS(content string) []string {
	var p packageJSON
	if json.Unmarshal([]byte(content), &p) != nil {
		return nil
	}
	return parseWorkspacesField(p.Workspaces)
}

// Npm implements Definition for npm, grounded on original_source/src/
// build_systems/npm.rs. It is the family's default: a bare package.json
// with no more-specific lock file present matches npm.
type Npm struct{ Base }

func (Npm) ID() model.BuildSystemID { return model.BuildSystemNpm }

func (Npm) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "package.json", Priority: 100}}
}

func (Npm) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	return detectAllJS(model.BuildSystemNpm, "", excludeJSVariantMatches(fileTree, fs))
}

// excludeJSVariantMatches drops package.json directories that have a
// more specific lock file, so Npm only claims what Yarn/Pnpm/Bun
// didn't.
func excludeJSVariantMatches(fileTree []string, fs fsa.FS) []string {
	lockFiles := map[string]bool{"yarn.lock": true, "pnpm-lock.yaml": true, "bun.lockb": true}
	specific := make(map[string]bool)
	for _, f := range fileTree {
		if lockFiles[path.Base(f)] {
			specific[path.Dir(f)] = true
		}
	}
	var out []string
	for _, f := range fileTree {
		if path.Base(f) == "package.json" && specific[path.Dir(f)] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (Npm) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return jsBuildTemplate(index, "npm ci", []string{"node_modules/"})
}

func (Npm) CacheDirs() []string { return []string{"node_modules/"} }

func (Npm) IsWorkspaceRoot(content string) bool { return len(parseWorkspacePatternsJS(content)) > 0 }

func (Npm) ParsePackageMetadata(content string) (string, bool) { return parsePackageMetadataJS(content) }

func (Npm) ParseWorkspacePatterns(content string) []string { return parseWorkspacePatternsJS(content) }

func (Npm) GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string {
	return globWorkspacePattern(fs, pattern)
}

// Yarn implements Definition for Yarn, grounded on original_source/src/
// build_systems/yarn.rs.
type Yarn struct{ Npm }

func (Yarn) ID() model.BuildSystemID { return model.BuildSystemYarn }

func (Yarn) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	return detectAllJS(model.BuildSystemYarn, "yarn.lock", fileTree)
}

func (Yarn) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return jsBuildTemplate(index, "yarn install --frozen-lockfile", []string{"node_modules/", ".yarn/cache/"})
}

// Pnpm implements Definition for pnpm, grounded on original_source/src/
// build_systems/pnpm.rs.
type Pnpm struct{ Npm }

func (Pnpm) ID() model.BuildSystemID { return model.BuildSystemPnpm }

func (Pnpm) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	return detectAllJS(model.BuildSystemPnpm, "pnpm-lock.yaml", fileTree)
}

func (Pnpm) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return jsBuildTemplate(index, "pnpm install --frozen-lockfile", []string{"node_modules/", ".pnpm-store/"})
}

func (Pnpm) WorkspaceConfigs() []string { return []string{"pnpm-workspace.yaml"} }

// ParseWorkspacePatterns overrides Npm's package.json-based parsing:
// pnpm declares members in pnpm-workspace.yaml's "packages" list, not
// package.json's "workspaces" field.
func (Pnpm) ParseWorkspacePatterns(content string) []string {
	var doc struct {
		Packages []string `yaml:"packages"`
	}
	if yaml.Unmarshal([]byte(content), &doc) != nil {
		return nil
	}
	return doc.Packages
}

// Bun implements Definition for Bun, grounded on original_source/src/
// build_systems/bun.rs.
type Bun struct{ Npm }

func (Bun) ID() model.BuildSystemID { return model.BuildSystemBun }

func (Bun) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	return detectAllJS(model.BuildSystemBun, "bun.lockb", fileTree)
}

func (Bun) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return jsBuildTemplate(index, "bun install --frozen-lockfile", []string{"node_modules/"})
}
