package buildsystem

import (
	"path"
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

var goModuleNameRe = regexp.MustCompile(`(?m)^module\s+(\S+)`)

// GoMod implements Definition for go.mod-based modules, grounded on
// original_source/src/build_systems/go_mod.rs.
type GoMod struct{ Base }

func (GoMod) ID() model.BuildSystemID { return model.BuildSystemGoMod }

func (GoMod) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "go.mod", Priority: 100}}
}

func (GoMod) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "go.mod" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemGoMod, Language: model.LanguageGo, ManifestPath: f})
		}
	}
	return out
}

func (GoMod) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	goVersion := "golang-1.22"
	if v, ok := index.GetLatestVersion("golang"); ok {
		goVersion = v
	}
	return model.BuildTemplate{
		BuildImage:    goVersion,
		RuntimeImage:  "debian-slim",
		BuildCommands: []string{"go build -o app ./..."},
		CachePaths:    []string{"~/.cache/go-build/", "~/go/pkg/mod/"},
		CommonPorts:   []int{8080},
		Artifacts:     []string{"app"},
		RuntimeCopy:   []model.CopyEntry{{From: "app", To: "/app/app"}},
	}
}

func (GoMod) CacheDirs() []string { return []string{"~/.cache/go-build/", "~/go/pkg/mod/"} }

func (GoMod) WorkspaceConfigs() []string { return []string{"go.work"} }

func (GoMod) ParsePackageMetadata(content string) (string, bool) {
	m := goModuleNameRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	parts := strings.Split(m[1], "/")
	return parts[len(parts)-1], true
}

func (GoMod) ParseWorkspacePatterns(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "./") {
			out = append(out, strings.TrimPrefix(trimmed, "./"))
		}
	}
	return out
}

func (GoMod) GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string {
	return globWorkspacePattern(fs, pattern)
}
