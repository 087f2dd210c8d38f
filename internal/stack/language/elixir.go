package language

import (
	"regexp"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	elixirVersionRe = regexp.MustCompile(`elixir:\s*"~>\s*([0-9]+\.[0-9]+)"`)
	elixirDepRe     = regexp.MustCompile(`\{:([a-z0-9_]+),\s*"([^"]+)"`)
)

// Elixir implements Definition for Mix-based BEAM projects, grounded on
// original_source/src/languages/elixir.rs.
type Elixir struct{ Base }

func (Elixir) ID() model.LanguageID { return model.LanguageElixir }

func (Elixir) Extensions() []string { return []string{".ex", ".exs"} }

func (Elixir) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "mix.exs", Priority: 100}}
}

func (Elixir) Detect(manifestName, _ string) *model.LanguageDetection {
	if manifestName != "mix.exs" {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemMix, Confidence: 0.9}
}

func (Elixir) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemMix}
}

func (Elixir) ExcludedDirs() []string { return []string{"_build", "deps"} }

func (Elixir) DetectVersion(content string) string {
	m := elixirVersionRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "elixir-" + m[1]
}

func (Elixir) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, m := range elixirDepRe.FindAllStringSubmatch(content, -1) {
		dep := model.Dependency{Name: m[1], Version: m[2], IsInternal: internalPaths[m[1]]}
		appendDep(&info, dep)
	}
	return info
}

func (Elixir) DefaultPort() int { return 4000 }

func (Elixir) DefaultEntrypoint(model.BuildSystemID) string { return "mix phx.server" }

func (Elixir) IsRunnable(manifestName, _ string) bool { return manifestName == "mix.exs" }

func (Elixir) RuntimeName() string { return "beam" }
