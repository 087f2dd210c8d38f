package language

import (
	"regexp"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	rubyVersionRe = regexp.MustCompile(`ruby\s+["']([0-9]+\.[0-9]+)`)
	gemLineRe     = regexp.MustCompile(`(?m)^\s*gem\s+["']([^"']+)["'](?:\s*,\s*["']([^"']+)["'])?`)
	sinatraPortRe = regexp.MustCompile(`set\s+:port\s*,\s*(\d{2,5})`)
)

// Ruby implements Definition for Bundler-based Ruby projects, grounded
// on original_source/src/languages/ruby.rs.
type Ruby struct{ Base }

func (Ruby) ID() model.LanguageID { return model.LanguageRuby }

func (Ruby) Extensions() []string { return []string{".rb"} }

func (Ruby) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Gemfile", Priority: 100}}
}

func (Ruby) Detect(manifestName, _ string) *model.LanguageDetection {
	if manifestName != "Gemfile" {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemBundler, Confidence: 0.9}
}

func (Ruby) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemBundler}
}

func (Ruby) ExcludedDirs() []string { return []string{"vendor/bundle", ".bundle"} }

func (Ruby) DetectVersion(content string) string {
	m := rubyVersionRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "ruby-" + m[1]
}

func (Ruby) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, m := range gemLineRe.FindAllStringSubmatch(content, -1) {
		dep := model.Dependency{Name: m[1], Version: m[2], IsInternal: internalPaths[m[1]]}
		appendDep(&info, dep)
	}
	return info
}

func (Ruby) DefaultPort() int { return 4567 }

func (Ruby) DefaultEntrypoint(model.BuildSystemID) string { return "ruby app.rb" }

func (Ruby) IsRunnable(manifestName, _ string) bool { return manifestName == "Gemfile" }

func (Ruby) RuntimeName() string { return "ruby" }

// ExtractSinatraPort scans Ruby source for Sinatra's `set :port, N`.
func ExtractSinatraPort(source string) (int, bool) {
	m := sinatraPortRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}
