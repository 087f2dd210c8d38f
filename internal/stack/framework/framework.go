// Package framework defines the Framework kind of the stack registry
// (spec.md §4.1): dependency-pattern based detection layered on top of
// a chosen (language, build_system) stack, plus optional build-template
// customization and runtime hints, grounded on original_source/src/
// frameworks/mod.rs.
package framework

import "github.com/gizzahub/universalbuild/internal/model"

// Definition is implemented by every framework the registry knows
// about.
type Definition interface {
	ID() model.FrameworkID
	DependencyPatterns() []model.DependencyPattern
	CompatibleLanguages() []model.LanguageID
	CompatibleBuildSystems() []model.BuildSystemID

	// CustomizeBuildTemplate lets a framework adjust the build system's
	// generic template (extra env, commands, ports) before it's
	// finalized for a service, per spec.md §4.4.
	CustomizeBuildTemplate(tmpl model.BuildTemplate) model.BuildTemplate

	DefaultPort() int
	HealthEndpoint() string
	EnvVarPatterns() []string
}

// Base defaults CustomizeBuildTemplate to the identity transform and
// the hint methods to their zero value, so concrete frameworks override
// only what they know.
type Base struct{}

func (Base) CustomizeBuildTemplate(tmpl model.BuildTemplate) model.BuildTemplate { return tmpl }
func (Base) DefaultPort() int                                                   { return 0 }
func (Base) HealthEndpoint() string                                             { return "" }
func (Base) EnvVarPatterns() []string                                           { return nil }

// Match reports whether any of def's dependency patterns matches any of
// the service's external dependencies, returning the highest matching
// confidence. This is the "highest confidence across matching
// frameworks wins" rule from spec.md §4.1, applied by the registry
// across all compatible frameworks.
func Match(def Definition, externalDeps []model.Dependency) (float64, bool) {
	best := 0.0
	matched := false
	for _, dep := range externalDeps {
		for _, pattern := range def.DependencyPatterns() {
			if !matchesPattern(pattern, dep.Name) {
				continue
			}
			matched = true
			if pattern.Confidence > best {
				best = pattern.Confidence
			}
		}
	}
	return best, matched
}

func matchesPattern(p model.DependencyPattern, depName string) bool {
	switch p.Type {
	case model.PatternNpmPackage, model.PatternPypiPackage:
		return depName == p.Pattern
	case model.PatternMavenGroupArtifact:
		return depName == p.Pattern
	case model.PatternRegex:
		return regexMatch(p.Pattern, depName)
	default:
		return false
	}
}
