package language

import "github.com/gizzahub/universalbuild/internal/model"

// Zig implements Definition for build.zig-based projects, grounded on
// original_source/src/languages/zig.rs. Zig has no distinct BuildSystemId
// in spec.md's enumeration, so it reuses make as a generic native-build
// marker the way the original treats it as a thin wrapper over a shell
// invocation.
type Zig struct{ Base }

func (Zig) ID() model.LanguageID { return model.LanguageZig }

func (Zig) Extensions() []string { return []string{".zig"} }

func (Zig) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "build.zig", Priority: 100}}
}

func (Zig) Detect(manifestName, _ string) *model.LanguageDetection {
	if manifestName != "build.zig" {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemMake, Confidence: 0.7}
}

func (Zig) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemMake}
}

func (Zig) ExcludedDirs() []string { return []string{"zig-cache", "zig-out"} }

func (Zig) DefaultEntrypoint(model.BuildSystemID) string { return "./app" }

func (Zig) IsRunnable(manifestName, _ string) bool { return manifestName == "build.zig" }

func (Zig) RuntimeName() string { return "native" }
