package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var cppProjectNameRe = regexp.MustCompile(`project\(\s*([A-Za-z0-9_\-]+)`)

// CPP implements Definition for CMake/Make-based C++ projects, grounded
// on original_source/src/languages/cpp.rs.
type CPP struct{ Base }

func (CPP) ID() model.LanguageID { return model.LanguageCPP }

func (CPP) Extensions() []string { return []string{".cpp", ".cc", ".cxx", ".hpp", ".h"} }

func (CPP) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{
		{Pattern: "CMakeLists.txt", Priority: 100},
		{Pattern: "Makefile", Priority: 80},
		{Pattern: "meson.build", Priority: 90},
	}
}

func (CPP) Detect(manifestName, _ string) *model.LanguageDetection {
	switch manifestName {
	case "CMakeLists.txt":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemCMake, Confidence: 0.9}
	case "meson.build":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemMeson, Confidence: 0.85}
	case "Makefile":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemMake, Confidence: 0.6}
	}
	return nil
}

func (CPP) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemCMake, model.BuildSystemMake, model.BuildSystemMeson}
}

func (CPP) ExcludedDirs() []string { return []string{"build", "cmake-build-debug"} }

func (CPP) ParseEntrypointFromManifest(content string) string {
	m := cppProjectNameRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "./" + strings.ToLower(m[1])
}

func (CPP) DefaultEntrypoint(model.BuildSystemID) string { return "./app" }

func (CPP) IsRunnable(manifestName, _ string) bool {
	return manifestName == "CMakeLists.txt" || manifestName == "meson.build" || manifestName == "Makefile"
}

func (CPP) RuntimeName() string { return "native" }
