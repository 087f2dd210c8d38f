package buildsystem

import (
	"path"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

func nativeBuildTemplate(commands []string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    "debian-bookworm",
		RuntimeImage:  "debian-slim",
		BuildCommands: commands,
		CachePaths:    []string{"build/"},
		CommonPorts:   []int{8080},
		Artifacts:     []string{"build/{project_name}"},
		RuntimeCopy:   []model.CopyEntry{{From: "build/{project_name}", To: "/app/{project_name}"}},
	}
}

// CMake implements Definition for CMake-based C/C++ projects, grounded
// on original_source/src/build_systems/cmake.rs.
type CMake struct{ Base }

func (CMake) ID() model.BuildSystemID { return model.BuildSystemCMake }

func (CMake) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "CMakeLists.txt", Priority: 100}}
}

func (CMake) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "CMakeLists.txt" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemCMake, Language: model.LanguageCPP, ManifestPath: f})
		}
	}
	return out
}

func (CMake) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return nativeBuildTemplate([]string{"cmake -B build -S . -DCMAKE_BUILD_TYPE=Release", "cmake --build build"})
}

func (CMake) CacheDirs() []string { return []string{"build/"} }

func (CMake) ParsePackageMetadata(content string) (string, bool) { return "", true }

// Meson implements Definition for Meson-based C/C++ projects, grounded
// on original_source/src/build_systems/meson.rs.
type Meson struct{ Base }

func (Meson) ID() model.BuildSystemID { return model.BuildSystemMeson }

func (Meson) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "meson.build", Priority: 90}}
}

func (Meson) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "meson.build" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemMeson, Language: model.LanguageCPP, ManifestPath: f})
		}
	}
	return out
}

func (Meson) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return nativeBuildTemplate([]string{"meson setup build", "meson compile -C build"})
}

func (Meson) CacheDirs() []string { return []string{"build/"} }

func (Meson) ParsePackageMetadata(content string) (string, bool) { return "", true }

// Make implements Definition for bare Makefile-based projects, grounded
// on original_source/src/build_systems/make.rs. It is the lowest
// priority native build system: it only claims a Makefile that no
// CMake/Meson manifest already covers.
type Make struct{ Base }

func (Make) ID() model.BuildSystemID { return model.BuildSystemMake }

func (Make) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Makefile", Priority: 60}}
}

func (Make) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	covered := make(map[string]bool)
	for _, f := range fileTree {
		base := path.Base(f)
		if base == "CMakeLists.txt" || base == "meson.build" {
			covered[path.Dir(f)] = true
		}
	}
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) != "Makefile" || covered[path.Dir(f)] {
			continue
		}
		out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemMake, Language: model.LanguageCPP, ManifestPath: f})
	}
	return out
}

func (Make) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return nativeBuildTemplate([]string{"make"})
}

func (Make) CacheDirs() []string { return nil }

func (Make) ParsePackageMetadata(content string) (string, bool) { return "", true }
