package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	goModuleRe      = regexp.MustCompile(`(?m)^module\s+(\S+)`)
	goVersionRe     = regexp.MustCompile(`(?m)^go\s+(\d+\.\d+)`)
	goListenPortRe  = regexp.MustCompile(`ListenAndServe\(\s*":(\d+)"`)
	goRequireLineRe = regexp.MustCompile(`(?m)^\s*([^\s]+)\s+v(\S+)`)
	portCommentRe   = regexp.MustCompile(`#\s*port\s*=\s*(\d{2,5})`)
)

// ExtractPortComment looks for a trailing "# port = N" comment in
// manifest content (go.mod, Cargo.toml), the metadata tier of
// spec.md §4.4's port resolution priority.
func ExtractPortComment(content string) (int, bool) {
	m := portCommentRe.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}

// Golang implements Definition for go.mod-based modules, grounded on
// original_source/src/languages/go.rs. Named Golang (not Go) to avoid
// colliding with the language keyword.
type Golang struct{ Base }

func (Golang) ID() model.LanguageID { return model.LanguageGo }

func (Golang) Extensions() []string { return []string{".go"} }

func (Golang) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "go.mod", Priority: 100}}
}

func (Golang) Detect(manifestName, content string) *model.LanguageDetection {
	if manifestName != "go.mod" || !goModuleRe.MatchString(content) {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemGoMod, Confidence: 0.95}
}

func (Golang) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemGoMod}
}

func (Golang) ExcludedDirs() []string { return []string{"vendor", "bin"} }

func (Golang) WorkspaceConfigs() []string { return []string{"go.work"} }

func (Golang) DetectVersion(content string) string {
	m := goVersionRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "golang-" + m[1]
}

func (Golang) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	section := sectionBody(content, "require (")
	if section == "" {
		return info
	}
	for _, m := range goRequireLineRe.FindAllStringSubmatch(section, -1) {
		dep := model.Dependency{Name: m[1], Version: m[2], IsInternal: internalPaths[m[1]]}
		if dep.IsInternal {
			info.Internal = append(info.Internal, dep)
		} else {
			info.External = append(info.External, dep)
		}
	}
	return info
}

func (Golang) PortPatterns() []string { return []string{`ListenAndServe\(`} }

func (Golang) DefaultPort() int { return 8080 }

func (Golang) DefaultEntrypoint(model.BuildSystemID) string { return "./app" }

func (Golang) ParseEntrypointFromManifest(content string) string {
	m := goModuleRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	parts := strings.Split(m[1], "/")
	return "./" + parts[len(parts)-1]
}

func (Golang) FindEntrypoints(files []string) []string {
	var out []string
	for _, f := range files {
		if f == "main.go" || strings.HasSuffix(f, "/main.go") {
			out = append(out, f)
		}
	}
	return out
}

func (Golang) IsRunnable(manifestName, _ string) bool { return manifestName == "go.mod" }

func (Golang) RuntimeName() string { return "native" }

// ExtractListenAndServePort scans Go source for an explicit
// http.ListenAndServe(":NNNN", ...) call, used by the Native runtime's
// try_extract.
func ExtractListenAndServePort(source string) (int, bool) {
	m := goListenPortRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}
