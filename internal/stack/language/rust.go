package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	rustPackageNameRe = regexp.MustCompile(`(?m)^\s*name\s*=\s*"([^"]+)"`)
	rustDepLineRe      = regexp.MustCompile(`(?m)^\s*([A-Za-z0-9_\-]+)\s*=\s*(?:"([^"]+)"|\{[^}]*version\s*=\s*"([^"]+)")`)
	rustBindPortRe     = regexp.MustCompile(`\.bind\(\s*"[^"]*:(\d+)"`)
)

// Rust implements Definition for Cargo-based Rust projects, grounded on
// original_source/src/languages/rust.rs.
type Rust struct{ Base }

func (Rust) ID() model.LanguageID { return model.LanguageRust }

func (Rust) Extensions() []string { return []string{".rs"} }

func (Rust) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Cargo.toml", Priority: 100}}
}

func (Rust) Detect(manifestName, _ string) *model.LanguageDetection {
	if manifestName == "Cargo.toml" {
		return &model.LanguageDetection{BuildSystem: model.BuildSystemCargo, Confidence: 0.95}
	}
	return nil
}

func (Rust) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemCargo}
}

func (Rust) ExcludedDirs() []string { return []string{"target"} }

func (Rust) IsWorkspaceRoot(_, content string) bool {
	return strings.Contains(content, "[workspace]")
}

func (Rust) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	section := sectionBody(content, "[dependencies]")
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, m := range rustDepLineRe.FindAllStringSubmatch(section, -1) {
		name := m[1]
		version := m[2]
		if version == "" {
			version = m[3]
		}
		dep := model.Dependency{Name: name, Version: version, IsInternal: internalPaths[name]}
		if dep.IsInternal {
			info.Internal = append(info.Internal, dep)
		} else {
			info.External = append(info.External, dep)
		}
	}
	return info
}

func (Rust) PortPatterns() []string { return []string{`\.bind\(`} }

func (Rust) DefaultPort() int { return 8080 }

func (Rust) DefaultEntrypoint(bs model.BuildSystemID) string {
	if bs == model.BuildSystemCargo {
		return "./app"
	}
	return ""
}

func (Rust) ParseEntrypointFromManifest(content string) string {
	m := rustPackageNameRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "./" + m[1]
}

func (Rust) FindEntrypoints(files []string) []string {
	var out []string
	for _, f := range files {
		if f == "src/main.rs" || strings.HasSuffix(f, "/src/main.rs") {
			out = append(out, f)
		}
	}
	return out
}

func (Rust) IsRunnable(manifestName, _ string) bool { return manifestName == "Cargo.toml" }

func (Rust) RuntimeName() string { return "native" }

// ExtractBindPort scans Rust source for an explicit .bind("0.0.0.0:PORT")
// call, used by the Native runtime's try_extract.
func ExtractBindPort(source string) (int, bool) {
	m := rustBindPortRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}

// sectionBody extracts the body of a TOML section up to the next `[` at
// column 0, a minimal extraction good enough for dependency scanning
// without pulling in a full TOML AST for this path.
func sectionBody(content, header string) string {
	idx := strings.Index(content, header)
	if idx < 0 {
		return ""
	}
	rest := content[idx+len(header):]
	if end := strings.Index(rest, "\n["); end >= 0 {
		return rest[:end]
	}
	return rest
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
