package language

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	jsListenPortRe  = regexp.MustCompile(`\.listen\(\s*(\d{2,5})`)
	jsEnvPortRe     = regexp.MustCompile(`process\.env\.PORT`)
	jsEngineNodeRe  = regexp.MustCompile(`"node"\s*:\s*"([^"]+)"`)
)

type packageJSON struct {
	Name            string            `json:"name"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      json.RawMessage   `json:"workspaces"`
	Engines         map[string]string `json:"engines"`
}

func parsePackageJSON(content string) (packageJSON, bool) {
	var p packageJSON
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return packageJSON{}, false
	}
	return p, true
}

// JavaScript implements Definition, grounded on original_source/src/
// languages/javascript.rs. It declares npm as the build system on a
// bare package.json match; lock-file disambiguation into yarn/pnpm/bun
// happens in BuildSystem.detect_all per spec.md §4.1's tie-break rule.
type JavaScript struct{ Base }

func (JavaScript) ID() model.LanguageID { return model.LanguageJavaScript }

func (JavaScript) Extensions() []string { return []string{".js", ".mjs", ".cjs", ".jsx"} }

func (JavaScript) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "package.json", Priority: 100}}
}

func (JavaScript) Detect(manifestName, content string) *model.LanguageDetection {
	if manifestName != "package.json" {
		return nil
	}
	if _, ok := parsePackageJSON(content); !ok {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemNpm, Confidence: 0.9}
}

func (JavaScript) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemNpm, model.BuildSystemYarn, model.BuildSystemPnpm, model.BuildSystemBun}
}

func (JavaScript) ExcludedDirs() []string { return []string{"node_modules", "dist", "build", ".next"} }

func (JavaScript) WorkspaceConfigs() []string {
	return []string{"pnpm-workspace.yaml", "lerna.json", "rush.json"}
}

func (JavaScript) DetectVersion(content string) string {
	m := jsEngineNodeRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "nodejs-" + strings.TrimLeft(m[1], "^~>=v ")
}

func (JavaScript) IsWorkspaceRoot(manifestName, content string) bool {
	if manifestName != "package.json" {
		return false
	}
	p, ok := parsePackageJSON(content)
	return ok && len(p.Workspaces) > 0
}

func (JavaScript) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	p, ok := parsePackageJSON(content)
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	if !ok {
		return info
	}
	for name, version := range p.Dependencies {
		dep := model.Dependency{Name: name, Version: version, IsInternal: internalPaths[name]}
		if dep.IsInternal {
			info.Internal = append(info.Internal, dep)
		} else {
			info.External = append(info.External, dep)
		}
	}
	return info
}

func (JavaScript) PortPatterns() []string { return []string{`\.listen\(`, `process\.env\.PORT`} }

func (JavaScript) DefaultPort() int { return 3000 }

func (JavaScript) DefaultEntrypoint(model.BuildSystemID) string { return "node index.js" }

func (JavaScript) ParseEntrypointFromManifest(content string) string {
	p, ok := parsePackageJSON(content)
	if !ok {
		return ""
	}
	if start, ok := p.Scripts["start"]; ok {
		return start
	}
	if p.Main != "" {
		return "node " + p.Main
	}
	return ""
}

func (JavaScript) FindEntrypoints(files []string) []string {
	var out []string
	for _, f := range files {
		base := f
		if idx := strings.LastIndex(f, "/"); idx >= 0 {
			base = f[idx+1:]
		}
		if base == "index.js" || base == "server.js" || base == "app.js" {
			out = append(out, f)
		}
	}
	return out
}

func (JavaScript) IsRunnable(manifestName, content string) bool {
	p, ok := parsePackageJSON(content)
	if manifestName != "package.json" || !ok {
		return false
	}
	_, hasStart := p.Scripts["start"]
	return hasStart || p.Main != ""
}

func (JavaScript) RuntimeName() string { return "node" }

// ExtractListenPort scans JS/TS source for an explicit .listen(NNNN)
// call, used by the Node runtime's try_extract.
func ExtractListenPort(source string) (int, bool) {
	m := jsListenPortRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}

// UsesEnvPort reports whether source reads process.env.PORT.
func UsesEnvPort(source string) bool { return jsEnvPortRe.MatchString(source) }
