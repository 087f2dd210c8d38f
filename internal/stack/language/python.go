package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	pyRequirementLineRe = regexp.MustCompile(`(?m)^\s*([A-Za-z0-9_.\-]+)\s*(==|>=|<=|~=|>|<)?\s*([A-Za-z0-9_.\-]*)`)
	pyRequiresPythonRe  = regexp.MustCompile(`requires-python\s*=\s*"[^0-9]*([0-9]+\.[0-9]+)`)
	pyListenPortRe      = regexp.MustCompile(`\.run\([^)]*port\s*=\s*(\d{2,5})`)
)

// Python implements Definition for pip/poetry/pipenv-based projects,
// grounded on original_source/src/languages/python.rs.
type Python struct{ Base }

func (Python) ID() model.LanguageID { return model.LanguagePython }

func (Python) Extensions() []string { return []string{".py"} }

func (Python) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{
		{Pattern: "pyproject.toml", Priority: 100},
		{Pattern: "Pipfile", Priority: 90},
		{Pattern: "requirements.txt", Priority: 80},
	}
}

func (Python) Detect(manifestName, content string) *model.LanguageDetection {
	switch manifestName {
	case "pyproject.toml":
		bs := model.BuildSystemPip
		if strings.Contains(content, "[tool.poetry]") {
			bs = model.BuildSystemPoetry
		}
		return &model.LanguageDetection{BuildSystem: bs, Confidence: 0.9}
	case "Pipfile":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemPipenv, Confidence: 0.9}
	case "requirements.txt":
		if !requirementsHasRealEntry(content) {
			// spec.md §9 open question: comments-only requirements.txt
			// is not runnable; still returned as a candidate here but
			// IsRunnable below rejects it from being picked.
			return &model.LanguageDetection{BuildSystem: model.BuildSystemPip, Confidence: 0.3}
		}
		return &model.LanguageDetection{BuildSystem: model.BuildSystemPip, Confidence: 0.85}
	}
	return nil
}

func (Python) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemPip, model.BuildSystemPoetry, model.BuildSystemPipenv}
}

func (Python) ExcludedDirs() []string {
	return []string{"__pycache__", ".venv", "venv", ".tox", ".mypy_cache"}
}

func (Python) DetectVersion(content string) string {
	m := pyRequiresPythonRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "python-" + m[1]
}

func (Python) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
			continue
		}
		m := pyRequirementLineRe.FindStringSubmatch(trimmed)
		if m == nil || m[1] == "" {
			continue
		}
		dep := model.Dependency{Name: m[1], Version: m[3], IsInternal: internalPaths[m[1]]}
		if dep.IsInternal {
			info.Internal = append(info.Internal, dep)
		} else {
			info.External = append(info.External, dep)
		}
	}
	return info
}

func (Python) PortPatterns() []string { return []string{`\.run\(`, `app\.run`} }

func (Python) DefaultPort() int { return 5000 }

func (Python) DefaultEntrypoint(bs model.BuildSystemID) string {
	if bs == model.BuildSystemPip || bs == model.BuildSystemPoetry || bs == model.BuildSystemPipenv {
		return "python app.py"
	}
	return ""
}

func (Python) FindEntrypoints(files []string) []string {
	var out []string
	for _, f := range files {
		base := f
		if idx := strings.LastIndex(f, "/"); idx >= 0 {
			base = f[idx+1:]
		}
		if base == "app.py" || base == "main.py" || base == "manage.py" || base == "wsgi.py" {
			out = append(out, f)
		}
	}
	return out
}

func (Python) IsRunnable(manifestName, content string) bool {
	if manifestName == "requirements.txt" {
		return requirementsHasRealEntry(content)
	}
	return manifestName == "pyproject.toml" || manifestName == "Pipfile"
}

func (Python) RuntimeName() string { return "python" }

func requirementsHasRealEntry(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return true
	}
	return false
}

// ExtractRunPort scans Python source for an explicit app.run(port=NNNN)
// call, used by the Python runtime's try_extract.
func ExtractRunPort(source string) (int, bool) {
	m := pyListenPortRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}
