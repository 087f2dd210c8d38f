package buildsystem

import (
	"path"
	"strings"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/pelletier/go-toml/v2"
)

type pyprojectManifest struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func pythonVersion(index pkgindex.Index) string {
	if v, ok := index.GetLatestVersion("python"); ok {
		return v
	}
	return "python-3.12"
}

// Pip implements Definition for pip + requirements.txt, grounded on
// original_source/src/build_systems/pip.rs.
type Pip struct{ Base }

func (Pip) ID() model.BuildSystemID { return model.BuildSystemPip }

func (Pip) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "requirements.txt", Priority: 80}}
}

func (Pip) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "requirements.txt" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemPip, Language: model.LanguagePython, ManifestPath: f})
		}
	}
	return out
}

func (Pip) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    pythonVersion(index),
		RuntimeImage:  pythonVersion(index),
		BuildCommands: []string{"pip install --user --no-cache-dir -r requirements.txt"},
		CachePaths:    []string{".cache/pip/"},
		CommonPorts:   []int{5000},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func (Pip) CacheDirs() []string { return []string{".cache/pip/"} }

func (Pip) ParsePackageMetadata(content string) (string, bool) {
	return "", requirementsRunnable(content)
}

func requirementsRunnable(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return true
		}
	}
	return false
}

// Poetry implements Definition for Poetry-managed pyproject.toml
// projects, grounded on original_source/src/build_systems/poetry.rs.
type Poetry struct{ Base }

func (Poetry) ID() model.BuildSystemID { return model.BuildSystemPoetry }

func (Poetry) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "pyproject.toml", Priority: 100}}
}

func (Poetry) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) != "pyproject.toml" {
			continue
		}
		content := ""
		if fs != nil {
			content, _ = fs.ReadToString(f)
		}
		if !strings.Contains(content, "[tool.poetry]") {
			continue
		}
		out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemPoetry, Language: model.LanguagePython, ManifestPath: f})
	}
	return out
}

func (Poetry) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    pythonVersion(index),
		RuntimeImage:  pythonVersion(index),
		BuildCommands: []string{"pip install --no-cache-dir poetry", "poetry install --no-dev"},
		CachePaths:    []string{".cache/pypoetry/"},
		CommonPorts:   []int{5000},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func (Poetry) CacheDirs() []string { return []string{".cache/pypoetry/"} }

func (Poetry) ParsePackageMetadata(content string) (string, bool) {
	var m pyprojectManifest
	if toml.Unmarshal([]byte(content), &m) != nil {
		return "", true
	}
	name := m.Project.Name
	if name == "" {
		name = m.Tool.Poetry.Name
	}
	return name, true
}

// Pipenv implements Definition for Pipfile-managed projects, grounded
// on original_source/src/build_systems/pipenv.rs.
type Pipenv struct{ Base }

func (Pipenv) ID() model.BuildSystemID { return model.BuildSystemPipenv }

func (Pipenv) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Pipfile", Priority: 90}}
}

func (Pipenv) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "Pipfile" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemPipenv, Language: model.LanguagePython, ManifestPath: f})
		}
	}
	return out
}

func (Pipenv) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    pythonVersion(index),
		RuntimeImage:  pythonVersion(index),
		BuildCommands: []string{"pip install --no-cache-dir pipenv", "pipenv install --deploy --system"},
		CachePaths:    []string{".cache/pipenv/"},
		CommonPorts:   []int{5000},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func (Pipenv) CacheDirs() []string { return []string{".cache/pipenv/"} }

func (Pipenv) ParsePackageMetadata(content string) (string, bool) { return "", true }
