package buildsystem

import (
	"path"
	"strings"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/pelletier/go-toml/v2"
)

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// Cargo implements Definition for Rust's Cargo, grounded on
// original_source/src/build_systems/cargo.rs.
type Cargo struct{ Base }

func (Cargo) ID() model.BuildSystemID { return model.BuildSystemCargo }

func (Cargo) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Cargo.toml", Priority: 100}}
}

func (Cargo) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "Cargo.toml" {
			out = append(out, model.DetectionStack{
				BuildSystem:  model.BuildSystemCargo,
				Language:     model.LanguageRust,
				ManifestPath: f,
			})
		}
	}
	return out
}

func (Cargo) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	rustVersion := "rust-1.76"
	if v, ok := index.GetLatestVersion("rust"); ok {
		rustVersion = v
	}
	return model.BuildTemplate{
		BuildImage:   rustVersion,
		RuntimeImage: "debian-slim",
		BuildCommands: []string{
			"cargo build --release",
		},
		CachePaths:  []string{"target/", "~/.cargo/registry/"},
		CommonPorts: []int{8080},
		Artifacts:   []string{"target/release/{project_name}"},
		RuntimeCopy: []model.CopyEntry{{From: "target/release/{project_name}", To: "/app/{project_name}"}},
	}
}

func (Cargo) CacheDirs() []string { return []string{"target/", "~/.cargo/registry/"} }

func (Cargo) IsWorkspaceRoot(content string) bool {
	return strings.Contains(content, "[workspace]")
}

func (Cargo) ParsePackageMetadata(content string) (string, bool) {
	var m cargoManifest
	if toml.Unmarshal([]byte(content), &m) != nil {
		return "", false
	}
	isApp := len(m.Bin) > 0
	return m.Package.Name, isApp
}

func (Cargo) ParseWorkspacePatterns(content string) []string {
	var m cargoManifest
	if toml.Unmarshal([]byte(content), &m) != nil {
		return nil
	}
	return m.Workspace.Members
}

func (Cargo) GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string {
	return globWorkspacePattern(fs, pattern)
}
