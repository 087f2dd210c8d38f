package detect_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gizzahub/universalbuild/pkg/detect"
)

func runStatic(t *testing.T, files map[string]string) []model.UniversalBuild {
	t.Helper()
	mock := fsa.NewMockFS(files)
	builds, err := detect.DetectFS(context.Background(), mock, ".", *detectconfig.Default(), nil)
	require.NoError(t, err)
	return builds
}

func byPath(t *testing.T, builds []model.UniversalBuild, servicePath string) model.UniversalBuild {
	t.Helper()
	for _, b := range builds {
		if b.ServicePath == servicePath {
			return b
		}
	}
	t.Fatalf("no service at path %q among %d builds", servicePath, len(builds))
	return model.UniversalBuild{}
}

// rust-cargo: a single Cargo.toml/src/main.rs service with an axum
// dependency and an explicit bind call.
func TestDetectRustCargoService(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"Cargo.toml": "[package]\nname = \"api\"\n\n[[bin]]\nname = \"api\"\n\n[dependencies]\naxum = \"0.7\"\ntokio = { version = \"1\" }",
		"src/main.rs": `async fn main() {
    let listener = tokio::net::TcpListener::bind("0.0.0.0:3000").await.unwrap();
    axum::serve(listener, app()).await.unwrap();
}`,
	})
	require.Len(t, builds, 1)
	build := builds[0]

	assert.Equal(t, model.LanguageRust, build.Metadata.Language)
	assert.Equal(t, model.BuildSystemCargo, build.Metadata.BuildSystem)
	require.NotNil(t, build.Metadata.Framework)
	assert.Equal(t, model.FrameworkAxum, *build.Metadata.Framework)

	assert.Equal(t, []string{"cargo build --release"}, build.Build.Commands)
	assert.Equal(t, []string{"target/", "~/.cargo/registry/"}, build.Build.CachePaths)
	assert.NotEmpty(t, build.Build.Base)

	assert.Equal(t, "debian-slim", build.Runtime.Base)
	assert.Equal(t, 3000, build.Runtime.Port)
}

// node-npm: a single package.json/index.js Express service.
func TestDetectNodeNpmService(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"package.json": `{"name": "web", "main": "index.js", "dependencies": {"express": "^4.18.0"}}`,
		"index.js":     "const app = require('express')(); app.listen(3000);",
	})
	require.Len(t, builds, 1)
	build := builds[0]

	assert.Equal(t, model.LanguageJavaScript, build.Metadata.Language)
	assert.Equal(t, model.BuildSystemNpm, build.Metadata.BuildSystem)
	require.NotNil(t, build.Metadata.Framework)
	assert.Equal(t, model.FrameworkExpress, *build.Metadata.Framework)

	assert.Equal(t, []string{"npm ci", "npm run build --if-present"}, build.Build.Commands)
	assert.Equal(t, []string{"node_modules/"}, build.Build.CachePaths)

	assert.Equal(t, 3000, build.Runtime.Port)
	assert.Equal(t, "/health", build.Runtime.Healthcheck)
	assert.Equal(t, "3000", build.Runtime.Env["PORT"])
}

// python-pip: a requirements.txt/app.py Flask service.
func TestDetectPythonPipService(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"requirements.txt": "flask==3.0\ngunicorn==21.2\n",
		"app.py":           "from flask import Flask\napp = Flask(__name__)\napp.run()",
	})
	require.Len(t, builds, 1)
	build := builds[0]

	assert.Equal(t, model.LanguagePython, build.Metadata.Language)
	assert.Equal(t, model.BuildSystemPip, build.Metadata.BuildSystem)
	require.NotNil(t, build.Metadata.Framework)
	assert.Equal(t, model.FrameworkFlask, *build.Metadata.Framework)

	assert.Equal(t, []string{"pip install --user --no-cache-dir -r requirements.txt"}, build.Build.Commands)
	assert.Equal(t, []string{".cache/pip/"}, build.Build.CachePaths)
}

// A requirements.txt containing only comments has no runnable
// dependency line and never becomes a Python service.
func TestDetectPythonCommentOnlyRequirementsNotRunnable(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"requirements.txt": "# pinned by hand, nothing installed yet\n",
	})
	assert.Empty(t, builds)
}

// go-mod: a single go.mod/main.go service with an explicit
// ListenAndServe call, whose entrypoint is resolved from the module
// path rather than the native runtime's generic default.
func TestDetectGoModService(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"go.mod":  "module github.com/acme/api\n\ngo 1.22\n",
		"main.go": `package main

import "net/http"

func main() {
	http.ListenAndServe(":8080", nil)
}`,
	})
	require.Len(t, builds, 1)
	build := builds[0]

	assert.Equal(t, model.LanguageGo, build.Metadata.Language)
	assert.Equal(t, model.BuildSystemGoMod, build.Metadata.BuildSystem)

	assert.Equal(t, []string{"go build -o app ./..."}, build.Build.Commands)
	assert.Equal(t, []string{"~/.cache/go-build/", "~/go/pkg/mod/"}, build.Build.CachePaths)

	assert.Equal(t, 8080, build.Runtime.Port)
	assert.Equal(t, "./api", build.Runtime.Entrypoint)
}

// npm-workspaces: an npm workspace root fans out into one service per
// member that is actually runnable (has a start script or a main
// entry); a library-only member with neither is excluded.
func TestDetectNpmWorkspacesExcludesNonRunnableMember(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"package.json":                 `{"name": "root", "workspaces": ["packages/*"]}`,
		"packages/web/package.json":    `{"name": "web", "main": "index.js", "dependencies": {"express": "^4.18.0"}}`,
		"packages/web/index.js":        "require('express')().listen(3000)",
		"packages/shared/package.json": `{"name": "shared"}`,
		"packages/shared/lib.js":       "module.exports = {}",
	})
	require.Len(t, builds, 1)
	assert.Equal(t, "packages/web", builds[0].ServicePath)
	require.NotNil(t, builds[0].Metadata.Framework)
	assert.Equal(t, model.FrameworkExpress, *builds[0].Metadata.Framework)
}

// An empty repository yields zero services and no error: the
// workspace analyzer still synthesizes a root package (so a single
// legitimate, stack-less repo doesn't special-case empty vs. unknown),
// but that package's Stack phase finds no candidate and is skipped.
func TestDetectEmptyRepositoryYieldsNoServicesNoError(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"README.md": "# empty\n",
	})
	assert.Empty(t, builds)
}

// A bare yarn.lock with no package.json alongside it is not a
// recognized manifest at all (Npm/Yarn only register "package.json" as
// a ManifestPattern; a lock file only disambiguates which variant
// claims an existing package.json), so the root is skipped entirely.
func TestDetectLockFileOnlyJSRootIsSkipped(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"yarn.lock": "# yarn lockfile v1\n",
		"index.js":  "console.log('hi')",
	})
	assert.Empty(t, builds)
}

// A repository whose root directory alone exceeds the configured entry
// limit surfaces as a run-level error rather than a partial result.
func TestDetectRepositoryExceedingEntryLimitIsFatal(t *testing.T) {
	files := make(map[string]string, 10)
	for i := 0; i < 10; i++ {
		files[fmt.Sprintf("file%d.txt", i)] = "x"
	}
	mock := fsa.NewMockFS(files)
	cfg := *detectconfig.Default()
	cfg.MaxScanEntries = 5

	_, err := detect.DetectFS(context.Background(), mock, ".", cfg, nil)
	require.Error(t, err)
	assert.Equal(t, errtax.BandFatalToRun, errtax.BandOf(err))
}

// cargo-workspace: services are emitted only for members whose
// ParsePackageMetadata reports is_application=true (a [[bin]] present);
// the library member is excluded from the output entirely.
func TestDetectCargoWorkspaceExcludesLibraryMember(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"Cargo.toml": "[workspace]\nmembers = [\"crates/*\"]",
		"crates/api/Cargo.toml": "[package]\nname = \"api\"\n\n[[bin]]\nname = \"api\"\n\n[dependencies]\naxum = \"0.7\"",
		"crates/api/src/main.rs": "fn main() {}",
		"crates/core/Cargo.toml": "[package]\nname = \"core\"",
		"crates/core/src/lib.rs": "pub fn helper() {}",
	})
	require.Len(t, builds, 1)
	build := byPath(t, builds, "crates/api")
	assert.Equal(t, model.BuildSystemCargo, build.Metadata.BuildSystem)
	require.NotNil(t, build.Metadata.Framework)
	assert.Equal(t, model.FrameworkAxum, *build.Metadata.Framework)
}

// Every emitted build's metadata.build_system must be one its
// language declares compatible, across every scenario fixture this
// file exercises.
func TestDetectBuildSystemIsCompatibleWithLanguage(t *testing.T) {
	registry := stack.WithDefaults(detectconfig.ModeStatic, nil)

	scenarios := []map[string]string{
		{"Cargo.toml": "[package]\nname = \"api\"\n\n[[bin]]\nname = \"api\"\n\n[dependencies]\naxum = \"0.7\"", "src/main.rs": "fn main() {}"},
		{"package.json": `{"name": "web", "main": "index.js"}`, "index.js": "require('express')().listen(3000)"},
		{"requirements.txt": "flask==3.0\n", "app.py": "from flask import Flask"},
		{"go.mod": "module example.com/api\n\ngo 1.22\n", "main.go": "package main\nfunc main() {}"},
	}

	for _, files := range scenarios {
		for _, build := range runStatic(t, files) {
			lang := findLanguage(registry.Languages, build.Metadata.Language)
			require.NotNil(t, lang, "no language registered for %v", build.Metadata.Language)
			assert.Contains(t, lang.CompatibleBuildSystems(), build.Metadata.BuildSystem)
		}
	}
}

func findLanguage(langs []language.Definition, id model.LanguageID) language.Definition {
	for _, l := range langs {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

// A UniversalBuild survives a JSON marshal/unmarshal round trip
// unchanged, the property the CLI's JSON output and any downstream
// consumer depend on.
func TestUniversalBuildJSONRoundTrip(t *testing.T) {
	builds := runStatic(t, map[string]string{
		"go.mod":  "module github.com/acme/api\n\ngo 1.22\n",
		"main.go": "package main\n\nimport \"net/http\"\n\nfunc main() {\n\thttp.ListenAndServe(\":8080\", nil)\n}",
	})
	require.Len(t, builds, 1)

	raw, err := json.Marshal(builds[0])
	require.NoError(t, err)

	var roundTripped model.UniversalBuild
	require.NoError(t, json.Unmarshal(raw, &roundTripped))
	assert.Equal(t, builds[0], roundTripped)
}
