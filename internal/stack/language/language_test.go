package language_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRustDetectsCargoToml(t *testing.T) {
	rust := language.Rust{}
	d := rust.Detect("Cargo.toml", `[package]
name = "app"
version = "0.1.0"
`)
	require.NotNil(t, d)
	assert.Equal(t, model.BuildSystemCargo, d.BuildSystem)
	assert.Equal(t, "./app", rust.ParseEntrypointFromManifest(`[package]
name = "app"
`))
}

func TestRustParsesDependencies(t *testing.T) {
	rust := language.Rust{}
	info := rust.ParseDependencies(`[dependencies]
serde = "1.0"
tokio = { version = "1.35", features = ["full"] }
`, nil)
	assert.Len(t, info.External, 2)
}

func TestGoModDetectsVersionAndListenPort(t *testing.T) {
	golang := language.Golang{}
	content := "module example.com/app\n\ngo 1.21\n"
	d := golang.Detect("go.mod", content)
	require.NotNil(t, d)
	assert.Equal(t, model.BuildSystemGoMod, d.BuildSystem)
	assert.Equal(t, "golang-1.21", golang.DetectVersion(content))

	port, ok := language.ExtractListenAndServePort(`http.ListenAndServe(":8080", nil)`)
	assert.True(t, ok)
	assert.Equal(t, 8080, port)
}

func TestPythonRequirementsCommentsOnlyIsNotRunnable(t *testing.T) {
	py := language.Python{}
	content := "# flask==3.0\n# just a comment\n"
	assert.False(t, py.IsRunnable("requirements.txt", content))
}

func TestPythonRequirementsWithRealEntryIsRunnable(t *testing.T) {
	py := language.Python{}
	content := "flask==3.0\n"
	assert.True(t, py.IsRunnable("requirements.txt", content))

	info := py.ParseDependencies(content, nil)
	require.Len(t, info.External, 1)
	assert.Equal(t, "flask", info.External[0].Name)
}

func TestJavaScriptDetectsPackageJSON(t *testing.T) {
	js := language.JavaScript{}
	content := `{"name":"web","scripts":{"start":"node index.js"}}`
	d := js.Detect("package.json", content)
	require.NotNil(t, d)
	assert.Equal(t, model.BuildSystemNpm, d.BuildSystem)
	assert.Equal(t, "node index.js", js.ParseEntrypointFromManifest(content))
	assert.True(t, js.IsRunnable("package.json", content))
}

func TestTypeScriptRequiresTypescriptDependency(t *testing.T) {
	ts := language.TypeScript{}
	withoutTS := `{"name":"web","scripts":{"start":"node index.js"}}`
	assert.Nil(t, ts.Detect("package.json", withoutTS))

	withTS := `{"name":"web","devDependencies":{"typescript":"5.4.0"}}`
	d := ts.Detect("package.json", withTS)
	require.NotNil(t, d)
	assert.Equal(t, model.BuildSystemNpm, d.BuildSystem)
}
