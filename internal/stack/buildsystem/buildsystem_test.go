package buildsystem_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCargoDetectAllAndBuildTemplate(t *testing.T) {
	cargo := buildsystem.Cargo{}
	candidates := cargo.DetectAll(".", []string{"Cargo.toml", "src/main.rs"}, nil)
	require.Len(t, candidates, 1)
	assert.Equal(t, model.LanguageRust, candidates[0].Language)

	idx := pkgindex.NewStatic(pkgindex.DefaultVersions())
	tmpl := cargo.BuildTemplate(idx, ".", "")
	assert.NotEmpty(t, tmpl.BuildCommands)
	expanded := tmpl.ExpandProjectName("app")
	require.Len(t, expanded.RuntimeCopy, 1)
	assert.Equal(t, "target/release/app", expanded.RuntimeCopy[0].From)
}

func TestNpmFamilyLockFileDisambiguation(t *testing.T) {
	files := []string{"package.json", "pnpm-lock.yaml"}

	pnpm := buildsystem.Pnpm{}
	pnpmMatches := pnpm.DetectAll(".", files, nil)
	require.Len(t, pnpmMatches, 1)
	assert.Equal(t, model.BuildSystemPnpm, pnpmMatches[0].BuildSystem)

	npm := buildsystem.Npm{}
	npmMatches := npm.DetectAll(".", files, nil)
	assert.Empty(t, npmMatches, "npm must yield to pnpm when a pnpm-lock.yaml sits beside package.json")
}

func TestNpmClaimsBarePackageJSON(t *testing.T) {
	npm := buildsystem.Npm{}
	matches := npm.DetectAll(".", []string{"package.json"}, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, model.BuildSystemNpm, matches[0].BuildSystem)
}

func TestPipRequiresRealEntry(t *testing.T) {
	pip := buildsystem.Pip{}
	_, runnable := pip.ParsePackageMetadata("# flask==3.0\n")
	assert.False(t, runnable)

	_, runnable = pip.ParsePackageMetadata("flask==3.0\n")
	assert.True(t, runnable)
}

func TestCargoWorkspaceMembers(t *testing.T) {
	cargo := buildsystem.Cargo{}
	content := `[workspace]
members = ["app", "lib-a", "lib-b"]
`
	assert.True(t, cargo.IsWorkspaceRoot(content))
	assert.Equal(t, []string{"app", "lib-a", "lib-b"}, cargo.ParseWorkspacePatterns(content))
}

func TestGoModGlobWorkspacePattern(t *testing.T) {
	gomod := buildsystem.GoMod{}
	mock := fsa.NewMockFS(map[string]string{
		"services/a/go.mod": "module a\n",
		"services/b/go.mod": "module b\n",
	})
	matches := gomod.GlobWorkspacePattern(mock, ".", "services/*")
	assert.ElementsMatch(t, []string{"services/a", "services/b"}, matches)
}
