package service_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pipeline/service"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScan(t *testing.T, fsys fsa.FS) *scanner.Result {
	t.Helper()
	result, err := scanner.Scan(fsys, ".", scanner.Options{
		Languages:    language.Defaults(),
		BuildSystems: buildsystem.Defaults(),
	})
	require.NoError(t, err)
	return result
}

func TestCargoServicePicksRustStackAndCacheDirs(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"Cargo.toml":  "[package]\nname = \"api\"\n\n[[bin]]\nname = \"api\"\n\n[dependencies]\naxum = \"0.7\"",
		"src/main.rs": "fn main() {}",
	})
	scan := mustScan(t, mock)

	reg := stack.WithDefaults(detectconfig.ModeStatic, nil)
	analyzer := service.Analyzer{Registry: reg, Index: pkgindex.NewStatic(pkgindex.DefaultVersions()), Mode: detectconfig.ModeStatic}

	ctx, err := analyzer.Analyze(mock, model.Package{Path: ".", Name: "api", IsApplication: true}, scan)
	require.NoError(t, err)
	require.NotNil(t, ctx.PickedStack)
	assert.Equal(t, model.LanguageRust, ctx.PickedStack.Language)
	assert.Equal(t, model.BuildSystemCargo, ctx.PickedStack.BuildSystem)
	require.NotNil(t, ctx.BuildTemplate)
	require.NotNil(t, ctx.Framework)
	assert.Equal(t, model.FrameworkAxum, *ctx.Framework)
	require.NotNil(t, ctx.Cache)
	assert.NotEmpty(t, ctx.Cache.CacheDirs)
	assert.NotEqual(t, model.ConfidenceLow, ctx.Confidence)
}

func TestServiceWithNoManifestReturnsNoStackDetected(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"README.md": "nothing to build here",
	})
	scan := mustScan(t, mock)

	reg := stack.WithDefaults(detectconfig.ModeStatic, nil)
	analyzer := service.Analyzer{Registry: reg, Index: pkgindex.NewStatic(pkgindex.DefaultVersions()), Mode: detectconfig.ModeStatic}

	_, err := analyzer.Analyze(mock, model.Package{Path: ".", Name: "empty"}, scan)
	assert.Error(t, err)
}

func TestNodeServiceResolvesExpressRuntimePort(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"package.json": `{"name": "web", "main": "index.js", "dependencies": {"express": "^4.18.0"}}`,
		"index.js":     "const app = require('express')(); app.listen(3000)",
	})
	scan := mustScan(t, mock)

	reg := stack.WithDefaults(detectconfig.ModeStatic, nil)
	analyzer := service.Analyzer{Registry: reg, Index: pkgindex.NewStatic(pkgindex.DefaultVersions()), Mode: detectconfig.ModeStatic}

	ctx, err := analyzer.Analyze(mock, model.Package{Path: ".", Name: "web", IsApplication: true}, scan)
	require.NoError(t, err)
	require.NotNil(t, ctx.Framework)
	assert.Equal(t, model.FrameworkExpress, *ctx.Framework)
	require.NotNil(t, ctx.RuntimeConfig)
	assert.Equal(t, 3000, ctx.RuntimeConfig.Port)
}
