package pipeline_test

import (
	"context"
	"testing"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/pipeline"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/gizzahub/universalbuild/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSingleServiceRepo(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"Cargo.toml":  "[package]\nname = \"svc\"\n\n[[bin]]\nname = \"svc\"",
		"src/main.rs": "fn main() {}",
	})

	orch := pipeline.Orchestrator{Config: *detectconfig.Default()}
	registry := stack.WithDefaults(detectconfig.ModeStatic, nil)
	index := pkgindex.NewStatic(pkgindex.DefaultVersions())

	results, err := orch.Run(context.Background(), mock, ".", registry, index)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ".", results[0].ServicePath)
	assert.NotEmpty(t, results[0].Build.Commands)
	assert.NotEmpty(t, results[0].Runtime.Base)
}

func TestRunNpmWorkspaceFansOutAllMembers(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"package.json":              `{"name": "root", "workspaces": ["packages/*"]}`,
		"packages/web/package.json": `{"name": "web", "main": "index.js", "dependencies": {"express": "^4.18.0"}}`,
		"packages/web/index.js":     "require('express')().listen(3000)",
		"packages/cli/package.json": `{"name": "cli", "main": "index.js"}`,
		"packages/cli/index.js":     "console.log('hi')",
	})

	orch := pipeline.Orchestrator{Config: *detectconfig.Default()}
	registry := stack.WithDefaults(detectconfig.ModeStatic, nil)
	index := pkgindex.NewStatic(pkgindex.DefaultVersions())

	results, err := orch.Run(context.Background(), mock, ".", registry, index)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "packages/cli", results[0].ServicePath)
	assert.Equal(t, "packages/web", results[1].ServicePath)
}

func TestRunSkipsServiceWithNoStack(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"package.json":                `{"name": "root", "workspaces": ["packages/*"]}`,
		"packages/docs/package.json":  `{"name": "docs"}`,
		"packages/docs/README.md":     "a docs package with no start script or main entry — not runnable",
		"packages/api/package.json":   `{"name": "api", "main": "index.js"}`,
		"packages/api/index.js":       "console.log(1)",
	})

	orch := pipeline.Orchestrator{Config: *detectconfig.Default()}
	registry := stack.WithDefaults(detectconfig.ModeStatic, nil)
	index := pkgindex.NewStatic(pkgindex.DefaultVersions())

	results, err := orch.Run(context.Background(), mock, ".", registry, index)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "packages/api", results[0].ServicePath)
}
