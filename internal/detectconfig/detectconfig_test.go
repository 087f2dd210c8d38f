package detectconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := detectconfig.Default()
	assert.Equal(t, detectconfig.ModeStatic, cfg.Mode)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoadFromExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "detect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: full\nconcurrency: 4\n"), 0o644))

	cfg, err := detectconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, detectconfig.ModeFull, cfg.Mode)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadWithNoConfigFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := detectconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, detectconfig.ModeStatic, cfg.Mode)
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	t.Setenv("DETECT_MODE", "llm")

	cfg, err := detectconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, detectconfig.ModeLLM, cfg.Mode)
}
