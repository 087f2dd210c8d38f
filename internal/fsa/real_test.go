package fsa_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFSAgainstTempDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module demo\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "cmd"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cmd", "main.go"), []byte("package main\n"), 0o644))

	fs := fsa.NewRealFS(root)

	assert.True(t, fs.IsFile("go.mod"))
	assert.True(t, fs.IsDir("cmd"))
	assert.False(t, fs.Exists("missing"))

	content, err := fs.ReadToString("go.mod")
	require.NoError(t, err)
	assert.Equal(t, "module demo\n", content)

	entries, err := fs.ReadDir(".")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name] = true
	}
	assert.True(t, names["go.mod"])
	assert.True(t, names["cmd"])

	abs, err := fs.Canonicalize("go.mod")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "go.mod"), abs)
}

func TestRealFSReadBytesPartial(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.txt"), []byte("hello world"), 0o644))

	fs := fsa.NewRealFS(root)
	b, err := fs.ReadBytes("big.txt", 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)
}
