package fsa_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFSBasics(t *testing.T) {
	fs := fsa.NewMockFS(map[string]string{
		"Cargo.toml":     "[package]\nname = \"demo\"\n",
		"src/main.rs":    "fn main() {}\n",
		"services/a/go.mod": "module a\n",
	})

	assert.True(t, fs.IsFile("Cargo.toml"))
	assert.True(t, fs.IsDir("src"))
	assert.True(t, fs.IsDir("services/a"))
	assert.False(t, fs.IsFile("missing.txt"))

	content, err := fs.ReadToString("src/main.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", content)
}

func TestMockFSReadDirIsSortedAndScoped(t *testing.T) {
	fs := fsa.NewMockFS(map[string]string{
		"b.txt":     "b",
		"a.txt":     "a",
		"sub/c.txt": "c",
	})

	entries, err := fs.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "b.txt", entries[1].Name)
	assert.Equal(t, "sub", entries[2].Name)
	assert.True(t, entries[2].IsDir())
}

func TestMockFSReadBytesTruncates(t *testing.T) {
	fs := fsa.NewMockFS(map[string]string{"f.bin": "0123456789"})

	b, err := fs.ReadBytes("f.bin", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123"), b)

	full, err := fs.ReadBytes("f.bin", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), full)
}

func TestMockFSMetadataNotFound(t *testing.T) {
	fs := fsa.NewMockFS(nil)
	_, err := fs.Metadata("nope")
	assert.Error(t, err)
}

func TestMockFSExplicitEmptyDir(t *testing.T) {
	fs := fsa.NewMockFS(nil)
	fs.AddDir("empty/nested")

	assert.True(t, fs.IsDir("empty"))
	assert.True(t, fs.IsDir("empty/nested"))
	entries, err := fs.ReadDir("empty/nested")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
