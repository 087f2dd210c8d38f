package buildsystem

import (
	"bytes"
	"io"
	iofs "io/fs"
	"path"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gizzahub/universalbuild/internal/fsa"
)

// adapter satisfies io/fs.FS (and fs.ReadDirFS, which doublestar
// prefers for performance) on top of the detector's own fsa.FS, so
// workspace glob patterns like "packages/*" or "apps/**" can be
// expanded with github.com/bmatcuk/doublestar/v4 instead of a
// hand-rolled walker.
type adapter struct{ fs fsa.FS }

func (a adapter) Open(name string) (iofs.File, error) {
	if a.fs.IsDir(name) {
		return &dirFile{name: name, fs: a.fs}, nil
	}
	content, err := a.fs.ReadToString(name)
	if err != nil {
		return nil, &iofs.PathError{Op: "open", Path: name, Err: err}
	}
	return &fileHandle{name: name, reader: bytes.NewReader([]byte(content)), size: int64(len(content))}, nil
}

func (a adapter) ReadDir(name string) ([]iofs.DirEntry, error) {
	entries, err := a.fs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	out := make([]iofs.DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dirEntry{e})
	}
	return out, nil
}

type dirEntry struct{ e fsa.DirEntry }

func (d dirEntry) Name() string               { return d.e.Name }
func (d dirEntry) IsDir() bool                { return d.e.IsDir() }
func (d dirEntry) Type() iofs.FileMode {
	if d.e.IsDir() {
		return iofs.ModeDir
	}
	return 0
}
func (d dirEntry) Info() (iofs.FileInfo, error) { return fileInfo{name: d.e.Name, dir: d.e.IsDir()}, nil }

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (f fileInfo) Name() string       { return path.Base(f.name) }
func (f fileInfo) Size() int64        { return f.size }
func (f fileInfo) Mode() iofs.FileMode {
	if f.dir {
		return iofs.ModeDir
	}
	return 0
}
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return f.dir }
func (f fileInfo) Sys() any           { return nil }

type dirFile struct {
	name string
	fs   fsa.FS
	read bool
}

func (d *dirFile) Stat() (iofs.FileInfo, error) { return fileInfo{name: d.name, dir: true}, nil }
func (d *dirFile) Read([]byte) (int, error)      { return 0, io.EOF }
func (d *dirFile) Close() error                  { return nil }

type fileHandle struct {
	name   string
	reader *bytes.Reader
	size   int64
}

func (f *fileHandle) Stat() (iofs.FileInfo, error) { return fileInfo{name: f.name, size: f.size}, nil }
func (f *fileHandle) Read(b []byte) (int, error)   { return f.reader.Read(b) }
func (f *fileHandle) Close() error                 { return nil }

// globWorkspacePattern expands pattern (relative to repoPath) via
// doublestar.Glob, returning relative paths.
func globWorkspacePattern(fs fsa.FS, pattern string) []string {
	matches, err := doublestar.Glob(adapter{fs: fs}, pattern)
	if err != nil {
		return nil
	}
	return matches
}
