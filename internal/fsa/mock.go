package fsa

import (
	"path"
	"sort"
	"strings"
	"time"
)

// MockFS is an in-memory FS used by stack-definition and pipeline tests,
// grounded on original_source/crates/core/src/fs/mock.rs. Paths are
// forward-slash, relative to the mock root; directories are implied by
// any file or explicit entry under them.
type MockFS struct {
	files map[string]string
	dirs  map[string]bool
}

// NewMockFS builds a MockFS from a map of relative file path to content.
// Parent directories are inferred automatically.
func NewMockFS(files map[string]string) *MockFS {
	m := &MockFS{files: make(map[string]string), dirs: map[string]bool{".": true}}
	for p, content := range files {
		m.AddFile(p, content)
	}
	return m
}

// AddFile inserts or overwrites a file and registers its parent chain as
// directories.
func (m *MockFS) AddFile(p, content string) {
	p = clean(p)
	m.files[p] = content
	dir := path.Dir(p)
	for dir != "." && dir != "/" && dir != "" {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
	m.dirs["."] = true
}

// AddDir registers an explicit (possibly empty) directory.
func (m *MockFS) AddDir(p string) {
	p = clean(p)
	m.dirs[p] = true
	for p != "." && p != "/" && p != "" {
		p = path.Dir(p)
		m.dirs[p] = true
	}
}

func clean(p string) string {
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "."
	}
	return path.Clean(p)
}

func (m *MockFS) Exists(p string) bool {
	p = clean(p)
	_, isFile := m.files[p]
	return isFile || m.dirs[p]
}

func (m *MockFS) IsFile(p string) bool {
	_, ok := m.files[clean(p)]
	return ok
}

func (m *MockFS) IsDir(p string) bool {
	return m.dirs[clean(p)]
}

func (m *MockFS) Metadata(p string) (Metadata, error) {
	p = clean(p)
	if content, ok := m.files[p]; ok {
		return Metadata{Size: int64(len(content)), Type: TypeFile, ModTime: time.Unix(0, 0)}, nil
	}
	if m.dirs[p] {
		return Metadata{Type: TypeDirectory, ModTime: time.Unix(0, 0)}, nil
	}
	return Metadata{}, errNotFound(p)
}

func (m *MockFS) ReadToString(p string) (string, error) {
	content, ok := m.files[clean(p)]
	if !ok {
		return "", errNotFound(p)
	}
	return content, nil
}

func (m *MockFS) ReadBytes(p string, maxBytes int) ([]byte, error) {
	content, ok := m.files[clean(p)]
	if !ok {
		return nil, errNotFound(p)
	}
	b := []byte(content)
	if maxBytes > 0 && len(b) > maxBytes {
		b = b[:maxBytes]
	}
	return b, nil
}

func (m *MockFS) ReadDir(p string) ([]DirEntry, error) {
	p = clean(p)
	if !m.dirs[p] {
		return nil, errNotFound(p)
	}
	seen := make(map[string]FileType)
	collect := func(candidate string, typ FileType) {
		dir := path.Dir(candidate)
		if dir != p {
			return
		}
		name := path.Base(candidate)
		seen[name] = typ
	}
	for f := range m.files {
		collect(f, TypeFile)
	}
	for d := range m.dirs {
		if d == "." {
			continue
		}
		collect(d, TypeDirectory)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]DirEntry, 0, len(names))
	for _, name := range names {
		childPath := name
		if p != "." {
			childPath = path.Join(p, name)
		}
		out = append(out, DirEntry{Path: childPath, Name: name, Type: seen[name]})
	}
	return out, nil
}

func (m *MockFS) Canonicalize(p string) (string, error) {
	return "/" + clean(p), nil
}

type notFoundError string

func (e notFoundError) Error() string { return "fsa: not found: " + string(e) }

func errNotFound(p string) error { return notFoundError(p) }
