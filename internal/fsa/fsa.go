// Package fsa is the detector's read-only file-system abstraction
// (spec.md §2.1 / §4.2): a pluggable view over a repository with a real
// disk-backed implementation and an in-memory mock for tests, grounded on
// gzh-cli's internal/filesystem interface split and
// original_source/src/fs/trait.rs.
package fsa

import "time"

// FileType mirrors original_source's FileType enum.
type FileType int

const (
	TypeFile FileType = iota
	TypeDirectory
	TypeSymlink
)

// Metadata is returned by FS.Metadata.
type Metadata struct {
	Size    int64
	Type    FileType
	ModTime time.Time
}

func (m Metadata) IsFile() bool { return m.Type == TypeFile }
func (m Metadata) IsDir() bool  { return m.Type == TypeDirectory }

// DirEntry is one entry returned by FS.ReadDir.
type DirEntry struct {
	Path string
	Name string
	Type FileType
}

func (e DirEntry) IsDir() bool { return e.Type == TypeDirectory }

// FS is the capability set the scanner, workspace analyzer, and stack
// registry need from a repository. All paths are relative to the root
// the FS was constructed with, except Canonicalize which may return an
// absolute path.
type FS interface {
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Metadata(path string) (Metadata, error)
	ReadToString(path string) (string, error)
	ReadBytes(path string, maxBytes int) ([]byte, error)
	ReadDir(path string) ([]DirEntry, error)
	Canonicalize(path string) (string, error)
}
