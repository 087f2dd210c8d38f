// Package buildsystem defines the BuildSystem kind of the stack registry
// (spec.md §4.1): manifest-driven stack detection across a repository,
// build template generation, and workspace-member glob expansion,
// grounded on original_source/src/build_systems/mod.rs's trait and
// styled after gzh-cli's provider-per-file layout.
package buildsystem

import (
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

// Definition is implemented by every build system the registry knows
// about.
type Definition interface {
	ID() model.BuildSystemID
	ManifestPatterns() []model.ManifestPattern

	// DetectAll emits one DetectionStack candidate per manifest this
	// build system recognizes under repoRoot, restricted to the file
	// paths in fileTree (already scoped to one service's subtree by the
	// caller).
	DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack

	BuildTemplate(index pkgindex.Index, servicePath string, manifestContent string) model.BuildTemplate

	CacheDirs() []string

	IsWorkspaceRoot(content string) bool
	WorkspaceConfigs() []string

	ParsePackageMetadata(content string) (name string, isApplication bool)
	ParseWorkspacePatterns(content string) []string

	// GlobWorkspacePattern expands a workspace member pattern (e.g.
	// "packages/*") against the real file tree via fs.ReadDir, so it
	// needs the FSA rather than just the flat fileTree used by DetectAll.
	GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string
}

// Base supplies the common "no opinion" defaults so concrete build
// systems implement only what spec.md actually requires of them.
type Base struct{}

func (Base) CacheDirs() []string                    { return nil }
func (Base) IsWorkspaceRoot(string) bool             { return false }
func (Base) WorkspaceConfigs() []string              { return nil }
func (Base) ParseWorkspacePatterns(string) []string  { return nil }
func (Base) GlobWorkspacePattern(fsa.FS, string, string) []string { return nil }
