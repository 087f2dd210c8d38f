// Package language defines the Language kind of the stack registry
// (spec.md §4.1): per-language detection, version parsing, dependency
// extraction, and runtime hints, grounded on original_source/src/
// languages/mod.rs's trait split and styled after gzh-cli's provider
// interfaces (internal/git/provider.go's one-interface-many-impls shape).
package language

import (
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
)

// Definition is implemented by every language the registry knows about.
// Implementations leave optional hints at their zero value; the
// registry and service pipeline treat a zero value as "no opinion" and
// fall through to defaults.
type Definition interface {
	ID() model.LanguageID
	Extensions() []string
	ManifestPatterns() []model.ManifestPattern

	// Detect inspects one manifest by name (and content, if read) and
	// reports the build system it implies plus a raw [0,1] confidence.
	// A nil return means this language does not recognize the manifest.
	Detect(manifestName string, content string) *model.LanguageDetection

	CompatibleBuildSystems() []model.BuildSystemID
	ExcludedDirs() []string
	WorkspaceConfigs() []string

	// DetectVersion resolves a version string from manifest content
	// alone (manifest-content tier of spec.md §4.1's hierarchy); dotfile
	// and package-index tiers are applied by the caller.
	DetectVersion(content string) string

	IsWorkspaceRoot(manifestName, content string) bool

	ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo

	PortPatterns() []string
	HealthCheckPatterns() []string
	DefaultPort() int
	DefaultEntrypoint(buildSystem model.BuildSystemID) string
	ParseEntrypointFromManifest(content string) string
	FindEntrypoints(files []string) []string
	IsRunnable(manifestName, content string) bool

	// RuntimeName names the Runtime this language normally pairs with;
	// empty means the caller should use its own family default.
	RuntimeName() string
}

// Base provides zero-value defaults for every optional hint so concrete
// languages only override what they actually know, per spec.md §4.1
// ("Defaults are empty/none so implementors override only what they
// know").
type Base struct{}

func (Base) ExcludedDirs() []string                                       { return nil }
func (Base) WorkspaceConfigs() []string                                   { return nil }
func (Base) DetectVersion(string) string                                  { return "" }
func (Base) IsWorkspaceRoot(string, string) bool                          { return false }
func (Base) ParseDependencies(string, map[string]bool) model.DependencyInfo { return model.DependencyInfo{} }
func (Base) PortPatterns() []string                                       { return nil }
func (Base) HealthCheckPatterns() []string                                { return nil }
func (Base) DefaultPort() int                                             { return 0 }
func (Base) DefaultEntrypoint(model.BuildSystemID) string                 { return "" }
func (Base) ParseEntrypointFromManifest(string) string                    { return "" }
func (Base) FindEntrypoints([]string) []string                            { return nil }
func (Base) RuntimeName() string                                          { return "" }

// ServiceFiles is the slice of relative file paths under a service's
// path, the shape FindEntrypoints receives so languages can inspect the
// file tree without depending on the scanner package directly.
type ServiceFiles = []string

// ReadManifest is a small convenience that reads a manifest's content
// through the FSA, tolerating missing files (returns "").
func ReadManifest(fs fsa.FS, path string) string {
	if !fs.IsFile(path) {
		return ""
	}
	content, err := fs.ReadToString(path)
	if err != nil {
		return ""
	}
	return content
}
