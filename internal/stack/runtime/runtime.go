// Package runtime defines the Runtime kind of the stack registry
// (spec.md §4.1): per-language-family base images, runtime packages,
// default start commands, and source-level port/env extraction,
// grounded on original_source/src/runtimes/mod.rs.
package runtime

import "github.com/gizzahub/universalbuild/internal/model"

// Definition is implemented by every runtime family the registry knows
// about (JVM, Node, Python, Ruby, BEAM, .NET, PHP, Native).
type Definition interface {
	Name() string
	BaseImage(version string) string
	RuntimePackages() []string
	DefaultStartCommand() string

	// TryExtract parses language-specific config or source among the
	// service's files for a bind/listen pattern, PORT= env declaration,
	// or framework default, returning nil when nothing is found.
	TryExtract(serviceFiles map[string]string, framework *model.FrameworkID) *model.RuntimeConfig
}

// Base defaults TryExtract to "nothing found" so concrete runtimes only
// implement source inspection where spec.md actually specifies it.
type Base struct{}

func (Base) TryExtract(map[string]string, *model.FrameworkID) *model.RuntimeConfig { return nil }
