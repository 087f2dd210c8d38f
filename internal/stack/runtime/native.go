package runtime

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Native implements Definition for statically-compiled languages
// without a managed runtime: Rust, Go, C++, Zig. Grounded on
// original_source/src/runtimes/native.rs.
type Native struct{ Base }

func (Native) Name() string { return "native" }

func (Native) BaseImage(string) string { return "debian-slim" }

func (Native) RuntimePackages() []string { return []string{"ca-certificates"} }

func (Native) DefaultStartCommand() string { return "./app" }

func (n Native) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	for _, content := range serviceFiles {
		if port, ok := language.ExtractListenAndServePort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
		if port, ok := language.ExtractBindPort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
	}
	return nil
}
