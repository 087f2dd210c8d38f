package runtime

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Ruby implements Definition for the Ruby family, grounded on
// original_source/src/runtimes/ruby.rs.
type Ruby struct{ Base }

func (Ruby) Name() string { return "ruby" }

func (Ruby) BaseImage(version string) string { return version }

func (Ruby) RuntimePackages() []string { return []string{"libsqlite3-0"} }

func (Ruby) DefaultStartCommand() string { return "ruby app.rb" }

func (r Ruby) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	for _, content := range serviceFiles {
		if port, ok := language.ExtractSinatraPort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
	}
	if fw != nil && *fw == model.FrameworkRails {
		return &model.RuntimeConfig{Port: 3000, Healthcheck: "/up", PortSource: "framework"}
	}
	return nil
}
