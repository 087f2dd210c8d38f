package runtime

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Node implements Definition for the Node.js family, grounded on
// original_source/src/runtimes/node.rs.
type Node struct{ Base }

func (Node) Name() string { return "node" }

func (Node) BaseImage(version string) string { return version }

func (Node) RuntimePackages() []string { return nil }

func (Node) DefaultStartCommand() string { return "node index.js" }

func (n Node) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	for _, content := range serviceFiles {
		if port, ok := language.ExtractListenPort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
	}
	for _, content := range serviceFiles {
		if language.UsesEnvPort(content) {
			return &model.RuntimeConfig{Port: 0, Env: map[string]string{"PORT": "3000"}, PortSource: "source"}
		}
	}
	return nil
}
