package runtime

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Python implements Definition for the Python family, grounded on
// original_source/src/runtimes/python.rs.
type Python struct{ Base }

func (Python) Name() string { return "python" }

func (Python) BaseImage(version string) string { return version }

func (Python) RuntimePackages() []string { return []string{"libpq5"} }

func (Python) DefaultStartCommand() string { return "python app.py" }

func (p Python) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	for _, content := range serviceFiles {
		if port, ok := language.ExtractRunPort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
	}
	return nil
}
