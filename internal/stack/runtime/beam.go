package runtime

import "github.com/gizzahub/universalbuild/internal/model"

// Beam implements Definition for the Elixir/Erlang family, grounded on
// original_source/src/runtimes/beam.rs.
type Beam struct{ Base }

func (Beam) Name() string { return "beam" }

func (Beam) BaseImage(version string) string { return version }

func (Beam) RuntimePackages() []string { return []string{"openssl", "ncurses-libs"} }

func (Beam) DefaultStartCommand() string { return "_build/prod/rel/app/bin/app start" }

func (b Beam) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	if fw != nil && *fw == model.FrameworkPhoenix {
		return &model.RuntimeConfig{Port: 4000, PortSource: "framework"}
	}
	return nil
}
