package framework_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlaskMatchesOnDependency(t *testing.T) {
	deps := []model.Dependency{{Name: "flask", Version: "3.0"}}
	def, ok := framework.Pick(framework.Defaults(), model.LanguagePython, model.BuildSystemPip, deps)
	require.True(t, ok)
	assert.Equal(t, model.FrameworkFlask, def.ID())
}

func TestNoMatchWhenDependencyAbsent(t *testing.T) {
	deps := []model.Dependency{{Name: "requests", Version: "2.31"}}
	_, ok := framework.Pick(framework.Defaults(), model.LanguagePython, model.BuildSystemPip, deps)
	assert.False(t, ok)
}

func TestExpressCompatibleOnlyWithJSBuildSystems(t *testing.T) {
	express := framework.Express()
	assert.Contains(t, express.CompatibleBuildSystems(), model.BuildSystemNpm)
	assert.NotContains(t, express.CompatibleBuildSystems(), model.BuildSystemPip)
}
