package assembler_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/assembler"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/framework"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSkipsContextWithNoPickedStack(t *testing.T) {
	a := assembler.Assembler{Languages: language.Defaults(), Frameworks: framework.Defaults()}
	out := a.Assemble([]*model.ServiceContext{{ServicePath: "."}})
	assert.Empty(t, out)
}

func TestAssembleExpressServiceMergesFrameworkPort(t *testing.T) {
	fwID := model.FrameworkExpress
	ctx := &model.ServiceContext{
		ServicePath: "packages/web",
		PickedStack: &model.DetectionStack{Language: model.LanguageJavaScript, BuildSystem: model.BuildSystemNpm},
		Framework:   &fwID,
		BuildTemplate: &model.BuildTemplate{
			BuildImage:    "node-20",
			RuntimeImage:  "node-20-slim",
			BuildCommands: []string{"npm install"},
			RuntimeEnv:    map[string]string{"NODE_ENV": "production"},
		},
		RuntimeConfig: &model.RuntimeConfig{Port: 3000, PortSource: "source"},
		DetectedBy:    model.DetectedByDeterministic,
		Confidence:    model.ConfidenceHigh,
	}

	a := assembler.Assembler{Languages: language.Defaults(), Frameworks: framework.Defaults()}
	out := a.Assemble([]*model.ServiceContext{ctx})
	require.Len(t, out, 1)

	build := out[0]
	assert.Equal(t, "production", build.Runtime.Env["NODE_ENV"])
	assert.Equal(t, "3000", build.Runtime.Env["PORT"])
	assert.Equal(t, "/health", build.Runtime.Healthcheck)
	assert.Equal(t, 3000, build.Runtime.Port)
	assert.Equal(t, model.LanguageJavaScript, build.Metadata.Language)
}

func TestAssembleFallsBackToLanguageDefaultEntrypoint(t *testing.T) {
	ctx := &model.ServiceContext{
		ServicePath:   ".",
		PickedStack:   &model.DetectionStack{Language: model.LanguageRust, BuildSystem: model.BuildSystemCargo},
		BuildTemplate: &model.BuildTemplate{BuildImage: "rust-1.76", RuntimeImage: "debian-slim", BuildCommands: []string{"cargo build --release"}},
		RuntimeConfig: &model.RuntimeConfig{Port: 8080, PortSource: "source"},
		DetectedBy:    model.DetectedByDeterministic,
		Confidence:    model.ConfidenceHigh,
	}

	a := assembler.Assembler{Languages: language.Defaults(), Frameworks: framework.Defaults()}
	out := a.Assemble([]*model.ServiceContext{ctx})
	require.Len(t, out, 1)
	assert.Equal(t, "./app", out[0].Runtime.Entrypoint)
}

func TestAssembleCarriesWarningsThrough(t *testing.T) {
	ctx := &model.ServiceContext{
		ServicePath:   ".",
		PickedStack:   &model.DetectionStack{Language: model.LanguageGo, BuildSystem: model.BuildSystemGoMod},
		BuildTemplate: &model.BuildTemplate{BuildImage: "golang-1.22", RuntimeImage: "distroless", BuildCommands: []string{"go build ./..."}},
		Warnings:      []string{"no registered runtime named native: falling back to language default port"},
		Confidence:    model.ConfidenceLow,
	}

	a := assembler.Assembler{Languages: language.Defaults(), Frameworks: framework.Defaults()}
	out := a.Assemble([]*model.ServiceContext{ctx})
	require.Len(t, out, 1)
	assert.Len(t, out[0].Warnings, 1)
}
