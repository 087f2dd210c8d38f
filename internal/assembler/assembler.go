// Package assembler maps a finished per-service ServiceContext into the
// UniversalBuild record the detector emits, per spec.md §4.5. Grounded
// on original_source/crates/pipeline/src/pipeline/orchestrator.rs
// (AssemblePhase runs last, after every ServiceContext is filled) and
// the BuildTemplate field shape in original_source/src/languages/mod.rs.
package assembler

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/framework"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Assembler turns finalized ServiceContexts into UniversalBuild
// records, resolving the language/framework lookups a ServiceContext
// only carries by id.
type Assembler struct {
	Languages  []language.Definition
	Frameworks []framework.Definition
}

// Assemble maps every context that reached a picked stack into a
// UniversalBuild, skipping the rest (spec.md §4.5: "omit services with
// no picked stack" — in practice the service pipeline already turns a
// no-stack result into a skipped outcome before it reaches here, so
// this is a defensive second filter, not the primary enforcement).
func (a Assembler) Assemble(contexts []*model.ServiceContext) []model.UniversalBuild {
	out := make([]model.UniversalBuild, 0, len(contexts))
	for _, ctx := range contexts {
		if ctx == nil || ctx.PickedStack == nil {
			continue
		}
		out = append(out, a.one(ctx))
	}
	return out
}

func (a Assembler) one(ctx *model.ServiceContext) model.UniversalBuild {
	lang := findLanguage(a.Languages, ctx.PickedStack.Language)
	var fw framework.Definition
	if ctx.Framework != nil {
		fw = findFramework(a.Frameworks, *ctx.Framework)
	}

	tmpl := model.BuildTemplate{}
	if ctx.BuildTemplate != nil {
		tmpl = *ctx.BuildTemplate
	}

	build := model.BuildStage{
		Base:       tmpl.BuildImage,
		Packages:   tmpl.BuildPackages,
		Commands:   tmpl.BuildCommands,
		CachePaths: tmpl.CachePaths,
		Env:        tmpl.BuildEnv,
	}

	runtime := model.RuntimeStage{
		Base:     tmpl.RuntimeImage,
		Packages: tmpl.RuntimePackages,
		Copy:     tmpl.RuntimeCopy,
		Env:      mergeEnv(tmpl.RuntimeEnv, frameworkEnv(fw, ctx.RuntimeConfig)),
		Entrypoint: entrypoint(lang, ctx),
	}
	if ctx.RuntimeConfig != nil {
		runtime.Port = ctx.RuntimeConfig.Port
		runtime.Healthcheck = ctx.RuntimeConfig.Healthcheck
	}
	if runtime.Healthcheck == "" && fw != nil {
		runtime.Healthcheck = fw.HealthEndpoint()
	}

	return model.UniversalBuild{
		ServicePath: ctx.ServicePath,
		Metadata: model.BuildMetadata{
			Language:    ctx.PickedStack.Language,
			BuildSystem: ctx.PickedStack.BuildSystem,
			Framework:   ctx.Framework,
		},
		Build:      build,
		Runtime:    runtime,
		DetectedBy: ctx.DetectedBy,
		Confidence: ctx.Confidence,
		Warnings:   ctx.Warnings,
	}
}

// entrypoint prefers a source-declared manifest entrypoint (a ready
// shell command, e.g. a package.json "start" script or a Cargo binary
// name) over the language's generic default.
func entrypoint(lang language.Definition, ctx *model.ServiceContext) string {
	if ctx.RuntimeConfig != nil && ctx.RuntimeConfig.Entrypoint != "" {
		return ctx.RuntimeConfig.Entrypoint
	}
	if lang == nil {
		return ""
	}
	return lang.DefaultEntrypoint(ctx.PickedStack.BuildSystem)
}

// frameworkEnv reports the resolved PORT value for every env var name
// a matched framework declares it reads (spec.md §4.5: "framework
// overrides" on merge), so e.g. Express's PORT pattern gets the
// service's actual resolved port rather than the build system's
// generic runtime env.
func frameworkEnv(fw framework.Definition, rc *model.RuntimeConfig) map[string]string {
	if fw == nil || rc == nil || rc.Port == 0 {
		return nil
	}
	out := map[string]string{}
	for _, name := range fw.EnvVarPatterns() {
		out[name] = portString(rc.Port)
	}
	return out
}

func portString(port int) string {
	if port == 0 {
		return ""
	}
	digits := []byte{}
	for port > 0 {
		digits = append([]byte{byte('0' + port%10)}, digits...)
		port /= 10
	}
	return string(digits)
}

// mergeEnv combines a language/build-system-level env map with a
// framework-level one, the framework's keys taking precedence per
// spec.md §4.5.
func mergeEnv(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func findLanguage(langs []language.Definition, id model.LanguageID) language.Definition {
	for _, l := range langs {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

func findFramework(frameworks []framework.Definition, id model.FrameworkID) framework.Definition {
	for _, f := range frameworks {
		if f.ID() == id {
			return f
		}
	}
	return nil
}
