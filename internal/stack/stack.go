// Package stack composes the five sub-registries (language, build
// system, framework, runtime, orchestrator) into a single Registry,
// mode-aware per spec.md §4.4's detection state machine: llm-backed
// variants are only registered in llm/full mode, and are registered
// last so deterministic matches are always tried first.
package stack

import (
	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/llmclient"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/framework"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/gizzahub/universalbuild/internal/stack/orchestrator"
	"github.com/gizzahub/universalbuild/internal/stack/runtime"
)

// Registry is the full set of stack definitions available to a run.
type Registry struct {
	Languages     []language.Definition
	BuildSystems  []buildsystem.Definition
	Frameworks    []framework.Definition
	Runtimes      []runtime.Definition
	Orchestrators []orchestrator.Definition

	// AllowLLMOverride is true only in detectconfig.ModeFull: the
	// service pipeline may let an LLM-backed candidate replace a
	// deterministic one when the deterministic confidence is Low.
	AllowLLMOverride bool
}

// WithDefaults builds a Registry for the given mode and, when mode is
// llm or full, the given LLM client. client may be nil in static mode.
func WithDefaults(mode detectconfig.Mode, client llmclient.Client) Registry {
	reg := Registry{
		Languages:     language.Defaults(),
		BuildSystems:  buildsystem.Defaults(),
		Frameworks:    framework.Defaults(),
		Runtimes:      runtime.Defaults(),
		Orchestrators: orchestrator.Defaults(),
	}

	if mode == detectconfig.ModeStatic || client == nil {
		return reg
	}

	// LLM-backed stack definitions are appended last: every
	// registration-order tie-break in the sub-registries (spec.md
	// §4.1) already resolved before an LLM candidate is ever
	// considered.
	reg.Languages = append(reg.Languages, language.NewLLM(client))
	reg.BuildSystems = append(reg.BuildSystems, buildsystem.NewLLM(client))
	reg.AllowLLMOverride = mode == detectconfig.ModeFull
	return reg
}

// RuntimeByName looks up a runtime by its RuntimeName(), the bridge
// between a language.Definition and the runtime that images its
// service (spec.md §4.4's RuntimeConfig phase).
func (r Registry) RuntimeByName(name string) (runtime.Definition, bool) {
	for _, rt := range r.Runtimes {
		if rt.Name() == name {
			return rt, true
		}
	}
	return nil, false
}
