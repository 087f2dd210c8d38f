// Package orchestrator defines the Orchestrator kind of the stack
// registry (spec.md §4.3): detecting monorepo coordination config at
// the repository root, grounded on original_source/src/orchestrators/
// mod.rs.
package orchestrator

import "github.com/gizzahub/universalbuild/internal/model"

// Definition is implemented by every orchestrator the registry knows
// about.
type Definition interface {
	ID() model.OrchestratorID

	// ConfigFiles lists the root-level filenames that signal this
	// orchestrator is in play (e.g. "turbo.json", "nx.json").
	ConfigFiles() []string

	// Matches inspects the root config file's content (already read by
	// the caller) and confirms this orchestrator really applies — most
	// implementations just need presence, but Cargo, Maven and npm
	// workspaces need a content check since their config file doubles
	// as an ordinary manifest.
	Matches(configContent string) bool

	// BuildSystem names the BuildSystemID whose
	// parse_workspace_patterns/glob_workspace_pattern this orchestrator
	// delegates member expansion to.
	BuildSystem() model.BuildSystemID
}

// Static is the common case: presence of ConfigFiles() is sufficient,
// and member expansion is delegated to a fixed build system.
type Static struct {
	id          model.OrchestratorID
	configFiles []string
	buildSystem model.BuildSystemID
}

func NewStatic(id model.OrchestratorID, buildSystem model.BuildSystemID, configFiles ...string) Static {
	return Static{id: id, configFiles: configFiles, buildSystem: buildSystem}
}

func (s Static) ID() model.OrchestratorID      { return s.id }
func (s Static) ConfigFiles() []string         { return s.configFiles }
func (s Static) Matches(string) bool           { return true }
func (s Static) BuildSystem() model.BuildSystemID { return s.buildSystem }
