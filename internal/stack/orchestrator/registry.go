package orchestrator

import (
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

// npmWorkspaces matches when root package.json declares a "workspaces"
// field (spec.md §4.3); a bare package.json without one is just an
// ordinary Node package, not a monorepo root.
type npmWorkspaces struct{ Static }

func (npmWorkspaces) Matches(content string) bool {
	return strings.Contains(content, `"workspaces"`)
}

// cargoWorkspace matches when root Cargo.toml declares a [workspace]
// section; a plain Cargo.toml is an ordinary crate manifest.
type cargoWorkspace struct{ Static }

func (cargoWorkspace) Matches(content string) bool {
	return strings.Contains(content, "[workspace]")
}

// gradleMultiProject recognizes settings.gradle(.kts) unconditionally:
// that file only exists at all when a Gradle build declares subprojects.
type gradleMultiProject struct{ Static }

// mavenMultiModule matches a parent POM that declares <modules>; a leaf
// pom.xml never does.
type mavenMultiModule struct{ Static }

func (mavenMultiModule) Matches(content string) bool {
	return strings.Contains(content, "<modules>")
}

// goWork matches presence of go.work unconditionally — the file has no
// other purpose.
type goWork struct{ Static }

// turborepo/nxOrchestrator/pnpmWorkspace/lerna/rush all use Static's
// presence-is-sufficient default; their config files (turbo.json,
// nx.json, pnpm-workspace.yaml, lerna.json, rush.json) have no other
// meaning when present.
type turborepo struct{ Static }
type nxOrchestrator struct{ Static }

// LegacyWorkspaceFile is the pre-Nx-15 member manifest checked before
// falling back to root package.json workspaces (spec.md §4.3's Nx
// special case). The workspace analyzer type-asserts for this method.
func (nxOrchestrator) LegacyWorkspaceFile() string { return "workspace.json" }
type pnpmWorkspace struct{ Static }
type lerna struct{ Static }
type rush struct{ Static }

// Defaults returns every deterministic orchestrator in the order
// spec.md §4.3 lists them for the "first match yields an OrchestratorId"
// rule: nx.json, turbo.json, pnpm-workspace.yaml, rush.json, lerna.json,
// Cargo workspace, Gradle settings, Maven parent POM, go.work — with
// package.json "workspaces" checked last since it shares a filename
// with an ordinary npm manifest and every more specific marker above
// takes precedence when also present.
func Defaults() []Definition {
	return []Definition{
		nxOrchestrator{NewStatic(model.OrchestratorNx, model.BuildSystemNpm, "nx.json")},
		turborepo{NewStatic(model.OrchestratorTurborepo, model.BuildSystemNpm, "turbo.json")},
		pnpmWorkspace{NewStatic(model.OrchestratorPnpmWorkspace, model.BuildSystemPnpm, "pnpm-workspace.yaml")},
		rush{NewStatic(model.OrchestratorRush, model.BuildSystemNpm, "rush.json")},
		lerna{NewStatic(model.OrchestratorLerna, model.BuildSystemNpm, "lerna.json")},
		cargoWorkspace{NewStatic(model.OrchestratorCargoWorkspace, model.BuildSystemCargo, "Cargo.toml")},
		gradleMultiProject{NewStatic(model.OrchestratorGradleMultiProject, model.BuildSystemGradle, "settings.gradle", "settings.gradle.kts")},
		mavenMultiModule{NewStatic(model.OrchestratorMavenMultiModule, model.BuildSystemMaven, "pom.xml")},
		goWork{NewStatic(model.OrchestratorGoWork, model.BuildSystemGoMod, "go.work")},
		npmWorkspaces{NewStatic(model.OrchestratorNpmWorkspaces, model.BuildSystemNpm, "package.json")},
	}
}
