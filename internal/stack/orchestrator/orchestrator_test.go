package orchestrator

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/model"
)

func TestNpmWorkspacesRequiresWorkspacesField(t *testing.T) {
	var def Definition = Defaults()[len(Defaults())-1]
	if def.ID() != model.OrchestratorNpmWorkspaces {
		t.Fatalf("expected last default to be npmWorkspaces, got %v", def.ID())
	}
	if def.Matches(`{"name": "root"}`) {
		t.Fatal("bare package.json without workspaces must not match")
	}
	if !def.Matches(`{"name": "root", "workspaces": ["packages/*"]}`) {
		t.Fatal("package.json with workspaces field must match")
	}
}

func TestCargoWorkspaceRequiresWorkspaceSection(t *testing.T) {
	var found Definition
	for _, d := range Defaults() {
		if d.ID() == model.OrchestratorCargoWorkspace {
			found = d
		}
	}
	if found == nil {
		t.Fatal("cargoWorkspace not registered")
	}
	if found.Matches("[package]\nname = \"leaf\"") {
		t.Fatal("leaf Cargo.toml must not match")
	}
	if !found.Matches("[workspace]\nmembers = [\"crates/*\"]") {
		t.Fatal("root Cargo.toml with [workspace] must match")
	}
}

func TestMavenMultiModuleRequiresModulesElement(t *testing.T) {
	var found Definition
	for _, d := range Defaults() {
		if d.ID() == model.OrchestratorMavenMultiModule {
			found = d
		}
	}
	if found == nil {
		t.Fatal("mavenMultiModule not registered")
	}
	if found.Matches("<project><artifactId>leaf</artifactId></project>") {
		t.Fatal("leaf pom.xml must not match")
	}
	if !found.Matches("<project><modules><module>svc-a</module></modules></project>") {
		t.Fatal("parent pom.xml with <modules> must match")
	}
}

func TestGoWorkAndGradleAndRushArePresenceOnly(t *testing.T) {
	for _, id := range []model.OrchestratorID{
		model.OrchestratorGoWork,
		model.OrchestratorGradleMultiProject,
		model.OrchestratorRush,
		model.OrchestratorTurborepo,
		model.OrchestratorLerna,
		model.OrchestratorPnpmWorkspace,
	} {
		var found Definition
		for _, d := range Defaults() {
			if d.ID() == id {
				found = d
			}
		}
		if found == nil {
			t.Fatalf("%v not registered", id)
		}
		if !found.Matches("") {
			t.Fatalf("%v should match on presence alone", id)
		}
	}
}

func TestNxExposesLegacyWorkspaceFile(t *testing.T) {
	var found Definition
	for _, d := range Defaults() {
		if d.ID() == model.OrchestratorNx {
			found = d
		}
	}
	legacy, ok := found.(interface{ LegacyWorkspaceFile() string })
	if !ok {
		t.Fatal("nx orchestrator must expose LegacyWorkspaceFile for the workspace analyzer's fallback check")
	}
	if legacy.LegacyWorkspaceFile() != "workspace.json" {
		t.Fatalf("unexpected legacy workspace file: %s", legacy.LegacyWorkspaceFile())
	}
}

func TestDefaultsCoverAllConfigFiles(t *testing.T) {
	defs := Defaults()
	if len(defs) != 10 {
		t.Fatalf("expected 10 orchestrators, got %d", len(defs))
	}
	for _, d := range defs {
		if len(d.ConfigFiles()) == 0 {
			t.Fatalf("%v has no config files", d.ID())
		}
		if d.BuildSystem() == (model.BuildSystemID{}) {
			t.Fatalf("%v has zero-value build system", d.ID())
		}
	}
}
