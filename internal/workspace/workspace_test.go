package workspace_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/language"
	"github.com/gizzahub/universalbuild/internal/stack/orchestrator"
	"github.com/gizzahub/universalbuild/internal/workspace"
)

func mustScan(t *testing.T, fsys fsa.FS) *scanner.Result {
	t.Helper()
	result, err := scanner.Scan(fsys, ".", scanner.Options{
		Languages:    language.Defaults(),
		BuildSystems: buildsystem.Defaults(),
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return result
}

func TestCargoWorkspaceExpandsMembers(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"Cargo.toml":          "[workspace]\nmembers = [\"crates/*\"]",
		"crates/api/Cargo.toml": "[package]\nname = \"api\"\n\n[[bin]]\nname = \"api\"",
		"crates/api/src/main.rs": "fn main() {}",
		"crates/lib/Cargo.toml": "[package]\nname = \"lib\"",
	})

	scan := mustScan(t, mock)
	ws, err := workspace.Analyze(mock, scan, orchestrator.Defaults(), buildsystem.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.Orchestrator == nil || *ws.Orchestrator != model.OrchestratorCargoWorkspace {
		t.Fatalf("expected cargoWorkspace orchestrator, got %v", ws.Orchestrator)
	}
	if len(ws.Packages) != 2 {
		t.Fatalf("expected 2 member packages, got %d: %+v", len(ws.Packages), ws.Packages)
	}
	names := map[string]bool{}
	for _, p := range ws.Packages {
		names[p.Name] = true
		if p.Path == "." {
			t.Fatal("root Cargo.toml must not be emitted as a package alongside members")
		}
	}
	if !names["api"] || !names["lib"] {
		t.Fatalf("expected api and lib packages, got %+v", ws.Packages)
	}
}

func TestNpmWorkspacesOrchestratorDetected(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"package.json":              `{"name": "root", "workspaces": ["packages/*"]}`,
		"packages/web/package.json": `{"name": "web"}`,
		"packages/web/index.js":     "console.log(1)",
	})

	scan := mustScan(t, mock)
	ws, err := workspace.Analyze(mock, scan, orchestrator.Defaults(), buildsystem.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Orchestrator == nil || *ws.Orchestrator != model.OrchestratorNpmWorkspaces {
		t.Fatalf("expected npmWorkspaces orchestrator, got %v", ws.Orchestrator)
	}
	if len(ws.Packages) != 1 || ws.Packages[0].Name != "web" {
		t.Fatalf("expected single web package, got %+v", ws.Packages)
	}
}

func TestSingleServiceRepoYieldsSyntheticRootPackage(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"Cargo.toml":  "[package]\nname = \"svc\"",
		"src/main.rs": "fn main() {}",
	})

	scan := mustScan(t, mock)
	ws, err := workspace.Analyze(mock, scan, orchestrator.Defaults(), buildsystem.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ws.Packages) != 1 {
		t.Fatalf("expected exactly one synthetic root package, got %+v", ws.Packages)
	}
	if ws.Packages[0].Path != "." {
		t.Fatalf("expected root package path \".\", got %q", ws.Packages[0].Path)
	}
}

func TestPnpmWorkspaceYAMLMembersExpand(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"pnpm-workspace.yaml":       "packages:\n  - \"apps/*\"\n",
		"pnpm-lock.yaml":            "lockfileVersion: '6.0'",
		"package.json":              `{"name": "root"}`,
		"apps/api/package.json":     `{"name": "api"}`,
		"apps/api/pnpm-lock.yaml":   "lockfileVersion: '6.0'",
	})

	scan := mustScan(t, mock)
	ws, err := workspace.Analyze(mock, scan, orchestrator.Defaults(), buildsystem.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Orchestrator == nil || *ws.Orchestrator != model.OrchestratorPnpmWorkspace {
		t.Fatalf("expected pnpmWorkspace orchestrator, got %v", ws.Orchestrator)
	}
	if len(ws.Packages) != 1 || ws.Packages[0].Name != "api" {
		t.Fatalf("expected single api package, got %+v", ws.Packages)
	}
}
