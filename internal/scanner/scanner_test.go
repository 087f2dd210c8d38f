package scanner_test

import (
	"strings"
	"testing"

	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/scanner"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

func TestScanFindsManifestsAndReadme(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"Cargo.toml":       "[package]\nname = \"svc\"",
		"src/main.rs":      "fn main() {}",
		"README.md":        strings.Repeat("hello ", 10),
		"target/debug/out": "binary",
	})

	result, err := scanner.Scan(mock, ".", scanner.Options{
		Languages:    language.Defaults(),
		BuildSystems: buildsystem.Defaults(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := result.Manifests["Cargo.toml"]; !ok {
		t.Fatal("expected Cargo.toml to be recognized as a manifest")
	}
	if !strings.Contains(result.Readme, "hello") {
		t.Fatalf("expected README content captured, got %q", result.Readme)
	}
	for _, f := range result.Files {
		if strings.HasPrefix(f, "target/") {
			t.Fatalf("target/ should have been excluded, found %s", f)
		}
	}
}

func TestScanExcludesHiddenAndVendorDirs(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		".git/HEAD":               "ref: refs/heads/main",
		"node_modules/left-pad/index.js": "module.exports = 1",
		"package.json":            `{"name": "app"}`,
	})

	result, err := scanner.Scan(mock, ".", scanner.Options{
		Languages:    language.Defaults(),
		BuildSystems: buildsystem.Defaults(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range result.Files {
		if strings.HasPrefix(f, ".git/") || strings.HasPrefix(f, "node_modules/") {
			t.Fatalf("excluded directory leaked into file tree: %s", f)
		}
	}
}

func TestScanReturnsRepositoryTooLargeOnEntryLimit(t *testing.T) {
	files := make(map[string]string, 50)
	for i := 0; i < 50; i++ {
		files[sprintfPath(i)] = "x"
	}
	mock := fsa.NewMockFS(files)

	_, err := scanner.Scan(mock, ".", scanner.Options{MaxEntries: 10})
	if err == nil {
		t.Fatal("expected RepositoryTooLarge error")
	}
	if errtax.BandOf(err) != errtax.BandFatalToRun {
		t.Fatalf("expected fatal-to-run band, got %v", errtax.BandOf(err))
	}
}

func sprintfPath(i int) string {
	const digits = "0123456789"
	return "file-" + string(digits[i/10]) + string(digits[i%10]) + ".txt"
}

func TestCSharpManifestSuffixGlobIsDetected(t *testing.T) {
	mock := fsa.NewMockFS(map[string]string{
		"service/App.csproj": "<Project Sdk=\"Microsoft.NET.Sdk\"></Project>",
	})

	result, err := scanner.Scan(mock, ".", scanner.Options{
		Languages:    language.Defaults(),
		BuildSystems: buildsystem.Defaults(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.Manifests["service/App.csproj"]; !ok {
		t.Fatal("expected *.csproj suffix glob to match App.csproj")
	}
}
