package buildsystem

import (
	"path"
	"strings"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

// Dotnet implements Definition for .csproj/.fsproj-based .NET projects,
// grounded on original_source/src/build_systems/dotnet.rs.
type Dotnet struct{ Base }

func (Dotnet) ID() model.BuildSystemID { return model.BuildSystemDotnet }

func (Dotnet) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{
		{Pattern: "*.csproj", Priority: 100},
		{Pattern: "*.fsproj", Priority: 100},
	}
}

func (Dotnet) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		lang := model.LanguageCSharp
		switch {
		case strings.HasSuffix(f, ".csproj"):
			lang = model.LanguageCSharp
		case strings.HasSuffix(f, ".fsproj"):
			lang = model.LanguageFSharp
		default:
			continue
		}
		out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemDotnet, Language: lang, ManifestPath: f})
	}
	return out
}

func (Dotnet) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	version := "dotnet-8.0"
	if v, ok := index.GetLatestVersion("dotnet"); ok {
		version = v
	}
	return model.BuildTemplate{
		BuildImage:    version,
		RuntimeImage:  version,
		BuildCommands: []string{"dotnet restore", "dotnet publish -c Release -o out"},
		CachePaths:    []string{"~/.nuget/packages/"},
		CommonPorts:   []int{8080},
		Artifacts:     []string{"out/"},
		RuntimeCopy:   []model.CopyEntry{{From: "out/", To: "/app"}},
	}
}

func (Dotnet) CacheDirs() []string { return []string{"~/.nuget/packages/"} }

func (Dotnet) ParsePackageMetadata(content string) (string, bool) { return "", true }

// Composer implements Definition for PHP's Composer, grounded on
// original_source/src/build_systems/composer.rs.
type Composer struct{ Base }

func (Composer) ID() model.BuildSystemID { return model.BuildSystemComposer }

func (Composer) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "composer.json", Priority: 100}}
}

func (Composer) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "composer.json" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemComposer, Language: model.LanguagePHP, ManifestPath: f})
		}
	}
	return out
}

func (Composer) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	version := "php-8.3"
	if v, ok := index.GetLatestVersion("php"); ok {
		version = v
	}
	return model.BuildTemplate{
		BuildImage:    version,
		RuntimeImage:  version,
		BuildCommands: []string{"composer install --no-dev --optimize-autoloader"},
		CachePaths:    []string{"vendor/"},
		CommonPorts:   []int{8000},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func (Composer) CacheDirs() []string { return []string{"vendor/"} }

func (Composer) ParsePackageMetadata(content string) (string, bool) { return "", true }

// Bundler implements Definition for Ruby's Bundler/Gemfile, grounded on
// original_source/src/build_systems/bundler.rs.
type Bundler struct{ Base }

func (Bundler) ID() model.BuildSystemID { return model.BuildSystemBundler }

func (Bundler) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "Gemfile", Priority: 100}}
}

func (Bundler) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "Gemfile" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemBundler, Language: model.LanguageRuby, ManifestPath: f})
		}
	}
	return out
}

func (Bundler) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	version := "ruby-3.3"
	if v, ok := index.GetLatestVersion("ruby"); ok {
		version = v
	}
	return model.BuildTemplate{
		BuildImage:    version,
		RuntimeImage:  version,
		BuildCommands: []string{"bundle install --deployment"},
		CachePaths:    []string{"vendor/bundle/"},
		CommonPorts:   []int{4567},
		Artifacts:     []string{"."},
		RuntimeCopy:   []model.CopyEntry{{From: ".", To: "/app"}},
	}
}

func (Bundler) CacheDirs() []string { return []string{"vendor/bundle/"} }

func (Bundler) ParsePackageMetadata(content string) (string, bool) { return "", true }

// Mix implements Definition for Elixir's Mix, grounded on
// original_source/src/build_systems/mix.rs.
type Mix struct{ Base }

func (Mix) ID() model.BuildSystemID { return model.BuildSystemMix }

func (Mix) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "mix.exs", Priority: 100}}
}

func (Mix) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "mix.exs" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemMix, Language: model.LanguageElixir, ManifestPath: f})
		}
	}
	return out
}

func (Mix) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	version := "elixir-1.16"
	if v, ok := index.GetLatestVersion("elixir"); ok {
		version = v
	}
	return model.BuildTemplate{
		BuildImage:    version,
		RuntimeImage:  version,
		BuildCommands: []string{"mix deps.get --only prod", "mix release"},
		CachePaths:    []string{"deps/", "_build/"},
		CommonPorts:   []int{4000},
		Artifacts:     []string{"_build/prod/rel/"},
		RuntimeCopy:   []model.CopyEntry{{From: "_build/prod/rel/", To: "/app"}},
	}
}

func (Mix) CacheDirs() []string { return []string{"deps/", "_build/"} }

func (Mix) ParsePackageMetadata(content string) (string, bool) { return "", true }
