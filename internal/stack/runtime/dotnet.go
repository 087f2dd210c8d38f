package runtime

import (
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// Dotnet implements Definition for the .NET family, grounded on
// original_source/src/runtimes/dotnet.rs.
type Dotnet struct{ Base }

func (Dotnet) Name() string { return "dotnet" }

func (Dotnet) BaseImage(version string) string { return version }

func (Dotnet) RuntimePackages() []string { return nil }

func (Dotnet) DefaultStartCommand() string { return "dotnet app.dll" }

func (d Dotnet) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	for _, content := range serviceFiles {
		if port, ok := language.ExtractAspNetUrlsPort(content); ok {
			return &model.RuntimeConfig{Port: port, PortSource: "source"}
		}
	}
	return nil
}

// PHP implements Definition for the PHP family, grounded on
// original_source/src/runtimes/php.rs.
type PHP struct{ Base }

func (PHP) Name() string { return "php" }

func (PHP) BaseImage(version string) string { return version }

func (PHP) RuntimePackages() []string { return []string{"libzip", "libxml2"} }

func (PHP) DefaultStartCommand() string { return "php -S 0.0.0.0:8000 -t public" }
