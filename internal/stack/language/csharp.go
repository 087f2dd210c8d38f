package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	csprojTargetFrameworkRe = regexp.MustCompile(`<TargetFramework>net(\d+\.\d+)`)
	csprojPackageRefRe      = regexp.MustCompile(`<PackageReference\s+Include="([^"]+)"(?:\s+Version="([^"]+)")?`)
	aspNetUrlsRe            = regexp.MustCompile(`ASPNETCORE_URLS.*?:(\d{2,5})`)
)

// CSharp implements Definition for .csproj-based .NET projects, grounded
// on original_source/src/languages/csharp.rs.
type CSharp struct{ Base }

func (CSharp) ID() model.LanguageID { return model.LanguageCSharp }

func (CSharp) Extensions() []string { return []string{".cs"} }

func (CSharp) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "*.csproj", Priority: 100}}
}

func (CSharp) Detect(manifestName, _ string) *model.LanguageDetection {
	if !strings.HasSuffix(manifestName, ".csproj") {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemDotnet, Confidence: 0.9}
}

func (CSharp) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemDotnet}
}

func (CSharp) ExcludedDirs() []string { return []string{"bin", "obj"} }

func (CSharp) DetectVersion(content string) string {
	m := csprojTargetFrameworkRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "dotnet-" + m[1]
}

func (CSharp) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, m := range csprojPackageRefRe.FindAllStringSubmatch(content, -1) {
		dep := model.Dependency{Name: m[1], Version: m[2], IsInternal: internalPaths[m[1]]}
		appendDep(&info, dep)
	}
	return info
}

func (CSharp) PortPatterns() []string { return []string{`ASPNETCORE_URLS`} }

func (CSharp) DefaultPort() int { return 8080 }

func (CSharp) DefaultEntrypoint(model.BuildSystemID) string { return "dotnet app.dll" }

func (CSharp) IsRunnable(manifestName, _ string) bool { return strings.HasSuffix(manifestName, ".csproj") }

func (CSharp) RuntimeName() string { return "dotnet" }

// ExtractAspNetUrlsPort scans for an ASPNETCORE_URLS assignment with an
// explicit port, used by the .NET runtime's try_extract.
func ExtractAspNetUrlsPort(source string) (int, bool) {
	m := aspNetUrlsRe.FindStringSubmatch(source)
	if m == nil {
		return 0, false
	}
	return atoiOrZero(m[1]), true
}
