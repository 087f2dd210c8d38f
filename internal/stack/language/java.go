package language

import (
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

var (
	mavenArtifactRe = regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	mavenDepRe      = regexp.MustCompile(`<dependency>\s*<groupId>([^<]+)</groupId>\s*<artifactId>([^<]+)</artifactId>(?:\s*<version>([^<]+)</version>)?`)
	gradleDepRe     = regexp.MustCompile(`(?:implementation|api|compile)\s*[\(']?["']([^:"']+):([^:"']+)(?::([^"']+))?["']\)?`)
)

// Java implements Definition for Maven/Gradle JVM projects, grounded on
// original_source/src/languages/java.rs.
type Java struct{ Base }

func (Java) ID() model.LanguageID { return model.LanguageJava }

func (Java) Extensions() []string { return []string{".java"} }

func (Java) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{
		{Pattern: "pom.xml", Priority: 100},
		{Pattern: "build.gradle", Priority: 95},
		{Pattern: "build.gradle.kts", Priority: 95},
	}
}

func (Java) Detect(manifestName, _ string) *model.LanguageDetection {
	switch manifestName {
	case "pom.xml":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemMaven, Confidence: 0.9}
	case "build.gradle", "build.gradle.kts":
		return &model.LanguageDetection{BuildSystem: model.BuildSystemGradle, Confidence: 0.9}
	}
	return nil
}

func (Java) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemMaven, model.BuildSystemGradle}
}

func (Java) ExcludedDirs() []string { return []string{"target", ".gradle", "build"} }

func (Java) WorkspaceConfigs() []string { return []string{"settings.gradle", "settings.gradle.kts"} }

func (Java) IsWorkspaceRoot(manifestName, content string) bool {
	if manifestName == "pom.xml" {
		return strings.Contains(content, "<modules>")
	}
	return false
}

func (Java) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	for _, m := range mavenDepRe.FindAllStringSubmatch(content, -1) {
		name := m[1] + ":" + m[2]
		dep := model.Dependency{Name: name, Version: m[3], IsInternal: internalPaths[name]}
		appendDep(&info, dep)
	}
	for _, m := range gradleDepRe.FindAllStringSubmatch(content, -1) {
		name := m[1] + ":" + m[2]
		dep := model.Dependency{Name: name, Version: m[3], IsInternal: internalPaths[name]}
		appendDep(&info, dep)
	}
	return info
}

func appendDep(info *model.DependencyInfo, dep model.Dependency) {
	if dep.IsInternal {
		info.Internal = append(info.Internal, dep)
	} else {
		info.External = append(info.External, dep)
	}
}

func (Java) DefaultPort() int { return 8080 }

func (Java) DefaultEntrypoint(bs model.BuildSystemID) string {
	if bs == model.BuildSystemMaven {
		return "java -jar target/app.jar"
	}
	return "java -jar build/libs/app.jar"
}

func (Java) ParseEntrypointFromManifest(content string) string {
	m := mavenArtifactRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return "java -jar target/" + m[1] + ".jar"
}

func (Java) IsRunnable(manifestName, _ string) bool {
	return manifestName == "pom.xml" || manifestName == "build.gradle" || manifestName == "build.gradle.kts"
}

func (Java) RuntimeName() string { return "jvm" }
