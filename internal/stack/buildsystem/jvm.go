package buildsystem

import (
	"path"
	"regexp"
	"strings"

	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

var (
	mavenArtifactIDRe  = regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	mavenModulesRe     = regexp.MustCompile(`<module>([^<]+)</module>`)
	gradleSettingsIncludeRe = regexp.MustCompile(`include\s*\(?['"]:?([^'")\s]+)`)
)

func jvmVersion(index pkgindex.Index) string {
	if v, ok := index.GetLatestVersion("jvm"); ok {
		return v
	}
	return "jvm-21"
}

// Maven implements Definition for Maven's pom.xml, grounded on
// original_source/src/build_systems/maven.rs.
type Maven struct{ Base }

func (Maven) ID() model.BuildSystemID { return model.BuildSystemMaven }

func (Maven) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "pom.xml", Priority: 100}}
}

func (Maven) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		if path.Base(f) == "pom.xml" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemMaven, Language: model.LanguageJava, ManifestPath: f})
		}
	}
	return out
}

func (Maven) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    jvmVersion(index),
		RuntimeImage:  jvmVersion(index),
		BuildCommands: []string{"mvn -B package -DskipTests"},
		CachePaths:    []string{"~/.m2/repository/"},
		CommonPorts:   []int{8080},
		Artifacts:     []string{"target/{project_name}.jar"},
		RuntimeCopy:   []model.CopyEntry{{From: "target/{project_name}.jar", To: "/app/app.jar"}},
	}
}

func (Maven) CacheDirs() []string { return []string{"~/.m2/repository/"} }

func (Maven) IsWorkspaceRoot(content string) bool { return strings.Contains(content, "<modules>") }

func (Maven) ParsePackageMetadata(content string) (string, bool) {
	m := mavenArtifactIDRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (Maven) ParseWorkspacePatterns(content string) []string {
	var out []string
	for _, m := range mavenModulesRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

func (Maven) GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string {
	return globWorkspacePattern(fs, pattern)
}

// Gradle implements Definition for Gradle's build.gradle(.kts), grounded
// on original_source/src/build_systems/gradle.rs.
type Gradle struct{ Base }

func (Gradle) ID() model.BuildSystemID { return model.BuildSystemGradle }

func (Gradle) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{
		{Pattern: "build.gradle", Priority: 95},
		{Pattern: "build.gradle.kts", Priority: 95},
	}
}

func (Gradle) DetectAll(repoRoot string, fileTree []string, fs fsa.FS) []model.DetectionStack {
	var out []model.DetectionStack
	for _, f := range fileTree {
		base := path.Base(f)
		if base == "build.gradle" || base == "build.gradle.kts" {
			out = append(out, model.DetectionStack{BuildSystem: model.BuildSystemGradle, Language: model.LanguageJava, ManifestPath: f})
		}
	}
	return out
}

func (Gradle) BuildTemplate(index pkgindex.Index, servicePath, manifestContent string) model.BuildTemplate {
	return model.BuildTemplate{
		BuildImage:    jvmVersion(index),
		RuntimeImage:  jvmVersion(index),
		BuildCommands: []string{"gradle build -x test"},
		CachePaths:    []string{"~/.gradle/caches/"},
		CommonPorts:   []int{8080},
		Artifacts:     []string{"build/libs/{project_name}.jar"},
		RuntimeCopy:   []model.CopyEntry{{From: "build/libs/{project_name}.jar", To: "/app/app.jar"}},
	}
}

func (Gradle) CacheDirs() []string { return []string{"~/.gradle/caches/"} }

func (Gradle) WorkspaceConfigs() []string {
	return []string{"settings.gradle", "settings.gradle.kts"}
}

func (Gradle) ParsePackageMetadata(content string) (string, bool) { return "", true }

func (Gradle) ParseWorkspacePatterns(content string) []string {
	var out []string
	for _, m := range gradleSettingsIncludeRe.FindAllStringSubmatch(content, -1) {
		out = append(out, strings.ReplaceAll(m[1], ":", "/"))
	}
	return out
}

func (Gradle) GlobWorkspacePattern(fs fsa.FS, repoPath, pattern string) []string {
	return globWorkspacePattern(fs, pattern)
}
