package language

import (
	"encoding/json"

	"github.com/gizzahub/universalbuild/internal/model"
)

type composerJSON struct {
	Name    string            `json:"name"`
	Require map[string]string `json:"require"`
}

// PHP implements Definition for Composer-based PHP projects, grounded on
// original_source/src/languages/php.rs.
type PHP struct{ Base }

func (PHP) ID() model.LanguageID { return model.LanguagePHP }

func (PHP) Extensions() []string { return []string{".php"} }

func (PHP) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "composer.json", Priority: 100}}
}

func (PHP) Detect(manifestName, content string) *model.LanguageDetection {
	if manifestName != "composer.json" {
		return nil
	}
	var c composerJSON
	if json.Unmarshal([]byte(content), &c) != nil {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemComposer, Confidence: 0.9}
}

func (PHP) CompatibleBuildSystems() []model.BuildSystemID {
	return []model.BuildSystemID{model.BuildSystemComposer}
}

func (PHP) ExcludedDirs() []string { return []string{"vendor"} }

func (PHP) ParseDependencies(content string, internalPaths map[string]bool) model.DependencyInfo {
	info := model.DependencyInfo{DetectedBy: model.DetectedByDeterministic}
	var c composerJSON
	if json.Unmarshal([]byte(content), &c) != nil {
		return info
	}
	for name, version := range c.Require {
		if name == "php" {
			continue
		}
		dep := model.Dependency{Name: name, Version: version, IsInternal: internalPaths[name]}
		appendDep(&info, dep)
	}
	return info
}

func (PHP) DefaultPort() int { return 8000 }

func (PHP) DefaultEntrypoint(model.BuildSystemID) string {
	return "php -S 0.0.0.0:8000 -t public"
}

func (PHP) IsRunnable(manifestName, _ string) bool { return manifestName == "composer.json" }

func (PHP) RuntimeName() string { return "php" }
