package language

import "github.com/gizzahub/universalbuild/internal/model"

// Kotlin reuses Gradle/Maven build-system semantics like Java, with its
// own language id and .kt/.kts extensions, grounded on original_source/
// src/languages/kotlin.rs.
type Kotlin struct {
	Java
}

func (Kotlin) ID() model.LanguageID { return model.LanguageKotlin }

func (Kotlin) Extensions() []string { return []string{".kt", ".kts"} }

func (Kotlin) Detect(manifestName, content string) *model.LanguageDetection {
	d := Java{}.Detect(manifestName, content)
	if d == nil {
		return nil
	}
	if manifestName == "pom.xml" {
		return nil // every pom.xml is left to Java; Kotlin only claims Gradle manifests
	}
	return d
}

func (Kotlin) RuntimeName() string { return "jvm" }
