package language

import (
	"strings"

	"github.com/gizzahub/universalbuild/internal/model"
)

// FSharp reuses CSharp's .fsproj/dotnet semantics, grounded on
// original_source/src/languages/fsharp.rs.
type FSharp struct {
	CSharp
}

func (FSharp) ID() model.LanguageID { return model.LanguageFSharp }

func (FSharp) Extensions() []string { return []string{".fs", ".fsx"} }

func (FSharp) ManifestPatterns() []model.ManifestPattern {
	return []model.ManifestPattern{{Pattern: "*.fsproj", Priority: 100}}
}

func (FSharp) Detect(manifestName, _ string) *model.LanguageDetection {
	if !strings.HasSuffix(manifestName, ".fsproj") {
		return nil
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemDotnet, Confidence: 0.9}
}

func (FSharp) IsRunnable(manifestName, _ string) bool { return strings.HasSuffix(manifestName, ".fsproj") }
