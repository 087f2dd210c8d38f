package language

import "github.com/gizzahub/universalbuild/internal/model"

// TypeScript reuses JavaScript's package.json semantics but registers a
// distinct language id, claiming a package.json only when it lists a
// typescript dependency (the npm/yarn/pnpm build systems still own
// package.json). tsconfig.json is not consulted.
type TypeScript struct {
	JavaScript
}

func (TypeScript) ID() model.LanguageID { return model.LanguageTypeScript }

func (TypeScript) Extensions() []string { return []string{".ts", ".tsx"} }

func (TypeScript) Detect(manifestName, content string) *model.LanguageDetection {
	if manifestName != "package.json" {
		return nil
	}
	p, ok := parsePackageJSON(content)
	if !ok {
		return nil
	}
	if _, hasTS := p.DevDependencies["typescript"]; !hasTS {
		if _, hasTS = p.Dependencies["typescript"]; !hasTS {
			return nil
		}
	}
	return &model.LanguageDetection{BuildSystem: model.BuildSystemNpm, Confidence: 0.92}
}

func (TypeScript) DefaultEntrypoint(model.BuildSystemID) string { return "node dist/index.js" }

func (TypeScript) RuntimeName() string { return "node" }
