package framework

import "github.com/gizzahub/universalbuild/internal/model"

// Defaults returns every deterministic framework, registration order
// mattering only as a final tie-break when two frameworks match a
// dependency set at equal confidence (spec.md §4.1's "highest
// confidence across matching frameworks wins").
func Defaults() []Definition {
	return []Definition{
		Express(), NextJS(), Fastify(),
		Django(), Flask(), FastAPI(),
		Rails(), Sinatra(),
		SpringBoot(), Micronaut(), Quarkus(), Ktor(),
		AspNetCore(), Axum(),
		Gin(), Echo(),
		Laravel(),
		Phoenix(),
	}
}

// Pick selects the framework, among defs compatible with language and
// buildSystem, whose dependency patterns best match externalDeps. It
// returns false when nothing matches.
func Pick(defs []Definition, language model.LanguageID, buildSystem model.BuildSystemID, externalDeps []model.Dependency) (Definition, bool) {
	var best Definition
	bestConfidence := 0.0
	found := false
	for _, def := range defs {
		if !contains(def.CompatibleLanguages(), language) {
			continue
		}
		if !contains(def.CompatibleBuildSystems(), buildSystem) {
			continue
		}
		confidence, matched := Match(def, externalDeps)
		if !matched || confidence <= bestConfidence {
			continue
		}
		best, bestConfidence, found = def, confidence, true
	}
	return best, found
}

func contains[T comparable](haystack []T, needle T) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
