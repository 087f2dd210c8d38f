package framework

import "github.com/gizzahub/universalbuild/internal/model"

// simple is a data-driven Definition for frameworks whose detection is
// just "one of these dependency names matched" with no build-template
// customization beyond env vars — covers the majority of spec.md's
// enumerated frameworks, grounded on original_source/src/frameworks/
// {express,django,rails,...}.rs (each a thin struct around the same
// dependency-pattern-match shape).
type simple struct {
	Base
	id           model.FrameworkID
	patterns     []model.DependencyPattern
	languages    []model.LanguageID
	buildSystems []model.BuildSystemID
	port         int
	health       string
	envPatterns  []string
}

func (s simple) ID() model.FrameworkID                           { return s.id }
func (s simple) DependencyPatterns() []model.DependencyPattern   { return s.patterns }
func (s simple) CompatibleLanguages() []model.LanguageID         { return s.languages }
func (s simple) CompatibleBuildSystems() []model.BuildSystemID   { return s.buildSystems }
func (s simple) DefaultPort() int                                { return s.port }
func (s simple) HealthEndpoint() string                          { return s.health }
func (s simple) EnvVarPatterns() []string                        { return s.envPatterns }

func npmPattern(name string, confidence float64) model.DependencyPattern {
	return model.DependencyPattern{Type: model.PatternNpmPackage, Pattern: name, Confidence: confidence}
}

func pypiPattern(name string, confidence float64) model.DependencyPattern {
	return model.DependencyPattern{Type: model.PatternPypiPackage, Pattern: name, Confidence: confidence}
}

func mavenPattern(groupArtifact string, confidence float64) model.DependencyPattern {
	return model.DependencyPattern{Type: model.PatternMavenGroupArtifact, Pattern: groupArtifact, Confidence: confidence}
}

func regexPattern(pattern string, confidence float64) model.DependencyPattern {
	return model.DependencyPattern{Type: model.PatternRegex, Pattern: pattern, Confidence: confidence}
}

// Express (node) — original_source/src/frameworks/express.rs
func Express() Definition {
	return simple{
		id:           model.FrameworkExpress,
		patterns:     []model.DependencyPattern{npmPattern("express", 0.9)},
		languages:    []model.LanguageID{model.LanguageJavaScript, model.LanguageTypeScript},
		buildSystems: []model.BuildSystemID{model.BuildSystemNpm, model.BuildSystemYarn, model.BuildSystemPnpm, model.BuildSystemBun},
		port:         3000,
		health:       "/health",
		envPatterns:  []string{"PORT"},
	}
}

// NextJS — original_source/src/frameworks/nextjs.rs
func NextJS() Definition {
	return simple{
		id:           model.FrameworkNextJS,
		patterns:     []model.DependencyPattern{npmPattern("next", 0.92)},
		languages:    []model.LanguageID{model.LanguageJavaScript, model.LanguageTypeScript},
		buildSystems: []model.BuildSystemID{model.BuildSystemNpm, model.BuildSystemYarn, model.BuildSystemPnpm, model.BuildSystemBun},
		port:         3000,
		health:       "/api/health",
		envPatterns:  []string{"PORT"},
	}
}

// Fastify — original_source/src/frameworks/fastify.rs
func Fastify() Definition {
	return simple{
		id:           model.FrameworkFastify,
		patterns:     []model.DependencyPattern{npmPattern("fastify", 0.9)},
		languages:    []model.LanguageID{model.LanguageJavaScript, model.LanguageTypeScript},
		buildSystems: []model.BuildSystemID{model.BuildSystemNpm, model.BuildSystemYarn, model.BuildSystemPnpm, model.BuildSystemBun},
		port:         3000,
		health:       "/health",
	}
}

// Django — original_source/src/frameworks/django.rs
func Django() Definition {
	return simple{
		id:           model.FrameworkDjango,
		patterns:     []model.DependencyPattern{pypiPattern("django", 0.9), pypiPattern("Django", 0.9)},
		languages:    []model.LanguageID{model.LanguagePython},
		buildSystems: []model.BuildSystemID{model.BuildSystemPip, model.BuildSystemPoetry, model.BuildSystemPipenv},
		port:         8000,
		health:       "/healthz",
		envPatterns:  []string{"DJANGO_SETTINGS_MODULE"},
	}
}

// Flask — original_source/src/frameworks/flask.rs
func Flask() Definition {
	return simple{
		id:           model.FrameworkFlask,
		patterns:     []model.DependencyPattern{pypiPattern("flask", 0.9), pypiPattern("Flask", 0.9)},
		languages:    []model.LanguageID{model.LanguagePython},
		buildSystems: []model.BuildSystemID{model.BuildSystemPip, model.BuildSystemPoetry, model.BuildSystemPipenv},
		port:         5000,
		health:       "/health",
		envPatterns:  []string{"FLASK_APP"},
	}
}

// FastAPI — original_source/src/frameworks/fastapi.rs
func FastAPI() Definition {
	return simple{
		id:           model.FrameworkFastAPI,
		patterns:     []model.DependencyPattern{pypiPattern("fastapi", 0.92)},
		languages:    []model.LanguageID{model.LanguagePython},
		buildSystems: []model.BuildSystemID{model.BuildSystemPip, model.BuildSystemPoetry, model.BuildSystemPipenv},
		port:         8000,
		health:       "/health",
	}
}

// Rails — original_source/src/frameworks/rails.rs
func Rails() Definition {
	return simple{
		id:           model.FrameworkRails,
		patterns:     []model.DependencyPattern{npmPattern("rails", 0), regexPattern(`^rails$`, 0.9)},
		languages:    []model.LanguageID{model.LanguageRuby},
		buildSystems: []model.BuildSystemID{model.BuildSystemBundler},
		port:         3000,
		health:       "/up",
		envPatterns:  []string{"RAILS_ENV"},
	}
}

// Sinatra — original_source/src/frameworks/sinatra.rs
func Sinatra() Definition {
	return simple{
		id:           model.FrameworkSinatra,
		patterns:     []model.DependencyPattern{regexPattern(`^sinatra$`, 0.85)},
		languages:    []model.LanguageID{model.LanguageRuby},
		buildSystems: []model.BuildSystemID{model.BuildSystemBundler},
		port:         4567,
	}
}

// SpringBoot — original_source/src/frameworks/spring_boot.rs
func SpringBoot() Definition {
	return simple{
		id:           model.FrameworkSpringBoot,
		patterns:     []model.DependencyPattern{mavenPattern("org.springframework.boot:spring-boot-starter", 0.95)},
		languages:    []model.LanguageID{model.LanguageJava, model.LanguageKotlin},
		buildSystems: []model.BuildSystemID{model.BuildSystemMaven, model.BuildSystemGradle},
		port:         8080,
		health:       "/actuator/health",
	}
}

// Micronaut — original_source/src/frameworks/micronaut.rs
func Micronaut() Definition {
	return simple{
		id:           model.FrameworkMicronaut,
		patterns:     []model.DependencyPattern{mavenPattern("io.micronaut:micronaut-runtime", 0.9)},
		languages:    []model.LanguageID{model.LanguageJava, model.LanguageKotlin},
		buildSystems: []model.BuildSystemID{model.BuildSystemMaven, model.BuildSystemGradle},
		port:         8080,
		health:       "/health",
	}
}

// Quarkus — original_source/src/frameworks/quarkus.rs
func Quarkus() Definition {
	return simple{
		id:           model.FrameworkQuarkus,
		patterns:     []model.DependencyPattern{mavenPattern("io.quarkus:quarkus-core", 0.9)},
		languages:    []model.LanguageID{model.LanguageJava, model.LanguageKotlin},
		buildSystems: []model.BuildSystemID{model.BuildSystemMaven, model.BuildSystemGradle},
		port:         8080,
		health:       "/q/health",
	}
}

// Ktor — original_source/src/frameworks/ktor.rs
func Ktor() Definition {
	return simple{
		id:           model.FrameworkKtor,
		patterns:     []model.DependencyPattern{mavenPattern("io.ktor:ktor-server-core", 0.88)},
		languages:    []model.LanguageID{model.LanguageKotlin},
		buildSystems: []model.BuildSystemID{model.BuildSystemGradle, model.BuildSystemMaven},
		port:         8080,
	}
}

// AspNetCore — original_source/src/frameworks/aspnetcore.rs
func AspNetCore() Definition {
	return simple{
		id:           model.FrameworkAspNetCore,
		patterns:     []model.DependencyPattern{regexPattern(`Microsoft\.AspNetCore`, 0.9)},
		languages:    []model.LanguageID{model.LanguageCSharp, model.LanguageFSharp},
		buildSystems: []model.BuildSystemID{model.BuildSystemDotnet},
		port:         8080,
		health:       "/health",
		envPatterns:  []string{"ASPNETCORE_URLS"},
	}
}

// Axum — original_source/src/frameworks/axum.rs
func Axum() Definition {
	return simple{
		id:           model.FrameworkAxum,
		patterns:     []model.DependencyPattern{regexPattern(`^axum$`, 0.88)},
		languages:    []model.LanguageID{model.LanguageRust},
		buildSystems: []model.BuildSystemID{model.BuildSystemCargo},
		port:         8080,
	}
}

// Gin — original_source/src/frameworks/gin.rs
func Gin() Definition {
	return simple{
		id:           model.FrameworkGin,
		patterns:     []model.DependencyPattern{regexPattern(`gin-gonic/gin`, 0.88)},
		languages:    []model.LanguageID{model.LanguageGo},
		buildSystems: []model.BuildSystemID{model.BuildSystemGoMod},
		port:         8080,
	}
}

// Echo — original_source/src/frameworks/echo.rs
func Echo() Definition {
	return simple{
		id:           model.FrameworkEcho,
		patterns:     []model.DependencyPattern{regexPattern(`labstack/echo`, 0.88)},
		languages:    []model.LanguageID{model.LanguageGo},
		buildSystems: []model.BuildSystemID{model.BuildSystemGoMod},
		port:         8080,
	}
}

// Laravel — original_source/src/frameworks/laravel.rs
func Laravel() Definition {
	return simple{
		id:           model.FrameworkLaravel,
		patterns:     []model.DependencyPattern{regexPattern(`^laravel/framework$`, 0.9)},
		languages:    []model.LanguageID{model.LanguagePHP},
		buildSystems: []model.BuildSystemID{model.BuildSystemComposer},
		port:         8000,
		health:       "/up",
	}
}

// Phoenix — original_source/src/frameworks/phoenix.rs
func Phoenix() Definition {
	return simple{
		id:           model.FrameworkPhoenix,
		patterns:     []model.DependencyPattern{regexPattern(`^phoenix$`, 0.9)},
		languages:    []model.LanguageID{model.LanguageElixir},
		buildSystems: []model.BuildSystemID{model.BuildSystemMix},
		port:         4000,
	}
}
