// Package model holds the detector's shared data model: identifiers,
// stack/dependency/build-template types, and the UniversalBuild output
// record.
package model

// LanguageID identifies a programming language recognized by the stack
// registry. The closed set mirrors spec.md's enumeration; Custom is the
// LLM-discovery escape hatch.
type LanguageID struct {
	known  string
	custom string
}

var (
	LanguageRust       = LanguageID{known: "rust"}
	LanguageJava       = LanguageID{known: "java"}
	LanguageKotlin     = LanguageID{known: "kotlin"}
	LanguageJavaScript = LanguageID{known: "javascript"}
	LanguageTypeScript = LanguageID{known: "typescript"}
	LanguagePython     = LanguageID{known: "python"}
	LanguageGo         = LanguageID{known: "go"}
	LanguageCSharp     = LanguageID{known: "csharp"}
	LanguageFSharp     = LanguageID{known: "fsharp"}
	LanguageRuby       = LanguageID{known: "ruby"}
	LanguagePHP        = LanguageID{known: "php"}
	LanguageCPP        = LanguageID{known: "cpp"}
	LanguageElixir     = LanguageID{known: "elixir"}
	LanguageZig        = LanguageID{known: "zig"}
)

// CustomLanguage builds the Custom(name) escape hatch for LLM-discovered
// languages not in the closed set.
func CustomLanguage(name string) LanguageID { return LanguageID{custom: name} }

// String returns the canonical lowercase identifier, or the raw custom
// string when this is a Custom variant.
func (l LanguageID) String() string {
	if l.custom != "" {
		return l.custom
	}
	return l.known
}

// IsCustom reports whether this identifier is the LLM-discovery escape
// hatch rather than one of the closed-set members.
func (l LanguageID) IsCustom() bool { return l.custom != "" }

func (l LanguageID) MarshalJSON() ([]byte, error) { return marshalQuoted(l.String()) }

func (l *LanguageID) UnmarshalJSON(b []byte) error {
	s, err := unmarshalQuoted(b)
	if err != nil {
		return err
	}
	*l = parseLanguageID(s)
	return nil
}

func parseLanguageID(s string) LanguageID {
	for _, known := range []LanguageID{
		LanguageRust, LanguageJava, LanguageKotlin, LanguageJavaScript, LanguageTypeScript,
		LanguagePython, LanguageGo, LanguageCSharp, LanguageFSharp, LanguageRuby,
		LanguagePHP, LanguageCPP, LanguageElixir, LanguageZig,
	} {
		if known.known == s {
			return known
		}
	}
	return CustomLanguage(s)
}

// BuildSystemID identifies a build system/package manager.
type BuildSystemID struct {
	known  string
	custom string
}

var (
	BuildSystemCargo   = BuildSystemID{known: "cargo"}
	BuildSystemMaven   = BuildSystemID{known: "maven"}
	BuildSystemGradle  = BuildSystemID{known: "gradle"}
	BuildSystemNpm     = BuildSystemID{known: "npm"}
	BuildSystemYarn    = BuildSystemID{known: "yarn"}
	BuildSystemPnpm    = BuildSystemID{known: "pnpm"}
	BuildSystemBun     = BuildSystemID{known: "bun"}
	BuildSystemPip     = BuildSystemID{known: "pip"}
	BuildSystemPoetry  = BuildSystemID{known: "poetry"}
	BuildSystemPipenv  = BuildSystemID{known: "pipenv"}
	BuildSystemGoMod   = BuildSystemID{known: "goMod"}
	BuildSystemDotnet  = BuildSystemID{known: "dotnet"}
	BuildSystemComposer = BuildSystemID{known: "composer"}
	BuildSystemBundler = BuildSystemID{known: "bundler"}
	BuildSystemCMake   = BuildSystemID{known: "cmake"}
	BuildSystemMake    = BuildSystemID{known: "make"}
	BuildSystemMeson   = BuildSystemID{known: "meson"}
	BuildSystemMix     = BuildSystemID{known: "mix"}
)

func CustomBuildSystem(name string) BuildSystemID { return BuildSystemID{custom: name} }

func (b BuildSystemID) String() string {
	if b.custom != "" {
		return b.custom
	}
	return b.known
}

func (b BuildSystemID) IsCustom() bool { return b.custom != "" }

func (b BuildSystemID) MarshalJSON() ([]byte, error) { return marshalQuoted(b.String()) }

func (b *BuildSystemID) UnmarshalJSON(raw []byte) error {
	s, err := unmarshalQuoted(raw)
	if err != nil {
		return err
	}
	*b = parseBuildSystemID(s)
	return nil
}

func parseBuildSystemID(s string) BuildSystemID {
	for _, known := range []BuildSystemID{
		BuildSystemCargo, BuildSystemMaven, BuildSystemGradle, BuildSystemNpm, BuildSystemYarn,
		BuildSystemPnpm, BuildSystemBun, BuildSystemPip, BuildSystemPoetry, BuildSystemPipenv,
		BuildSystemGoMod, BuildSystemDotnet, BuildSystemComposer, BuildSystemBundler,
		BuildSystemCMake, BuildSystemMake, BuildSystemMeson, BuildSystemMix,
	} {
		if known.known == s {
			return known
		}
	}
	return CustomBuildSystem(s)
}

// FrameworkID identifies an application framework.
type FrameworkID struct {
	known  string
	custom string
}

var (
	FrameworkSpringBoot  = FrameworkID{known: "springBoot"}
	FrameworkExpress     = FrameworkID{known: "express"}
	FrameworkDjango      = FrameworkID{known: "django"}
	FrameworkRails       = FrameworkID{known: "rails"}
	FrameworkAspNetCore  = FrameworkID{known: "aspNetCore"}
	FrameworkAxum        = FrameworkID{known: "axum"}
	FrameworkNextJS      = FrameworkID{known: "nextJs"}
	FrameworkFastAPI     = FrameworkID{known: "fastApi"}
	FrameworkFlask       = FrameworkID{known: "flask"}
	FrameworkGin         = FrameworkID{known: "gin"}
	FrameworkEcho        = FrameworkID{known: "echo"}
	FrameworkLaravel     = FrameworkID{known: "laravel"}
	FrameworkFastify     = FrameworkID{known: "fastify"}
	FrameworkKtor        = FrameworkID{known: "ktor"}
	FrameworkMicronaut   = FrameworkID{known: "micronaut"}
	FrameworkPhoenix     = FrameworkID{known: "phoenix"}
	FrameworkQuarkus     = FrameworkID{known: "quarkus"}
	FrameworkSinatra     = FrameworkID{known: "sinatra"}
)

func CustomFramework(name string) FrameworkID { return FrameworkID{custom: name} }

func (f FrameworkID) String() string {
	if f.custom != "" {
		return f.custom
	}
	return f.known
}

func (f FrameworkID) IsCustom() bool { return f.custom != "" }

func (f FrameworkID) MarshalJSON() ([]byte, error) { return marshalQuoted(f.String()) }

func (f *FrameworkID) UnmarshalJSON(raw []byte) error {
	s, err := unmarshalQuoted(raw)
	if err != nil {
		return err
	}
	*f = parseFrameworkID(s)
	return nil
}

func parseFrameworkID(s string) FrameworkID {
	for _, known := range []FrameworkID{
		FrameworkSpringBoot, FrameworkExpress, FrameworkDjango, FrameworkRails, FrameworkAspNetCore,
		FrameworkAxum, FrameworkNextJS, FrameworkFastAPI, FrameworkFlask, FrameworkGin, FrameworkEcho,
		FrameworkLaravel, FrameworkFastify, FrameworkKtor, FrameworkMicronaut, FrameworkPhoenix,
		FrameworkQuarkus, FrameworkSinatra,
	} {
		if known.known == s {
			return known
		}
	}
	return CustomFramework(s)
}

// RuntimeID identifies a runtime family.
type RuntimeID struct {
	known  string
	custom string
}

var (
	RuntimeJVM    = RuntimeID{known: "jvm"}
	RuntimeNode   = RuntimeID{known: "node"}
	RuntimePython = RuntimeID{known: "python"}
	RuntimeRuby   = RuntimeID{known: "ruby"}
	RuntimeBEAM   = RuntimeID{known: "beam"}
	RuntimeDotnet = RuntimeID{known: "dotnet"}
	RuntimePHP    = RuntimeID{known: "php"}
	RuntimeNative = RuntimeID{known: "native"}
)

func CustomRuntime(name string) RuntimeID { return RuntimeID{custom: name} }

func (r RuntimeID) String() string {
	if r.custom != "" {
		return r.custom
	}
	return r.known
}

func (r RuntimeID) IsCustom() bool { return r.custom != "" }

func (r RuntimeID) MarshalJSON() ([]byte, error) { return marshalQuoted(r.String()) }

func (r *RuntimeID) UnmarshalJSON(raw []byte) error {
	s, err := unmarshalQuoted(raw)
	if err != nil {
		return err
	}
	*r = parseRuntimeID(s)
	return nil
}

func parseRuntimeID(s string) RuntimeID {
	for _, known := range []RuntimeID{
		RuntimeJVM, RuntimeNode, RuntimePython, RuntimeRuby, RuntimeBEAM, RuntimeDotnet, RuntimePHP, RuntimeNative,
	} {
		if known.known == s {
			return known
		}
	}
	return CustomRuntime(s)
}

// OrchestratorID identifies a monorepo orchestrator.
type OrchestratorID struct {
	known  string
	custom string
}

var (
	OrchestratorNpmWorkspaces     = OrchestratorID{known: "npmWorkspaces"}
	OrchestratorTurborepo         = OrchestratorID{known: "turborepo"}
	OrchestratorNx                = OrchestratorID{known: "nx"}
	OrchestratorPnpmWorkspace     = OrchestratorID{known: "pnpmWorkspace"}
	OrchestratorLerna             = OrchestratorID{known: "lerna"}
	OrchestratorRush              = OrchestratorID{known: "rush"}
	OrchestratorCargoWorkspace    = OrchestratorID{known: "cargoWorkspace"}
	OrchestratorGradleMultiProject = OrchestratorID{known: "gradleMultiProject"}
	OrchestratorMavenMultiModule  = OrchestratorID{known: "mavenMultiModule"}
	OrchestratorGoWork            = OrchestratorID{known: "goWork"}
)

func CustomOrchestrator(name string) OrchestratorID { return OrchestratorID{custom: name} }

func (o OrchestratorID) String() string {
	if o.custom != "" {
		return o.custom
	}
	return o.known
}

func (o OrchestratorID) IsCustom() bool { return o.custom != "" }

func (o OrchestratorID) MarshalJSON() ([]byte, error) { return marshalQuoted(o.String()) }

func (o *OrchestratorID) UnmarshalJSON(raw []byte) error {
	s, err := unmarshalQuoted(raw)
	if err != nil {
		return err
	}
	*o = parseOrchestratorID(s)
	return nil
}

func parseOrchestratorID(s string) OrchestratorID {
	for _, known := range []OrchestratorID{
		OrchestratorNpmWorkspaces, OrchestratorTurborepo, OrchestratorNx, OrchestratorPnpmWorkspace,
		OrchestratorLerna, OrchestratorRush, OrchestratorCargoWorkspace, OrchestratorGradleMultiProject,
		OrchestratorMavenMultiModule, OrchestratorGoWork,
	} {
		if known.known == s {
			return known
		}
	}
	return CustomOrchestrator(s)
}
