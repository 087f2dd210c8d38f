package buildsystem

// Defaults returns every deterministic build system in registration
// order. Within a single manifest filename's candidates, spec.md §4.1's
// tie-break (ManifestPattern priority, then registration order, then
// lock-file specificity handled inside detect_all) decides the winner;
// this slice's order is the last of those tie-breaks.
func Defaults() []Definition {
	return []Definition{
		Cargo{},
		GoMod{},
		Maven{},
		Gradle{},
		Pnpm{},
		Yarn{},
		Bun{},
		Npm{},
		Poetry{},
		Pipenv{},
		Pip{},
		Dotnet{},
		Composer{},
		Bundler{},
		CMake{},
		Meson{},
		Make{},
		Mix{},
	}
}
